package rcutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestExpandPath_Directory(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "b.rc", "")
	writeTemp(t, dir, "a.rc", "")
	writeTemp(t, dir, "notes.txt", "")
	writeTemp(t, dir, "a.RC", "") // suffix match is case sensitive

	got, err := ExpandPath(dir)
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	want := []string{filepath.Join(dir, "a.rc"), filepath.Join(dir, "b.rc")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandPath = %v, want %v", got, want)
	}
}

func TestExpandPath_NoRecursion(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTemp(t, sub, "hidden.rc", "")
	writeTemp(t, dir, "top.rc", "")

	got, err := ExpandPath(dir)
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	want := []string{filepath.Join(dir, "top.rc")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandPath = %v, want %v", got, want)
	}
}

func TestExpandPath_PlainFile(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "single.conf", "")

	got, err := ExpandPath(p)
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if !reflect.DeepEqual(got, []string{p}) {
		t.Fatalf("ExpandPath = %v, want [%s]", got, p)
	}
}

func TestExpandPath_NonexistentPassesThrough(t *testing.T) {
	p := filepath.Join(t.TempDir(), "does", "not", "exist")
	got, err := ExpandPath(p)
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if !reflect.DeepEqual(got, []string{p}) {
		t.Fatalf("ExpandPath = %v, want [%s]", got, p)
	}
}

func TestExpandPath_Tilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath(filepath.Join("~", "custom.conf"))
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	want := []string{filepath.Join(home, "custom.conf")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandPath = %v, want %v", got, want)
	}
}

func TestExpandPath_EnvVar(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "ui.rc", "")
	t.Setenv("HGX_TEST_RCDIR", dir)

	got, err := ExpandPath("$HGX_TEST_RCDIR")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	want := []string{filepath.Join(dir, "ui.rc")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandPath = %v, want %v", got, want)
	}
}

func TestDefaultRcPath(t *testing.T) {
	data := t.TempDir()
	defaultd := filepath.Join(data, "default.d")
	if err := os.Mkdir(defaultd, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTemp(t, defaultd, "mergetools.rc", "")
	writeTemp(t, defaultd, "useragent.rc", "")
	writeTemp(t, defaultd, "README", "")

	got, err := DefaultRcPath(data)
	if err != nil {
		t.Fatalf("DefaultRcPath: %v", err)
	}
	want := []string{
		filepath.Join(defaultd, "mergetools.rc"),
		filepath.Join(defaultd, "useragent.rc"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DefaultRcPath = %v, want %v", got, want)
	}
}

func TestDefaultRcPath_Missing(t *testing.T) {
	got, err := DefaultRcPath(t.TempDir())
	if err != nil {
		t.Fatalf("DefaultRcPath: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no paths without default.d, got %v", got)
	}
}
