package main

import "github.com/hgx-scm/hgx/cmd/hgx"

func main() { hgx.Execute() }
