package main

import "github.com/philint/philint/cmd/philint"

func main() { philint.Execute() }
