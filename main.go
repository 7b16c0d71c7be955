package main

import "github.com/nikogura/brand-weaver/cmd"

func main() {
	cmd.Execute()
}
