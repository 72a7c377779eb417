package main

import (
	"github.com/c9s/bstree/pkg/cmd"
)

func main() {
	cmd.Execute()
}
