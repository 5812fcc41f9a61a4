package main

import (
	"github.com/c9s/streamta/pkg/cmd"
)

func main() {
	cmd.Execute()
}
