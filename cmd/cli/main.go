package main

import (
	"fmt"
	"os"

	"github.com/edu-tools/mentor-dashboard/pkg/runtime/terminal"
)

func main() {
	cli := terminal.NewCLI()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
