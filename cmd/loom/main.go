// Package main provides the Loom CLI.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/loom-ml/loom/internal/mem"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("Loom %s\n", version)
		return
	}

	fmt.Println("Loom - Multi-Dimensional Arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Printf("Inline storage:  up to %d elements per SSO handle\n", mem.SSOCapacity)
	fmt.Printf("Stack storage:   %d elements per handle\n", mem.StackCapacity)
	fmt.Printf("CPUs available:  %d\n\n", runtime.NumCPU())
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
}
