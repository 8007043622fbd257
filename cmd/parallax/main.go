// Package main provides the Parallax CLI.
package main

import (
	"fmt"
	"os"

	"github.com/parallax-hpc/parallax/dispatch"
	"github.com/parallax-hpc/parallax/internal/gpuprobe"
	"github.com/parallax-hpc/parallax/internal/hostcaps"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Parallax %s\n", version)
			return
		case "info":
			printInfo()
			return
		}
	}

	fmt.Println("Parallax - layout-aware views and parallel dispatch for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  info       Show detected host capabilities and dispatch defaults")
}

func printInfo() {
	caps := hostcaps.Detect()
	fmt.Printf("Logical cores:  %d\n", caps.LogicalCores)
	fmt.Printf("Vector width:   %d bits\n", caps.VectorBits)
	if len(caps.Features) > 0 {
		fmt.Printf("CPU features:   %v\n", caps.Features)
	}

	cfg := dispatch.DefaultConfig()
	fmt.Printf("Workers:        %d\n", cfg.Workers)
	fmt.Printf("Min chunk:      %d\n", cfg.MinChunk)

	if info, err := gpuprobe.AdapterInfo(); err == nil {
		fmt.Printf("GPU adapter:    %s (%s) - execution not implemented\n", info.Name, info.VendorName)
	} else {
		fmt.Println("GPU adapter:    none detected")
	}
}
