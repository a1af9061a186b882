// Command hlslc translates an HLSL shader's entry point to GLSL — §6.1.
//
// Usage:
//
//	hlslc [-fs|-vs] FILE ENTRY
//
// -fs selects the fragment target (default); -vs selects the vertex target.
// FILE is the HLSL source path; ENTRY is the entry-point function's name.
// GLSL is written to stdout on success. Diagnostics are written to stderr,
// each prefixed "ERROR:"; a positioned diagnostic additionally carries a
// "file:line: " prefix per §6.4.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/hlsl2glsl"
	"github.com/gogpu/hlsl2glsl/glsl"
)

var (
	fragment = flag.Bool("fs", true, "compile for the fragment stage (default)")
	vertex   = flag.Bool("vs", false, "compile for the vertex stage")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	inputPath, entry := args[0], args[1]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fail("ERROR: %v", err)
	}

	stage := glsl.FragmentStage
	if *vertex {
		stage = glsl.VertexStage
	}

	opts := hlsl2glsl.DefaultOptions()
	opts.Stage = stage
	opts.EntryPoint = entry

	result, err := hlsl2glsl.Compile(inputPath, string(source), opts)
	if err != nil {
		for _, msg := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
		}
		os.Exit(1)
	}

	if _, err := fmt.Print(result.GLSL); err != nil {
		fail("ERROR: %v", err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: hlslc [-fs|-vs] FILE ENTRY")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Translates FILE's ENTRY function to GLSL and writes it to stdout.")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}
