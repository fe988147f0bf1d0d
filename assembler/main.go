package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// a command line assembler for the basic computer. it reads assembly source
// files and writes the assembled words, one "address word" pair per line, or
// a json object with -json. source files given as arguments take precedence
// over -i and are assembled concurrently over the same instruction tables.

var (
	inputPath  = flag.String("i", "./input.asm", "the input assembly source file path")
	outputPath = flag.String("o", "", "the output file path, defaults to the source path with its suffix replaced, honored for a single source only")
	mriPath    = flag.String("mri", "./tables/mri.txt", "the memory-reference instruction table file path")
	rriPath    = flag.String("rri", "./tables/rri.txt", "the register-reference instruction table file path")
	ioiPath    = flag.String("ioi", "./tables/ioi.txt", "the input-output instruction table file path")
	// glog registers -v on the global flag set in its init.
	verbose = flag.Bool("print", false, "whether print the assembled listing")
	jsonOut = flag.Bool("json", false, "whether save the image as json instead of a listing")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	sources := sourcePaths(flag.Args(), *inputPath)
	tables, err := LoadInstructionSet(*mriPath, *rriPath, *ioiPath)
	if err != nil {
		glog.Exitf("failed to load instruction tables: %v", err)
	}
	// One independently owned assembler per source, sharing the read-only
	// instruction set.
	var group errgroup.Group
	for _, source := range sources {
		source := source
		out := *outputPath
		if out == "" || len(sources) > 1 {
			out = outputName(source, *jsonOut)
		}
		group.Go(func() error {
			return assembleFile(tables, source, out, *jsonOut, *verbose)
		})
	}
	if err := group.Wait(); err != nil {
		glog.Exitf("%v", err)
	}
}

// assembleFile assembles one source file and writes its image to out.
func assembleFile(tables *InstructionSet, source, out string, asJSON, verbose bool) error {
	asm, err := NewAssemblerWithSet(source, tables)
	if err != nil {
		return err
	}
	image, err := asm.Assemble("")
	if err != nil {
		return err
	}
	if verbose {
		fmt.Print(image.Listing())
	}
	if asJSON {
		err = image.SaveJSON(out)
	} else {
		err = image.SaveToFile(out)
	}
	if err != nil {
		return fmt.Errorf("failed to save %s: %v", out, err)
	}
	glog.Infof("assembled %s: %d words -> %s", asm.SourceName(), len(image), out)
	return nil
}

// sourcePaths returns the files to assemble. Positional arguments take
// precedence over the -i path.
func sourcePaths(args []string, fallback string) []string {
	if len(args) == 0 {
		return []string{fallback}
	}
	return args
}

// outputName replaces the assembly suffix of source with the output suffix.
func outputName(source string, asJSON bool) string {
	suffix := ".bin"
	if asJSON {
		suffix = ".json"
	}
	for _, ext := range []string{".asm", ".S"} {
		if strings.HasSuffix(source, ext) {
			return strings.TrimSuffix(source, ext) + suffix
		}
	}
	return source + suffix
}
