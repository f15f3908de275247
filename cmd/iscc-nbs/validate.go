package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ironsheep/iscc-nbs-tools/internal/imaging"
	"github.com/ironsheep/iscc-nbs-tools/internal/iscc"
)

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// runValidate implements the validate subcommand and returns the process
// exit code. With color set, each region line starts with a truecolor
// swatch.
func runValidate(args []string, stdout, stderr io.Writer, color bool) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	collect := fs.Bool("collect", false, "report every overlap and gap")
	swatch := fs.String("swatch", "", "write a PNG swatch sheet to this `file`")
	cell := fs.Int("cell", imaging.DefaultCellSize, "swatch size in `pixels`")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: iscc-nbs validate [flags] <file.xml>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	sys, err := iscc.Open(path, iscc.Options{CollectAll: *collect})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
		return 1
	}

	fmt.Fprintf(stdout, "%s: %d blocks, %d regions, %dx%dx%d cells\n", path,
		len(sys.Blocks), len(sys.Regions),
		sys.Axes.HueCells(), sys.Axes.ChromaCells(), sys.Axes.ValueCells())

	for _, r := range sys.Regions {
		c := imaging.NewColorResult(r.RGB)
		name := ""
		if e, ok := sys.Name(r.ID); ok {
			name = e.Name
		}
		if color {
			fmt.Fprintf(stdout, "\x1b[48;2;%d;%d;%dm    \x1b[0m ", c.RGB.R, c.RGB.G, c.RGB.B)
		}
		fmt.Fprintf(stdout, "%4d  %s  %-22s %s\n", r.ID, c.Hex, r.Munsell, name)
	}

	if *swatch != "" {
		img, err := imaging.RenderSwatches(sys.Regions, *cell)
		if err != nil {
			fmt.Fprintf(stderr, "swatch: %v\n", err)
			return 1
		}
		if err := imaging.SavePNG(*swatch, img); err != nil {
			fmt.Fprintf(stderr, "swatch: %v\n", err)
			return 1
		}
	}

	return 0
}
