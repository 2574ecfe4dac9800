package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/grindlemire/go-dimsync/internal/debug"
	"github.com/grindlemire/go-dimsync/internal/scene"
)

type layoutOptions struct {
	verbose bool
	width   float64
	height  float64
	frames  int
	path    string
}

func parseLayoutArgs(args []string) (layoutOptions, error) {
	var opts layoutOptions
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.Float64Var(&opts.width, "width", 0, "Frame width")
	fs.Float64Var(&opts.height, "height", 0, "Frame height")
	fs.IntVar(&opts.frames, "frames", 0, "Maximum frames")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		return opts, errors.New("layout takes exactly one scene file")
	}
	if opts.width < 0 || opts.height < 0 || opts.frames < 0 {
		return opts, errors.New("width, height and frames must not be negative")
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

// runLayout implements the layout subcommand.
func runLayout(args []string, out *os.File) error {
	opts, err := parseLayoutArgs(args)
	if err != nil {
		return err
	}

	doc, err := scene.Load(opts.path)
	if err != nil {
		return err
	}
	applySize(doc, opts, terminalSize)

	s, err := doc.Build()
	if err != nil {
		return err
	}
	if opts.verbose {
		fmt.Fprintf(out, "Laying out %s in %gx%g, at most %d frame(s)\n", opts.path, s.Width, s.Height, s.Frames)
		if debug.Enabled() {
			fmt.Fprintf(out, "Debug log enabled via %s\n", debug.EnvVar)
		}
	}

	res := s.Run()
	color := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	writeReport(out, res, reportOptions{color: color, verbose: opts.verbose})

	if res.Pending > 0 {
		return fmt.Errorf("%d widget(s) still pending after %d frame(s)", res.Pending, res.Frames)
	}
	return nil
}

// applySize fills the frame size from flags, then the document, then the
// terminal.
func applySize(doc *scene.Document, opts layoutOptions, term func() (int, int, bool)) {
	if opts.width > 0 {
		doc.Width = opts.width
	}
	if opts.height > 0 {
		doc.Height = opts.height
	}
	if opts.frames > 0 {
		doc.Frames = opts.frames
	}
	if doc.Width > 0 && doc.Height > 0 {
		return
	}
	w, h, ok := term()
	if !ok {
		return
	}
	if doc.Width == 0 {
		doc.Width = float64(w)
	}
	if doc.Height == 0 {
		doc.Height = float64(h)
	}
}
