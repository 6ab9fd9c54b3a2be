// Command rookmagic finds a rook magic multiplier for one square.
//
// Usage:
//
//	rookmagic [flags] <row> <col>
//
// It prints "Checking: <n> ones" for every popcount budget tried and then a
// single "<magic> <shift>" line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/pkg/profile"

	"github.com/hailam/rookmagic/internal/board"
	"github.com/hailam/rookmagic/internal/magic"
	"github.com/hailam/rookmagic/internal/render"
)

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("rookmagic: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rookmagic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: rookmagic [flags] <row> <col>")
		fs.PrintDefaults()
	}

	maxOnes := fs.Int("max-ones", magic.DefaultMaxOnes, "largest multiplier popcount to try")
	setFirst := fs.Bool("set-first", false, "try each multiplier bit set before clear")
	debug := fs.Bool("debug", false, "print relevance and attack masks to stderr")
	svgPath := fs.String("svg", "", "write an svg of the relevance and attack masks")
	pngPath := fs.String("png", "", "write a png of the relevance and attack masks")
	pngSize := fs.Int("png-size", render.DefaultPNGSize, "png edge length in pixels")
	cpuprofile := fs.String("cpuprofile", "", "write a cpu profile into this directory")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}

	row, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid row %q: %w", fs.Arg(0), err)
	}
	col, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("invalid column %q: %w", fs.Arg(1), err)
	}
	sq, err := board.SquareAt(row, col)
	if err != nil {
		return err
	}

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile), profile.NoShutdownHook).Stop()
	}

	relevant := board.RookRelevance(sq)
	table := board.EnumerateOccupancies(sq, relevant)

	if *debug {
		mask := board.SquaresBB(relevant)
		fmt.Fprintf(stderr, "square %s: %d relevant squares, %d occupancies\n", sq, len(relevant), len(table))
		fmt.Fprint(stderr, board.FormatMask(mask))
		fmt.Fprintf(stderr, "%s\n", mask.Bits())
		fmt.Fprintf(stderr, "empty board attacks:\n%s", board.RookAttacks(sq, board.Empty))
	}

	layers := render.RookLayers(sq, board.Empty)
	if *svgPath != "" {
		if err := writeFile(*svgPath, func(w io.Writer) error { return render.WriteSVG(w, layers) }); err != nil {
			return err
		}
	}
	if *pngPath != "" {
		if err := writeFile(*pngPath, func(w io.Writer) error { return render.WritePNG(w, layers, *pngSize) }); err != nil {
			return err
		}
	}

	opts := magic.DefaultOptions()
	opts.MaxOnes = *maxOnes
	if *setFirst {
		opts.Order = magic.SetFirst
	}
	opts.Progress = func(ones int) {
		fmt.Fprintf(stdout, "Checking: %d ones\n", ones)
	}

	searcher, err := magic.NewSearcher(opts)
	if err != nil {
		return err
	}
	res, err := searcher.Find(sq, table)
	if err != nil {
		return err
	}

	// Build the consumer table once so a bad result never gets printed.
	if _, err := magic.NewTable(sq, res.Magic, res.Shift, table); err != nil {
		return fmt.Errorf("search accepted a colliding magic: %w", err)
	}

	if *debug {
		fmt.Fprintf(stderr, "found %#016x with %d ones after %d trials\n", res.Magic, res.Ones, res.Trials)
		fmt.Fprintf(stderr, "%s\n", board.Bitboard(res.Magic).Bits())
	}

	fmt.Fprintln(stdout, res)
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
