// Command crucible reads a digit grid and prints the minimal heat loss of
// moving a crucible from the top-left to the bottom-right tile.
//
// Usage:
//
//	crucible [flags] [file]
//
// With no file the grid is read from standard input. By default both the
// loose (max 3, no min) and the clumsy (max 10, min 4) profiles are solved;
// -max/-min solve a single custom profile instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/motion"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("crucible: %v", err)
	}
}

// profile is one named set of constraints to solve.
type profile struct {
	name string
	c    motion.Constraints
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("crucible", flag.ContinueOnError)
	var (
		maxRun = fs.Int("max", 0, "maximum straight run of a custom profile")
		minRun = fs.Int("min", -1, "minimum straight run of a custom profile (default 0 when -max is set)")
		wall   = fs.Int("wall", 0, "treat tiles with cost >= `n` as impassable (0 disables)")
		stats  = fs.Bool("stats", false, "print search statistics")
		dump   = fs.Bool("dump", false, "dump the full search result")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: crucible [flags] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errors.New("at most one input file")
	}

	in := stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var opts []gridgraph.Option
	if *wall > 0 {
		opts = append(opts, gridgraph.WithWallThreshold(*wall))
	}
	g, err := gridgraph.ParseDigits(in, opts...)
	if err != nil {
		return err
	}

	profiles, err := selectProfiles(*maxRun, *minRun)
	if err != nil {
		return err
	}

	for i, p := range profiles {
		res, err := dijkstra.Search(g, dijkstra.WithConstraints(p.c))
		switch {
		case errors.Is(err, dijkstra.ErrUnreachable):
			fmt.Fprintf(stdout, "Part %d — %s: unreachable\n", i+1, p.name)
			continue
		case err != nil:
			return err
		}
		fmt.Fprintf(stdout, "Part %d — %s: %d\n", i+1, p.name, res.Cost)
		if *stats {
			fmt.Fprintf(stdout, "  expanded %s states, pushed %s, skipped %s stale\n",
				humanize.Comma(int64(res.Expanded)), humanize.Comma(int64(res.Pushed)), humanize.Comma(int64(res.Stale)))
		}
		if *dump {
			fmt.Fprintf(stdout, "%# v\n", pretty.Formatter(res))
		}
	}

	return nil
}

// selectProfiles returns the two standard profiles, or a single custom one
// when -max or -min was given.
func selectProfiles(maxRun, minRun int) ([]profile, error) {
	if maxRun == 0 && minRun < 0 {
		return []profile{
			{name: "straight line max 3, no min", c: motion.Loose},
			{name: "straight line max 10, min 4", c: motion.Clumsy},
		}, nil
	}
	if minRun < 0 {
		minRun = 0
	}
	c, err := motion.NewConstraints(maxRun, minRun)
	if err != nil {
		return nil, err
	}

	return []profile{{name: fmt.Sprintf("straight line %v", c), c: c}}, nil
}
