package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/lox/badugi/badugi"
	"github.com/lox/badugi/internal/config"
	"github.com/lox/badugi/internal/sweep"
	"github.com/lox/badugi/table"
)

type SweepCmd struct {
	From    int64  `default:"1" help:"First seed"`
	To      int64  `default:"1000" help:"Last seed"`
	Workers int    `short:"w" help:"Parallel workers (0 for GOMAXPROCS)"`
	Source  string `help:"Random source for the layout: mono or pcg (overrides config)"`
	Verbose bool   `help:"List every seed"`
}

func (c *SweepCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	kind := e.cfg.Table.Source
	if c.Source != "" {
		kind = c.Source
	}
	if kind == config.SourceMono {
		if _, err := newSource(kind, c.From); err != nil {
			return err
		}
		if _, err := newSource(kind, c.To); err != nil {
			return err
		}
	}

	res, err := sweep.Run(context.Background(), sweep.Config{
		From:        c.From,
		To:          c.To,
		Workers:     c.Workers,
		MaxAttempts: e.cfg.Table.MaxAttempts,
		NewSource: func(seed int64) table.Source {
			src, _ := newSource(kind, seed)
			return src
		},
		Logger: e.logger,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if c.Verbose {
		fmt.Fprintln(w, "seed\tattempts\tfallback\tduplicates\tbadugis")
		for _, r := range res.Seeds {
			fmt.Fprintf(w, "%d\t%d\t%t\t%d\t%d\n", r.Seed, r.Attempts, r.Fallback, r.Duplicates, r.Classes[badugi.Badugi])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "seeds\t%d\n", len(res.Seeds))
	fmt.Fprintf(w, "fallbacks\t%d\n", res.Fallbacks)
	fmt.Fprintf(w, "tables with conflicts\t%d\n", res.Conflicts)

	attempts := make([]int, 0, len(res.AttemptHistogram))
	for n := range res.AttemptHistogram {
		attempts = append(attempts, n)
	}
	slices.Sort(attempts)
	for _, n := range attempts {
		fmt.Fprintf(w, "placed in %d attempt(s)\t%d\n", n, res.AttemptHistogram[n])
	}
	fmt.Fprintf(w, "elapsed\t%v\n", res.Elapsed)
	return w.Flush()
}
