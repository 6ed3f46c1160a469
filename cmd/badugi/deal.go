package main

import (
	"fmt"
	"time"

	"github.com/lox/badugi/internal/dealer"
	"github.com/lox/badugi/internal/randutil"
)

type DealCmd struct {
	TableFlags

	DealSeed *int64 `help:"Seed for dealing hands (overrides config; default is time based)"`
	Count    int    `short:"n" default:"1" help:"Number of showdowns to deal"`
	Pick     string `help:"Bet on a side (left or right) and report whether each bet was right"`
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}

	var pick dealer.Side
	if c.Pick != "" {
		if pick, err = dealer.ParseSide(c.Pick); err != nil {
			return err
		}
	}

	grid, err := c.grid(e)
	if err != nil {
		return err
	}

	seed := e.cfg.Deal.Seed
	if c.DealSeed != nil {
		seed = *c.DealSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e.logger.Debug("Dealing", "deal_seed", seed, "table_seed", grid.Seed())

	d := dealer.New(grid, randutil.NewPCG(seed), e.logger)
	correct := 0
	for i := range c.Count {
		s, err := d.Deal()
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(e.out.Showdown(s))

		if pick != 0 {
			if s.Accepts(pick) {
				correct++
				fmt.Println(e.out.Success(fmt.Sprintf("%s was a good bet", pick)))
			} else {
				fmt.Println(e.out.Failure(fmt.Sprintf("%s was the wrong bet", pick)))
			}
		}
	}
	if pick != 0 {
		fmt.Printf("\n%d/%d correct selections\n", correct, c.Count)
	}
	return nil
}
