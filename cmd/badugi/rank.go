package main

import (
	"fmt"

	"github.com/lox/badugi/badugi"
)

type RankCmd struct {
	Cards   []string `arg:"" help:"Four card codes, e.g. 2S 2H 5D 9C"`
	Against []string `short:"a" help:"Four card codes of a second hand to compare against"`
}

func (c *RankCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}

	hand, err := badugi.ParseHand(c.Cards...)
	if err != nil {
		return fmt.Errorf("hand: %w", err)
	}
	hand.Analyze()
	fmt.Println(e.out.Hand(hand))

	if len(c.Against) == 0 {
		return nil
	}

	other, err := badugi.ParseHand(c.Against...)
	if err != nil {
		return fmt.Errorf("against: %w", err)
	}
	other.Analyze()
	fmt.Println(e.out.Hand(other))

	if !hand.DistinctFrom(other) {
		e.logger.Warn("The two hands share a card")
	}

	result, err := hand.Compare(other)
	if err != nil {
		return err
	}
	switch {
	case result > 0:
		fmt.Println(e.out.Success("first hand wins"))
	case result < 0:
		fmt.Println(e.out.Success("second hand wins"))
	default:
		fmt.Println("tie")
	}
	return nil
}
