package main

import (
	"fmt"

	"github.com/lox/badugi/table"
)

type LineCmd struct {
	TableFlags

	X   int    `arg:"" help:"Start column (0-9, wraps)"`
	Y   int    `arg:"" help:"Start row (0-9, wraps)"`
	Dir string `arg:"" help:"Direction: up, up-right, right, down-right, down, down-left, left, up-left"`
}

func (c *LineCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	dir, err := table.ParseDirection(c.Dir)
	if err != nil {
		return err
	}
	grid, err := c.grid(e)
	if err != nil {
		return err
	}

	read := table.Read{X: c.X, Y: c.Y, Dir: dir}
	hand := grid.Line(c.X, c.Y, dir).Hand()
	hand.Analyze()

	fmt.Println(e.out.TableHeader(grid))
	fmt.Print(e.out.Grid(grid, read))
	fmt.Println()
	fmt.Println(e.out.Hand(hand))
	return nil
}
