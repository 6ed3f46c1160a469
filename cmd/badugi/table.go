package main

import (
	"fmt"

	"github.com/lox/badugi/internal/fileutil"
	"github.com/lox/badugi/table"
)

type TableCmd struct {
	TableFlags

	Audit  bool   `short:"a" help:"Check all 800 lines for ambiguous openings"`
	Output string `short:"o" help:"Also write the plain text table to this file" type:"path"`
}

func (c *TableCmd) Run(g *Globals) error {
	e, err := g.load()
	if err != nil {
		return err
	}
	grid, err := c.grid(e)
	if err != nil {
		return err
	}
	if grid.UsedFallback() && !c.Fallback {
		e.logger.Warn("Placement gave up, showing the fallback table", "seed", grid.Seed(), "attempts", grid.Attempts())
	}

	fmt.Println(e.out.TableHeader(grid))
	fmt.Print(e.out.Grid(grid))

	if c.Audit {
		if err := table.CheckInventory(grid); err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(e.out.Report(table.Audit(grid)))
	}

	if c.Output != "" {
		if err := fileutil.WriteFileAtomic(c.Output, []byte(grid.String()), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", c.Output, err)
		}
		e.logger.Info("Wrote table", "path", c.Output)
	}
	return nil
}
