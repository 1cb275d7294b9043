package main

import (
	"fmt"

	"github.com/redraincatching/asha/internal/asha"
	cli "github.com/urfave/cli/v2"
)

var decompileCommand = &cli.Command{
	Name:      "decompile",
	Aliases:   []string{"dc"},
	Usage:     "Reduce a file's control flow into C-like pseudocode",
	ArgsUsage: "file",
	Flags:     inputFlags,
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("insufficient arguments", 1)
		}

		sec, err := loadSection(c, c.Args().First())
		if err != nil {
			return cli.Exit(err, 1)
		}

		prog := asha.DecodeText(sec.Addr, sec.Data)
		for _, line := range asha.Pseudocode(prog) {
			fmt.Println(line)
		}
		return nil
	},
}
