package main

import (
	"os"

	"github.com/redraincatching/asha/internal/asha"
	cli "github.com/urfave/cli/v2"
)

var disasmCommand = &cli.Command{
	Name:      "disasm",
	Aliases:   []string{"d"},
	Usage:     "Print a raw disassembly listing for a file",
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
		asha.Listing(os.Stdout, prog)
		return nil
	},
}
