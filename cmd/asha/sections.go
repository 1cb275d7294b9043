package main

import (
	"fmt"
	"os"

	"github.com/redraincatching/asha/internal/objfile"
	cli "github.com/urfave/cli/v2"
)

// sectionsCommand is adapted from the teacher's "list" command, which
// printed an Acorn DFS disk image's file catalog; here it prints an ELF
// file's section table instead.
var sectionsCommand = &cli.Command{
	Name:      "sections",
	Aliases:   []string{"ls"},
	Usage:     "List the sections in an ELF object file",
	ArgsUsage: "file",
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("insufficient arguments", 1)
		}

		data, err := os.ReadFile(c.Args().First())
		if err != nil {
			return cli.Exit(err, 1)
		}

		secs, err := objfile.Sections(data)
		if err != nil {
			return cli.Exit(err, 1)
		}

		fmt.Println("Name             Addr     Size")
		for _, s := range secs {
			fmt.Printf("%-16s %08X %d\n", s.Name, s.Addr, len(s.Data))
		}
		return nil
	},
}
