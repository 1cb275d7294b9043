package main

import (
	"os"

	"github.com/redraincatching/asha/internal/objfile"
	cli "github.com/urfave/cli/v2"
)

var inputFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "raw",
		Usage: "treat the file as a flat code blob with no object-file container",
	},
	&cli.Uint64Flag{
		Name:  "loadaddr",
		Usage: "load address for the code (raw mode, or an override for the object file's own address)",
	},
	&cli.StringFlag{
		Name:  "text-section",
		Value: ".text",
		Usage: "ELF section name to treat as code",
	},
	&cli.Int64Flag{
		Name:  "offset",
		Usage: "byte offset into the recovered section to start at",
	},
	&cli.Int64Flag{
		Name:  "length",
		Usage: "number of bytes to decode, from offset (default: rest of section)",
	},
}

// loadSection reads file and recovers a code section per the shared
// --raw/--loadaddr/--text-section/--offset/--length flags.
func loadSection(c *cli.Context, file string) (objfile.Section, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return objfile.Section{}, err
	}

	var sec objfile.Section
	if c.Bool("raw") {
		sec = objfile.LoadRaw(data, c.Uint64("loadaddr"))
	} else {
		sec, err = objfile.Load(data, c.String("text-section"))
		if err != nil {
			return objfile.Section{}, err
		}
		if c.IsSet("loadaddr") {
			sec.Addr = c.Uint64("loadaddr")
		}
	}

	offset := c.Int64("offset")
	if offset < 0 || offset > int64(len(sec.Data)) {
		return objfile.Section{}, cli.Exit("offset out of range", 1)
	}

	length := int64(len(sec.Data)) - offset
	if c.IsSet("length") {
		length = c.Int64("length")
		if length < 0 {
			return objfile.Section{}, cli.Exit("length cannot be negative", 1)
		}
		if offset+length > int64(len(sec.Data)) {
			length = int64(len(sec.Data)) - offset
		}
	}

	sec.Addr += uint64(offset)
	sec.Data = sec.Data[offset : offset+length]
	return sec, nil
}
