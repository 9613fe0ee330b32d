// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrogolib/set"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input register dump file"`
	Output string `flag:"o" usage:"output file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.dump)"`
}

// Flags contains behavior options.
type Flags struct {
	Format    string `flag:"f" usage:"output format: text, pretty, inspect" default:"text"`
	Registers string `flag:"r" usage:"comma separated list of registers to decode (default: all)"`
	List      bool   `flag:"list" usage:"list the known registers and their layout"`
	Strict    bool   `flag:"strict" usage:"fail on registers missing in the catalog"`
	Debug     bool   `flag:"debug" usage:"enable debug logging"`
	Quiet     bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit the raw register value comments"`
	NoColor       bool `flag:"nocolor" usage:"disable colors of the inspect format"`
}

// Program options of the tool.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Decoder defines options to control register decoding and output.
type Decoder struct {
	Filter set.Set[string] // lower case register names to decode, all if empty

	Color       bool
	HexComments bool
	Strict      bool
}

// NewDecoder returns a new options instance with default options.
func NewDecoder() Decoder {
	return Decoder{
		Filter:      set.New[string](),
		HexComments: true,
	}
}

// Selected returns whether the register passes the register filter.
func (d Decoder) Selected(lowerName string) bool {
	if len(d.Filter) == 0 {
		return true
	}
	return d.Filter.Contains(lowerName)
}
