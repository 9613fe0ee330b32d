// Package config handles application configuration and setup
package config

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/retroenv/regdebug/internal/options"
	"github.com/retroenv/regdebug/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateWriterOptions returns the output writer options. Colors are only
// enabled if the output file is a terminal, output can be nil.
func CreateWriterOptions(format writer.Format, decoderOpts options.Decoder, output *os.File) writer.Options {
	return writer.Options{
		Format:      format,
		HexComments: decoderOpts.HexComments,
		Color:       decoderOpts.Color && isTerminal(output),
	}
}

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
