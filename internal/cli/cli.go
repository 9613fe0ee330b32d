// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/regdebug/internal/catalog"
	"github.com/retroenv/regdebug/internal/options"
	"github.com/retroenv/regdebug/internal/writer"
)

// ParseFlags parses command line flags and returns program and decoder options
func ParseFlags() (options.Program, options.Decoder, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.Usage = func() {} // usage is shown by the caller through UsageError
	var opts options.Program
	readOptionFlags(flags, &opts)
	readOutputFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "" && !opts.List) {
		return opts, options.Decoder{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Decoder{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Decoder{}, err
	}

	if opts.Input == "" && opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	decoderOpts, err := createDecoderOptions(opts)
	if err != nil {
		return opts, options.Decoder{}, err
	}
	return opts, decoderOpts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: regdebug [options] <register dump file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after register dump file, please pass the file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	format, err := writer.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	opts.Format = string(format)
	return nil
}

// createDecoderOptions creates decoder options based on program options
func createDecoderOptions(opts options.Program) (options.Decoder, error) {
	decoderOpts := options.NewDecoder()
	decoderOpts.HexComments = !opts.NoHexComments
	decoderOpts.Color = !opts.NoColor
	decoderOpts.Strict = opts.Strict

	for _, name := range strings.Split(opts.Registers, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := catalog.Lookup(name); !ok {
			return options.Decoder{}, fmt.Errorf("%w '%s' in register filter", catalog.ErrUnknownRegister, name)
		}
		decoderOpts.Filter[name] = struct{}{}
	}

	return decoderOpts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input register dump file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .regs.txt file naming, for example *.dump")
	flags.StringVar(&opts.Format, "f", "text", "output format ("+strings.Join(writer.Formats(), "/")+")")
	flags.StringVar(&opts.Registers, "r", "", "comma separated list of registers to decode, all if not given")
	flags.BoolVar(&opts.List, "list", false, "list the known registers and their field layout")
	flags.BoolVar(&opts.Strict, "strict", false, "fail on registers that are missing in the catalog instead of skipping them")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readOutputFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output raw register values as hex comments")
	flags.BoolVar(&opts.NoColor, "nocolor", false, "do not colorize the inspect output")
}
