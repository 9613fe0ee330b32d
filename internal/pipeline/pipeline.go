// Package pipeline orchestrates the register dump decoding workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/regdebug/internal/catalog"
	"github.com/retroenv/regdebug/internal/dump"
	"github.com/retroenv/regdebug/internal/options"
	"github.com/retroenv/regdebug/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Result summarizes a pipeline run.
type Result struct {
	Decoded  int // registers written to the output
	Filtered int // registers excluded by the register filter
	Skipped  int // registers missing in the catalog
}

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger *log.Logger
	loader *dump.Loader
	lookup func(name string) (catalog.Entry, bool)
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: dump.NewLoader(),
		lookup: catalog.Lookup,
	}
}

// Execute runs the complete decoding pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, decoderOpts options.Decoder,
	out *writer.Writer) (Result, error) {

	entries, err := p.loader.Load(opts.Input)
	if err != nil {
		return Result{}, fmt.Errorf("loading register dump: %w", err)
	}

	p.logger.Debug("Loaded register dump",
		log.String("file", opts.Input),
		log.Int("registers", len(entries)))

	return p.ExecuteWithEntries(ctx, entries, decoderOpts, out)
}

// ExecuteWithEntries runs the decoding pipeline with already parsed dump entries.
// This is useful for testing and programmatic usage where the dump is already in memory.
func (p *Pipeline) ExecuteWithEntries(ctx context.Context, entries []dump.Entry, decoderOpts options.Decoder,
	out *writer.Writer) (Result, error) {

	var result Result

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("decoding register dump: %w", err)
		}

		if !decoderOpts.Selected(strings.ToLower(entry.Name)) {
			result.Filtered++
			continue
		}

		reg, ok := p.lookup(entry.Name)
		if !ok {
			if decoderOpts.Strict {
				return result, fmt.Errorf("line %d: %w '%s'", entry.Line, catalog.ErrUnknownRegister, entry.Name)
			}
			p.logger.Warn("Skipping unknown register",
				log.String("register", entry.Name),
				log.Int("line", entry.Line))
			result.Skipped++
			continue
		}

		if err := p.decodeEntry(entry, reg, out); err != nil {
			return result, err
		}
		result.Decoded++
	}

	return result, nil
}

func (p *Pipeline) decodeEntry(entry dump.Entry, reg catalog.Entry, out *writer.Writer) error {
	p.logger.Debug("Decoding register",
		log.String("register", reg.Name()),
		log.Hex("value", entry.Value),
		log.String("layout", spew.Sdump(reg.Layout())))

	decoded, err := reg.Decode(entry.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", entry.Line, err)
	}

	if err := out.Write(decoded); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// ListRegisters writes the layout of all catalog registers.
func (p *Pipeline) ListRegisters(out *writer.Writer) error {
	for _, entry := range catalog.All() {
		if err := out.WriteLayout(entry); err != nil {
			return fmt.Errorf("listing registers: %w", err)
		}
	}
	return nil
}
