// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/regdebug/internal/config"
	"github.com/retroenv/regdebug/internal/options"
	"github.com/retroenv/regdebug/internal/pipeline"
	"github.com/retroenv/regdebug/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

const outputExtension = ".regs.txt"

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, decoderOpts options.Decoder) error {
	file, err := createOutput(opts)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
		}
	}()

	format, err := writer.ParseFormat(opts.Format)
	if err != nil {
		return fmt.Errorf("parsing output format: %w", err)
	}
	w := writer.New(file, config.CreateWriterOptions(format, decoderOpts, file))

	pipe := pipeline.New(logger)
	if opts.List {
		return pipe.ListRegisters(w)
	}

	result, err := pipe.Execute(ctx, opts, decoderOpts, w)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	logger.Debug("Decoding finished",
		log.String("file", opts.Input),
		log.Int("decoded", result.Decoded),
		log.Int("filtered", result.Filtered),
		log.Int("skipped", result.Skipped))
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + outputExtension
}

func createOutput(opts options.Program) (*os.File, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("regdebug", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
