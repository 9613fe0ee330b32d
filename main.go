// Package main implements the main entry point for a hardware register dump decoder
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/regdebug/internal/cli"
	"github.com/retroenv/regdebug/internal/config"
	"github.com/retroenv/regdebug/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, decoderOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if opts.List {
		if err := fileprocessor.ProcessFile(ctx, logger, opts, decoderOpts); err != nil {
			logger.Fatal("Listing registers failed", log.Err(err))
		}
		return
	}

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	var failed bool
	for _, file := range files {
		opts.Input = file
		if len(files) > 1 || opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, decoderOpts); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Decoding failed", log.String("file", file), log.Err(err))
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
