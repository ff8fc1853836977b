// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/jsonmend/clean"
	"github.com/poiesic/jsonmend/repair"
)

const (
	defaultRawFile   = "raw_questions.json"
	defaultCleanFile = "clean_questions.json"
	defaultDebugFile = "debug_intermediate.json"
	defaultHintsFile = "valid_questions.json"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "jsonmend",
		Usage: "Repair and clean JSON question files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "repair",
				Usage:  "Escape stray quotes inside single-line field values and re-indent the document",
				Action: repairCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Near-JSON file to repair",
						Value:   defaultRawFile,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Where to write the repaired document",
						Value:   defaultCleanFile,
					},
					&cli.StringFlag{
						Name:  "debug-output",
						Usage: "Where to write the repaired text if it is still invalid",
						Value: defaultDebugFile,
					},
					&cli.StringSliceFlag{
						Name:  "field",
						Usage: "Field whose values are repaired (repeatable)",
						Value: cli.NewStringSlice(repair.DefaultFields...),
					},
					&cli.IntFlag{
						Name:  "indent",
						Usage: "Indentation width of the output document",
						Value: repair.DefaultIndent,
					},
				},
			},
			{
				Name:      "clean-hints",
				Usage:     "Strip characters from a field throughout JSON files, rewriting them in place",
				ArgsUsage: "[file...]",
				Action:    cleanHintsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "field",
						Usage: "Field whose string values are cleaned",
						Value: clean.DefaultField,
					},
					&cli.StringFlag{
						Name:  "strip",
						Usage: "Characters to remove",
						Value: clean.DefaultChars,
					},
					&cli.IntFlag{
						Name:  "indent",
						Usage: "Indentation width of the rewritten files",
						Value: clean.DefaultIndent,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of files to clean concurrently",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N files",
						Value: 10,
					},
				},
			},
		},
	}
}

func repairCommand(c *cli.Context) error {
	out := c.App.Writer

	repairer, err := repair.New(
		repair.WithFields(c.StringSlice("field")...),
		repair.WithIndent(c.Int("indent")),
	)
	if err != nil {
		return fmt.Errorf("invalid repair configuration: %w", err)
	}

	paths := repair.Paths{
		Input:  c.String("input"),
		Output: c.String("output"),
		Debug:  c.String("debug-output"),
	}

	fmt.Fprintf(out, "Reading %s...\n", paths.Input)
	result, err := repairer.ProcessFile(c.Context, paths)
	if err != nil {
		return fmt.Errorf("repair failed: %w", err)
	}

	reportRepair(out, paths, result)
	return nil
}

func reportRepair(out io.Writer, paths repair.Paths, result *repair.Result) {
	switch result.Status {
	case repair.StatusOK:
		color.New(color.FgGreen).Fprintln(out, "Success! The fixed content is valid JSON.")
		fmt.Fprintf(out, "Repaired %d of %d lines.\n", result.Stats.Repaired, result.Stats.Lines)
		fmt.Fprintf(out, "Saved clean JSON to %s\n", result.Written)
	case repair.StatusParseError:
		color.New(color.FgYellow).Fprintln(out, "Cleaning pass finished, but result is still invalid.")
		fmt.Fprintf(out, "Error: %s\n", result.ParseErr.Msg)
		fmt.Fprintf(out, "At: %d:%d\n", result.ParseErr.Line, result.ParseErr.Column)
		fmt.Fprintf(out, "Saved intermediate text to %s\n", result.Written)
	case repair.StatusFileNotFound:
		color.New(color.FgRed).Fprintf(out, "File %s not found.\n", paths.Input)
	}
}

func cleanHintsCommand(c *cli.Context) error {
	out := c.App.Writer

	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths = []string{defaultHintsFile}
	}

	cleaner, err := clean.NewCleaner(
		clean.WithField(c.String("field")),
		clean.WithChars(c.String("strip")),
		clean.WithIndent(c.Int("indent")),
	)
	if err != nil {
		return fmt.Errorf("invalid clean configuration: %w", err)
	}

	opts := []clean.BatchOption{clean.WithWorkers(c.Int("workers"))}
	if len(paths) > 1 {
		opts = append(opts, clean.WithProgress(c.App.ErrWriter, c.Int("report-interval")))
	}
	batch, err := clean.NewBatch(cleaner, opts...)
	if err != nil {
		return fmt.Errorf("invalid clean configuration: %w", err)
	}
	defer batch.Release()

	// Per-file failures are reported, not returned
	for _, o := range batch.Run(c.Context, paths) {
		if o.Err != nil {
			color.New(color.FgRed).Fprintf(out, "Error: %v\n", o.Err)
			continue
		}
		color.New(color.FgGreen).Fprintf(out, "Successfully cleaned %s", o.Path)
		fmt.Fprintf(out, " (%d changed)\n", o.Result.Changed)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
