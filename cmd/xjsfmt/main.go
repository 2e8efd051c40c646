// Command xjsfmt reformats XJS and JSON documents.
//
// It parses each input with the parser registered for its file extension,
// then rewrites it under the configured formatting options, preserving
// comments and blank-line structure.
//
// # Usage
//
//	xjsfmt [flags] <file.xjs|file.json> ...
//
// Passing "-" reads a single document from stdin and writes the formatted
// result to stdout; the default extension (xjs) selects its parser.
//
// # Modes
//
// By default the formatted result is printed to stdout. With --write the
// input files are rewritten in place; --diff shows the changes without
// writing; --list only names the files that would change.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"go.birchlake.dev/xjs/format"
	"go.birchlake.dev/xjs/log"
	"go.birchlake.dev/xjs/profile"
	"go.birchlake.dev/xjs/version"
	"go.birchlake.dev/xjs/writer"
)

func main() {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()
	fmtCfg := format.NewConfig()

	profiler := profCfg.NewProfiler()

	var (
		diffMode  bool
		listMode  bool
		writeMode bool
	)

	rootCmd := &cobra.Command{
		Use:   "xjsfmt [flags] <file.xjs|file.json> ...",
		Short: "Reformat XJS and JSON documents",
		Long: `xjsfmt reformats XJS and JSON documents. Each input is parsed with the
parser registered for its file extension and rewritten under the configured
formatting options, preserving comments and blank-line structure.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return profiler.Start()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return run(fmtCfg, args, diffMode, listMode, writeMode)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&diffMode, "diff", "d", false, "show changes without writing")
	flags.BoolVarP(&listMode, "list", "l", false, "only list files that would change")
	flags.BoolVarP(&writeMode, "write", "w", false, "rewrite files in place instead of printing")

	fmtCfg.RegisterFlags(flags)
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		fmtCfg.RegisterCompletions,
		logCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
	} {
		if err := register(rootCmd); err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	err := rootCmd.Execute()

	if stopErr := profiler.Stop(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "stop profiler: %v\n", stopErr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *format.Config, args []string, diffMode, listMode, writeMode bool) error {
	var failed bool

	for _, arg := range args {
		if err := processInput(cfg, arg, diffMode, listMode, writeMode); err != nil {
			slog.Error("format failed", slog.String("input", arg), slog.Any("error", err))

			failed = true
		}
	}

	if failed {
		return fmt.Errorf("%w: one or more inputs failed", format.ErrWriteOutput)
	}

	return nil
}

func processInput(cfg *format.Config, arg string, diffMode, listMode, writeMode bool) error {
	var (
		data []byte
		err  error
		ext  string
	)

	if arg == "-" {
		data, err = io.ReadAll(os.Stdin)
		ext = format.DefaultExtension()
	} else {
		data, err = os.ReadFile(arg)
		ext = strings.TrimPrefix(filepath.Ext(arg), ".")

		if ext == "" {
			ext = format.DefaultExtension()
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %w", format.ErrReadInput, err)
	}

	entry, ok := format.Lookup(ext)
	if !ok {
		return fmt.Errorf("%w: %s", format.ErrUnknownExtension, ext)
	}

	v, err := entry.Parse(string(data))
	if err != nil {
		return err
	}

	var out string
	if ext == "json" {
		out = writer.WriteStrict(v)
	} else {
		out = writer.WriteXJS(v, cfg.Options())
	}

	out += "\n"

	slog.Debug("formatted", slog.String("input", arg), slog.Int("bytes", len(out)))

	changed := out != string(data)

	switch {
	case diffMode:
		if changed && arg != "-" {
			fmt.Printf("--- %s\n+++ %s\n", arg, arg)
			printDiff(string(data), out)
		}
	case listMode:
		if changed && arg != "-" {
			fmt.Println(arg)
		}
	case writeMode && arg != "-":
		if !changed {
			return nil
		}

		if err := os.WriteFile(arg, []byte(out), 0o644); err != nil {
			return fmt.Errorf("%w: %w", format.ErrWriteOutput, err)
		}
	default:
		if _, err := os.Stdout.WriteString(out); err != nil {
			return fmt.Errorf("%w: %w", format.ErrWriteOutput, err)
		}
	}

	return nil
}

// printDiff prints a simple unified-style line diff between the original
// document text and its reformatted form. A trivia-preserving rewrite
// usually touches only delimiter and spacing lines, so a bounded resync
// window is enough; this makes no attempt at a minimal diff.
func printDiff(before, after string) {
	src := strings.Split(before, "\n")
	dst := strings.Split(after, "\n")

	i, j := 0, 0

	for i < len(src) || j < len(dst) {
		switch {
		case i >= len(src):
			fmt.Printf("+%s\n", dst[j])

			j++

		case j >= len(dst):
			fmt.Printf("-%s\n", src[i])

			i++

		case src[i] == dst[j]:
			fmt.Printf(" %s\n", src[i])

			i++
			j++

		default:
			if skip := resync(src[i:], dst[j]); skip > 0 {
				for k := range skip {
					fmt.Printf("-%s\n", src[i+k])
				}

				i += skip

				continue
			}

			if skip := resync(dst[j:], src[i]); skip > 0 {
				for k := range skip {
					fmt.Printf("+%s\n", dst[j+k])
				}

				j += skip

				continue
			}

			fmt.Printf("-%s\n", src[i])
			fmt.Printf("+%s\n", dst[j])

			i++
			j++
		}
	}
}

// resync returns how many leading lines must be dropped for the head of
// lines to match want, searching a small window, or 0 when no nearby
// match exists and the pair should be emitted as a plain replacement.
func resync(lines []string, want string) int {
	for skip := 1; skip < 5 && skip < len(lines); skip++ {
		if lines[skip] == want {
			return skip
		}
	}

	return 0
}
