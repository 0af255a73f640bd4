package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"filemerge/internal/manifest"
	"filemerge/pkg/merge"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	output    string
	separator string
	padBefore string
	padAfter  string

	forceNewline bool
	crlf         bool

	skipStartBytes int
	skipStartLines int
	skipEndBytes   int
	skipEndLines   int
	keepFirstHead  bool
	keepLastTail   bool

	forceTTY bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "filemerge [flags] FILE...",
	Short: "Merge files into one output stream",
	Long: `filemerge concatenates the given files in order into one output stream.

Each file can be trimmed (skip bytes or lines from its start or end) and the
seams between files can be padded with literal bytes. Escape sequences like
\n and \t are decoded in --separator, --pad-before and --pad-after.

Typical use, merging logs while keeping the shared header only once:

  filemerge --skip-start-lines 1 --keep-first-head -o merged.log a.log b.log`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(args)
		if err != nil {
			return err
		}
		return writeResult(cfg, output)
	},
}

var manifestCmd = &cobra.Command{
	Use:   "manifest FILE",
	Short: "Run a merge described by a YAML manifest",
	Long: `Run a merge described by a YAML manifest.

A manifest gives full per-unit control (individual trim rules, padding and
newline settings) that the uniform root-command flags cannot express.
--output overrides the manifest's output; without either, the result goes
to stdout.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		cfg, err := m.Config()
		if err != nil {
			return fmt.Errorf("manifest %s: %w", args[0], err)
		}
		dest := output
		if dest == "" {
			dest = m.Output
		}
		return writeResult(cfg, dest)
	},
}

// configFromFlags builds the unit descriptors for the root command: one unit
// per file argument, all sharing the flag-provided settings.
func configFromFlags(paths []string) (merge.Config, error) {
	if skipStartBytes != 0 && skipStartLines != 0 {
		return merge.Config{}, fmt.Errorf("--skip-start-bytes and --skip-start-lines are mutually exclusive")
	}
	if skipEndBytes != 0 && skipEndLines != 0 {
		return merge.Config{}, fmt.Errorf("--skip-end-bytes and --skip-end-lines are mutually exclusive")
	}

	sep, err := unescape(separator)
	if err != nil {
		return merge.Config{}, err
	}
	before, err := unescape(padBefore)
	if err != nil {
		return merge.Config{}, err
	}
	after, err := unescape(padAfter)
	if err != nil {
		return merge.Config{}, err
	}

	var skipStart, skipEnd merge.Skip
	switch {
	case skipStartBytes != 0:
		skipStart = merge.SkipBytes(skipStartBytes)
	case skipStartLines != 0:
		skipStart = merge.SkipLines(skipStartLines)
	}
	switch {
	case skipEndBytes != 0:
		skipEnd = merge.SkipBytes(skipEndBytes)
	case skipEndLines != 0:
		skipEnd = merge.SkipLines(skipEndLines)
	}

	cfg := merge.Config{ForceNewline: forceNewline}
	if crlf {
		cfg.Newline = merge.CRLF
	}
	if sep != "" {
		cfg.Separator = []byte(sep)
	}
	for i, path := range paths {
		u := merge.Unit{
			Source:    merge.File(path),
			SkipStart: skipStart,
			SkipEnd:   skipEnd,
		}
		if keepFirstHead && i == 0 {
			u.SkipStart = merge.Skip{}
		}
		if keepLastTail && i == len(paths)-1 {
			u.SkipEnd = merge.Skip{}
		}
		cfg.Units = append(cfg.Units, u)
	}
	if before != "" {
		cfg.Units[0].PadBefore = []byte(before)
	}
	if after != "" {
		cfg.Units[len(cfg.Units)-1].PadAfter = []byte(after)
	}
	return cfg, nil
}

// unescape decodes backslash escape sequences (\n, \t, \xNN, ...) so
// separators and padding can be given on the command line.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	out, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape sequence in %q: %w", s, err)
	}
	return out, nil
}

func writeResult(cfg merge.Config, dest string) error {
	if dest != "" {
		if err := merge.MergeToFile(cfg, dest); err != nil {
			return err
		}
		slog.Debug("merge written", "units", len(cfg.Units), "output", dest)
		return nil
	}

	if !forceTTY && term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write merged bytes to a terminal; use --output or --force-tty")
	}
	out, err := merge.Merge(cfg)
	if err != nil {
		return err
	}
	slog.Debug("merge assembled", "units", len(cfg.Units), "bytes", len(out))
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Write the merged result to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&forceTTY, "force-tty", false, "Allow writing merged bytes to a terminal")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.Flags().StringVar(&separator, "separator", "", "Bytes inserted between adjacent files")
	rootCmd.Flags().StringVar(&padBefore, "pad-before", "", "Bytes written before the first file")
	rootCmd.Flags().StringVar(&padAfter, "pad-after", "", "Bytes written after the last file")
	rootCmd.Flags().BoolVarP(&forceNewline, "newline", "n", false, "Ensure every file's content ends with a newline")
	rootCmd.Flags().BoolVar(&crlf, "crlf", false, "Append \\r\\n instead of \\n when --newline fires")
	rootCmd.Flags().IntVar(&skipStartBytes, "skip-start-bytes", 0, "Skip this many bytes from the start of every file")
	rootCmd.Flags().IntVar(&skipStartLines, "skip-start-lines", 0, "Skip this many lines from the start of every file")
	rootCmd.Flags().IntVar(&skipEndBytes, "skip-end-bytes", 0, "Skip this many bytes from the end of every file")
	rootCmd.Flags().IntVar(&skipEndLines, "skip-end-lines", 0, "Skip this many lines from the end of every file")
	rootCmd.Flags().BoolVar(&keepFirstHead, "keep-first-head", false, "Do not apply the start skip to the first file")
	rootCmd.Flags().BoolVar(&keepLastTail, "keep-last-tail", false, "Do not apply the end skip to the last file")

	rootCmd.AddCommand(manifestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
