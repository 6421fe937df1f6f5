// Package main is godiff, a line-granularity diff(1) workalike built on
// modules/diferenco.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/linediff/godiff/modules/cliconfig"
	"github.com/linediff/godiff/modules/diferenco"
	"github.com/linediff/godiff/modules/pager"
)

// flags mirrors spec.md §6's CLI surface table; it is translated into a
// diferenco.Config once parsing is done rather than threaded through the
// engine directly, per the Config-over-globals redesign note.
type flags struct {
	algorithm string

	ignoreCase           bool
	ignoreAllSpace        bool
	ignoreSpaceChange     bool
	ignoreTrailingSpace   bool
	ignoreTabExpansion    bool
	ignoreBlankLines      bool
	ignoreMatchingLines   string

	text     bool
	minimal  bool
	speedLargeFiles bool

	contextFlag bool
	unifiedFlag bool
	edFlag      bool
	forwardEdFlag bool
	rcsFlag     bool
	ifdefName   string
	sdiffFlag   bool
	lines       int

	horizonLines    int
	stripTrailingCR bool

	functionHeader string
	posixFunctionHeader bool

	labels []string

	expandTabs bool
	initialTab bool

	brief                bool
	reportIdenticalFiles bool

	color   string
	palette string

	paginate bool

	verbose bool
}

func main() {
	var f flags
	root := &cobra.Command{
		Use:   "godiff OLDFILE NEWFILE",
		Short: "Compare two files line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindFlags(root, &f)

	if err := root.Execute(); err != nil {
		if coder, ok := err.(diferenco.ExitCoder); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(diferenco.ExitTrouble)
	}
}

func bindFlags(cmd *cobra.Command, f *flags) {
	fs := cmd.Flags()
	fs.StringVar(&f.algorithm, "diff-algorithm", "", "core differ to use: myers, onp, histogram, patience, minimal")

	fs.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "ignore case differences")
	fs.BoolVarP(&f.ignoreAllSpace, "ignore-all-space", "w", false, "ignore all white space")
	fs.BoolVarP(&f.ignoreSpaceChange, "ignore-space-change", "b", false, "ignore changes in amount of white space")
	fs.BoolVarP(&f.ignoreTrailingSpace, "ignore-trailing-space", "Z", false, "ignore white space at line end")
	fs.BoolVarP(&f.ignoreTabExpansion, "ignore-tab-expansion", "E", false, "ignore changes due to tab expansion")
	fs.BoolVarP(&f.ignoreBlankLines, "ignore-blank-lines", "B", false, "ignore changes whose lines are all blank")
	fs.StringVarP(&f.ignoreMatchingLines, "ignore-matching-lines", "I", "", "ignore changes whose lines all match RE")

	fs.BoolVarP(&f.text, "text", "a", false, "treat all files as text")
	fs.BoolVarP(&f.minimal, "minimal", "d", false, "try hard to find a smaller set of changes")
	fs.BoolVarP(&f.speedLargeFiles, "speed-large-files", "H", false, "assume large files and many scattered small changes")

	fs.BoolVarP(&f.contextFlag, "context", "c", false, "context output format")
	fs.BoolVarP(&f.unifiedFlag, "unified", "u", false, "unified output format")
	fs.BoolVarP(&f.edFlag, "ed-script", "e", false, "ed script output format")
	fs.BoolVarP(&f.forwardEdFlag, "forward-ed", "f", false, "forward ed script output format")
	fs.BoolVarP(&f.rcsFlag, "rcs", "n", false, "RCS output format")
	fs.StringVarP(&f.ifdefName, "ifdef", "D", "", "output merged file with #ifdef NAME")
	fs.BoolVarP(&f.sdiffFlag, "side-by-side", "y", false, "emit the sdiff-assist stream")
	fs.IntVarP(&f.lines, "lines", "U", -1, "lines of context (also -C)")
	fs.IntVarP(&f.lines, "context-lines", "C", -1, "lines of context (alias of -U)")

	fs.IntVar(&f.horizonLines, "horizon-lines", 0, "keep N extra lines for shifting hunk boundaries")
	fs.BoolVar(&f.stripTrailingCR, "strip-trailing-cr", false, "strip trailing carriage return on input lines")

	fs.StringVarP(&f.functionHeader, "show-function-line", "F", "", "show the most recent line matching RE in a hunk's header")
	fs.BoolVarP(&f.posixFunctionHeader, "show-c-function", "p", false, "show which C function each change is in")

	fs.StringSliceVar(&f.labels, "label", nil, "use LABEL instead of the file name and timestamp (up to two uses)")

	fs.BoolVarP(&f.expandTabs, "expand-tabs", "t", false, "expand tabs to spaces in output")
	fs.BoolVarP(&f.initialTab, "initial-tab", "T", false, "use a tab, not spaces, to separate marker from text")

	fs.BoolVarP(&f.brief, "brief", "q", false, "report only when files differ")
	fs.BoolVarP(&f.reportIdenticalFiles, "report-identical-files", "s", false, "report when two files are identical")

	fs.StringVar(&f.color, "color", "auto", "colorize output: never, auto, always")
	fs.StringVar(&f.palette, "palette", "", "override default color palette")

	fs.BoolVar(&f.paginate, "paginate", false, "pipe output through a pager (PR_PAGER, PAGER, or pr)")

	fs.BoolVarP(&f.verbose, "verbose", "V", false, "make the operation more talkative")
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	nameA, nameB := args[0], args[1]
	dataA, err := os.ReadFile(nameA)
	if err != nil {
		return &diferenco.FatalError{Name: "godiff", Err: err}
	}
	dataB, err := os.ReadFile(nameB)
	if err != nil {
		return &diferenco.FatalError{Name: "godiff", Err: err}
	}

	cfg, err := buildConfig(f, nameA)
	if err != nil {
		return &diferenco.FatalError{Name: "godiff", Err: err}
	}
	if statA, err := os.Stat(nameA); err == nil {
		cfg.ModTime[0] = statA.ModTime()
	}
	if statB, err := os.Stat(nameB); err == nil {
		cfg.ModTime[1] = statB.ModTime()
	}

	result, err := diferenco.Diff(context.Background(), nameA, dataA, nameB, dataB, cfg)
	if err != nil {
		return &diferenco.FatalError{Name: "godiff", Err: err}
	}

	if result.Identical() {
		if cfg.ReportIdenticalFiles {
			fmt.Printf("Files %s and %s are identical\n", nameA, nameB)
		}
		return exitCode(diferenco.ExitIdentical)
	}
	if cfg.Brief {
		fmt.Printf("Files %s and %s differ\n", nameA, nameB)
		return exitCode(diferenco.ExitDifferent)
	}

	out, err := render(result, f)
	if err != nil {
		return &diferenco.FatalError{Name: "godiff", Err: err}
	}

	p := pager.Launch(cmd.Context(), f.paginate)
	stop := pager.TrapSignals(func() {
		_ = p.Close()
	})
	defer stop()

	if _, err := fmt.Fprint(p.Writer(), out); err != nil {
		_ = p.Close()
		return &diferenco.FatalError{Name: "godiff", Err: err}
	}
	if err := p.Close(); err != nil {
		return &diferenco.FatalError{Name: "godiff", Err: err}
	}
	return exitCode(diferenco.ExitDifferent)
}

func buildConfig(f *flags, nameA string) (*diferenco.Config, error) {
	rc, err := cliconfig.Load(".")
	if err != nil {
		return nil, err
	}

	cfg := &diferenco.Config{}
	applyRCFile(cfg, rc)

	algorithmName := f.algorithm
	if algorithmName == "" {
		algorithmName = rc.Algorithm
	}
	algo, err := diferenco.AlgorithmFromName(algorithmName)
	if err != nil {
		return nil, err
	}
	cfg.Algorithm = algo

	cfg.IgnoreCase = cfg.IgnoreCase || f.ignoreCase
	cfg.IgnoreWhiteSpace = resolveWhiteSpace(f)
	cfg.IgnoreBlankLines = cfg.IgnoreBlankLines || f.ignoreBlankLines

	if f.ignoreMatchingLines != "" {
		re, err := diferenco.CompileIgnoreRegexp(f.ignoreMatchingLines)
		if err != nil {
			return nil, err
		}
		cfg.IgnoreMatchingLines = re
	}

	cfg.Text = f.text
	cfg.Minimal = f.minimal
	cfg.SpeedLargeFiles = f.speedLargeFiles
	if f.horizonLines > 0 {
		cfg.HorizonLines = f.horizonLines
	}
	cfg.StripTrailingCR = f.stripTrailingCR
	cfg.ExpandTabs = f.expandTabs
	cfg.InitialTab = f.initialTab
	cfg.Brief = f.brief
	cfg.ReportIdenticalFiles = f.reportIdenticalFiles

	if f.lines >= 0 {
		cfg.Context = f.lines
	} else if rc.Context == 0 {
		cfg.Context = diferenco.DefaultContextLines
	}

	pattern := f.functionHeader
	if f.posixFunctionHeader && pattern == "" {
		pattern = `^[A-Za-z_$]`
	}
	if pattern != "" {
		re, err := diferenco.CompileIgnoreRegexp(pattern)
		if err != nil {
			return nil, err
		}
		cfg.FunctionHeader = re
	}

	for i, l := range f.labels {
		if i > 1 {
			break
		}
		cfg.Labels[i] = l
	}

	switch f.color {
	case "always":
		cfg.Color = diferenco.ColorAlways
	case "never":
		cfg.Color = diferenco.ColorNever
	default:
		cfg.Color = diferenco.ColorAuto
	}
	if f.palette != "" {
		cfg.Palette = f.palette
	}

	if f.verbose {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return cfg, nil
}

func applyRCFile(cfg *diferenco.Config, rc *cliconfig.File) {
	cfg.IgnoreCase = rc.IgnoreCase
	cfg.IgnoreBlankLines = rc.IgnoreBlankLines
	cfg.TabSize = rc.TabSize
	cfg.Context = rc.Context
	cfg.HorizonLines = rc.HorizonLines
	cfg.Palette = rc.Palette
}

func resolveWhiteSpace(f *flags) diferenco.WhiteSpace {
	switch {
	case f.ignoreAllSpace:
		return diferenco.IgnoreAllSpace
	case f.ignoreSpaceChange:
		return diferenco.IgnoreSpaceChange
	case f.ignoreTabExpansion && f.ignoreTrailingSpace:
		return diferenco.IgnoreTabExpansionAndTrailingSpace
	case f.ignoreTrailingSpace:
		return diferenco.IgnoreTrailingSpace
	case f.ignoreTabExpansion:
		return diferenco.IgnoreTabExpansion
	default:
		return diferenco.IgnoreNoWhiteSpace
	}
}

func render(r *diferenco.Result, f *flags) (string, error) {
	switch {
	case f.contextFlag:
		return diferenco.FormatContext(r)
	case f.unifiedFlag:
		return diferenco.FormatUnified(r)
	case f.edFlag:
		return diferenco.FormatEd(r)
	case f.forwardEdFlag:
		return diferenco.FormatForwardEd(r)
	case f.rcsFlag:
		return diferenco.FormatRCS(r)
	case f.ifdefName != "":
		return diferenco.FormatIfdef(r, diferenco.IfdefOptions{MacroName: f.ifdefName})
	case f.sdiffFlag:
		return diferenco.FormatSdiffAssist(r)
	default:
		return diferenco.FormatNormal(r)
	}
}

// exitCode turns a plain diff(1) exit status into the error godiff's
// main() inspects for os.Exit, so normal control flow never calls
// os.Exit directly from inside run().
func exitCode(code int) error {
	if code == diferenco.ExitIdentical {
		return nil
	}
	return &statusError{code: code}
}

type statusError struct{ code int }

func (e *statusError) Error() string { return "" }
func (e *statusError) ExitCode() int { return e.code }
