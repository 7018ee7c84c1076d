// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"motifhunt/internal/cliutil"
	"motifhunt/internal/config"
	"motifhunt/internal/engine"
	"motifhunt/internal/fasta"
	"motifhunt/internal/logging"
	"motifhunt/internal/metrics"
	"motifhunt/internal/motif"
	"motifhunt/internal/output"
	"motifhunt/internal/pipeline"
	"motifhunt/internal/writers"
)

// Version is set at build time with -ldflags "-X motifhunt/internal/app.Version=…".
var Version = "dev"

// Exit codes.
const (
	ExitOK        = 0
	ExitNoMatch   = 1 // default for --no-match-exit-code
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// exitError carries an exit code out of a cobra RunE. err may be nil when
// the code alone is the result.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error { return &exitError{code: ExitUsage, err: err} }

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(argv, stdout, stderr)
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(parent)
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(stderr, "error:", ee.err)
		}
		return ee.code
	}
	// flag and argument errors from cobra itself
	fmt.Fprintln(stderr, "error:", err)
	fmt.Fprintln(stderr, cmd.UsageString())
	return ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// NewRootCmd builds the hunt command tree writing reports to stdout and
// diagnostics to stderr. argv is only echoed into the HTML summary.
func NewRootCmd(argv []string, stdout, stderr io.Writer) *cobra.Command {
	var settingsFile string

	root := &cobra.Command{
		Use:   "hunt [flags] FASTA...",
		Short: "Find approximate motif occurrences in sequence records",
		Long: `Scan FASTA records for motifs allowing a bounded number of mismatches.

Motifs use A C G T, N for any base, (...) for a region that must match
exactly, and [...] for a set of allowed bases at one position. Every motif
is searched on both strands. Use - to read FASTA from stdin.`,
		Example: `  hunt -p 'AC(GT)[AG]N' -l site1 -m 1 genes.fa
  hunt --motif-file motifs.tsv -o json genes.fa.gz
  hunt -p ACGTN -O report genes.fa   # writes report.html and report_summary.html`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return usageErr(err)
			}
			cfg, err := config.Load(v, settingsFile)
			if err != nil {
				return usageErr(err)
			}
			cfg.Inputs, err = cliutil.ExpandInputs(append(cfg.Inputs, args...))
			if err != nil {
				return usageErr(err)
			}
			r := &runner{
				cfg:     cfg,
				cmdline: strings.Join(append([]string{"hunt"}, argv...), " "),
				stdout:  stdout,
				stderr:  stderr,
			}
			return r.run(cmd.Context())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.Flags()
	f.StringVar(&settingsFile, "config", "", "settings file (yaml, toml, or json)")
	addScanFlags(f)

	root.AddCommand(newVersionCmd())
	return root
}

// addScanFlags registers the flags config.Config decodes; names match its
// mapstructure keys.
func addScanFlags(f *pflag.FlagSet) {
	f.StringSliceP("pattern", "p", nil, "motif to search for (repeatable)")
	f.StringSliceP("label", "l", nil, "label for each --pattern, in order")
	f.IntSliceP("pattern-min", "n", nil, "minimum occurrences per record for each --pattern")
	f.String("motif-file", "", "motif list: label pattern [min] per line")
	f.IntP("mismatch", "m", 0, "mismatches allowed outside exact regions")
	f.StringP("output", "o", output.FormatText, "report format: "+strings.Join(writers.Formats(), "|"))
	f.StringP("output-file", "O", "", "write <file>.html and <file>_summary.html instead of stdout")
	f.IntP("threads", "t", 1, "worker goroutines (0 = all CPUs)")
	f.Bool("no-header", false, "omit the TSV header row")
	f.Bool("pretty", false, "text: draw an alignment block under each record")
	f.Int("no-match-exit-code", ExitNoMatch, "exit code when no record matches")
	f.String("log-level", "info", "debug|info|warn|error")
	f.Bool("log-json", false, "log as JSON")
	f.BoolP("quiet", "q", false, "only log warnings and errors")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hunt version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hunt version %s\n", Version)
		},
	}
}

/* ---- run ---- */

type runner struct {
	cfg     config.Config
	cmdline string
	stdout  io.Writer
	stderr  io.Writer
	log     *slog.Logger
}

// sink is one report in progress.
type sink struct {
	in   chan<- engine.Result
	done <-chan error
}

func (r *runner) run(parent context.Context) error {
	cfg := r.cfg
	if err := cfg.Validate(); err != nil {
		return usageErr(err)
	}
	if _, ok := writers.Renderers[cfg.Output]; !ok && cfg.OutputFile == "" {
		return usageErr(fmt.Errorf("unknown --output %q (want %s)", cfg.Output, strings.Join(writers.Formats(), "|")))
	}
	r.log = logging.New(r.stderr, cfg.LogLevel, cfg.LogJSON, cfg.Quiet)

	sc, err := r.scanner()
	if err != nil {
		return err
	}

	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sinks, finish, err := r.openSinks(thr * 4)
	if err != nil {
		return &exitError{code: ExitIO, err: err}
	}

	sum, perr := pipeline.Run(ctx, pipeline.Config{Threads: thr, MaxMismatches: cfg.Mismatch}, cfg.Inputs, sc,
		func(res engine.Result) error {
			for _, s := range sinks {
				select {
				case s.in <- res:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})

	if werr := finish(); werr != nil {
		return &exitError{code: ExitIO, err: werr}
	}

	r.log.Info("scan finished", "records", sum.Records, "matched", sum.Matched, "threads", thr)

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return &exitError{code: ExitCancelled}
		}
		var ie *fasta.InputError
		if errors.As(perr, &ie) {
			r.log.Error("input failed", "path", ie.Path, "records_before", sum.Records)
		}
		return &exitError{code: ExitIO, err: perr}
	}
	if sum.Matched == 0 {
		if cfg.NoMatchExitCode == ExitOK {
			return nil
		}
		return &exitError{code: cfg.NoMatchExitCode}
	}
	return nil
}

// scanner compiles every motif on both strands, forward first, and
// registers them in that order.
func (r *runner) scanner() (*engine.Scanner, error) {
	entries, err := r.cfg.Entries()
	if err != nil {
		return nil, usageErr(err)
	}
	sc := engine.New()
	for _, e := range entries {
		fwd, rev, err := motif.CompileBoth(e.Label, e.Pattern, e.MinOccurrences)
		if err != nil {
			var ge *motif.GrammarError
			if errors.As(err, &ge) {
				return nil, usageErr(fmt.Errorf("%s: %w", e.Label, ge))
			}
			return nil, usageErr(err)
		}
		sc.Register(fwd)
		sc.Register(rev)
		r.log.Debug("motif compiled", "label", e.Label, "pattern", fwd.Pattern(),
			"reverse", rev.Pattern(), "states", fwd.Size(), "min", e.MinOccurrences)
	}
	sc.SetObserver(metrics.New(metrics.SourceCLI))
	return sc, nil
}

// openSinks starts the report writers. With --output-file the highlight and
// summary pages go to files; otherwise the --output format goes to stdout.
// finish closes every sink, flushes, and returns the first write error.
func (r *runner) openSinks(bufSize int) ([]sink, func() error, error) {
	opt := output.Options{Header: !r.cfg.NoHeader, Pretty: r.cfg.Pretty, CommandLine: r.cmdline}

	if r.cfg.OutputFile == "" {
		outw := bufio.NewWriter(r.stdout)
		in, done := writers.StartWriter(outw, r.cfg.Output, opt, bufSize)
		finish := func() error {
			close(in)
			if err := <-done; err != nil {
				return err
			}
			if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
				return err
			}
			return nil
		}
		return []sink{{in: in, done: done}}, finish, nil
	}

	targets := map[string]string{
		output.FormatHTML:    r.cfg.OutputFile + ".html",
		output.FormatSummary: r.cfg.OutputFile + "_summary.html",
	}
	formats := make([]string, 0, len(targets))
	for f := range targets {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	var (
		sinks []sink
		files []*os.File
	)
	closeAll := func() error {
		var first error
		for _, s := range sinks {
			close(s.in)
			if err := <-s.done; err != nil && first == nil {
				first = err
			}
		}
		for _, f := range files {
			if err := f.Close(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	for _, format := range formats {
		f, err := os.Create(targets[format])
		if err != nil {
			_ = closeAll()
			return nil, nil, err
		}
		files = append(files, f)
		in, done := writers.StartWriter(f, format, opt, bufSize)
		sinks = append(sinks, sink{in: in, done: done})
		r.log.Info("writing report", "format", format, "path", targets[format])
	}
	return sinks, closeAll, nil
}
