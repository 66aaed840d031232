// Package runner sorts a batch of files on a bounded worker pool.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/twsort/internal/report"
	"github.com/grindlemire/twsort/internal/sorter"
	"github.com/grindlemire/twsort/internal/walk"
)

// Mode selects what happens to sorted content.
type Mode int

const (
	// ModeConsole prints sorted content to the output.
	ModeConsole Mode = iota
	// ModeDryRun lists the files that would change.
	ModeDryRun
	// ModeWrite rewrites changed files in place.
	ModeWrite
	// ModeCheck lists the files that would change and fails if there are any.
	ModeCheck
)

func (m Mode) String() string {
	switch m {
	case ModeConsole:
		return "console"
	case ModeDryRun:
		return "dry-run"
	case ModeWrite:
		return "write"
	case ModeCheck:
		return "check"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Banner returns the line printed before any file in this mode.
func (m Mode) Banner() string {
	switch m {
	case ModeDryRun:
		return report.BannerDryRun
	case ModeWrite:
		return report.BannerWrite
	case ModeCheck:
		return report.BannerCheck
	default:
		return report.BannerConsole
	}
}

// binarySniffLen is how much of a file is checked for NUL bytes.
const binarySniffLen = 8000

// Options configures a Runner.
type Options struct {
	Mode Mode
	// Workers bounds the number of files processed at once
	// (default: runtime.GOMAXPROCS(0)).
	Workers int
	// WarnUnknown logs every class that matches no table entry.
	WarnUnknown bool
}

// Runner applies a sorter to files.
type Runner struct {
	sorter *sorter.Sorter
	logger *zap.Logger
	opts   Options
}

// New creates a Runner. A nil logger discards log output.
func New(s *sorter.Sorter, logger *zap.Logger, opts Options) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{sorter: s, logger: logger, opts: opts}
}

// Result is the outcome for one file.
type Result struct {
	File walk.File
	// Skipped is set for files without class lists and for binary files.
	Skipped bool
	// Changed indicates the sorted content differs from the file.
	Changed bool
	// Content is the sorted content, kept only in console mode.
	Content string
	// Unknown lists classes that matched no table entry.
	Unknown []string
	Err     error
}

// Run processes files and returns one result per file, in the order of
// files. Per-file failures are recorded in the results and logged; they do
// not stop the batch. If ctx is cancelled, files not yet started are left
// untouched, their results carry the context error, and Run returns it.
func (r *Runner) Run(ctx context.Context, files []walk.File) ([]Result, error) {
	results := make([]Result, len(files))
	for i, f := range files {
		results[i].File = f
	}

	var g errgroup.Group
	g.SetLimit(r.opts.Workers)

	for i := range files {
		if err := ctx.Err(); err != nil {
			r.cancelFrom(results, i, err)
			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			r.processFile(&results[i])
			return nil
		})
	}

	// Workers never return errors; failures live in the results.
	_ = g.Wait()

	return results, ctx.Err()
}

func (r *Runner) cancelFrom(results []Result, start int, err error) {
	for i := start; i < len(results); i++ {
		results[i].Err = err
	}
}

// processFile sorts one file and, in write mode, saves it.
func (r *Runner) processFile(res *Result) {
	path := res.File.Path
	logger := r.logger.With(zap.String("path", path))

	source, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("reading file: %w", err)
		logger.Error("cannot read file", zap.Error(err))
		return
	}

	if isBinary(source) {
		logger.Debug("skipping binary file")
		res.Skipped = true
		return
	}

	content := string(source)
	if !r.sorter.HasClasses(content) {
		logger.Debug("no class lists found")
		res.Skipped = true
		return
	}

	sorted := r.sorter.SortWithResult(content)
	res.Changed = sorted.Changed
	res.Unknown = sorted.Unknown
	logger.Debug("sorted file",
		zap.Int("spans", sorted.Spans),
		zap.Bool("changed", sorted.Changed),
	)

	if r.opts.WarnUnknown {
		r.warnUnknown(logger, sorted.Unknown)
	}

	switch r.opts.Mode {
	case ModeConsole:
		res.Content = sorted.Content
	case ModeWrite:
		if !sorted.Changed {
			return
		}
		if err := os.WriteFile(path, []byte(sorted.Content), 0644); err != nil {
			res.Err = fmt.Errorf("writing file: %w", err)
			logger.Error("unable to save file", zap.Error(err))
		}
	}
}

func (r *Runner) warnUnknown(logger *zap.Logger, classes []string) {
	for _, class := range classes {
		fields := []zap.Field{zap.String("class", class)}
		if suggestion := r.sorter.Table.Suggest(class); suggestion != "" {
			fields = append(fields, zap.String("suggestion", suggestion))
		}
		logger.Warn("unknown class", fields...)
	}
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data[:min(len(data), binarySniffLen)], 0) >= 0
}

// Print reports the results for the mode and returns the run summary.
func Print(p *report.Printer, mode Mode, results []Result) report.Summary {
	p.Banner(mode.Banner())

	var sum report.Summary
	for _, res := range results {
		switch {
		case res.Err != nil:
			sum.Errors++
			continue
		case res.Skipped:
			continue
		}

		sum.Files++
		if res.Changed {
			sum.Changed++
		}

		switch mode {
		case ModeConsole:
			p.Contents(res.Content)
		default:
			if res.Changed {
				p.File(res.File.Rel)
			}
		}
	}

	if mode != ModeConsole {
		p.Summary(sum)
	}
	return sum
}

// Check returns an error describing a failed run: any per-file error, or,
// in check mode, any file that is not sorted.
func Check(mode Mode, sum report.Summary) error {
	if sum.Errors > 0 {
		return fmt.Errorf("%d file(s) had errors", sum.Errors)
	}
	if mode == ModeCheck && sum.Changed > 0 {
		return fmt.Errorf("%d file(s) not sorted", sum.Changed)
	}
	return nil
}
