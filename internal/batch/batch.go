// SPDX-License-Identifier: EPL-2.0

// Package batch renders a range of piano notes into an output directory.
package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/pianogen"
	"github.com/ik5/pianogen/pitch"
)

// Options configures a batch run. The zero value of Lowest and Highest is
// not a valid range; use DefaultOptions as a starting point.
type Options struct {
	OutputDir string
	Lowest    int
	Highest   int
	Workers   int  // <= 0 means GOMAXPROCS
	Manifest  bool // write manifest.yaml after all notes succeed
	Verify    bool // re-read every file with an independent decoder

	Renderer *pianogen.Renderer // nil means pianogen.DefaultRenderer
	Logger   *log.Logger        // nil means log.Default
}

// DefaultOptions covers the full C1..C7 range.
func DefaultOptions(outputDir string) Options {
	return Options{
		OutputDir: outputDir,
		Lowest:    pitch.Lowest,
		Highest:   pitch.Highest,
		Manifest:  true,
		Verify:    true,
	}
}

// FileResult describes one written note file.
type FileResult struct {
	Note  pitch.Note
	Path  string
	Bytes int
}

// Summary lists the written files in keyboard order.
type Summary struct {
	Files      []FileResult
	TotalBytes int64
	Manifest   string // path of manifest.yaml, empty when not written
}

// Run renders every note in [opts.Lowest, opts.Highest] to opts.OutputDir.
// The range is checked before anything touches the filesystem. The first
// failure cancels notes not yet started and is returned; files already
// written stay in place.
func Run(ctx context.Context, opts Options) (Summary, error) {
	notes, err := pitch.Range(opts.Lowest, opts.Highest)
	if err != nil {
		return Summary{}, err
	}

	r := opts.Renderer
	if r == nil {
		r = pianogen.DefaultRenderer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	start := time.Now()
	results := make([]FileResult, len(notes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, n := range notes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := renderNote(r, n, opts.OutputDir, opts.Verify)
			if err != nil {
				return err
			}

			results[i] = res
			logger.Printf("wrote %s [%d] %s (%d bytes)", res.Path, n.Index, n, res.Bytes)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Files: results}
	for _, res := range results {
		summary.TotalBytes += int64(res.Bytes)
	}

	if opts.Manifest {
		path := filepath.Join(opts.OutputDir, ManifestName)
		if err := WriteManifest(path, NewManifest(r.Params(), results)); err != nil {
			return Summary{}, err
		}
		summary.Manifest = path
	}

	logger.Printf("generated %d notes (%s..%s) in %s, %d bytes total",
		len(results), notes[0].Label(), notes[len(notes)-1].Label(),
		time.Since(start).Round(time.Millisecond), summary.TotalBytes)

	return summary, nil
}

func renderNote(r *pianogen.Renderer, n pitch.Note, dir string, verify bool) (FileResult, error) {
	data, err := r.Render(n)
	if err != nil {
		return FileResult{}, err
	}

	path := filepath.Join(dir, pianogen.FileName(n))
	if err := WriteFile(path, data); err != nil {
		return FileResult{}, err
	}

	if verify {
		if err := VerifyFile(path, r.Params()); err != nil {
			return FileResult{}, err
		}
	}

	return FileResult{Note: n, Path: path, Bytes: len(data)}, nil
}
