package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Writer writes generated bindings to disk with parallel execution.
type Writer struct {
	outDir  string
	workers int
}

// NewWriter creates a new writer for the output directory.
func NewWriter(outDir string) *Writer {
	return &Writer{
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Write writes all files of the bindings in parallel.
// It returns the first error; files written before it are kept.
func (w *Writer) Write(ctx context.Context, b *Bindings) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return NewGenerationError("write", w.outDir, "create output directory", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range b.Files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}
	return eg.Wait()
}

// writeFile formats and writes a single file.
func (w *Writer) writeFile(f *File) error {
	path := filepath.Join(w.outDir, f.Name)
	// goimports sorts and groups the imports added by jennifer.
	formatted, err := imports.Process(path, f.Content, nil)
	if err != nil {
		// Write unformatted file for debugging (errors intentionally ignored as we're already in error state)
		debugPath := path + ".error"
		_ = os.WriteFile(debugPath, f.Content, 0o644)
		return NewGenerationError("write", f.Name, "format (unformatted written to "+debugPath+")", err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return NewGenerationError("write", f.Name, "", err)
	}
	return nil
}

// Write is the convenience function to write bindings to the target
// directory of the config.
func Write(ctx context.Context, b *Bindings, cfg *Config) error {
	if cfg == nil || cfg.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	return NewWriter(cfg.Target).Write(ctx, b)
}
