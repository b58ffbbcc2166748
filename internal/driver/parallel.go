package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lexkit/internal/diag"
	"lexkit/internal/source"
	"lexkit/internal/trace"
)

// TokenizePath tokenizes a file or, for a directory, every file below it.
func TokenizePath(ctx context.Context, path string, opts Options) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return TokenizeDir(ctx, path, opts)
	}
	return Tokenize(ctx, path, opts)
}

// ListFiles returns the regular files below dir in sorted order. Hidden
// files and directories are skipped.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every file below dir in parallel. Results keep the
// sorted path order regardless of completion order.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*Result, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize-dir")
	defer span.End("")

	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	bag := newBag(opts)
	if len(files) == 0 {
		return &Result{FileSet: fileSet, Bag: bag}, nil
	}

	tokenizers, err := newTokenizerSet(opts)
	if err != nil {
		return nil, err
	}

	// FileSet is not safe for concurrent use, so every file is loaded up front.
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	_ = track(opts.Timer, "load", func() error {
		ls, _ := trace.StartSpan(ctx, trace.ScopePass, "load")
		defer ls.End(fmt.Sprintf("%d files", len(files)))
		for i, path := range files {
			id, err := fileSet.Load(path, source.LoadOptions{NFC: opts.NFC})
			if err != nil {
				// keep a placeholder so the diagnostic has a file to point at
				id = fileSet.AddVirtual(path, nil)
				loadErrs[i] = err
			}
			ids[i] = id
			opts.Observer.emit(Event{File: fileSet.Get(id).Path, Status: StatusQueued})
		}
		return nil
	})

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))
	bags := make([]*diag.Bag, len(files))

	err = track(opts.Timer, "tokenize", func() error {
		ts, wctx := trace.StartSpan(ctx, trace.ScopePass, "tokenize")
		defer ts.End("")

		g, gctx := errgroup.WithContext(wctx)
		g.SetLimit(min(jobs, len(files)))
		for i := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				file := fileSet.Get(ids[i])
				bags[i] = newBag(opts)
				if loadErrs[i] != nil {
					results[i] = FileResult{Path: file.Path, FileID: file.ID, Err: loadErrs[i]}
					bags[i].Add(diag.NewError(diag.IOLoadFileError, diag.Location{File: file.ID}, loadErrs[i].Error()))
					opts.Observer.emit(Event{File: file.Path, Status: StatusError})
					return nil
				}
				results[i] = tokenizeFile(gctx, file, tokenizers, opts, bags[i])
				return nil
			})
		}
		return g.Wait()
	})
	if err != nil {
		return nil, err
	}

	for _, b := range bags {
		if b != nil {
			bag.Merge(b)
		}
	}
	bag.Sort()

	span.WithExtra("files", fmt.Sprint(len(files)))
	return &Result{FileSet: fileSet, Files: results, Bag: bag}, nil
}
