package driver

import (
	"context"
	"errors"
	"fmt"

	"lexkit/internal/diag"
	"lexkit/internal/dialect"
	"lexkit/internal/lexer"
	"lexkit/internal/observ"
	"lexkit/internal/source"
	"lexkit/internal/token"
	"lexkit/internal/trace"
)

// Options configure a tokenize run.
type Options struct {
	Dialect        dialect.Kind // Unknown detects the dialect per file
	Config         dialect.Config
	Jobs           int // <= 0 uses GOMAXPROCS
	MaxDiagnostics int
	NFC            bool
	Cache          *Cache        // nil disables caching
	Timer          *observ.Timer // optional
	Observer       Observer      // optional
}

// FileResult is the outcome for one file. Tokens may be shared with the
// cache and must not be modified.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Dialect dialect.Kind
	Tokens  []token.Token
	Cached  bool
	Err     error
}

// Result holds every file of a run in path order.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Bag     *diag.Bag
}

// Failed reports whether any file could not be tokenized.
func (r *Result) Failed() bool {
	for i := range r.Files {
		if r.Files[i].Err != nil {
			return true
		}
	}
	return false
}

// Tokenize scans a single file.
func Tokenize(ctx context.Context, path string, opts Options) (*Result, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize")
	defer span.End("")

	fs := source.NewFileSet()
	var id source.FileID
	err := track(opts.Timer, "load", func() error {
		var err error
		id, err = fs.Load(path, source.LoadOptions{NFC: opts.NFC})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	tokenizers, err := newTokenizerSet(opts)
	if err != nil {
		return nil, err
	}

	bag := newBag(opts)
	var res FileResult
	_ = track(opts.Timer, "tokenize", func() error {
		res = tokenizeFile(ctx, fs.Get(id), tokenizers, opts, bag)
		return res.Err
	})
	return &Result{FileSet: fs, Files: []FileResult{res}, Bag: bag}, nil
}

// tokenizeFile resolves the dialect, consults the cache and scans. Failures
// are recorded in bag and in the result, never returned.
func tokenizeFile(ctx context.Context, file *source.File, tokenizers *tokenizerSet, opts Options, bag *diag.Bag) FileResult {
	span, ctx := trace.StartSpan(ctx, trace.ScopeFile, "file:"+file.Path)
	res := FileResult{Path: file.Path, FileID: file.ID}
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	loc := diag.Location{File: file.ID}
	opts.Observer.emit(Event{File: file.Path, Status: StatusWorking})

	content := file.Text()
	res.Dialect = opts.Dialect
	if res.Dialect == dialect.Unknown {
		det := dialect.Detect(file.Path, content)
		res.Dialect = det.Kind
		span.WithExtra("detected", fmt.Sprintf("%.2f", det.Classification.Confidence))
	}
	span.WithExtra("dialect", res.Dialect.String())

	key := CacheKey(file.Hash, opts.Config.Fingerprint(res.Dialect))
	if opts.Cache != nil {
		cs, _ := trace.StartSpan(ctx, trace.ScopeToken, "cache:get")
		tokens, ok, err := opts.Cache.Get(key)
		cs.End(fmt.Sprintf("hit=%t", ok))
		if err != nil {
			diag.ReportWarning(rep, diag.IOCacheError, loc, err.Error()).Emit()
		}
		if ok {
			res.Tokens, res.Cached = tokens, true
		}
	}

	if !res.Cached {
		tokens, err := tokenizers.get(res.Dialect).TokenizeBuffer(content)
		if err != nil {
			res.Err = err
			d := errorDiagnostic(err, file.ID)
			rep.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
		} else {
			res.Tokens = tokens
			if opts.Cache != nil {
				payload := &DiskPayload{
					Schema:      diskCacheSchemaVersion,
					Dialect:     res.Dialect.String(),
					Fingerprint: opts.Config.Fingerprint(res.Dialect),
					ContentHash: file.Hash,
					Tokens:      tokens,
				}
				if err := opts.Cache.Put(key, payload); err != nil {
					diag.ReportWarning(rep, diag.IOCacheError, loc, err.Error()).
						WithNote(loc, "tokens were returned but not cached").
						Emit()
				}
			}
		}
	}

	status := StatusDone
	detail := ""
	if res.Err != nil {
		status = StatusError
		detail = res.Err.Error()
	}
	span.WithExtra("tokens", fmt.Sprint(len(res.Tokens))).WithExtra("cached", fmt.Sprint(res.Cached)).End(detail)
	opts.Observer.emit(Event{File: file.Path, Status: status, Dialect: res.Dialect, Cached: res.Cached, Tokens: len(res.Tokens)})
	return res
}

// errorDiagnostic converts a scan error into a diagnostic for file.
func errorDiagnostic(err error, file source.FileID) diag.Diagnostic {
	var te *lexer.TokenizeError
	if errors.As(err, &te) {
		return te.Diagnostic(file)
	}
	return diag.NewError(diag.UnknownCode, diag.Location{File: file}, err.Error())
}

const defaultMaxDiagnostics = 100

func newBag(opts Options) *diag.Bag {
	if opts.MaxDiagnostics <= 0 {
		return diag.NewBag(defaultMaxDiagnostics)
	}
	return diag.NewBag(opts.MaxDiagnostics)
}

func track(t *observ.Timer, name string, fn func() error) error {
	if t == nil {
		return fn()
	}
	return t.Track(name, fn)
}

// tokenizerSet holds one configured tokenizer per dialect in use. It is
// built before workers start and read-only afterwards.
type tokenizerSet struct {
	byKind map[dialect.Kind]dialect.Tokenizer
}

func newTokenizerSet(opts Options) (*tokenizerSet, error) {
	kinds := []dialect.Kind{opts.Dialect}
	if opts.Dialect == dialect.Unknown {
		kinds = []dialect.Kind{dialect.Generic, dialect.Expression, dialect.CSV, dialect.Mustache}
	}
	set := &tokenizerSet{byKind: make(map[dialect.Kind]dialect.Tokenizer, len(kinds))}
	for _, k := range kinds {
		tz, err := dialect.Build(k, opts.Config)
		if err != nil {
			return nil, fmt.Errorf("configure %s tokenizer: %w", k, err)
		}
		set.byKind[k] = tz
	}
	return set, nil
}

func (s *tokenizerSet) get(k dialect.Kind) dialect.Tokenizer { return s.byKind[k] }
