package driver

import (
	"context"
	"errors"
	"fmt"

	"lexkit/internal/diag"
	"lexkit/internal/lexer"
	"lexkit/internal/mustache"
	"lexkit/internal/source"
	"lexkit/internal/trace"
)

// TemplateResult is a parsed Mustache template. Doc is nil when parsing failed.
type TemplateResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Doc     *mustache.Document
	Bag     *diag.Bag
}

// ParseTemplate loads path and runs the Mustache directive lexer over it.
// Template errors become diagnostics; only I/O errors are returned.
func ParseTemplate(ctx context.Context, path string, opts Options) (*TemplateResult, error) {
	span, _ := trace.StartSpan(ctx, trace.ScopeDriver, "mustache")
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

	res := &TemplateResult{FileSet: fs, FileID: id, Bag: newBag(opts)}
	_ = track(opts.Timer, "parse", func() error {
		doc, err := mustache.Parse(fs.Get(id).Text())
		if err != nil {
			res.Bag.Add(templateDiagnostic(err, id))
			return err
		}
		res.Doc = doc
		return nil
	})
	span.WithExtra("ok", fmt.Sprint(res.Doc != nil))
	return res, nil
}

func templateDiagnostic(err error, file source.FileID) diag.Diagnostic {
	var me *mustache.Error
	if errors.As(err, &me) {
		return me.Diagnostic(file)
	}
	var te *lexer.TokenizeError
	if errors.As(err, &te) {
		return te.Diagnostic(file)
	}
	return diag.NewError(diag.MustacheInternal, diag.Location{File: file}, err.Error())
}
