package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lexkit/internal/diag"
	"lexkit/internal/dialect"
	"lexkit/internal/lexer"
	"lexkit/internal/observ"
	"lexkit/internal/token"
	"lexkit/internal/trace"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestTokenizeSingleFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "A+1"})
	timer := observ.NewTimer()
	res, err := Tokenize(context.Background(), filepath.Join(dir, "a.txt"), Options{Dialect: dialect.Generic, Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Token{
		token.New(token.Word, "A", 1, 1),
		token.New(token.Symbol, "+", 1, 2),
		token.New(token.Integer, "1", 1, 3),
		token.New(token.Eof, "", 1, 3),
	}
	if diff := cmp.Diff(want, res.Files[0].Tokens); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if res.Failed() || res.Bag.Len() != 0 {
		t.Fatalf("unexpected failure: %+v", res.Bag.Items())
	}
	if got := len(timer.Report().Phases); got != 2 {
		t.Fatalf("expected load and tokenize phases, got %d", got)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{Dialect: dialect.Generic})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestTokenizeDirDetectsAndKeepsOrder(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b/rows.csv":       "a,b\n1,2\n",
		"a/page.mustache":  "Hi {{name}}",
		"c/notes.txt":      "plain words",
		"c/rule.expr":      "X >= 1 AND Y <> 2",
		".hidden/skip.txt": "ignored",
	})
	var mu sync.Mutex
	var events []Event
	opts := Options{Jobs: 2, Observer: func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}}

	res, err := TokenizeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}

	type row struct {
		Path    string
		Dialect dialect.Kind
	}
	var got []row
	for _, f := range res.Files {
		rel, _ := filepath.Rel(dir, f.Path)
		got = append(got, row{filepath.ToSlash(rel), f.Dialect})
	}
	want := []row{
		{"a/page.mustache", dialect.Mustache},
		{"b/rows.csv", dialect.CSV},
		{"c/notes.txt", dialect.Generic},
		{"c/rule.expr", dialect.Expression},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	done := 0
	for _, ev := range events {
		if ev.Status == StatusDone {
			done++
		}
	}
	if done != len(want) {
		t.Fatalf("expected %d done events, got %d", len(want), done)
	}
}

func TestTokenizeDirReportsScanErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.expr":  "A + /* open",
		"good.expr": "A + 1",
	})
	res, err := TokenizeDir(context.Background(), dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Failed() {
		t.Fatal("expected a failed file")
	}
	bad := res.Files[0]
	if !errors.Is(bad.Err, lexer.ErrUnterminatedComment) || bad.Tokens != nil {
		t.Fatalf("bad file result: %+v", bad)
	}
	if res.Files[1].Err != nil {
		t.Fatalf("good file failed: %v", res.Files[1].Err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexUnterminatedComment || items[0].Primary.File != bad.FileID {
		t.Fatalf("unexpected diagnostics: %+v", items)
	}
	if items[0].Primary.Line != 1 || items[0].Primary.Column != 5 {
		t.Fatalf("diagnostic at %v, want line 1 column 5", items[0].Primary)
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	res, err := TokenizeDir(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 0 || res.Failed() {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestBadCSVConfigFailsRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.csv": "x"})
	opts := Options{Dialect: dialect.CSV, Config: dialect.Config{FieldSeparators: []rune{'\r'}}}
	if _, err := TokenizePath(context.Background(), dir, opts); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestCacheHitsAcrossRuns(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "x 'y'", "b.txt": "1.5"})
	disk, err := OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	cache, err := NewCache(8, disk)
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Dialect: dialect.Generic, Cache: cache}

	first, err := TokenizeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := TokenizeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first.Files {
		if first.Files[i].Cached || !second.Files[i].Cached {
			t.Fatalf("file %d: cached %v then %v", i, first.Files[i].Cached, second.Files[i].Cached)
		}
		if diff := cmp.Diff(first.Files[i].Tokens, second.Files[i].Tokens); diff != "" {
			t.Fatalf("cached tokens differ (-first +second):\n%s", diff)
		}
	}

	// a fresh memory cache still hits on disk
	cold, err := NewCache(8, disk)
	if err != nil {
		t.Fatal(err)
	}
	third, err := TokenizeDir(context.Background(), dir, Options{Dialect: dialect.Generic, Cache: cold})
	if err != nil {
		t.Fatal(err)
	}
	if !third.Files[0].Cached {
		t.Fatal("expected disk hit")
	}
	if hits, misses := cold.Stats(); hits != 2 || misses != 0 {
		t.Fatalf("stats = %d hits, %d misses", hits, misses)
	}

	// other options must not reuse the entry
	decoded, err := TokenizeDir(context.Background(), dir, Options{
		Dialect: dialect.Generic,
		Config:  dialect.Config{Options: lexer.Options{DecodeStrings: true}},
		Cache:   cold,
	})
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Files[0].Cached {
		t.Fatal("different options must miss the cache")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	c, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey([32]byte{1}, "generic")
	var out DiskPayload
	if ok, err := c.Get(key, &out); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	in := &DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Dialect: "generic",
		Tokens:  []token.Token{token.New(token.Quoted, "'a'", 2, 4)},
	}
	if err := c.Put(key, in); err != nil {
		t.Fatal(err)
	}
	if ok, err := c.Get(key, &out); !ok || err != nil {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(in, &out); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	stale := *in
	stale.Schema = diskCacheSchemaVersion + 1
	if err := c.Put(key, &stale); err != nil {
		t.Fatal(err)
	}
	if ok, _ := c.Get(key, &DiskPayload{}); ok {
		t.Fatal("entries with another schema must miss")
	}

	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if ok, _ := c.Get(key, &DiskPayload{}); ok {
		t.Fatal("DropAll left the entry behind")
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey([32]byte{1}, "x")
	if a != CacheKey([32]byte{1}, "x") {
		t.Fatal("key must be deterministic")
	}
	if a == CacheKey([32]byte{2}, "x") || a == CacheKey([32]byte{1}, "y") {
		t.Fatal("content and fingerprint must change the key")
	}
}

func TestParseTemplate(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.mustache":  "Hello {{#user}}{{name}}{{/user}}",
		"bad.mustache": "{{#a}}x",
	})
	res, err := ParseTemplate(context.Background(), filepath.Join(dir, "ok.mustache"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Doc == nil || res.Bag.Len() != 0 {
		t.Fatalf("unexpected result: %+v", res.Bag.Items())
	}
	if diff := cmp.Diff([]string{"user", "name"}, res.Doc.Variables); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	res, err = ParseTemplate(context.Background(), filepath.Join(dir, "bad.mustache"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Doc != nil || res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.MustacheNotClosedSection {
		t.Fatalf("expected a not-closed-section diagnostic, got %+v", res.Bag.Items())
	}
}

func TestTraceSpans(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "x", "b.txt": "y"})
	ring := trace.NewRingTracer(64, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)
	if _, err := TokenizeDir(ctx, dir, Options{Dialect: dialect.Generic}); err != nil {
		t.Fatal(err)
	}
	var pass uint64
	for _, ev := range ring.Snapshot() {
		if ev.Scope == trace.ScopePass && ev.Name == "tokenize" && ev.Kind == trace.KindSpanBegin {
			pass = ev.SpanID
		}
	}
	files := 0
	for _, ev := range ring.Snapshot() {
		if ev.Scope == trace.ScopeFile && ev.Kind == trace.KindSpanEnd {
			files++
			if ev.Extra["dialect"] != "generic" {
				t.Errorf("file span without dialect: %+v", ev)
			}
			if pass == 0 || ev.ParentID != pass {
				t.Errorf("file span parent = %d, want tokenize pass %d", ev.ParentID, pass)
			}
		}
	}
	if files != 2 {
		t.Fatalf("expected 2 file spans, got %d", files)
	}
}

func TestTokenizeRepositoryTestdata(t *testing.T) {
	res, err := TokenizeDir(context.Background(), filepath.Join("..", "..", "testdata"), Options{Jobs: 4})
	if err != nil {
		t.Fatal(err)
	}
	if res.Failed() {
		t.Fatalf("testdata should tokenize cleanly: %+v", res.Bag.Items())
	}
	for _, f := range res.Files {
		if len(f.Tokens) == 0 {
			t.Errorf("%s: no tokens", f.Path)
		}
		if k, ok := dialect.ByExtension(f.Path); ok && k != f.Dialect {
			t.Errorf("%s: dialect %v, want %v", f.Path, f.Dialect, k)
		}
	}
}
