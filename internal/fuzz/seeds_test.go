package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxFuzzInput = 64 << 10 // 64 KiB

var builtinSeeds = []string{
	"",
	"A + 1",
	"IF(x >= 10, 'big', \"small\") // tail",
	"/* open",
	"1.5e-3 <> -2 AND NOT y",
	"name,age\r\n\"Smith, J\",42\n\"\"\"quoted\"\"\",",
	"a;b|c\n\r",
	"Hello {{name}}, {{{raw}}} {{#items}}{{.}}{{/items}}{{^none}}-{{/none}}",
	"{{! comment }}{{> partial}}",
	"{{#open}}",
	"}}{{",
	"# comment\nkey <= value",
	"\x00\x01\xff\xfe",
	"😀 wide ｗｉｄｅ",
	"'unterminated",
}

// addSeeds adds the builtin seeds and every file under the repository testdata.
func addSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src))
		return nil
	})
}

func clamp(src []byte) []byte {
	if len(src) <= maxFuzzInput {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxFuzzInput]...)
}
