// Package dialect names the tokenizer presets lexkit ships and picks one for
// a file, either from its extension or from evidence gathered by a generic
// scan of its content.
package dialect
