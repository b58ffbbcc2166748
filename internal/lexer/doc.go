// Package lexer implements a character-state driven tokenizer.
//
// A Tokenizer owns a dispatch table that maps codepoints to State values and
// six named slots (comment, number, quote, symbol, whitespace, word) that
// states consult when they need to hand work over, e.g. a number state that
// finds no digits delegates to the symbol state.
//
// Scanning is single-pass with explicit backtracking through the Scanner's
// Unread. Each TokenizeBuffer call creates its own Scanner and Stream; the
// Tokenizer, its states and the symbol trie are read-only during scans and
// can be shared between goroutines once configured.
package lexer
