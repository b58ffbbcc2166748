// Package chars holds the character predicates and the codepoint lookup table
// shared by the scanner, the tokenizer core and every character state.
//
// Invariants:
//   - EOF is a negative sentinel and is never a valid table key.
//   - Map assignments are last-write-wins on overlap.
package chars
