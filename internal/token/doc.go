// Package token defines the lexical token value shared by every tokenizer.
// Invariants:
//   - Token is immutable once produced; states build a new value instead of mutating.
//   - Token.Value is the exact consumed text unless a quote state decoded it.
//   - Line is 1-based; Column is the column of the first character of the token.
//   - Line and Column exist only for diagnostics; Equal ignores them.
package token
