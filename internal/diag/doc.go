// Package diag defines the diagnostic model shared by the tokenizers, the
// Mustache directive lexer and the driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string form (LEX1xxx for tokenization, MST4xxx for template directives,
// IO5xxx for loading and caching), a Message and a primary Location.
//
// Producers emit through a Reporter; BagReporter collects into a Bag, which
// supports limits, sorting and deduplication. Rendering is limited to the
// short single-line form used by the CLI.
package diag
