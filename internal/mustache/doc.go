// Package mustache tokenizes Mustache-style templates and turns the token
// stream into a directive tree.
//
// Text outside "{{ }}" comes out as Special tokens. Inside the brackets the
// usual word, whitespace, quote and symbol states apply. Parse runs the
// directive lexer on top: it recognizes values, variables ("{{x}}" and the
// escaped "{{{x}}}" form), sections ("{{#x}}", "{{#if x}}"), inverted
// sections ("{{^x}}", "{{#unless x}}"), section ends and comments, and
// nests sections into a tree. Rendering is left to callers.
package mustache
