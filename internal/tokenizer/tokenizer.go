// Package tokenizer splits a raw input line into whitespace-delimited
// tokens. There is no quoting, escaping, or operator grammar: any run of
// delimiter characters separates tokens, and empty tokens are never
// produced. Each token is an independently owned string, so the caller is
// free to discard the original line after splitting.
package tokenizer

import "strings"

// delimiters is the fixed set of characters that separate tokens:
// space, tab, carriage return, newline, and bell.
const delimiters = " \t\r\n\a"

// Split breaks line into its non-empty tokens, preserving their order.
// A line consisting only of delimiter characters (or the empty line)
// yields an empty slice.
func Split(line string) []string {
	return strings.FieldsFunc(line, isDelimiter)
}

// isDelimiter reports whether r is one of the token-separating characters.
func isDelimiter(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}
