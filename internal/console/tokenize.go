package console

import "strings"

// Tokenize splits an input line into tokens on single ASCII spaces.
// Runs of spaces never produce empty tokens; tabs and other whitespace are
// ordinary characters. The function is stateless and safe to call repeatedly.
func Tokenize(line string) []string {
	var tokens []string
	for line != "" {
		tok := line
		if i := strings.IndexByte(line, ' '); i >= 0 {
			tok, line = line[:i], line[i+1:]
		} else {
			line = ""
		}
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
