/*
File    : rox/lexer/lexer_utils.go
*/
package lexer

// isWhitespace checks if the given byte is a whitespace character:
// space, tab, carriage return, or newline. Newlines are special-cased
// by the caller for line tracking.
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\r' || curr == '\n'
}

// isNumeric checks if the given byte is an ASCII decimal digit (0-9).
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isAlphanumeric checks if the given byte is a letter or digit.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr)
}
