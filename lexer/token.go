/*
File    : rox/lexer/token.go
*/
package lexer

import (
	"fmt"

	"github.com/collinvandyck/rox/objects"
)

// TokenType represents the type of a lexical token in the Lox language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element in the
// language, such as operators, keywords, literals, or structural symbols.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the Lox language.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream. The scanner always
	// appends exactly one EOF token at the final source line.
	EOF_TYPE TokenType = "EOF"

	// Single-character punctuation
	LEFT_PAREN      TokenType = "(" // Left parenthesis - grouping, call argument lists
	RIGHT_PAREN     TokenType = ")" // Right parenthesis
	LEFT_BRACE      TokenType = "{" // Left brace - blocks, class bodies
	RIGHT_BRACE     TokenType = "}" // Right brace
	COMMA_DELIM     TokenType = "," // Comma - separates parameters and arguments
	DOT_OP          TokenType = "." // Dot - property access
	SEMICOLON_DELIM TokenType = ";" // Semicolon - statement terminator

	// Arithmetic Operators
	PLUS_OP  TokenType = "+" // Addition / string concatenation
	MINUS_OP TokenType = "-" // Subtraction / unary negation
	STAR_OP  TokenType = "*" // Multiplication
	SLASH_OP TokenType = "/" // Division

	// One-or-two character operators
	NOT_OP    TokenType = "!"  // Logical NOT operator
	NE_OP     TokenType = "!=" // Not equal comparison
	ASSIGN_OP TokenType = "="  // Assignment operator
	EQ_OP     TokenType = "==" // Equality comparison
	GT_OP     TokenType = ">"  // Greater than
	GE_OP     TokenType = ">=" // Greater than or equal to
	LT_OP     TokenType = "<"  // Less than
	LE_OP     TokenType = "<=" // Less than or equal to

	// Literals
	IDENTIFIER_ID TokenType = "Identifier" // User-defined identifier
	STRING_LIT    TokenType = "String"     // String literal (e.g., "hello")
	NUMBER_LIT    TokenType = "Number"     // Number literal (e.g., 42, 3.14)

	// Keywords
	// The fifteen reserved words of Lox plus `super`.
	AND_KEY    TokenType = "and"
	CLASS_KEY  TokenType = "class"
	ELSE_KEY   TokenType = "else"
	FALSE_KEY  TokenType = "false"
	FUN_KEY    TokenType = "fun"
	FOR_KEY    TokenType = "for"
	IF_KEY     TokenType = "if"
	NIL_KEY    TokenType = "nil"
	OR_KEY     TokenType = "or"
	PRINT_KEY  TokenType = "print"
	RETURN_KEY TokenType = "return"
	SUPER_KEY  TokenType = "super"
	THIS_KEY   TokenType = "this"
	TRUE_KEY   TokenType = "true"
	VAR_KEY    TokenType = "var"
	WHILE_KEY  TokenType = "while"
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token
// types. It is used during lexical analysis to distinguish between reserved
// words and regular identifiers: when the scanner finishes an
// identifier-like token, it checks this map to classify it.
var KEYWORDS_MAP = map[string]TokenType{
	"and":    AND_KEY,
	"class":  CLASS_KEY,
	"else":   ELSE_KEY,
	"false":  FALSE_KEY,
	"fun":    FUN_KEY,
	"for":    FOR_KEY,
	"if":     IF_KEY,
	"nil":    NIL_KEY,
	"or":     OR_KEY,
	"print":  PRINT_KEY,
	"return": RETURN_KEY,
	"super":  SUPER_KEY,
	"this":   THIS_KEY,
	"true":   TRUE_KEY,
	"var":    VAR_KEY,
	"while":  WHILE_KEY,
}

// Token represents a single lexical token in Lox source code. It is an
// immutable record of the token's type, its lexeme text from the source,
// an optional literal payload (set for number and string literals), and
// the source line it appears on.
//
// Fields:
//   - Type: The category of the token (operator, keyword, literal, ...)
//   - Lexeme: The actual text from the source code
//   - Value: Literal payload for NUMBER_LIT/STRING_LIT tokens, nil otherwise
//   - Line: Line number in the source file (1-indexed)
//   - Column: Column number where the token starts (1-indexed)
//
// Example:
//
//	For the source "var x = 123" at line 5:
//	Token{Type: VAR_KEY, Lexeme: "var", Line: 5, Column: 1}
type Token struct {
	Type   TokenType      // The type/category of this token
	Lexeme string         // The actual text from the source code
	Value  objects.Object // Literal payload, or nil when the token has none
	Line   int            // Line number in source file (1-indexed)
	Column int            // Column number in source file (1-indexed)
}

// NewToken creates a new Token with the specified type and lexeme.
// This is a basic constructor that does not set position metadata;
// it is mostly useful in tests. Use NewTokenWithMetadata during
// scanning so errors can point at the source.
func NewToken(tokenType TokenType, lexeme string) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
	}
}

// NewTokenWithMetadata creates a new Token with full position metadata.
// This constructor is used during lexical analysis to preserve source
// location information, which is essential for error reporting.
func NewTokenWithMetadata(tokenType TokenType, lexeme string, line int, column int) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Line:   line,
		Column: column,
	}
}

// NewLiteralToken creates a token carrying a literal payload (the parsed
// number or the unquoted string contents).
func NewLiteralToken(tokenType TokenType, lexeme string, value objects.Object, line int, column int) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Value:  value,
		Line:   line,
		Column: column,
	}
}

// Print outputs a human-readable representation of the token to standard
// output in "lexeme:type" form. Debugging aid.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Lexeme, tok.Type)
}

// lookupIdent determines the token type for an identifier string: the
// matching keyword type if ident is reserved, IDENTIFIER_ID otherwise.
func lookupIdent(ident string) TokenType {
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	return IDENTIFIER_ID
}
