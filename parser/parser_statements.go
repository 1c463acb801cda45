/*
File    : rox/parser/parser_statements.go
*/
package parser

import (
	"github.com/collinvandyck/rox/lexer"
)

// parseDeclaration parses one declaration:
//
//	declaration → classDecl | funDecl | varDecl | statement
//
// This is the error-recovery boundary: when anything below fails, the
// parser synchronizes to the next statement boundary and returns nil so
// the partial statement is discarded.
func (par *Parser) parseDeclaration() StatementNode {
	var stmt StatementNode
	switch {
	case par.match(lexer.CLASS_KEY):
		stmt = par.parseClassDeclaration()
	case par.match(lexer.FUN_KEY):
		// The concrete pointer must not reach the interface while nil,
		// or the recovery check below would miss it.
		if fn := par.parseFunction("function"); fn != nil {
			stmt = fn
		}
	case par.match(lexer.VAR_KEY):
		stmt = par.parseVarDeclaration()
	default:
		stmt = par.parseStatement()
	}
	if stmt == nil {
		par.synchronize()
	}
	return stmt
}

// parseClassDeclaration parses a class body after the `class` keyword:
//
//	classDecl → "class" IDENT "{" function* "}"
//
// Methods are function declarations without the `fun` keyword.
func (par *Parser) parseClassDeclaration() StatementNode {
	name, ok := par.consume(lexer.IDENTIFIER_ID, "as class name")
	if !ok {
		return nil
	}
	if _, ok := par.consume(lexer.LEFT_BRACE, "before class body"); !ok {
		return nil
	}

	methods := make([]*FunctionStatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		method := par.parseFunction("method")
		if method == nil {
			return nil
		}
		methods = append(methods, method)
	}

	if _, ok := par.consume(lexer.RIGHT_BRACE, "after class body"); !ok {
		return nil
	}
	return &ClassStatementNode{Name: name, Methods: methods}
}

// parseFunction parses a function declaration after its introducing
// keyword (or directly, for class methods):
//
//	function → IDENT "(" params? ")" block
//
// kind is "function" or "method" and only flavors diagnostics. Parameter
// lists of 255 or more names record a non-fatal diagnostic.
func (par *Parser) parseFunction(kind string) *FunctionStatementNode {
	name, ok := par.consume(lexer.IDENTIFIER_ID, "as "+kind+" name")
	if !ok {
		return nil
	}
	if _, ok := par.consume(lexer.LEFT_PAREN, "after "+kind+" name"); !ok {
		return nil
	}

	params := make([]lexer.Token, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			param, ok := par.consume(lexer.IDENTIFIER_ID, "as parameter name")
			if !ok {
				return nil
			}
			params = append(params, param)
			if len(params) == maxCallArgs {
				par.errorAtCurrent("can't have %d or more parameters", maxCallArgs)
			}
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	if _, ok := par.consume(lexer.RIGHT_PAREN, "after parameters"); !ok {
		return nil
	}

	if _, ok := par.consume(lexer.LEFT_BRACE, "before "+kind+" body"); !ok {
		return nil
	}
	body := par.parseBlock()
	if body == nil {
		return nil
	}
	return &FunctionStatementNode{Name: name, Params: params, Body: body}
}

// parseVarDeclaration parses a variable declaration after `var`:
//
//	varDecl → "var" IDENT ( "=" expression )? ";"
//
// The initializer stays nil when absent; the evaluator then binds the
// internal undefined sentinel.
func (par *Parser) parseVarDeclaration() StatementNode {
	name, ok := par.consume(lexer.IDENTIFIER_ID, "as variable name")
	if !ok {
		return nil
	}

	var initializer ExpressionNode
	if par.match(lexer.ASSIGN_OP) {
		initializer = par.parseExpression()
		if initializer == nil {
			return nil
		}
	}

	if _, ok := par.consume(lexer.SEMICOLON_DELIM, "after variable declaration"); !ok {
		return nil
	}
	return &VarStatementNode{Name: name, Initializer: initializer}
}

// parseStatement parses one statement:
//
//	statement → exprStmt | printStmt | block | ifStmt
//	          | whileStmt | forStmt | returnStmt
func (par *Parser) parseStatement() StatementNode {
	switch {
	case par.match(lexer.PRINT_KEY):
		return par.parsePrintStatement()
	case par.match(lexer.RETURN_KEY):
		return par.parseReturnStatement()
	case par.match(lexer.IF_KEY):
		return par.parseIfStatement()
	case par.match(lexer.WHILE_KEY):
		return par.parseWhileStatement()
	case par.match(lexer.FOR_KEY):
		return par.parseForStatement()
	case par.match(lexer.LEFT_BRACE):
		stmts := par.parseBlock()
		if stmts == nil {
			return nil
		}
		return &BlockStatementNode{Statements: stmts}
	default:
		return par.parseExpressionStatement()
	}
}

// parseBlock parses declarations until the closing brace:
//
//	block → "{" declaration* "}"
//
// The opening brace has already been consumed by the caller.
func (par *Parser) parseBlock() []StatementNode {
	stmts := make([]StatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		stmt := par.parseDeclaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, ok := par.consume(lexer.RIGHT_BRACE, "after block"); !ok {
		return nil
	}
	return stmts
}

// parsePrintStatement parses a print statement after the keyword:
//
//	printStmt → "print" expression ";"
func (par *Parser) parsePrintStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if _, ok := par.consume(lexer.SEMICOLON_DELIM, "after value"); !ok {
		return nil
	}
	return &PrintStatementNode{Expr: expr}
}

// parseReturnStatement parses a return statement after the keyword:
//
//	returnStmt → "return" expression? ";"
//
// A bare `return;` gets an explicit nil literal as its value, so the
// evaluator never sees a missing expression.
func (par *Parser) parseReturnStatement() StatementNode {
	keyword := par.previous()

	var value ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		value = par.parseExpression()
		if value == nil {
			return nil
		}
	} else {
		value = &LiteralExpressionNode{
			Token: lexer.NewTokenWithMetadata(lexer.NIL_KEY, "nil", keyword.Line, keyword.Column),
		}
	}

	if _, ok := par.consume(lexer.SEMICOLON_DELIM, "after return value"); !ok {
		return nil
	}
	return &ReturnStatementNode{Keyword: keyword, Value: value}
}

// parseIfStatement parses a conditional after the keyword:
//
//	ifStmt → "if" "(" expression ")" statement ( "else" statement )?
//
// The else binds to the nearest if, which falls out of the recursion.
func (par *Parser) parseIfStatement() StatementNode {
	if _, ok := par.consume(lexer.LEFT_PAREN, "after 'if'"); !ok {
		return nil
	}
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := par.consume(lexer.RIGHT_PAREN, "after if condition"); !ok {
		return nil
	}

	thenBranch := par.parseStatement()
	if thenBranch == nil {
		return nil
	}

	var elseBranch StatementNode
	if par.match(lexer.ELSE_KEY) {
		elseBranch = par.parseStatement()
		if elseBranch == nil {
			return nil
		}
	}
	return &IfStatementNode{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// parseWhileStatement parses a loop after the keyword:
//
//	whileStmt → "while" "(" expression ")" statement
func (par *Parser) parseWhileStatement() StatementNode {
	if _, ok := par.consume(lexer.LEFT_PAREN, "after 'while'"); !ok {
		return nil
	}
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if _, ok := par.consume(lexer.RIGHT_PAREN, "after while condition"); !ok {
		return nil
	}
	body := par.parseStatement()
	if body == nil {
		return nil
	}
	return &WhileStatementNode{Condition: condition, Body: body}
}

// parseForStatement parses a C-style for loop and desugars it:
//
//	forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//	                    expression? ";" expression? ")" statement
//
// The loop never reaches the evaluator as a `for`: it becomes a block
// containing the initializer followed by a while whose body runs the
// original body and then the increment. An absent condition defaults to
// literal true. This keeps evaluator state small.
func (par *Parser) parseForStatement() StatementNode {
	forToken := par.previous()
	if _, ok := par.consume(lexer.LEFT_PAREN, "after 'for'"); !ok {
		return nil
	}

	// Initializer clause: declaration, expression statement, or empty.
	var initializer StatementNode
	switch {
	case par.match(lexer.SEMICOLON_DELIM):
		initializer = nil
	case par.match(lexer.VAR_KEY):
		initializer = par.parseVarDeclaration()
		if initializer == nil {
			return nil
		}
	default:
		initializer = par.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	// Condition clause, defaulting to literal true.
	var condition ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		condition = par.parseExpression()
		if condition == nil {
			return nil
		}
	} else {
		condition = &LiteralExpressionNode{
			Token: lexer.NewTokenWithMetadata(lexer.TRUE_KEY, "true", forToken.Line, forToken.Column),
		}
	}
	if _, ok := par.consume(lexer.SEMICOLON_DELIM, "after loop condition"); !ok {
		return nil
	}

	// Increment clause.
	var increment ExpressionNode
	if !par.check(lexer.RIGHT_PAREN) {
		increment = par.parseExpression()
		if increment == nil {
			return nil
		}
	}
	if _, ok := par.consume(lexer.RIGHT_PAREN, "after for clauses"); !ok {
		return nil
	}

	body := par.parseStatement()
	if body == nil {
		return nil
	}

	// Desugar inside-out: body+increment, then the while, then the
	// initializer block around it.
	if increment != nil {
		body = &BlockStatementNode{Statements: []StatementNode{
			body,
			&ExpressionStatementNode{Expr: increment},
		}}
	}
	var loop StatementNode = &WhileStatementNode{Condition: condition, Body: body}
	if initializer != nil {
		loop = &BlockStatementNode{Statements: []StatementNode{initializer, loop}}
	}
	return loop
}

// parseExpressionStatement parses a bare expression statement:
//
//	exprStmt → expression ";"
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if _, ok := par.consume(lexer.SEMICOLON_DELIM, "after expression"); !ok {
		return nil
	}
	return &ExpressionStatementNode{Expr: expr}
}
