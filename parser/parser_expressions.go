/*
File    : rox/parser/parser_expressions.go
*/
package parser

import (
	"github.com/collinvandyck/rox/lexer"
)

// parseExpression parses one expression at the lowest precedence level:
//
//	expression → assignment
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseAssignment()
}

// parseAssignment parses right-associative assignment:
//
//	assignment → ( call "." IDENT | IDENT ) "=" assignment | logic_or
//
// The trick: the left side is parsed as an ordinary expression first, and
// only when an `=` follows is it inspected. A bare variable becomes an
// Assign node; a Get target is rewritten into a Set node. Anything else
// is an invalid assignment target, reported at the `=` token. The right
// side is parsed exactly once; there is no backtracking.
func (par *Parser) parseAssignment() ExpressionNode {
	expr := par.parseLogicOr()
	if expr == nil {
		return nil
	}

	if par.match(lexer.ASSIGN_OP) {
		equals := par.previous()
		value := par.parseAssignment()
		if value == nil {
			return nil
		}

		switch target := expr.(type) {
		case *VariableExpressionNode:
			return &AssignExpressionNode{Name: target.Name, Value: value}
		case *GetExpressionNode:
			return &SetExpressionNode{Object: target.Object, Name: target.Name, Value: value}
		}
		par.addError(equals, "invalid assignment target")
		return nil
	}
	return expr
}

// parseLogicOr parses short-circuit disjunction:
//
//	logic_or → logic_and ( "or" logic_and )*
func (par *Parser) parseLogicOr() ExpressionNode {
	expr := par.parseLogicAnd()
	if expr == nil {
		return nil
	}
	for par.match(lexer.OR_KEY) {
		op := par.previous()
		right := par.parseLogicAnd()
		if right == nil {
			return nil
		}
		expr = &LogicalExpressionNode{Operation: op, Left: expr, Right: right}
	}
	return expr
}

// parseLogicAnd parses short-circuit conjunction:
//
//	logic_and → equality ( "and" equality )*
func (par *Parser) parseLogicAnd() ExpressionNode {
	expr := par.parseEquality()
	if expr == nil {
		return nil
	}
	for par.match(lexer.AND_KEY) {
		op := par.previous()
		right := par.parseEquality()
		if right == nil {
			return nil
		}
		expr = &LogicalExpressionNode{Operation: op, Left: expr, Right: right}
	}
	return expr
}

// parseEquality parses equality comparisons:
//
//	equality → comparison ( ( "!=" | "==" ) comparison )*
func (par *Parser) parseEquality() ExpressionNode {
	expr := par.parseComparison()
	if expr == nil {
		return nil
	}
	for par.match(lexer.NE_OP, lexer.EQ_OP) {
		op := par.previous()
		right := par.parseComparison()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: right}
	}
	return expr
}

// parseComparison parses ordering comparisons:
//
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (par *Parser) parseComparison() ExpressionNode {
	expr := par.parseTerm()
	if expr == nil {
		return nil
	}
	for par.match(lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP) {
		op := par.previous()
		right := par.parseTerm()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: right}
	}
	return expr
}

// parseTerm parses additive expressions:
//
//	term → factor ( ( "-" | "+" ) factor )*
func (par *Parser) parseTerm() ExpressionNode {
	expr := par.parseFactor()
	if expr == nil {
		return nil
	}
	for par.match(lexer.MINUS_OP, lexer.PLUS_OP) {
		op := par.previous()
		right := par.parseFactor()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: right}
	}
	return expr
}

// parseFactor parses multiplicative expressions:
//
//	factor → unary ( ( "/" | "*" ) unary )*
func (par *Parser) parseFactor() ExpressionNode {
	expr := par.parseUnary()
	if expr == nil {
		return nil
	}
	for par.match(lexer.SLASH_OP, lexer.STAR_OP) {
		op := par.previous()
		right := par.parseUnary()
		if right == nil {
			return nil
		}
		expr = &BinaryExpressionNode{Operation: op, Left: expr, Right: right}
	}
	return expr
}

// parseUnary parses prefix operators:
//
//	unary → ( "!" | "-" ) unary | call
func (par *Parser) parseUnary() ExpressionNode {
	if par.match(lexer.NOT_OP, lexer.MINUS_OP) {
		op := par.previous()
		right := par.parseUnary()
		if right == nil {
			return nil
		}
		return &UnaryExpressionNode{Operation: op, Right: right}
	}
	return par.parseCall()
}

// parseCall parses call and property-access postfixes as a left fold:
//
//	call → primary ( "(" args? ")" | "." IDENT )*
//
// Each `(args)` or `.name` wraps the expression built so far, so chains
// like f(1)(2).x parse naturally.
func (par *Parser) parseCall() ExpressionNode {
	expr := par.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		switch {
		case par.match(lexer.LEFT_PAREN):
			expr = par.finishCall(expr)
			if expr == nil {
				return nil
			}
		case par.match(lexer.DOT_OP):
			name, ok := par.consume(lexer.IDENTIFIER_ID, "as property name after '.'")
			if !ok {
				return nil
			}
			expr = &GetExpressionNode{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

// finishCall parses the argument list after an opening paren:
//
//	args → expression ( "," expression )*
//
// Argument lists of 255 or more record a non-fatal diagnostic and keep
// parsing.
func (par *Parser) finishCall(callee ExpressionNode) ExpressionNode {
	args := make([]ExpressionNode, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			arg := par.parseExpression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if len(args) == maxCallArgs {
				par.errorAtCurrent("can't have %d or more arguments", maxCallArgs)
			}
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	paren, ok := par.consume(lexer.RIGHT_PAREN, "after arguments")
	if !ok {
		return nil
	}
	return &CallExpressionNode{Callee: callee, Paren: paren, Arguments: args}
}

// parsePrimary parses the atoms of the grammar:
//
//	primary → "true" | "false" | "nil" | NUMBER | STRING
//	        | IDENT | "(" expression ")"
func (par *Parser) parsePrimary() ExpressionNode {
	switch {
	case par.match(lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NIL_KEY, lexer.NUMBER_LIT, lexer.STRING_LIT):
		return &LiteralExpressionNode{Token: par.previous()}
	case par.match(lexer.IDENTIFIER_ID):
		return &VariableExpressionNode{Name: par.previous()}
	case par.match(lexer.LEFT_PAREN):
		expr := par.parseExpression()
		if expr == nil {
			return nil
		}
		if _, ok := par.consume(lexer.RIGHT_PAREN, "after expression"); !ok {
			return nil
		}
		return &GroupExpressionNode{Expr: expr}
	}
	par.errorAtCurrent("expected expression, got %s", par.peek().Type)
	return nil
}
