/*
File    : rox/parser/print_visitor.go
*/
package parser

import (
	"bytes"
	"fmt"
)

const INDENT_SIZE = 4

// PrintingVisitor is a NodeVisitor that renders the AST as an indented
// tree into a buffer. It is a debugging aid and the reference consumer of
// the visitor contract.
type PrintingVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation into the buffer
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line describing a node
func (p *PrintingVisitor) line(format string, a ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, a...))
	p.Buf.WriteString("\n")
}

// nested visits children one indent level deeper
func (p *PrintingVisitor) nested(nodes ...Node) {
	p.Indent += INDENT_SIZE
	for _, node := range nodes {
		if node != nil {
			node.Accept(p)
		}
	}
	p.Indent -= INDENT_SIZE
}

// VisitRootNode visits the root node
func (p *PrintingVisitor) VisitRootNode(node RootNode) {
	p.line("Root (%d statements)", len(node.Statements))
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitLiteralExpressionNode visits a literal node
func (p *PrintingVisitor) VisitLiteralExpressionNode(node LiteralExpressionNode) {
	p.line("Literal [%s]", node.Literal())
}

// VisitUnaryExpressionNode visits a unary node
func (p *PrintingVisitor) VisitUnaryExpressionNode(node UnaryExpressionNode) {
	p.line("Unary [%s]", node.Operation.Lexeme)
	p.nested(node.Right)
}

// VisitBinaryExpressionNode visits a binary node
func (p *PrintingVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	p.line("Binary [%s]", node.Operation.Lexeme)
	p.nested(node.Left, node.Right)
}

// VisitLogicalExpressionNode visits a logical node
func (p *PrintingVisitor) VisitLogicalExpressionNode(node LogicalExpressionNode) {
	p.line("Logical [%s]", node.Operation.Lexeme)
	p.nested(node.Left, node.Right)
}

// VisitGroupExpressionNode visits a group node
func (p *PrintingVisitor) VisitGroupExpressionNode(node GroupExpressionNode) {
	p.line("Group")
	p.nested(node.Expr)
}

// VisitVariableExpressionNode visits a variable read node
func (p *PrintingVisitor) VisitVariableExpressionNode(node VariableExpressionNode) {
	p.line("Variable [%s]", node.Name.Lexeme)
}

// VisitAssignExpressionNode visits an assignment node
func (p *PrintingVisitor) VisitAssignExpressionNode(node AssignExpressionNode) {
	p.line("Assign [%s]", node.Name.Lexeme)
	p.nested(node.Value)
}

// VisitCallExpressionNode visits a call node
func (p *PrintingVisitor) VisitCallExpressionNode(node CallExpressionNode) {
	p.line("Call (%d args)", len(node.Arguments))
	children := []Node{node.Callee}
	for _, arg := range node.Arguments {
		children = append(children, arg)
	}
	p.nested(children...)
}

// VisitGetExpressionNode visits a property read node
func (p *PrintingVisitor) VisitGetExpressionNode(node GetExpressionNode) {
	p.line("Get [%s]", node.Name.Lexeme)
	p.nested(node.Object)
}

// VisitSetExpressionNode visits a property write node
func (p *PrintingVisitor) VisitSetExpressionNode(node SetExpressionNode) {
	p.line("Set [%s]", node.Name.Lexeme)
	p.nested(node.Object, node.Value)
}

// VisitExpressionStatementNode visits an expression statement node
func (p *PrintingVisitor) VisitExpressionStatementNode(node ExpressionStatementNode) {
	p.line("ExpressionStatement")
	p.nested(node.Expr)
}

// VisitPrintStatementNode visits a print statement node
func (p *PrintingVisitor) VisitPrintStatementNode(node PrintStatementNode) {
	p.line("PrintStatement")
	p.nested(node.Expr)
}

// VisitVarStatementNode visits a var declaration node
func (p *PrintingVisitor) VisitVarStatementNode(node VarStatementNode) {
	p.line("VarStatement [%s]", node.Name.Lexeme)
	if node.Initializer != nil {
		p.nested(node.Initializer)
	}
}

// VisitBlockStatementNode visits a block node
func (p *PrintingVisitor) VisitBlockStatementNode(node BlockStatementNode) {
	p.line("Block (%d statements)", len(node.Statements))
	children := make([]Node, 0, len(node.Statements))
	for _, stmt := range node.Statements {
		children = append(children, stmt)
	}
	p.nested(children...)
}

// VisitIfStatementNode visits an if statement node
func (p *PrintingVisitor) VisitIfStatementNode(node IfStatementNode) {
	p.line("IfStatement")
	p.nested(node.Condition, node.ThenBranch, node.ElseBranch)
}

// VisitWhileStatementNode visits a while statement node
func (p *PrintingVisitor) VisitWhileStatementNode(node WhileStatementNode) {
	p.line("WhileStatement")
	p.nested(node.Condition, node.Body)
}

// VisitFunctionStatementNode visits a function declaration node
func (p *PrintingVisitor) VisitFunctionStatementNode(node FunctionStatementNode) {
	p.line("FunctionStatement [%s] (%d params)", node.Name.Lexeme, len(node.Params))
	children := make([]Node, 0, len(node.Body))
	for _, stmt := range node.Body {
		children = append(children, stmt)
	}
	p.nested(children...)
}

// VisitReturnStatementNode visits a return statement node
func (p *PrintingVisitor) VisitReturnStatementNode(node ReturnStatementNode) {
	p.line("ReturnStatement")
	p.nested(node.Value)
}

// VisitClassStatementNode visits a class declaration node
func (p *PrintingVisitor) VisitClassStatementNode(node ClassStatementNode) {
	p.line("ClassStatement [%s] (%d methods)", node.Name.Lexeme, len(node.Methods))
	children := make([]Node, 0, len(node.Methods))
	for _, method := range node.Methods {
		children = append(children, method)
	}
	p.nested(children...)
}

// String returns the rendered tree
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}
