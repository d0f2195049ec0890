package converter

import (
	"github.com/viant/resxgen/internal/codegen/ast"
)

//Kind represents conversion outcome kind
type Kind int

const (
	KindExpression Kind = iota
	KindStatementBlock
	KindUnresolved
	KindIgnored
)

func (k Kind) String() string {
	switch k {
	case KindExpression:
		return "expression"
	case KindStatementBlock:
		return "block"
	case KindUnresolved:
		return "unresolved"
	case KindIgnored:
		return "ignored"
	}
	return "unknown"
}

//Outcome represents resource entry conversion result
type Outcome struct {
	Kind       Kind
	Expression ast.Expression
	Block      ast.Block
}

//NewExpression creates expression outcome, the expression gets assigned to the target property
func NewExpression(expr ast.Expression) *Outcome {
	return &Outcome{Kind: KindExpression, Expression: expr}
}

//NewStatementBlock creates outcome emitted verbatim
func NewStatementBlock(block ast.Block) *Outcome {
	return &Outcome{Kind: KindStatementBlock, Block: block}
}

//Unresolved creates outcome requiring generic fallback
func Unresolved() *Outcome {
	return &Outcome{Kind: KindUnresolved}
}

//Ignored creates outcome producing no code
func Ignored() *Outcome {
	return &Outcome{Kind: KindIgnored}
}
