package emitter

import (
	"github.com/viant/resxgen/internal/codegen/ast"
)

const (
	ControlVariable    = "control"
	ManagerVariable    = "manager"
	ValueVariable      = "value"
	ObjectNameVariable = "objectName"
)

//Block represents statements initializing one owner
type Block struct {
	Owner          string
	Statements     ast.Block
	FallbackNeeded bool
}

//Lines renders block statements, one line per element, indented with the supplied indent
func (b *Block) Lines(indent string) ([]string, error) {
	builder := ast.NewBuilder(ast.Options{Indent: indent}, ControlVariable, ManagerVariable, ValueVariable, ObjectNameVariable)
	if err := b.Statements.Generate(builder); err != nil {
		return nil, err
	}
	return builder.Lines(), nil
}
