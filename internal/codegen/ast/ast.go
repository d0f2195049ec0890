package ast

type (
	Node interface {
		Generate(builder *Builder) error
	}
	Statement interface {
		Node
	}

	Expression interface {
		Node
	} //can be BinaryExpr, CallExpr, NewExpr or LiteralExpr

	Block []Statement
	Ident struct {
		Name string
	}

	Assign struct {
		Holder     Expression
		Expression Expression
	}

	//Using represents scoped disposable declaration
	Using struct {
		Assign
	}

	CallExpr struct {
		Receiver Expression
		Name     string
		Args     []Expression
	}

	//NewExpr represents constructor call, empty Type stands for target typed new
	NewExpr struct {
		Type string
		Args []Expression
	}

	StatementExpression struct {
		Expression
	}

	//ScopeBlock represents braced statement block with its own variable scope
	ScopeBlock struct {
		Body Block
	}

	BinaryExpr struct {
		X  Expression
		Op string
		Y  Expression
	}

	LiteralExpr struct {
		Literal string
	}
)

func (b *Block) Append(statement ...Statement) {
	*b = append(*b, statement...)
}

func (b Block) Generate(builder *Builder) error {
	for _, stmt := range b {
		if err := stmt.Generate(builder); err != nil {
			return err
		}
	}
	return nil
}

func (e Ident) Generate(builder *Builder) (err error) {
	builder.State.DeclareVariable(e.Name)
	return builder.WriteString(e.Name)
}

func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}
