package ast

func NewCallExpr(receiver Expression, name string, args ...Expression) *CallExpr {
	return &CallExpr{
		Receiver: receiver,
		Name:     name,
		Args:     args,
	}
}

func (s *StatementExpression) Generate(builder *Builder) (err error) {
	if err = builder.WriteIndentedString("\n"); err != nil {
		return err
	}
	if err = s.Expression.Generate(builder); err != nil {
		return err
	}
	return builder.WriteString(";")
}

//NewStatementExpression return new statement expr
func NewStatementExpression(expr Expression) *StatementExpression {
	return &StatementExpression{Expression: expr}
}

func (e *CallExpr) Generate(builder *Builder) (err error) {
	if e.Receiver != nil {
		if err = e.Receiver.Generate(builder); err != nil {
			return err
		}
		if err = builder.WriteString("."); err != nil {
			return err
		}
	}
	if err = builder.WriteString(e.Name); err != nil {
		return err
	}
	return generateArgs(builder, e.Args)
}

func NewNewExpr(typeName string, args ...Expression) *NewExpr {
	return &NewExpr{Type: typeName, Args: args}
}

func (e *NewExpr) Generate(builder *Builder) (err error) {
	if err = builder.WriteString("new "); err != nil {
		return err
	}
	if err = builder.WriteString(e.Type); err != nil {
		return err
	}
	return generateArgs(builder, e.Args)
}

func generateArgs(builder *Builder, args []Expression) (err error) {
	if err = builder.WriteString("("); err != nil {
		return err
	}
	for i, arg := range args {
		if i > 0 {
			if err = builder.WriteString(", "); err != nil {
				return err
			}
		}
		if err = arg.Generate(builder); err != nil {
			return err
		}
	}
	return builder.WriteString(")")
}

func (e *BinaryExpr) Generate(builder *Builder) (err error) {
	if err = e.X.Generate(builder); err != nil {
		return err
	}
	if err = builder.WriteString(" " + e.Op + " "); err != nil {
		return err
	}
	return e.Y.Generate(builder)
}

//NewBinaryChain folds operands left to right with op
func NewBinaryChain(op string, operands ...Expression) Expression {
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, operand := range operands[1:] {
		result = &BinaryExpr{X: result, Op: op, Y: operand}
	}
	return result
}

func (s *ScopeBlock) Generate(builder *Builder) (err error) {
	switch builder.Lang {
	case LangCS:
		if err = builder.WriteIndentedString("\n{"); err != nil {
			return err
		}
		if err = s.Body.Generate(builder.IncIndent(builder.Indent)); err != nil {
			return err
		}
		return builder.WriteIndentedString("\n}")
	}
	return unsupportedOptionUse(builder, s)
}

func NewScopeBlock(statements ...Statement) *ScopeBlock {
	return &ScopeBlock{Body: statements}
}
