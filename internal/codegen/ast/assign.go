package ast

func (s *Assign) Generate(builder *Builder) (err error) {
	switch builder.Lang {
	case LangCS:
		if err = builder.WriteIndentedString("\n"); err != nil {
			return err
		}
		if err = s.generate(builder); err != nil {
			return err
		}
		return builder.WriteString(";")
	}
	return unsupportedOptionUse(builder, s)
}

func (s *Assign) generate(builder *Builder) (err error) {
	asIdent, ok := s.Holder.(*Ident)
	wasDeclared := true
	if ok {
		wasDeclared = builder.State.IsDeclared(asIdent.Name)
	}
	if !wasDeclared {
		if err = builder.WriteString("var "); err != nil {
			return err
		}
	}
	if err = s.Holder.Generate(builder); err != nil {
		return err
	}
	if err = builder.WriteString(" = "); err != nil {
		return err
	}
	return s.Expression.Generate(builder)
}

func (s *Using) Generate(builder *Builder) (err error) {
	switch builder.Lang {
	case LangCS:
		if err = builder.WriteIndentedString("\nusing "); err != nil {
			return err
		}
		if err = s.Assign.generate(builder); err != nil {
			return err
		}
		return builder.WriteString(";")
	}
	return unsupportedOptionUse(builder, s)
}

func NewAssign(holder Expression, expr Expression) *Assign {
	return &Assign{
		Holder:     holder,
		Expression: expr,
	}
}

func NewUsing(holder *Ident, expr Expression) *Using {
	return &Using{Assign: Assign{Holder: holder, Expression: expr}}
}
