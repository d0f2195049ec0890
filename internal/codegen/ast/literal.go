package ast

import "strings"

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

func (s *LiteralExpr) Generate(builder *Builder) error {
	return builder.WriteString(s.Literal)
}

//NewQuotedLiteral returns C# string literal expression
func NewQuotedLiteral(text string) *LiteralExpr {
	return &LiteralExpr{Literal: Quote(text)}
}

//Quote returns C# regular string literal
func Quote(text string) string {
	return `"` + quoteReplacer.Replace(text) + `"`
}

//QuoteVerbatim returns C# verbatim string literal
func QuoteVerbatim(text string) string {
	return `@"` + strings.ReplaceAll(text, `"`, `""`) + `"`
}

func NewLiteral(text string) *LiteralExpr {
	return &LiteralExpr{Literal: text}
}
