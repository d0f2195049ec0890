package ast

const (
	LangCS = "cs"

	defaultIndent = "\t"
)

type Options struct {
	Lang   string
	Indent string
}
