package ast

import (
	"fmt"
	"strings"
)

//Builder renders nodes into source text
type Builder struct {
	Options
	State  *Scope
	buffer *strings.Builder
	indent string
}

func (b *Builder) WriteString(s string) error {
	_, err := b.buffer.WriteString(s)
	return err
}

//WriteIndentedString writes s, indenting every new line with the builder indentation
func (b *Builder) WriteIndentedString(s string) error {
	if b.indent != "" {
		s = strings.ReplaceAll(s, "\n", "\n"+b.indent)
	}
	return b.WriteString(s)
}

//IncIndent returns a builder sharing the same buffer with increased indentation and nested scope
func (b *Builder) IncIndent(indent string) *Builder {
	return &Builder{
		Options: b.Options,
		State:   b.State.NextScope(),
		buffer:  b.buffer,
		indent:  b.indent + indent,
	}
}

func (b *Builder) String() string {
	return b.buffer.String()
}

//Lines returns generated text split into lines, without the leading line break
func (b *Builder) Lines() []string {
	text := strings.TrimPrefix(b.buffer.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func NewBuilder(options Options, declaredVariables ...string) *Builder {
	if options.Lang == "" {
		options.Lang = LangCS
	}
	if options.Indent == "" {
		options.Indent = defaultIndent
	}
	return &Builder{
		Options: options,
		State:   NewScope(declaredVariables...),
		buffer:  &strings.Builder{},
	}
}

//Stringify renders node with default options
func Stringify(node Node, declaredVariables ...string) (string, error) {
	builder := NewBuilder(Options{}, declaredVariables...)
	if err := node.Generate(builder); err != nil {
		return "", err
	}
	return strings.TrimPrefix(builder.String(), "\n"), nil
}

func unsupportedOptionUse(builder *Builder, node Node) error {
	return fmt.Errorf("unsupported option %T %v", node, builder.Lang)
}
