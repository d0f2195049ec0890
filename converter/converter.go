package converter

import (
	"encoding/base64"
	"github.com/pkg/errors"
	"github.com/viant/resxgen/converter/font"
	"github.com/viant/resxgen/converter/keys"
	"github.com/viant/resxgen/converter/layout"
	"github.com/viant/resxgen/internal/codegen/ast"
	"github.com/viant/resxgen/locale"
	"github.com/viant/resxgen/resource"
	"strconv"
	"strings"
	"unicode"
)

type (
	//Converter converts raw resource value into outcome for the target property expression
	Converter interface {
		Convert(entry *resource.Entry, target ast.Expression, culture *locale.Culture) (*Outcome, error)
	}

	//Func adapts function to Converter
	Func func(entry *resource.Entry, target ast.Expression, culture *locale.Culture) (*Outcome, error)

	Passthrough struct{}
	Boolean     struct{}
	Char        struct{}
	Null        struct{}
	Keys        struct{}
	Font        struct{}
	TableLayout struct{}

	//Constructor renders "new Type(raw)"
	Constructor struct {
		Type string
	}

	//FloatPair renders "new Type(raw)" for integral pairs only
	FloatPair struct {
		Type string
	}

	//Enum renders "Type.raw"
	Enum struct {
		Type string
	}

	//Flags renders flag list as bitwise or of Type members
	Flags struct {
		Type      string
		Separator string
	}

	//Binary embeds base64 encoded payload and constructs Type from a memory stream
	Binary struct {
		Type string
	}
)

func (f Func) Convert(entry *resource.Entry, target ast.Expression, culture *locale.Culture) (*Outcome, error) {
	return f(entry, target, culture)
}

func (Passthrough) Convert(entry *resource.Entry, _ ast.Expression, _ *locale.Culture) (*Outcome, error) {
	return NewExpression(ast.NewLiteral(entry.Value)), nil
}

func (Boolean) Convert(entry *resource.Entry, _ ast.Expression, _ *locale.Culture) (*Outcome, error) {
	return NewExpression(ast.NewLiteral(strings.ToLower(entry.Value))), nil
}

func (Char) Convert(entry *resource.Entry, _ ast.Expression, _ *locale.Culture) (*Outcome, error) {
	value := entry.Value
	switch value {
	case `'`, `\`:
		value = `\` + value
	}
	return NewExpression(ast.NewLiteral("'" + value + "'")), nil
}

func (Null) Convert(*resource.Entry, ast.Expression, *locale.Culture) (*Outcome, error) {
	return NewExpression(ast.NewLiteral("null")), nil
}

func (c *Constructor) Convert(entry *resource.Entry, _ ast.Expression, _ *locale.Culture) (*Outcome, error) {
	return NewExpression(ast.NewNewExpr(c.Type, ast.NewLiteral(entry.Value))), nil
}

func (c *FloatPair) Convert(entry *resource.Entry, _ ast.Expression, _ *locale.Culture) (*Outcome, error) {
	if strings.Contains(entry.Value, ".") {
		return nil, errors.Wrapf(ErrUnsupportedFractionalValue, "%v: %v", c.Type, entry.Value)
	}
	return NewExpression(ast.NewNewExpr(c.Type, ast.NewLiteral(entry.Value))), nil
}

func (e *Enum) Convert(entry *resource.Entry, _ ast.Expression, _ *locale.Culture) (*Outcome, error) {
	return NewExpression(ast.NewLiteral(e.Type + "." + entry.Value)), nil
}

func (f *Flags) Convert(entry *resource.Entry, _ ast.Expression, _ *locale.Culture) (*Outcome, error) {
	members := strings.Split(entry.Value, f.Separator)
	operands := make([]ast.Expression, 0, len(members))
	for _, member := range members {
		operands = append(operands, ast.NewLiteral(f.Type+"."+member))
	}
	return NewExpression(ast.NewBinaryChain("|", operands...)), nil
}

func (Keys) Convert(entry *resource.Entry, _ ast.Expression, _ *locale.Culture) (*Outcome, error) {
	return NewExpression(keys.Expression(entry.Value)), nil
}

func (Font) Convert(entry *resource.Entry, _ ast.Expression, culture *locale.Culture) (*Outcome, error) {
	spec, err := font.Parse(entry.Value, culture)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return Ignored(), nil
	}
	return NewExpression(ast.NewNewExpr(fontType, spec.CtorArgs(culture)...)), nil
}

func (TableLayout) Convert(entry *resource.Entry, target ast.Expression, culture *locale.Culture) (*Outcome, error) {
	settings, err := layout.Parse(entry.Value, culture)
	if err != nil {
		return nil, err
	}
	return NewStatementBlock(settings.Statements(target, culture)), nil
}

func (b *Binary) Convert(entry *resource.Entry, target ast.Expression, _ *locale.Culture) (*Outcome, error) {
	payload := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, entry.Value)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedBinary, "%v: %v", b.Type, err)
	}
	bytes := ast.NewIdent("bytes")
	stream := ast.NewIdent("ms")
	return NewStatementBlock(ast.Block{ast.NewScopeBlock(
		ast.NewAssign(bytes, ast.NewLiteral(byteArray(data))),
		ast.NewUsing(stream, ast.NewNewExpr(memoryStreamType, bytes)),
		ast.NewAssign(target, ast.NewNewExpr(b.Type, stream)),
	)}), nil
}

func byteArray(data []byte) string {
	builder := strings.Builder{}
	builder.Grow(len("new byte[] {}") + 4*len(data))
	builder.WriteString("new byte[] {")
	for _, b := range data {
		builder.WriteString(strconv.Itoa(int(b)))
		builder.WriteByte(',')
	}
	builder.WriteString("}")
	return builder.String()
}
