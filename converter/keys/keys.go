package keys

import (
	"github.com/viant/resxgen/internal/codegen/ast"
	"strings"
)

const (
	keysType  = "System.Windows.Forms.Keys"
	separator = "+"
)

var aliases = map[string]string{
	"Ctrl": "Control",
	"Del":  "Delete",
	"PgDn": "PageDown",
	"PgUp": "PageUp",
}

//Member returns Keys enum member name for a chord part
func Member(part string) string {
	if len(part) == 1 && part[0] >= '0' && part[0] <= '9' {
		return "D" + part
	}
	if alias, ok := aliases[part]; ok {
		return alias
	}
	return part
}

//Expression converts chord i.e. "Ctrl+Shift+A" into bitwise or of Keys members
func Expression(value string) ast.Expression {
	parts := strings.Split(value, separator)
	operands := make([]ast.Expression, 0, len(parts))
	for _, part := range parts {
		operands = append(operands, ast.NewLiteral(keysType+"."+Member(strings.TrimSpace(part))))
	}
	return ast.NewBinaryChain("|", operands...)
}
