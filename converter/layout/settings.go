package layout

import (
	"encoding/xml"
	"github.com/pkg/errors"
	"github.com/viant/resxgen/internal/codegen/ast"
	"github.com/viant/resxgen/locale"
	"io"
	"strconv"
	"strings"
)

const (
	settingsVariable = "_settings"
	createSettings   = "(System.Windows.Forms.TableLayoutSettings)System.Activator.CreateInstance(typeof(System.Windows.Forms.TableLayoutSettings), nonPublic: true)"

	controlElement = "Control"
	columnsElement = "Columns"
	rowsElement    = "Rows"
	stylesAttr     = "Styles"
)

type (
	//Placement represents control cell position
	Placement struct {
		Name       string
		Row        int
		RowSpan    int
		Column     int
		ColumnSpan int
	}

	//Settings represents decoded table layout settings
	Settings struct {
		Controls     []*Placement
		ColumnStyles []*Style
		RowStyles    []*Style
	}
)

//NewPlacement creates placement with layout defaults
func NewPlacement(name string) *Placement {
	return &Placement{Name: name, Row: -1, RowSpan: 1, Column: -1, ColumnSpan: 1}
}

//Parse decodes serialized TableLayoutSettings fragment
func Parse(value string, culture *locale.Culture) (*Settings, error) {
	decoder := xml.NewDecoder(strings.NewReader(value))
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil //fragment text is already decoded
	}
	settings := &Settings{}
	var columns, rows []string
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "invalid table layout settings")
		}
		element, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch element.Name.Local {
		case controlElement:
			if placement := newPlacement(element.Attr); placement != nil {
				settings.Controls = append(settings.Controls, placement)
			}
		case columnsElement:
			columns = append(columns, attrValue(element.Attr, stylesAttr))
		case rowsElement:
			rows = append(rows, attrValue(element.Attr, stylesAttr))
		}
	}
	for _, styles := range columns {
		settings.ColumnStyles = append(settings.ColumnStyles, ParseStyles(styles, culture)...)
	}
	for _, styles := range rows {
		settings.RowStyles = append(settings.RowStyles, ParseStyles(styles, culture)...)
	}
	return settings, nil
}

func newPlacement(attrs []xml.Attr) *Placement {
	name := attrValue(attrs, "Name")
	if name == "" {
		return nil
	}
	placement := NewPlacement(name)
	placement.Row = intAttr(attrs, "Row", placement.Row)
	placement.RowSpan = intAttr(attrs, "RowSpan", placement.RowSpan)
	placement.Column = intAttr(attrs, "Column", placement.Column)
	placement.ColumnSpan = intAttr(attrs, "ColumnSpan", placement.ColumnSpan)
	return placement
}

func attrValue(attrs []xml.Attr, name string) string {
	for _, attr := range attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func intAttr(attrs []xml.Attr, name string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(attrValue(attrs, name)))
	if err != nil {
		return defaultValue
	}
	return value
}

//Statements returns scoped statements building settings and assigning them to target
func (s *Settings) Statements(target ast.Expression, culture *locale.Culture) ast.Block {
	if culture == nil {
		culture = locale.Invariant()
	}
	variable := ast.NewIdent(settingsVariable)
	body := ast.Block{ast.NewAssign(variable, ast.NewLiteral(createSettings))}
	for _, control := range s.Controls {
		name := ast.NewQuotedLiteral(control.Name)
		body.Append(
			settingsCall("SetRow", name, control.Row),
			settingsCall("SetColumn", name, control.Column),
			settingsCall("SetRowSpan", name, control.RowSpan),
			settingsCall("SetColumnSpan", name, control.ColumnSpan),
		)
	}
	body.Append(styleCalls("ColumnStyles", s.ColumnStyles, culture)...)
	body.Append(styleCalls("RowStyles", s.RowStyles, culture)...)
	body.Append(ast.NewAssign(target, variable))
	return ast.Block{ast.NewScopeBlock(body...)}
}

func settingsCall(method string, name ast.Expression, value int) ast.Statement {
	return ast.NewStatementExpression(ast.NewCallExpr(ast.NewIdent(settingsVariable), method, name, ast.NewLiteral(strconv.Itoa(value))))
}

func styleCalls(collection string, styles []*Style, culture *locale.Culture) []ast.Statement {
	var result []ast.Statement
	receiver := ast.NewIdent(settingsVariable + "." + collection)
	for _, style := range styles {
		width := ast.NewLiteral(culture.FormatFloat(style.Width) + "F")
		result = append(result, ast.NewStatementExpression(ast.NewCallExpr(receiver, "Add", ast.NewNewExpr("", ast.NewLiteral(style.SizeType.Expression()), width))))
	}
	return result
}
