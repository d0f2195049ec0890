package font

import (
	"github.com/pkg/errors"
	"github.com/viant/resxgen/internal/codegen/ast"
	"github.com/viant/resxgen/locale"
	"strings"
	"unicode"
)

const (
	DefaultSize  float32 = 8.25
	DefaultStyle         = "Regular"
	styleMarker          = "style="
)

//Spec represents parsed font descriptor
type Spec struct {
	Name  string
	Size  float32
	Unit  Unit
	Style string
}

//CtorArgs returns System.Drawing.Font constructor arguments
func (s *Spec) CtorArgs(culture *locale.Culture) []ast.Expression {
	return []ast.Expression{
		ast.NewQuotedLiteral(s.Name),
		ast.NewLiteral(culture.FormatFloat(s.Size) + "F"),
		ast.NewLiteral(fontStyleType + "." + s.Style),
		ast.NewLiteral(s.Unit.Expression()),
	}
}

//Parse parses font descriptor formatted as "name[, size[unit][, style=style1[, style2...]]]",
//it returns nil spec for an empty descriptor
func Parse(value string, culture *locale.Culture) (*Spec, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if culture == nil {
		culture = locale.Invariant()
	}
	spec := &Spec{Name: value, Size: DefaultSize, Unit: UnitPoint, Style: DefaultStyle}
	separator := string(culture.Separator())
	nameIndex := strings.Index(value, separator)
	if nameIndex < 0 {
		return spec, nil
	}
	spec.Name = value[:nameIndex]
	remainder := value[nameIndex+len(separator):]
	if remainder == "" {
		return spec, nil
	}
	sizeText, styleText := remainder, ""
	if styleIndex := indexFold(remainder, styleMarker); styleIndex != -1 {
		sizeText, styleText = remainder[:styleIndex], remainder[styleIndex:]
	}
	if err := spec.parseSize(sizeText, culture); err != nil {
		return nil, err
	}
	if styleText != "" {
		spec.parseStyle(styleText[len(styleMarker):], separator)
	}
	return spec, nil
}

//parseSize parses text like " 8.25pt, " where magnitude and unit are both optional
func (s *Spec) parseSize(text string, culture *locale.Culture) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	splitPoint := strings.IndexFunc(text, unicode.IsLetter)
	if splitPoint == -1 {
		splitPoint = len(text)
	}
	if splitPoint > 0 {
		size := culture.TrimSeparators(text[:splitPoint])
		value, err := culture.ParseFloat(size)
		if err != nil {
			return errors.Wrapf(ErrInvalidSizeFormat, "%q", size)
		}
		s.Size = value
	}
	if splitPoint < len(text) {
		unit, err := ParseUnit(culture.TrimTrailingSeparators(text[splitPoint:]))
		if err != nil {
			return err
		}
		s.Unit = unit
	}
	return nil
}

//parseStyle applies style tokens in order; each token replaces the previous one
func (s *Spec) parseStyle(text string, separator string) {
	for _, token := range strings.Split(text, separator) {
		if token = strings.TrimSpace(token); token != "" {
			s.Style = token
		}
	}
}

func indexFold(text, fragment string) int {
	for i := 0; i+len(fragment) <= len(text); i++ {
		if strings.EqualFold(text[i:i+len(fragment)], fragment) {
			return i
		}
	}
	return -1
}
