package layout

import (
	"github.com/viant/parsly"
	"github.com/viant/resxgen/locale"
	"strings"
	"unicode"
)

const sizeTypeType = "System.Windows.Forms.SizeType"

//SizeType represents row or column size type
type SizeType string

const (
	SizeTypePercent  SizeType = "Percent"
	SizeTypeAbsolute SizeType = "Absolute"
	SizeTypeAutoSize SizeType = "AutoSize"
)

var sizeTypes = map[string]SizeType{
	string(SizeTypePercent):  SizeTypePercent,
	string(SizeTypeAbsolute): SizeTypeAbsolute,
	string(SizeTypeAutoSize): SizeTypeAutoSize,
}

//Expression returns qualified enum member
func (s SizeType) Expression() string {
	return sizeTypeType + "." + string(s)
}

//Style represents row or column style
type Style struct {
	SizeType SizeType
	Width    float32
}

//ParseStyles scans packed style list i.e. "Percent,23.3,Percent,46.7" or "Percent,23,3,Percent,46,7",
//where decimal separator depends on the culture the list was serialized with
func ParseStyles(text string, culture *locale.Culture) []*Style {
	if culture == nil {
		culture = locale.Invariant()
	}
	var result []*Style
	cursor := parsly.NewCursor("", []byte(text), 0)
	for cursor.Pos < cursor.InputSize {
		cursor.MatchOne(nonLetterMatcher)
		name := cursor.MatchOne(letterMatcher)
		if name.Code != letterToken {
			break
		}
		sizeType, known := sizeTypes[name.Text(cursor)]
		cursor.MatchOne(nonDigitMatcher)
		integer := cursor.MatchOne(digitMatcher)
		if integer.Code != digitToken {
			break
		}
		number := strings.Builder{}
		number.WriteString(integer.Text(cursor))
		number.WriteByte('.')
		fraction := ""
		if matched := cursor.MatchOne(nonLetterMatcher); matched.Code == nonLetterToken {
			fraction = digitsOnly(matched.Text(cursor))
		}
		if fraction == "" {
			fraction = "0"
		}
		number.WriteString(fraction)
		if !known {
			continue
		}
		width, err := culture.ParseFloat(number.String())
		if err != nil {
			width = 0
		}
		result = append(result, &Style{SizeType: sizeType, Width: width})
	}
	return result
}

func digitsOnly(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, text)
}
