package locale

import (
	"strconv"
	"strings"
)

//DefaultListSeparator is the list separator of the invariant culture
const DefaultListSeparator = ','

//Culture represents formatting rules used by resource value parsers
type Culture struct {
	ListSeparator rune
}

//Invariant returns invariant culture
func Invariant() *Culture {
	return &Culture{ListSeparator: DefaultListSeparator}
}

//Separator returns list separator, falling back to invariant one
func (c *Culture) Separator() rune {
	if c == nil || c.ListSeparator == 0 {
		return DefaultListSeparator
	}
	return c.ListSeparator
}

//ParseFloat parses text using invariant numeric rules
func (c *Culture) ParseFloat(text string) (float32, error) {
	value, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, err
	}
	return float32(value), nil
}

//FormatFloat formats value as invariant float literal text
func (c *Culture) FormatFloat(value float32) string {
	return strconv.FormatFloat(float64(value), 'f', -1, 32)
}

//TrimSeparators trims list separator and spaces from both ends
func (c *Culture) TrimSeparators(text string) string {
	sep := c.Separator()
	return strings.TrimFunc(text, func(r rune) bool {
		return r == sep || r == ' '
	})
}

//TrimTrailingSeparators trims list separator and spaces from the end
func (c *Culture) TrimTrailingSeparators(text string) string {
	sep := c.Separator()
	return strings.TrimRightFunc(text, func(r rune) bool {
		return r == sep || r == ' '
	})
}
