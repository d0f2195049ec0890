package layout

import (
	"github.com/viant/parsly"
	"unicode"
	"unicode/utf8"
)

const (
	letterToken int = iota
	digitToken
	nonLetterToken
	nonDigitToken
)

var letterMatcher = parsly.NewToken(letterToken, "Letters", newClassMatcher(unicode.IsLetter, true))
var digitMatcher = parsly.NewToken(digitToken, "Digits", newClassMatcher(unicode.IsDigit, true))
var nonLetterMatcher = parsly.NewToken(nonLetterToken, "Non letters", newClassMatcher(unicode.IsLetter, false))
var nonDigitMatcher = parsly.NewToken(nonDigitToken, "Non digits", newClassMatcher(unicode.IsDigit, false))

//classMatcher matches the longest run of runes whose class membership equals want
type classMatcher struct {
	class func(r rune) bool
	want  bool
}

func (m *classMatcher) Match(cursor *parsly.Cursor) (matched int) {
	for i := cursor.Pos; i < cursor.InputSize; {
		r, size := utf8.DecodeRune(cursor.Input[i:cursor.InputSize])
		if m.class(r) != m.want {
			return matched
		}
		matched += size
		i += size
	}
	return matched
}

func newClassMatcher(class func(r rune) bool, want bool) *classMatcher {
	return &classMatcher{class: class, want: want}
}
