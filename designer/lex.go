package designer

import (
	"bytes"
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	lineCommentToken
	directiveToken
	blockCommentToken
	verbatimStringToken
	stringToken
	charToken
	identifierToken
	anyToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var lineCommentMatcher = parsly.NewToken(lineCommentToken, "LineComment", &lineMatch{prefix: "//"})
var directiveMatcher = parsly.NewToken(directiveToken, "Directive", &lineMatch{prefix: "#"})
var blockCommentMatcher = parsly.NewToken(blockCommentToken, "BlockComment", matcher.NewSeqBlock("/*", "*/"))
var verbatimStringMatcher = parsly.NewToken(verbatimStringToken, "VerbatimString", &verbatimStringMatch{})
var stringMatcher = parsly.NewToken(stringToken, "String", matcher.NewBlock('"', '"', '\\'))
var charMatcher = parsly.NewToken(charToken, "Char", matcher.NewBlock('\'', '\'', '\\'))
var identifierMatcher = parsly.NewToken(identifierToken, "Identifier", &identifierMatch{})
var anyMatcher = parsly.NewToken(anyToken, "Any", &anyMatch{})

type anyMatch struct{}

func (a *anyMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos < cursor.InputSize {
		return 1
	}
	return 0
}

//lineMatch matches text from prefix to the end of line
type lineMatch struct {
	prefix string
}

func (l *lineMatch) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:cursor.InputSize]
	if !bytes.HasPrefix(input, []byte(l.prefix)) {
		return 0
	}
	pos := len(l.prefix)
	for pos < len(input) && input[pos] != '\n' {
		pos++
	}
	return pos
}

//verbatimStringMatch matches @"..." where "" stands for a quote
type verbatimStringMatch struct{}

func (v *verbatimStringMatch) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:cursor.InputSize]
	if len(input) < 3 || input[0] != '@' || input[1] != '"' {
		return 0
	}
	for pos := 2; pos < len(input); pos++ {
		if input[pos] != '"' {
			continue
		}
		if pos+1 < len(input) && input[pos+1] == '"' {
			pos++
			continue
		}
		return pos + 1
	}
	return 0
}

//identifierMatch matches qualified identifier i.e. this.label1, global::System.Drawing.Font
type identifierMatch struct{}

func (i *identifierMatch) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:cursor.InputSize]
	if len(input) == 0 || !isIdentifierStart(input[0]) {
		return 0
	}
	pos := 1
	for pos < len(input) {
		switch {
		case isIdentifierPart(input[pos]):
			pos++
		case input[pos] == '.' && pos+1 < len(input) && isIdentifierStart(input[pos+1]):
			pos += 2
		case input[pos] == ':' && pos+2 < len(input) && input[pos+1] == ':' && isIdentifierStart(input[pos+2]):
			pos += 3
		default:
			return pos
		}
	}
	return pos
}

func isIdentifierStart(b byte) bool {
	return isLetter(b) || b == '@'
}

func isIdentifierPart(b byte) bool {
	return isLetter(b) || (b >= '0' && b <= '9')
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
