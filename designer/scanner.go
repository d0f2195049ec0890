package designer

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/viant/parsly"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	applyResources      = "ApplyResources"
	initializeComponent = "InitializeComponent"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

var fieldModifiers = map[string]bool{
	"private":   true,
	"protected": true,
	"internal":  true,
	"public":    true,
	"readonly":  true,
	"static":    true,
	"new":       true,
	"volatile":  true,
}

type token struct {
	code   int
	text   string
	offset int
}

func (t *token) is(text string) bool {
	return t.code == anyToken && t.text == text
}

//Parse scans designer source collecting declarations and InitializeComponent ApplyResources call sites
func Parse(URL string, source []byte) (*File, error) {
	source = bytes.TrimPrefix(source, byteOrderMark)
	tokens, err := tokenize(source)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan %v", URL)
	}
	scanner := &scanner{
		file:       &File{URL: URL, Fields: map[string]string{}},
		source:     source,
		tokens:     tokens,
		classDepth: -1,
		initDepth:  -1,
	}
	scanner.scan()
	scanner.file.resolve(scanner.calls)
	return scanner.file, nil
}

func tokenize(source []byte) ([]*token, error) {
	cursor := parsly.NewCursor("", source, 0)
	var result []*token
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceMatcher,
			lineCommentMatcher,
			directiveMatcher,
			blockCommentMatcher,
			verbatimStringMatcher,
			stringMatcher,
			charMatcher,
			identifierMatcher,
			anyMatcher,
		)
		switch matched.Code {
		case lineCommentToken, directiveToken, blockCommentToken:
		case parsly.EOF:
			return result, nil
		case parsly.Invalid:
			return nil, cursor.NewError(identifierMatcher)
		default:
			result = append(result, &token{code: matched.Code, text: matched.Text(cursor), offset: matched.Offset})
		}
	}
	return result, nil
}

type scanner struct {
	file         *File
	source       []byte
	tokens       []*token
	calls        []*Call
	depth        int
	classDepth   int
	initDepth    int
	pendingClass bool
	pendingInit  bool
	statement    []*token
}

func (s *scanner) scan() {
	for i := 0; i < len(s.tokens); i++ {
		tok := s.tokens[i]
		if tok.code == anyToken {
			s.punctuation(tok)
			continue
		}
		if tok.code == identifierToken {
			if s.declaration(i) {
				i++
				continue
			}
			if s.inInitializeComponent() && strings.HasSuffix(tok.text, "."+applyResources) {
				if next, call := s.call(i); call != nil {
					s.calls = append(s.calls, call)
					i = next
					continue
				}
			}
			if tok.text == initializeComponent && s.depth == s.classDepth && s.follows(i, "(", ")", "{") {
				s.pendingInit = true
			}
		}
		s.statement = append(s.statement, tok)
	}
}

//declaration handles namespace, using and class keywords, returns true when the next token was consumed
func (s *scanner) declaration(i int) bool {
	tok := s.tokens[i]
	if i+1 >= len(s.tokens) || s.tokens[i+1].code != identifierToken {
		return false
	}
	next := s.tokens[i+1].text
	switch tok.text {
	case "namespace":
		if s.file.Namespace == "" {
			s.file.Namespace = next
		}
	case "using":
		if s.classDepth != -1 || !s.follows(i+1, ";") {
			return false
		}
		s.file.Usings = append(s.file.Usings, next)
	case "class":
		if s.file.Class != "" {
			return false
		}
		s.file.Class = next
		s.pendingClass = true
	default:
		return false
	}
	s.statement = nil
	return true
}

func (s *scanner) punctuation(tok *token) {
	switch tok.text {
	case "{":
		s.depth++
		if s.pendingClass {
			s.classDepth = s.depth
			s.pendingClass = false
		}
		if s.pendingInit {
			s.initDepth = s.depth
			s.pendingInit = false
		}
		s.statement = nil
	case "}":
		if s.depth == s.initDepth {
			s.initDepth = -1
		}
		s.depth--
		s.statement = nil
	case ";", "=":
		if s.depth == s.classDepth {
			s.field()
		}
		s.statement = nil
	default:
		s.statement = append(s.statement, tok)
	}
}

func (s *scanner) field() {
	count := len(s.statement)
	if count < 2 {
		return
	}
	for i, tok := range s.statement {
		if tok.code != identifierToken {
			return
		}
		if i < count-2 && !fieldModifiers[tok.text] {
			return
		}
	}
	name := s.statement[count-1].text
	if strings.Contains(name, ".") {
		return
	}
	s.file.Fields[strings.TrimPrefix(name, "@")] = s.statement[count-2].text
}

func (s *scanner) inInitializeComponent() bool {
	return s.initDepth != -1 && s.depth >= s.initDepth
}

func (s *scanner) follows(i int, texts ...string) bool {
	for j, text := range texts {
		index := i + 1 + j
		if index >= len(s.tokens) || !s.tokens[index].is(text) {
			return false
		}
	}
	return true
}

//call parses "receiver.ApplyResources(object, "name")", it returns index of the closing parenthesis
func (s *scanner) call(i int) (int, *Call) {
	if !s.follows(i, "(") {
		return i, nil
	}
	var args [][]*token
	var current []*token
	depth := 0
	end := -1
	for j := i + 2; j < len(s.tokens) && end == -1; j++ {
		tok := s.tokens[j]
		switch {
		case tok.is("(") || tok.is("[") || tok.is("{"):
			depth++
		case tok.is(")") && depth == 0:
			args = append(args, current)
			end = j
			continue
		case tok.is(")") || tok.is("]") || tok.is("}"):
			depth--
		case tok.is(",") && depth == 0:
			args = append(args, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	if end == -1 || len(args) != 2 || len(args[0]) == 0 || len(args[1]) != 1 || args[1][0].code != stringToken {
		return i, nil
	}
	owner, err := strconv.Unquote(args[1][0].text)
	if err != nil {
		return i, nil
	}
	object := strings.Builder{}
	for _, tok := range args[0] {
		object.WriteString(tok.text)
	}
	tok := s.tokens[i]
	line, column := s.position(tok.offset + strings.LastIndex(tok.text, applyResources))
	return end, &Call{Line: line, Column: column, Object: object.String(), Owner: owner}
}

//position returns 1-based line and column of the offset
func (s *scanner) position(offset int) (int, int) {
	prefix := s.source[:offset]
	lineStart := bytes.LastIndexByte(prefix, '\n') + 1
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	return line, utf8.RuneCount(prefix[lineStart:]) + 1
}
