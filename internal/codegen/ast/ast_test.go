package ast

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestBlock_Stringify(t *testing.T) {

	var testCases = []struct {
		description string
		block       Block
		declared    []string
		expect      string
	}{
		{
			description: "member assign",
			declared:    []string{"control"},
			block: Block{
				NewAssign(NewIdent("control.Dock"), NewLiteral("System.Windows.Forms.DockStyle.Fill")),
			},
			expect: `control.Dock = System.Windows.Forms.DockStyle.Fill;`,
		},
		{
			description: "local declaration",
			block: Block{
				NewAssign(NewIdent("_settings"), NewLiteral("null")),
				NewAssign(NewIdent("_settings"), NewLiteral("other")),
			},
			expect: "var _settings = null;\n_settings = other;",
		},
		{
			description: "call statement",
			block: Block{
				NewStatementExpression(NewCallExpr(NewIdent("manager"), "ApplyResources", NewIdent("value"), NewIdent("objectName"))),
			},
			expect: `manager.ApplyResources(value, objectName);`,
		},
		{
			description: "scoped block",
			declared:    []string{"control"},
			block: Block{
				NewScopeBlock(
					NewAssign(NewIdent("bytes"), NewLiteral("new byte[] {1,2,}")),
					NewUsing(NewIdent("ms"), NewNewExpr("System.IO.MemoryStream", NewIdent("bytes"))),
					NewAssign(NewIdent("control.Image"), NewNewExpr("System.Drawing.Bitmap", NewIdent("ms"))),
				),
				NewScopeBlock(
					NewAssign(NewIdent("bytes"), NewLiteral("new byte[] {3,}")),
				),
			},
			expect: `{
	var bytes = new byte[] {1,2,};
	using var ms = new System.IO.MemoryStream(bytes);
	control.Image = new System.Drawing.Bitmap(ms);
}
{
	var bytes = new byte[] {3,};
}`,
		},
		{
			description: "binary chain",
			block: Block{
				NewAssign(NewIdent("control.Anchor"), NewBinaryChain("|", NewLiteral("A.Top"), NewLiteral("A.Left"), NewLiteral("A.Right"))),
			},
			expect: `control.Anchor = A.Top | A.Left | A.Right;`,
		},
		{
			description: "target typed new",
			block: Block{
				NewStatementExpression(NewCallExpr(NewIdent("_settings.ColumnStyles"), "Add", NewNewExpr("", NewLiteral("System.Windows.Forms.SizeType.Percent"), NewLiteral("50F")))),
			},
			expect: `_settings.ColumnStyles.Add(new (System.Windows.Forms.SizeType.Percent, 50F));`,
		},
	}

	for _, testCase := range testCases {
		builder := NewBuilder(Options{}, testCase.declared...)
		err := testCase.block.Generate(builder)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual := builder.String()
		assert.EqualValues(t, testCase.expect, strings.TrimSpace(actual), testCase.description)
	}
}

func TestBuilder_Lines(t *testing.T) {
	builder := NewBuilder(Options{Indent: "  "}, "control")
	block := Block{
		NewAssign(NewIdent("control.Text"), NewQuotedLiteral(`say "hi"`)),
		NewScopeBlock(NewAssign(NewIdent("x"), NewLiteral("1"))),
	}
	assert.Nil(t, block.Generate(builder))
	assert.EqualValues(t, []string{
		`control.Text = "say \"hi\"";`,
		`{`,
		`  var x = 1;`,
		`}`,
	}, builder.Lines())
}

func TestQuote(t *testing.T) {
	assert.EqualValues(t, `"a\\b"`, Quote(`a\b`))
	assert.EqualValues(t, `@"C:\src\Form1.Designer.cs"`, QuoteVerbatim(`C:\src\Form1.Designer.cs`))
	assert.EqualValues(t, `@"say ""x"""`, QuoteVerbatim(`say "x"`))
}

func TestUnsupportedLang(t *testing.T) {
	builder := NewBuilder(Options{Lang: "velty"})
	err := NewAssign(NewIdent("x"), NewLiteral("1")).Generate(builder)
	assert.NotNil(t, err)
}
