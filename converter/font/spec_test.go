package font

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/viant/resxgen/internal/codegen/ast"
	"github.com/viant/resxgen/locale"
	"testing"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		value       string
		culture     *locale.Culture
		expect      *Spec
		expectErr   error
	}{
		{
			description: "name only",
			value:       "Microsoft Sans Serif",
			expect:      &Spec{Name: "Microsoft Sans Serif", Size: 8.25, Unit: UnitPoint, Style: "Regular"},
		},
		{
			description: "name with trailing separator",
			value:       "Tahoma,",
			expect:      &Spec{Name: "Tahoma", Size: 8.25, Unit: UnitPoint, Style: "Regular"},
		},
		{
			description: "last style token wins",
			value:       "Name, 8.25pt, style=Italic, Bold",
			expect:      &Spec{Name: "Name", Size: 8.25, Unit: UnitPoint, Style: "Bold"},
		},
		{
			description: "pixel unit",
			value:       "Tahoma, 12px",
			expect:      &Spec{Name: "Tahoma", Size: 12, Unit: UnitPixel, Style: "Regular"},
		},
		{
			description: "size without unit",
			value:       " Segoe UI, 10 ",
			expect:      &Spec{Name: "Segoe UI", Size: 10, Unit: UnitPoint, Style: "Regular"},
		},
		{
			description: "case insensitive style marker",
			value:       "Arial, 9.75pt, STYLE=Underline",
			expect:      &Spec{Name: "Arial", Size: 9.75, Unit: UnitPoint, Style: "Underline"},
		},
		{
			description: "style without size",
			value:       "Arial, style=Bold",
			expect:      &Spec{Name: "Arial", Size: 8.25, Unit: UnitPoint, Style: "Bold"},
		},
		{
			description: "custom list separator",
			value:       "Arial; 11world; style=Bold; Italic",
			culture:     &locale.Culture{ListSeparator: ';'},
			expect:      &Spec{Name: "Arial", Size: 11, Unit: UnitWorld, Style: "Italic"},
		},
		{
			description: "unknown unit",
			value:       "Arial, 8furlong",
			expectErr:   ErrUnknownGraphicsUnit,
		},
		{
			description: "culture specific decimal",
			value:       "Arial, 8,25pt",
			expectErr:   ErrInvalidSizeFormat,
		},
	}

	for _, testCase := range testCases {
		culture := testCase.culture
		if culture == nil {
			culture = locale.Invariant()
		}
		actual, err := Parse(testCase.value, culture)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestParse_Empty(t *testing.T) {
	spec, err := Parse("   ", nil)
	assert.Nil(t, err)
	assert.Nil(t, spec)
}

func TestSpec_CtorArgs(t *testing.T) {
	culture := locale.Invariant()
	spec, err := Parse("Name, 8.25pt, style=Italic, Bold", culture)
	if !assert.Nil(t, err) {
		return
	}
	actual, err := ast.Stringify(ast.NewNewExpr("System.Drawing.Font", spec.CtorArgs(culture)...))
	assert.Nil(t, err)
	assert.EqualValues(t, `new System.Drawing.Font("Name", 8.25F, System.Drawing.FontStyle.Bold, System.Drawing.GraphicsUnit.Point)`, actual)

	defaults, _ := Parse(`My "Font"`, culture)
	actual, _ = ast.Stringify(ast.NewNewExpr("System.Drawing.Font", defaults.CtorArgs(culture)...))
	assert.EqualValues(t, `new System.Drawing.Font("My \"Font\"", 8.25F, System.Drawing.FontStyle.Regular, System.Drawing.GraphicsUnit.Point)`, actual)
}
