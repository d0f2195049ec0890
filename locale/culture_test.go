package locale

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCulture_ParseFloat(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      float32
		hasError    bool
	}{
		{description: "decimal point", text: "8.25", expect: 8.25},
		{description: "integer", text: "12", expect: 12},
		{description: "comma decimal is not invariant", text: "8,25", hasError: true},
		{description: "empty", text: "", hasError: true},
	}
	culture := Invariant()
	for _, testCase := range testCases {
		actual, err := culture.ParseFloat(testCase.text)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestCulture_FormatFloat(t *testing.T) {
	culture := Invariant()
	assert.EqualValues(t, "8.25", culture.FormatFloat(8.25))
	assert.EqualValues(t, "30", culture.FormatFloat(30))
	assert.EqualValues(t, "23.3", culture.FormatFloat(23.3))
}

func TestCulture_Separator(t *testing.T) {
	var culture *Culture
	assert.EqualValues(t, ',', culture.Separator())
	assert.EqualValues(t, ';', (&Culture{ListSeparator: ';'}).Separator())
	assert.EqualValues(t, "8.25pt", Invariant().TrimSeparators(" , 8.25pt, "))
	assert.EqualValues(t, " pt", Invariant().TrimTrailingSeparators(" pt, "))
}
