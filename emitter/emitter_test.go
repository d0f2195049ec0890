package emitter

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/viant/resxgen/converter"
	"github.com/viant/resxgen/locale"
	"github.com/viant/resxgen/logger"
	"github.com/viant/resxgen/resource"
	"strings"
	"testing"
)

const formResx = `<?xml version="1.0" encoding="utf-8"?>
<root>
  <data name="label1.Text" xml:space="preserve"><value>Hello</value></data>
  <data name="label1.Location" type="System.Drawing.Point, System.Drawing"><value>12, 9</value></data>
  <data name="label1.ForeColor" type="System.Drawing.Color, System.Drawing"><value>Red</value></data>
  <data name="label1.TabIndex" type="System.Int32, mscorlib"><value>0</value></data>
  <data name="panel1.Dock" type="System.Windows.Forms.DockStyle, System.Windows.Forms"><value>Fill</value></data>
  <data name="timer1.TrayLocation" type="System.Drawing.Point, System.Drawing"><value>17, 17</value></data>
  <data name="$this.AutoScaleDimensions" type="System.Drawing.SizeF, System.Drawing"><value>6.5, 13</value></data>
</root>`

func TestEmitter_Emit(t *testing.T) {
	catalog, err := resource.Parse("mem://localhost/Form1.resx", strings.NewReader(formResx))
	if !assert.Nil(t, err) {
		return
	}
	var testCases = []struct {
		description    string
		objectName     string
		expect         []string
		expectFallback bool
		expectErr      error
	}{
		{
			description: "mixed resolved and unresolved",
			objectName:  "label1",
			expect: []string{
				`control.Text = manager.GetString("label1.Text");`,
				`control.Location = new System.Drawing.Point(12, 9);`,
				`System.Diagnostics.Debug.WriteLine("ApplyResources1(label1.ForeColor of type System.Drawing.Color, System.Drawing)");`,
				`control.TabIndex = 0;`,
				`manager.ApplyResources(value, objectName);`,
			},
			expectFallback: true,
		},
		{
			description: "fully resolved",
			objectName:  "panel1",
			expect:      []string{`control.Dock = System.Windows.Forms.DockStyle.Fill;`},
		},
		{
			description: "designer only property",
			objectName:  "timer1",
		},
		{
			description: "owner without resources",
			objectName:  "button1",
		},
		{
			description: "fatal conversion error",
			objectName:  "$this",
			expectErr:   converter.ErrUnsupportedFractionalValue,
		},
	}

	var unresolved []string
	emitter := New(converter.NewRegistry(locale.Invariant()), WithLogger(logger.NewLogger(&unresolvedRecorder{items: &unresolved})))
	for _, testCase := range testCases {
		block, err := emitter.Emit(catalog, testCase.objectName, "ApplyResources1")
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			assert.Contains(t, err.Error(), testCase.objectName, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		lines, err := block.Lines("\t")
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, lines, testCase.description)
		assert.Equal(t, testCase.expectFallback, block.FallbackNeeded, testCase.description)
		assert.Equal(t, testCase.objectName, block.Owner, testCase.description)
	}
	assert.Equal(t, []string{"label1.ForeColor"}, unresolved)
}

type unresolvedRecorder struct {
	items *[]string
}

func (r *unresolvedRecorder) Unresolved() logger.Unresolved {
	return func(label, owner, property, tag string) {
		*r.items = append(*r.items, owner+"."+property)
	}
}

func (r *unresolvedRecorder) Skipped() logger.Skipped     { return nil }
func (r *unresolvedRecorder) Generated() logger.Generated { return nil }
func (r *unresolvedRecorder) Log() logger.Log             { return nil }
