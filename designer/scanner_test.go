package designer

import (
	"github.com/stretchr/testify/assert"
	"github.com/viant/toolbox"
	"os"
	"path"
	"testing"
)

func TestParse(t *testing.T) {
	baseDir := path.Join(toolbox.CallerDirectory(3), "testdata")
	URL := path.Join(baseDir, "Form1.Designer.cs")
	source, err := os.ReadFile(URL)
	if !assert.Nil(t, err) {
		return
	}
	file, err := Parse(URL, source)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "WinFormsApp1", file.Namespace)
	assert.Equal(t, "Form1", file.Class)
	assert.Equal(t, []string{"System", "System.Windows.Forms"}, file.Usings)
	assert.Equal(t, map[string]string{
		"components": "System.ComponentModel.IContainer",
		"label1":     "Label",
		"button1":    "System.Windows.Forms.Button",
	}, file.Fields)
	assert.Equal(t, []*Call{
		{Line: 33, Column: 23, Object: "label1", Owner: "label1", Type: "Label"},
		{Line: 38, Column: 23, Object: "this.button1", Owner: "button1", Type: "global::System.Windows.Forms.Button"},
		{Line: 46, Column: 23, Object: "this", Owner: "$this", Type: "global::WinFormsApp1.Form1"},
	}, file.Calls)
	assert.Equal(t, []*Call{
		{Line: 41, Column: 23, Object: "this.unknown", Owner: "unknown"},
	}, file.Unresolved)
}

func TestParse_Source(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		expect      []*Call
	}{
		{
			description: "file scoped namespace with byte order mark",
			source:      "\xEF\xBB\xBFnamespace App;\npublic partial class Main\n{\n\tvoid InitializeComponent()\n\t{\n\t\tresources.ApplyResources(this, \"$this\");\n\t}\n}\n",
			expect:      []*Call{{Line: 6, Column: 13, Object: "this", Owner: "$this", Type: "global::App.Main"}},
		},
		{
			description: "calls outside InitializeComponent are ignored",
			source:      "class Main\n{\n\tvoid Other()\n\t{\n\t\tresources.ApplyResources(this, \"$this\");\n\t}\n}\n",
		},
		{
			description: "verbatim strings and chars do not break scanning",
			source:      "class Main\n{\n\tvoid InitializeComponent()\n\t{\n\t\tvar a = @\"}\"\"{\";\n\t\tvar c = '}';\n\t\tresources.ApplyResources(this, \"$this\");\n\t}\n}\n",
			expect:      []*Call{{Line: 7, Column: 13, Object: "this", Owner: "$this", Type: "global::Main"}},
		},
	}

	for _, testCase := range testCases {
		file, err := Parse("mem://localhost/Main.Designer.cs", []byte(testCase.source))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, file.Calls, testCase.description)
	}
}
