package cmd

import (
	"github.com/stretchr/testify/assert"
	soptions "github.com/viant/resxgen/cmd/options"
	"os"
	"path"
	"testing"
)

func TestNew(t *testing.T) {
	projectDir := t.TempDir()
	designer := "namespace App\n{\n    partial class Main\n    {\n        private void InitializeComponent()\n        {\n            resources.ApplyResources(this, \"$this\");\n        }\n    }\n}\n"
	resx := `<?xml version="1.0" encoding="utf-8"?><root><data name="$this.Text" xml:space="preserve"><value>Main</value></data></root>`
	assert.Nil(t, os.WriteFile(path.Join(projectDir, "Main.Designer.cs"), []byte(designer), 0644))
	assert.Nil(t, os.WriteFile(path.Join(projectDir, "Main.resx"), []byte(resx), 0644))

	var testCases = []struct {
		description string
		args        soptions.Arguments
		hasError    bool
	}{
		{description: "version", args: soptions.Arguments{"-v"}},
		{description: "generate", args: soptions.Arguments{"gen", "-p", projectDir, "-w", "1"}},
		{description: "default command", args: soptions.Arguments{"-p", projectDir}},
		{description: "metrics snapshot", args: soptions.Arguments{"gen", "-p", projectDir, "--metrics", path.Join(projectDir, "metrics.json")}},
		{description: "types", args: soptions.Arguments{"types", "-p", projectDir}},
		{description: "missing project", args: soptions.Arguments{"gen"}, hasError: true},
	}
	for _, testCase := range testCases {
		err := New("test", testCase.args)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
	}
	generated, err := os.ReadFile(path.Join(projectDir, "Generated", "Main.g.cs"))
	assert.Nil(t, err)
	assert.Contains(t, string(generated), `control.Text = manager.GetString("$this.Text");`)
	snapshot, err := os.ReadFile(path.Join(projectDir, "metrics.json"))
	assert.Nil(t, err)
	assert.Contains(t, string(snapshot), `"Name":"resxgen.convert","Count":1`)
}
