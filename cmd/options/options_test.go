package options

import (
	"context"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/viant/resxgen/config"
	"os"
	"path"
	"testing"
)

func TestArguments(t *testing.T) {
	var testCases = []struct {
		description string
		args        Arguments
		expect      Arguments
		help        bool
	}{
		{description: "explicit command", args: Arguments{"types", "-p", "/tmp"}, expect: Arguments{"types", "-p", "/tmp"}},
		{description: "default command", args: Arguments{"-p", "/tmp"}, expect: Arguments{"gen", "-p", "/tmp"}},
		{description: "version", args: Arguments{"-v"}, expect: Arguments{"-v"}},
		{description: "help", args: Arguments{"gen", "-h"}, expect: Arguments{"gen", "-h"}, help: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.args.Normalize(), testCase.description)
		assert.Equal(t, testCase.help, testCase.args.IsHelp(), testCase.description)
	}
}

func TestGen_Config(t *testing.T) {
	tempDir := t.TempDir()
	configURL := path.Join(tempDir, "resxgen.yaml")
	assert.Nil(t, os.WriteFile(configURL, []byte("ProjectURL: /tmp/other\nNamespace: App.Generated\nConcurrency: 2\n"), 0644))

	args := Arguments{"gen", "-p", tempDir, "-c", configURL, "-s", ";", "--debug"}
	opts := NewOptions(args)
	_, err := flags.ParseArgs(opts, args)
	if !assert.Nil(t, err) {
		return
	}
	assert.Nil(t, opts.Init(context.Background()))
	cfg, err := opts.Gen.Config(context.Background())
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, tempDir, cfg.ProjectURL)
	assert.Equal(t, "App.Generated", cfg.Namespace)
	assert.Equal(t, ";", cfg.ListSeparator)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Debug)
}

func TestGen_MissingProject(t *testing.T) {
	gen := &Gen{}
	assert.Equal(t, config.ErrMissingProject, gen.Init())
}
