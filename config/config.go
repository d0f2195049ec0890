package config

import (
	"github.com/pkg/errors"
	"github.com/viant/afs/url"
	"github.com/viant/resxgen/internal/setter"
	"github.com/viant/resxgen/locale"
	"runtime"
	"unicode/utf8"
)

const (
	DefaultNamespace     = "ApplyResourcesSourceGen"
	DefaultDestFolder    = "Generated"
	DefaultListSeparator = ","
)

var ErrMissingProject = errors.New("project location was empty")

//Config represents generator configuration
type Config struct {
	ProjectURL    string `json:",omitempty" yaml:"ProjectURL,omitempty"`
	DestURL       string `json:",omitempty" yaml:"DestURL,omitempty"`
	Namespace     string `json:",omitempty" yaml:"Namespace,omitempty"`
	ListSeparator string `json:",omitempty" yaml:"ListSeparator,omitempty"`
	Concurrency   int    `json:",omitempty" yaml:"Concurrency,omitempty"`
	Debug         bool   `json:",omitempty" yaml:"Debug,omitempty"`
	//MetricsURL is an optional location of JSON counters snapshot written after generation
	MetricsURL    string `json:",omitempty" yaml:"MetricsURL,omitempty"`
}

//Init initialises defaults
func (c *Config) Init() {
	setter.SetStringIfEmpty(&c.Namespace, DefaultNamespace)
	setter.SetStringIfEmpty(&c.ListSeparator, DefaultListSeparator)
	setter.SetIntIfZero(&c.Concurrency, runtime.NumCPU())
	if c.ProjectURL != "" {
		setter.SetStringIfEmpty(&c.DestURL, url.Join(c.ProjectURL, DefaultDestFolder))
	}
}

//Validate checks if config is valid
func (c *Config) Validate() error {
	if c.ProjectURL == "" {
		return ErrMissingProject
	}
	if utf8.RuneCountInString(c.ListSeparator) > 1 {
		return errors.Errorf("invalid list separator: %q, expected single character", c.ListSeparator)
	}
	if c.Concurrency < 0 {
		return errors.Errorf("invalid concurrency: %v", c.Concurrency)
	}
	return nil
}

//Culture returns culture used by resource value parsers
func (c *Config) Culture() *locale.Culture {
	culture := locale.Invariant()
	if r, _ := utf8.DecodeRuneInString(c.ListSeparator); r != utf8.RuneError {
		culture.ListSeparator = r
	}
	return culture
}

//MergeFrom overrides config with non empty values
func (c *Config) MergeFrom(override *Config) {
	if override == nil {
		return
	}
	if override.ProjectURL != "" {
		c.ProjectURL = override.ProjectURL
	}
	if override.DestURL != "" {
		c.DestURL = override.DestURL
	}
	if override.Namespace != "" {
		c.Namespace = override.Namespace
	}
	if override.ListSeparator != "" {
		c.ListSeparator = override.ListSeparator
	}
	if override.MetricsURL != "" {
		c.MetricsURL = override.MetricsURL
	}
	if override.Concurrency != 0 {
		c.Concurrency = override.Concurrency
	}
	setter.SetBoolIfFalse(&c.Debug, override.Debug)
}
