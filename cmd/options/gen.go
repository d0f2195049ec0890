package options

import (
	"context"
	"github.com/viant/resxgen/config"
)

type Gen struct {
	Project
	Dest      string `short:"d" long:"dest" description:"generated sources location, defaults to <project>/Generated"`
	ConfigURL string `short:"c" long:"config" description:"yaml or json config location"`
	Separator string `short:"s" long:"sep" description:"list separator of the resource culture" `
	Namespace string `short:"n" long:"namespace" description:"generated interceptors namespace"`
	Workers   int    `short:"w" long:"workers" description:"number of designer files generated concurrently"`
	Debug     bool   `long:"debug" description:"print generation log"`
	Metrics   string `long:"metrics" description:"JSON counters snapshot location"`
}

func (g *Gen) Init() error {
	if err := g.Project.Init(); err != nil && g.ConfigURL == "" {
		return err
	}
	if g.Dest != "" {
		g.Dest = ensureAbsPath(g.Dest)
	}
	if g.Metrics != "" {
		g.Metrics = ensureAbsPath(g.Metrics)
	}
	if g.ConfigURL != "" {
		expandRelativeIfNeeded(&g.ConfigURL, g.Location)
	}
	return nil
}

//Config returns generator config, values set on command line take precedence over config file
func (g *Gen) Config(ctx context.Context) (*config.Config, error) {
	ret := &config.Config{}
	if g.ConfigURL != "" {
		loaded, err := config.Load(ctx, fs, g.ConfigURL)
		if err != nil {
			return nil, err
		}
		ret = loaded
		if ret.ProjectURL != "" {
			ret.ProjectURL = ensureAbsPath(ret.ProjectURL)
		}
	}
	ret.MergeFrom(&config.Config{
		ProjectURL:    g.Location,
		DestURL:       g.Dest,
		Namespace:     g.Namespace,
		ListSeparator: g.Separator,
		Concurrency:   g.Workers,
		Debug:         g.Debug,
		MetricsURL:    g.Metrics,
	})
	ret.Init()
	return ret, ret.Validate()
}
