package options

import (
	"github.com/viant/resxgen/config"
)

type Project struct {
	Location string `short:"p" long:"proj" description:"project location"`
}

func (p *Project) Init() error {
	if p.Location == "" {
		return config.ErrMissingProject
	}
	p.Location = ensureAbsPath(p.Location)
	return nil
}

type Types struct {
	Project
}

func (t *Types) Init() error {
	return t.Project.Init()
}
