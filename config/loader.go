package config

import (
	"context"
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
	"path"
	"strings"
)

const (
	yamlExt = ".yaml"
	ymlExt  = ".yml"
)

//Load loads config from YAML or JSON location
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %v", URL)
	}
	ret := &Config{}
	if err = loadTarget(data, strings.ToLower(path.Ext(URL)), ret); err != nil {
		return nil, errors.Wrapf(err, "failed to decode config: %v", URL)
	}
	return ret, nil
}

func loadTarget(data []byte, ext string, target interface{}) error {
	switch ext {
	case yamlExt, ymlExt:
		return yaml.Unmarshal(data, target)
	default:
		return json.Unmarshal(data, target)
	}
}
