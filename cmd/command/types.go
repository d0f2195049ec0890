package command

import (
	"context"
	"github.com/pkg/errors"
	"github.com/viant/afs/option"
	"sort"
	"strings"
)

//Types returns sorted distinct type tags used by project resource files
func (s *Service) Types(ctx context.Context, projectURL string) ([]string, error) {
	objects, err := s.fs.List(ctx, projectURL, option.NewRecursive(true))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list project: %v", projectURL)
	}
	unique := map[string]bool{}
	var result []string
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(strings.ToLower(object.Name()), resxExt) {
			continue
		}
		catalog, err := s.loader.Load(ctx, object.URL())
		if err != nil {
			return nil, err
		}
		for _, tag := range catalog.Types() {
			if unique[tag] {
				continue
			}
			unique[tag] = true
			result = append(result, tag)
		}
	}
	sort.Strings(result)
	return result, nil
}
