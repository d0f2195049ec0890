package command

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/resxgen/cmd/options"
	"github.com/viant/resxgen/logger"
	"github.com/viant/resxgen/metric"
	"github.com/viant/resxgen/resource"
)

type Service struct {
	fs      afs.Service
	loader  *resource.Loader
	metrics *metric.Metrics
}

//Exec executes selected command
func (s *Service) Exec(ctx context.Context, opts *options.Options) error {
	if opts.Gen != nil {
		cfg, err := opts.Gen.Config(ctx)
		if err != nil {
			return err
		}
		summary, err := s.Generate(ctx, cfg)
		if err != nil {
			return err
		}
		fmt.Println(summary.String())
		return nil
	}
	if opts.Types != nil {
		types, err := s.Types(ctx, opts.Types.Location)
		if err != nil {
			return err
		}
		for _, aType := range types {
			fmt.Println(aType)
		}
	}
	return nil
}

func (s *Service) logger(debug bool) *logger.Adapter {
	if debug {
		return logger.Debug()
	}
	return logger.Default()
}

func New() *Service {
	fs := afs.New()
	return &Service{
		fs:      fs,
		loader:  resource.NewLoader(fs),
		metrics: metric.NewMetrics(),
	}
}
