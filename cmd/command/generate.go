package command

import (
	"context"
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/resxgen/config"
	"github.com/viant/resxgen/converter"
	"github.com/viant/resxgen/designer"
	"github.com/viant/resxgen/emitter"
	"github.com/viant/resxgen/interceptor"
	"github.com/viant/resxgen/logger"
	"github.com/viant/resxgen/metric"
	"golang.org/x/sync/errgroup"
	"strings"
	"time"
)

const resxExt = ".resx"

//designerSource represents designer file with its companion resource file
type designerSource struct {
	URL     string
	ResxURL string
	//Relative is designer location relative to the project without the designer suffix
	Relative string
}

//Generate generates interceptor sources for every designer file in the project
func (s *Service) Generate(ctx context.Context, cfg *config.Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sources, err := s.designerSources(ctx, cfg.ProjectURL)
	if err != nil {
		return nil, err
	}
	if err = s.ensureDest(ctx, cfg.DestURL); err != nil {
		return nil, err
	}
	if err = s.upload(ctx, url.Join(cfg.DestURL, interceptor.AttributeFile), interceptor.Attribute()); err != nil {
		return nil, err
	}
	log := s.logger(cfg.Debug)
	registry := converter.NewRegistry(cfg.Culture())
	anEmitter := emitter.New(registry, emitter.WithLogger(log), emitter.WithCounter(s.metrics.Convert()))
	fileCounter := s.metrics.Generate()
	summary := &Summary{}
	group, groupCtx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		group.SetLimit(cfg.Concurrency)
	}
	for _, source := range sources {
		source := source
		group.Go(func() error {
			return s.generateFile(groupCtx, cfg, anEmitter, fileCounter, log, source, summary)
		})
	}
	err = group.Wait()
	summary.Counters = s.metrics.Snapshot()
	log.Log("%v", summary.Counters.String())
	if cfg.MetricsURL != "" {
		if uploadErr := s.uploadMetrics(ctx, cfg.MetricsURL, summary.Counters); uploadErr != nil && err == nil {
			err = uploadErr
		}
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *Service) uploadMetrics(ctx context.Context, URL string, snapshot *metric.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.upload(ctx, URL, string(data))
}

func (s *Service) generateFile(ctx context.Context, cfg *config.Config, anEmitter *emitter.Emitter, fileCounter *logger.CounterAdapter, log *logger.Adapter, source *designerSource, summary *Summary) (err error) {
	onDone := fileCounter.Begin(time.Now())
	defer func() {
		if err != nil {
			onDone(time.Now(), err)
			return
		}
		onDone(time.Now())
	}()
	if source.ResxURL == "" {
		log.Skipped(source.URL, "missing companion "+resxExt)
		summary.skip()
		return nil
	}
	data, err := s.fs.DownloadWithURL(ctx, source.URL)
	if err != nil {
		return errors.Wrapf(err, "failed to download %v", source.URL)
	}
	designerFile, err := designer.Parse(source.URL, data)
	if err != nil {
		return err
	}
	for _, call := range designerFile.Unresolved {
		log.Log("%v:%v:%v unable to resolve type of %v", source.URL, call.Line, call.Column, call.Object)
	}
	if len(designerFile.Calls) == 0 {
		log.Skipped(source.URL, "no ApplyResources call sites")
		summary.skip()
		return nil
	}
	catalog, err := s.loader.Load(ctx, source.ResxURL)
	if err != nil {
		return err
	}
	interceptors := &interceptor.Source{Path: url.Path(source.URL), Name: source.URL, Usings: usings(designerFile)}
	fallbacks := 0
	for i, call := range designerFile.Calls {
		block, err := anEmitter.Emit(catalog, call.Owner, interceptor.Label(i+1))
		if err != nil {
			return errors.Wrapf(err, "failed to generate %v", source.URL)
		}
		if block.FallbackNeeded {
			fallbacks++
		}
		interceptors.Sites = append(interceptors.Sites, &interceptor.Site{Call: call, Block: block})
	}
	content, err := interceptor.Render(cfg.Namespace, interceptors)
	if err != nil {
		return err
	}
	destURL := url.Join(cfg.DestURL, source.Relative+interceptor.GeneratedSuffix)
	if err = s.upload(ctx, destURL, content); err != nil {
		return err
	}
	log.Generated(destURL, len(interceptors.Sites), fallbacks)
	summary.addFile(len(interceptors.Sites), fallbacks)
	return nil
}

func usings(designerFile *designer.File) []string {
	result := append([]string{}, designerFile.Usings...)
	if designerFile.Namespace != "" {
		result = append(result, designerFile.Namespace)
	}
	return result
}

//designerSources lists designer files paired with their resource files
func (s *Service) designerSources(ctx context.Context, projectURL string) ([]*designerSource, error) {
	objects, err := s.fs.List(ctx, projectURL, option.NewRecursive(true))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list project: %v", projectURL)
	}
	rootPath := url.Path(projectURL)
	resources := map[string]string{}
	var designers []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		URL := object.URL()
		lowerURL := strings.ToLower(URL)
		switch {
		case strings.HasSuffix(lowerURL, strings.ToLower(interceptor.DesignerSuffix)):
			designers = append(designers, URL)
		case strings.HasSuffix(lowerURL, resxExt):
			resources[lowerURL] = URL
		}
	}
	var result []*designerSource
	for _, URL := range designers {
		baseURL := URL[:len(URL)-len(interceptor.DesignerSuffix)]
		relative := baseURL
		if index := strings.Index(relative, rootPath); index != -1 {
			relative = strings.TrimPrefix(relative[index+len(rootPath):], "/")
		}
		result = append(result, &designerSource{
			URL:      URL,
			ResxURL:  resources[strings.ToLower(baseURL+resxExt)],
			Relative: relative,
		})
	}
	return result, nil
}

func (s *Service) ensureDest(ctx context.Context, URL string) error {
	if ok, _ := s.fs.Exists(ctx, URL); ok {
		return nil
	}
	return s.fs.Create(ctx, URL, file.DefaultDirOsMode, true)
}

func (s *Service) upload(ctx context.Context, URL string, content string) error {
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
		return errors.Wrapf(err, "failed to upload %v", URL)
	}
	return nil
}
