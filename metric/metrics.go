package metric

import (
	"github.com/viant/gmetric"
	"github.com/viant/gmetric/provider"
	"github.com/viant/resxgen/converter"
	"github.com/viant/resxgen/logger"
	"reflect"
	"time"
)

const (
	//ConvertOperation counts emitted owner blocks, values are keyed by outcome kind
	ConvertOperation = "resxgen.convert"
	//GenerateOperation counts processed designer files
	GenerateOperation = "resxgen.generate"
)

//Metrics represents generator metrics, operations are registered once so counters can be shared by workers
type Metrics struct {
	*gmetric.Service
	convert  *gmetric.Operation
	generate *gmetric.Operation
}

type metricsLocation struct {
}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

//Convert returns conversion counter
func (m *Metrics) Convert() *logger.CounterAdapter {
	if m == nil || m.convert == nil {
		return logger.NewCounter(nil)
	}
	return logger.NewCounter(m.convert)
}

//Generate returns file generation counter
func (m *Metrics) Generate() *logger.CounterAdapter {
	if m == nil || m.generate == nil {
		return logger.NewCounter(nil)
	}
	return logger.NewCounter(m.generate)
}

//NewMetrics creates a metrics
func NewMetrics() *Metrics {
	srv := gmetric.New()
	location := metricLocation()
	kinds := newKindProvider(
		converter.KindExpression.String(),
		converter.KindStatementBlock.String(),
		converter.KindUnresolved.String(),
		converter.KindIgnored.String(),
	)
	return &Metrics{
		Service:  srv,
		convert:  srv.MultiOperationCounter(location, ConvertOperation, "resource conversion", time.Millisecond, time.Minute, 2, kinds),
		generate: srv.MultiOperationCounter(location, GenerateOperation, "interceptor file generation", time.Millisecond, time.Minute, 2, provider.NewBasic()),
	}
}
