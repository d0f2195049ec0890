package metric

import (
	"github.com/viant/gmetric/counter"
	"github.com/viant/gmetric/stat"
)

//kindProvider maps errors and conversion outcome kinds into counter values
type kindProvider struct {
	keys  []string
	index map[string]int
}

func (p *kindProvider) Keys() []string {
	return p.keys
}

//Map maps value into slice index
func (p *kindProvider) Map(value interface{}) int {
	switch actual := value.(type) {
	case nil:
		return -1
	case error:
		return 0
	case string:
		if index, ok := p.index[actual]; ok {
			return index
		}
	}
	return -1
}

func newKindProvider(kinds ...string) counter.Provider {
	ret := &kindProvider{keys: append([]string{stat.ErrorKey}, kinds...), index: map[string]int{}}
	for i, key := range ret.keys {
		ret.index[key] = i
	}
	return ret
}
