package metric

import (
	"fmt"
	"github.com/viant/gmetric"
	"sort"
	"strings"
	"sync/atomic"
)

type (
	//Operation represents operation counters at a point in time
	Operation struct {
		Name string
		//Count is the number of started events
		Count int64
		//TimeTaken is the sum of event durations in milliseconds
		TimeTaken int64
		Values    map[string]int64 `json:",omitempty"`
	}

	//Snapshot represents generator counters at a point in time
	Snapshot struct {
		Operations []*Operation
	}
)

//Lookup returns named operation snapshot
func (s *Snapshot) Lookup(name string) *Operation {
	if s == nil {
		return nil
	}
	for _, candidate := range s.Operations {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

func (s *Snapshot) String() string {
	if s == nil {
		return ""
	}
	var lines []string
	for _, operation := range s.Operations {
		line := strings.Builder{}
		line.WriteString(fmt.Sprintf("%v: count: %v, time: %vms", operation.Name, operation.Count, operation.TimeTaken))
		keys := make([]string, 0, len(operation.Values))
		for key := range operation.Values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			line.WriteString(fmt.Sprintf(", %v: %v", key, operation.Values[key]))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

//Snapshot returns current counter values
func (m *Metrics) Snapshot() *Snapshot {
	ret := &Snapshot{}
	if m == nil {
		return ret
	}
	for _, operation := range []*gmetric.Operation{m.convert, m.generate} {
		if operation == nil || operation.Operation.Operation == nil {
			continue
		}
		ret.Operations = append(ret.Operations, snapshot(operation))
	}
	return ret
}

func snapshot(operation *gmetric.Operation) *Operation {
	counters := operation.Operation.Operation
	ret := &Operation{
		Name:      operation.Name,
		Count:     counters.CountValue(),
		TimeTaken: atomic.LoadInt64(&counters.TimeTaken),
	}
	var keys []string
	if operation.Provider != nil {
		keys = operation.Provider.Keys()
	}
	for i, value := range counters.Counters {
		count := value.CountValue()
		if count == 0 || i >= len(keys) {
			continue
		}
		if ret.Values == nil {
			ret.Values = map[string]int64{}
		}
		//error values overwrite counter Value with the last message, provider keys stay stable
		ret.Values[keys[i]] = count
	}
	return ret
}
