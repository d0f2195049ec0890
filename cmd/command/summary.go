package command

import (
	"fmt"
	"github.com/viant/resxgen/metric"
	"sync"
)

//Summary represents generation summary
type Summary struct {
	mux       sync.Mutex
	Files     int
	CallSites int
	Fallbacks int
	Skipped   int
	//Counters holds generator counters taken after all files were processed
	Counters *metric.Snapshot
}

func (s *Summary) addFile(callSites, fallbacks int) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.Files++
	s.CallSites += callSites
	s.Fallbacks += fallbacks
}

func (s *Summary) skip() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.Skipped++
}

func (s *Summary) String() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return fmt.Sprintf("generated %v file(s), call sites: %v, fallbacks: %v, skipped: %v", s.Files, s.CallSites, s.Fallbacks, s.Skipped)
}
