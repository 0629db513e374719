package engine

import "github.com/rs/zerolog"

// Stats collects counts for each kind of node and cutoff.
type Stats struct {
	Nodes         uint64
	Leaves        uint64
	Terminals     uint64
	Continuations uint64
	BetaCutoffs   uint64
	AlphaCutoffs  uint64
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (st Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", st.Nodes).
		Uint64("leaves", st.Leaves).
		Uint64("terminals", st.Terminals).
		Uint64("continuations", st.Continuations).
		Uint64("beta-cutoffs", st.BetaCutoffs).
		Uint64("alpha-cutoffs", st.AlphaCutoffs)
}

func (s *Searcher) resetStats() {
	s.stats = Stats{}
}
