package driver

import (
	"time"

	"jsxform/internal/observ"
)

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during ProcessFile.
type PhaseObserver func(PhaseEvent)

type phaseRunner struct {
	timer    *observ.Timer
	observer PhaseObserver
}

func newPhaseRunner(timer *observ.Timer, observer PhaseObserver) phaseRunner {
	return phaseRunner{timer: timer, observer: observer}
}

// run times fn as phase name. fn returns a note recorded with the phase.
func (r phaseRunner) run(name string, fn func() (string, error)) error {
	if r.observer != nil {
		r.observer(PhaseEvent{Name: name, Status: PhaseStart})
	}
	idx := r.timer.Begin(name)
	note, err := fn()
	if err != nil && note == "" {
		note = "failed"
	}
	r.timer.End(idx, note)
	if r.observer != nil {
		r.observer(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: r.timer.Duration(idx)})
	}
	return err
}
