package matrixgame

import (
	"fmt"

	"github.com/golang/glog"
)

type EventType uint8

const (
	// Row was never a best response and was removed by the reducer.
	EliminatedRow EventType = iota
	// Column was never a best response and was removed by the reducer.
	EliminatedColumn
	// Row was assigned a negative probability and removed before retrying.
	NegativeRow
	// Column was assigned a negative probability and removed before retrying.
	NegativeColumn
	// Solved indifference equations disagree by more than ConsistencyTolerance.
	ConsistencyWarning
)

var eventTypeStr = [...]string{
	"EliminatedRow",
	"EliminatedColumn",
	"NegativeRow",
	"NegativeColumn",
	"ConsistencyWarning",
}

func (t EventType) String() string {
	return eventTypeStr[t]
}

// Event is one entry of the diagnostic trail recorded while solving.
// Index is the original row or column index, or -1 for ConsistencyWarning.
type Event struct {
	Type  EventType
	Index int
	// Player (1 or 2) whose distribution was being solved for.
	// Only set for ConsistencyWarning.
	Player int
	// Value is the offending probability for NegativeRow/NegativeColumn
	// and the residual for ConsistencyWarning.
	Value float64
}

func (e Event) String() string {
	switch e.Type {
	case EliminatedRow, EliminatedColumn:
		return fmt.Sprintf("%v(%d)", e.Type, e.Index)
	case NegativeRow, NegativeColumn:
		return fmt.Sprintf("%v(%d, p=%.6g)", e.Type, e.Index, e.Value)
	default:
		return fmt.Sprintf("%v(player=%d, residual=%.3g)", e.Type, e.Player, e.Value)
	}
}

func (pm *PayoffMatrix) record(e Event) {
	if e.Type == ConsistencyWarning {
		glog.Warningf("Indifference equations disagree for player %d: residual %.3g > %g",
			e.Player, e.Value, ConsistencyTolerance)
	} else {
		glog.V(1).Infof("%v", e)
	}

	pm.events = append(pm.events, e)
}

// Diagnostics returns a copy of the events recorded so far.
func (pm *PayoffMatrix) Diagnostics() []Event {
	result := make([]Event, len(pm.events))
	copy(result, pm.events)
	return result
}
