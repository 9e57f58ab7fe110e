package booking

import (
	"fmt"
	"strings"
)

// Status is the approval state of a booking. WAITING is the only initial
// state; APPROVED and REJECTED are terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

// State is a listing bucket. ALL/CURRENT/PAST/FUTURE classify by time,
// WAITING/REJECTED by status. There is no APPROVED bucket; approved
// bookings are only reachable through the temporal buckets.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var knownStates = map[State]struct{}{
	StateAll:      {},
	StateCurrent:  {},
	StatePast:     {},
	StateFuture:   {},
	StateWaiting:  {},
	StateRejected: {},
}

// ParseState resolves a listing state token case-insensitively. An empty
// token means ALL; anything unrecognized is an error.
func ParseState(token string) (State, error) {
	if token == "" {
		return StateAll, nil
	}
	state := State(strings.ToUpper(token))
	if _, ok := knownStates[state]; !ok {
		return "", fmt.Errorf("unknown state: %s", token)
	}
	return state, nil
}
