package coordinator

import "errors"

// Sentinel errors for the coordinator boundary. All of them are recovered
// into structured failure results; none terminates the process.
var (
	// ErrDuplicateAgent is returned when registering a name that exists.
	ErrDuplicateAgent = errors.New("agent already registered")
	// ErrUnknownAgent is returned when looking up an unregistered name.
	ErrUnknownAgent = errors.New("agent not found")
	// ErrNoSuitableAgent is returned when matching yields no candidate.
	ErrNoSuitableAgent = errors.New("no suitable agent for task")
)
