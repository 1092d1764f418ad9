package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is how a dispatched line ended.
type Outcome int

const (
	OutcomeOK      Outcome = iota // actions ran and returned nil
	OutcomeHelp                   // help flag given, no action ran
	OutcomeInvalid                // arguments did not fit
	OutcomeUnknown                // first token matched no command
	OutcomeFailed                 // an action returned an error
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeHelp:
		return "help"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeUnknown:
		return "unknown"
	case OutcomeFailed:
		return "failed"
	default:
		return "?"
	}
}

// ParseOutcome converts a stored name back to an Outcome.
func ParseOutcome(s string) (Outcome, bool) {
	for o := OutcomeOK; o <= OutcomeFailed; o++ {
		if o.String() == s {
			return o, true
		}
	}
	return 0, false
}

// HistoryEntry is one dispatched line.
type HistoryEntry struct {
	ID        uuid.UUID
	Line      string
	Command   string
	Outcome   Outcome
	Duration  time.Duration
	Timestamp time.Time
}
