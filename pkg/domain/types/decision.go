package types

import "fmt"

// ResponseDecision represents one recipient's answer to a request
type ResponseDecision string

const (
	DecisionPending  ResponseDecision = "pending"
	DecisionAccepted ResponseDecision = "accepted"
	DecisionDeclined ResponseDecision = "declined"
)

// AllResponseDecisions returns all valid response decisions
func AllResponseDecisions() []ResponseDecision {
	return []ResponseDecision{
		DecisionPending,
		DecisionAccepted,
		DecisionDeclined,
	}
}

// IsValid checks if the response decision is valid
func (d ResponseDecision) IsValid() bool {
	switch d {
	case DecisionPending, DecisionAccepted, DecisionDeclined:
		return true
	default:
		return false
	}
}

// IsAnswered reports whether the recipient has responded
func (d ResponseDecision) IsAnswered() bool {
	return d == DecisionAccepted || d == DecisionDeclined
}

// String returns the string representation of the decision
func (d ResponseDecision) String() string {
	return string(d)
}

// ParseResponseDecision parses a string into a ResponseDecision
func ParseResponseDecision(s string) (ResponseDecision, error) {
	d := ResponseDecision(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid response decision: %s", s)
	}
	return d, nil
}
