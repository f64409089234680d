package model

import "strings"

// ProductInput is what the user types into the generator form
type ProductInput struct {
	Name     string `json:"productName"`
	Category string `json:"productCategory"`
	Features string `json:"productFeatures"`
}

// Valid reports whether both required fields are non-empty after trimming
func (p ProductInput) Valid() bool {
	return strings.TrimSpace(p.Name) != "" && strings.TrimSpace(p.Category) != ""
}

// GenerationResult is the listing copy returned by the generation endpoint
type GenerationResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RequestState tracks the lifecycle of a dispatch
type RequestState int

const (
	StateIdle RequestState = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s RequestState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in_flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Severity of a user-facing notification
type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notification is a transient message shown to the user
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}
