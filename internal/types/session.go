package types

import "time"

// SessionMetadata contains summary information about one live session
type SessionMetadata struct {
	ID         string    `json:"id" yaml:"id"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	Scientific bool      `json:"scientific" yaml:"scientific"`
	Records    int       `json:"records" yaml:"records"`
	Memory     float64   `json:"memory" yaml:"memory"`
}

// SessionStats contains session manager statistics
type SessionStats struct {
	ActiveSessions int        `json:"active_sessions" yaml:"active_sessions"`
	TotalOpened    int        `json:"total_opened" yaml:"total_opened"`
	LastOpened     *time.Time `json:"last_opened,omitempty" yaml:"last_opened,omitempty"`
	LastClosed     *time.Time `json:"last_closed,omitempty" yaml:"last_closed,omitempty"`
}
