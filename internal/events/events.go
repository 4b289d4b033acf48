package events

import "time"

type SessionCreatedEvent struct {
	SessionID    string    `json:"session_id"`
	Criteria     int       `json:"criteria"`
	Alternatives int       `json:"alternatives"`
	Timestamp    time.Time `json:"timestamp"`
}

type SessionDeletedEvent struct {
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
}

type RankingComputedEvent struct {
	SessionID    string    `json:"session_id"`
	Criteria     int       `json:"criteria"`
	Alternatives int       `json:"alternatives"`
	Best         string    `json:"best,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type SnapshotSavedEvent struct {
	SnapshotID string    `json:"snapshot_id"`
	SessionID  string    `json:"session_id"`
	Name       string    `json:"name"`
	Timestamp  time.Time `json:"timestamp"`
}

type SnapshotRestoredEvent struct {
	SnapshotID   string    `json:"snapshot_id"`
	NewSessionID string    `json:"new_session_id"`
	Timestamp    time.Time `json:"timestamp"`
}
