package room

import (
	"sync"
	"time"
)

type Phase string

const (
	PhaseIdle  Phase = "idle"
	PhaseRound Phase = "round"
)

type UserStatus string

const (
	StatusActive       UserStatus = "active"
	StatusUnresponsive UserStatus = "unresponsive"
)

// User is one participant's liveness record within a room. Status is
// derived from the remaining time-to-live, never set by clients.
type User struct {
	Name       string
	TimeToLive time.Duration
	Status     UserStatus
}

// Assignment is what one participant may see during a round. A spy gets an
// empty Truth and the true keyword hidden, unlabeled, among its falses.
type Assignment struct {
	Truth  string   `json:"truth"`
	Falses []string `json:"falses"`
}

// RoundConfig is the transient input to a round start.
type RoundConfig struct {
	NumSpies  int  `json:"numSpies"`
	NumFalses int  `json:"numFalses"`
	Mix       bool `json:"mix"`
}

// activeRound holds the committed content of a running round. nil on the
// Room means no round is active; an empty assignment map never occurs.
type activeRound struct {
	assignments map[string]Assignment
}

// Room is the aggregate root. All fields are guarded by mu; the struct
// never leaves the store, callers only see Snapshot copies.
type Room struct {
	mu sync.Mutex

	code   string
	master string
	round  int
	active *activeRound
	users  map[string]*User

	// set once the room has been removed from the store, so a caller
	// holding a stale pointer cannot revive it
	gone bool
}

func (r *Room) phaseLocked() Phase {
	if r.active != nil {
		return PhaseRound
	}
	return PhaseIdle
}

// UserView is the per-user slice of a heartbeat snapshot.
type UserView struct {
	Name       string     `json:"name"`
	TimeToLive int64      `json:"timeToLive"`
	Status     UserStatus `json:"status"`
}

// Snapshot is a consistent read of one room as seen by one participant.
// Content is nil when no round is active or when the participant joined
// after the current round started.
type Snapshot struct {
	IsMaster bool
	Phase    Phase
	Round    int
	Content  *Assignment
	Users    map[string]UserView
}

func (r *Room) snapshotLocked(sessionID string) Snapshot {
	snap := Snapshot{
		IsMaster: r.master == sessionID,
		Phase:    r.phaseLocked(),
		Round:    r.round,
		Users:    make(map[string]UserView, len(r.users)),
	}
	for id, u := range r.users {
		snap.Users[id] = UserView{
			Name:       u.Name,
			TimeToLive: u.TimeToLive.Milliseconds(),
			Status:     u.Status,
		}
	}
	if r.active != nil {
		if a, ok := r.active.assignments[sessionID]; ok {
			falses := make([]string, len(a.Falses))
			copy(falses, a.Falses)
			snap.Content = &Assignment{Truth: a.Truth, Falses: falses}
		}
	}
	return snap
}
