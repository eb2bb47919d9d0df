package room

import (
	"sync"

	"github.com/rs/zerolog/log"

	"spy-room/internal/config"
	"spy-room/internal/pool"
)

// Store is the authoritative map of room code to Room. Every mutation goes
// through it. The store mutex guards the map; each room carries its own
// mutex, so operations on different rooms proceed in parallel while all
// operations on the same room serialize.
type Store struct {
	cfg      config.PresenceConfig
	assigner *Assigner

	mu    sync.Mutex
	rooms map[string]*Room
}

func NewStore(cfg config.PresenceConfig) *Store {
	return &Store{
		cfg:      cfg,
		assigner: NewAssigner(),
		rooms:    map[string]*Room{},
	}
}

// Create allocates a fresh idle room and returns its code. Candidate codes
// are drawn until one misses the live map; generation and reservation
// happen under the store lock so concurrent creators never share a code.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var code string
	for {
		code = newCodeCandidate()
		if _, taken := s.rooms[code]; !taken {
			break
		}
	}
	s.rooms[code] = &Room{code: code, users: map[string]*User{}}
	return code
}

// Exists reports whether a room code is currently live.
func (s *Store) Exists(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rooms[code]
	return ok
}

func (s *Store) lookup(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[code]
	return r, ok
}

// Join adds a participant with a fresh session id and full time-to-live.
// The first participant becomes master.
func (s *Store) Join(code, name string) (string, error) {
	r, ok := s.lookup(code)
	if !ok {
		return "", ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone {
		return "", ErrRoomNotFound
	}
	id := NewSessionID()
	r.users[id] = &User{
		Name:       name,
		TimeToLive: s.cfg.MaxTimeToLive,
		Status:     StatusActive,
	}
	if r.master == "" {
		r.master = id
	}
	return id, nil
}

// Leave removes a participant. A departing master hands the role to the
// lowest-ordered remaining session id; the last participant out retires
// the room.
func (s *Store) Leave(code, sessionID string) error {
	r, ok := s.lookup(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	if r.gone {
		r.mu.Unlock()
		return ErrRoomNotFound
	}
	if _, ok := r.users[sessionID]; !ok {
		r.mu.Unlock()
		return ErrUserNotFound
	}
	r.removeUserLocked(sessionID)
	empty := len(r.users) == 0
	r.mu.Unlock()
	if empty {
		s.retire(r)
	}
	return nil
}

// Heartbeat resets the participant's time-to-live and status, then returns
// a snapshot reflecting every mutation completed before this call.
func (s *Store) Heartbeat(code, sessionID string) (Snapshot, error) {
	r, ok := s.lookup(code)
	if !ok {
		return Snapshot{}, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone {
		return Snapshot{}, ErrRoomNotFound
	}
	u, ok := r.users[sessionID]
	if !ok {
		return Snapshot{}, ErrUserNotFound
	}
	u.TimeToLive = s.cfg.MaxTimeToLive
	u.Status = StatusActive
	return r.snapshotLocked(sessionID), nil
}

// StartRound computes and commits fresh content over the current user set.
// The master check runs before any mutation; a rejected caller changes
// nothing about the running round.
func (s *Store) StartRound(code, sessionID string, topics []pool.Topic, cfg RoundConfig) error {
	r, ok := s.lookup(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone {
		return ErrRoomNotFound
	}
	if _, ok := r.users[sessionID]; !ok {
		return ErrUserNotFound
	}
	if r.master != sessionID {
		return ErrNotMaster
	}
	participants := make([]string, 0, len(r.users))
	for id := range r.users {
		participants = append(participants, id)
	}
	assignments, err := s.assigner.Assign(participants, topics, cfg)
	if err != nil {
		return err
	}
	r.round++
	r.active = &activeRound{assignments: assignments}
	log.Info().Str("room", r.code).Int("round", r.round).
		Int("users", len(participants)).Int("spies", cfg.NumSpies).
		Msg("round started")
	return nil
}

// StopRound clears the running round and returns the room to idle. Only
// the master may stop a round.
func (s *Store) StopRound(code, sessionID string) error {
	r, ok := s.lookup(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone {
		return ErrRoomNotFound
	}
	if _, ok := r.users[sessionID]; !ok {
		return ErrUserNotFound
	}
	if r.master != sessionID {
		return ErrNotMaster
	}
	r.active = nil
	log.Info().Str("room", r.code).Int("round", r.round).Msg("round stopped")
	return nil
}

// SweepTick ages every participant by one step, flags the silent ones as
// unresponsive, evicts the expired ones and retires emptied rooms. Called
// only by the sweeper, one tick at a time.
func (s *Store) SweepTick() {
	s.mu.Lock()
	rooms := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		rooms = append(rooms, r)
	}
	s.mu.Unlock()

	for _, r := range rooms {
		r.mu.Lock()
		if r.gone {
			r.mu.Unlock()
			continue
		}
		evicted := false
		for id, u := range r.users {
			u.TimeToLive -= s.cfg.StepInterval
			if u.Status == StatusActive && u.TimeToLive <= s.cfg.MaxTimeToLive-s.cfg.DisconnectedThreshold {
				u.Status = StatusUnresponsive
				log.Info().Str("room", r.code).Str("session", id).
					Str("name", u.Name).Msg("user is not responding")
			}
			if u.TimeToLive <= 0 {
				log.Info().Str("room", r.code).Str("session", id).
					Str("name", u.Name).Msg("user timed out")
				r.removeUserLocked(id)
				evicted = true
			}
		}
		// a room that was empty before anyone ever joined stays reachable;
		// only evicting its last user retires it
		empty := evicted && len(r.users) == 0
		r.mu.Unlock()
		if empty {
			s.retire(r)
		}
	}
}

// removeUserLocked deletes the user and, when the master left, promotes
// the lowest-ordered remaining session id.
func (r *Room) removeUserLocked(sessionID string) {
	delete(r.users, sessionID)
	if r.master != sessionID {
		return
	}
	r.master = ""
	for id := range r.users {
		if r.master == "" || id < r.master {
			r.master = id
		}
	}
}

// retire drops an emptied room from the store. Emptiness is re-checked
// under both locks so a join racing the last leave keeps the room alive.
func (s *Store) retire(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone || len(r.users) > 0 {
		return
	}
	r.gone = true
	delete(s.rooms, r.code)
	log.Info().Str("room", r.code).Msg("room has nobody inside, expired")
}
