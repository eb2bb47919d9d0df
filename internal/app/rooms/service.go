package rooms

import (
	"context"
	"strings"

	"spy-room/internal/config"
	"spy-room/internal/pool"
	"spy-room/internal/room"
)

// Service is the thin façade between the delivery layer and the room
// store: it checks request shape, fetches topic pools for round starts and
// otherwise passes results through unchanged. It holds no state of its own.
type Service struct {
	store      *room.Store
	pools      pool.Source
	maxNameLen int
}

func NewService(store *room.Store, pools pool.Source, cfg config.ServerConfig) *Service {
	maxNameLen := cfg.MaxDisplayNameLen
	if maxNameLen <= 0 {
		maxNameLen = 32
	}
	return &Service{store: store, pools: pools, maxNameLen: maxNameLen}
}

func (s *Service) Create(_ context.Context) CreatePayload {
	return CreatePayload{RoomCode: s.store.Create()}
}

func (s *Service) Join(_ context.Context, in JoinInput) (JoinPayload, error) {
	name := strings.TrimSpace(in.DisplayName)
	if name == "" || len(name) > s.maxNameLen {
		return JoinPayload{}, ErrInvalidRequest
	}
	sessionID, err := s.store.Join(in.RoomCode, name)
	if err != nil {
		return JoinPayload{}, err
	}
	return JoinPayload{SessionID: sessionID}, nil
}

func (s *Service) Leave(_ context.Context, in SessionInput) error {
	return s.store.Leave(in.RoomCode, in.SessionID)
}

func (s *Service) Heartbeat(_ context.Context, in SessionInput) (*HeartbeatPayload, error) {
	snap, err := s.store.Heartbeat(in.RoomCode, in.SessionID)
	if err != nil {
		return nil, err
	}
	return &HeartbeatPayload{
		IsMaster: snap.IsMaster,
		Phase:    snap.Phase,
		Round:    snap.Round,
		Content:  snap.Content,
		Users:    snap.Users,
	}, nil
}

func (s *Service) StartRound(ctx context.Context, in StartRoundInput) error {
	if in.Config.NumSpies < 1 || in.Config.NumFalses < 0 {
		return room.ErrInvalidConfig
	}
	topics, err := s.pools.Topics(ctx)
	if err != nil {
		return err
	}
	return s.store.StartRound(in.RoomCode, in.SessionID, topics, in.Config)
}

func (s *Service) StopRound(_ context.Context, in SessionInput) error {
	return s.store.StopRound(in.RoomCode, in.SessionID)
}

func (s *Service) RoomExists(code string) bool {
	return s.store.Exists(code)
}
