package rooms

import "spy-room/internal/room"

type CreatePayload struct {
	RoomCode string `json:"roomCode"`
}

type JoinInput struct {
	RoomCode    string `json:"roomCode"`
	DisplayName string `json:"displayName"`
}

type JoinPayload struct {
	SessionID string `json:"sessionId"`
}

// SessionInput identifies one participant in one room; both identifiers
// are capabilities trusted by possession.
type SessionInput struct {
	RoomCode  string `json:"roomCode"`
	SessionID string `json:"sessionId"`
}

type StartRoundInput struct {
	RoomCode  string           `json:"roomCode"`
	SessionID string           `json:"sessionId"`
	Config    room.RoundConfig `json:"config"`
}

type HeartbeatPayload struct {
	IsMaster bool                     `json:"isMaster"`
	Phase    room.Phase               `json:"phase"`
	Round    int                      `json:"round"`
	Content  *room.Assignment         `json:"content"`
	Users    map[string]room.UserView `json:"users"`
}
