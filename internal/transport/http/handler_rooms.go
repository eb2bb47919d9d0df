package httptransport

import (
	"net/http"

	approoms "spy-room/internal/app/rooms"
)

type RoomHandlers struct {
	svc *approoms.Service
}

func NewRoomHandlers(svc *approoms.Service) *RoomHandlers {
	return &RoomHandlers{svc: svc}
}

func (h *RoomHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Sunny Side Up!"))
	}
}

func (h *RoomHandlers) CreateRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, h.svc.Create(r.Context()))
	}
}

func (h *RoomHandlers) JoinRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in approoms.JoinInput
		if err := decodeJSON(r, &in); err != nil {
			writeFailure(w)
			return
		}
		payload, err := h.svc.Join(r.Context(), in)
		if err != nil {
			writeFailure(w)
			return
		}
		writeSuccess(w, payload)
	}
}

func (h *RoomHandlers) LeaveRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in approoms.SessionInput
		if err := decodeJSON(r, &in); err != nil {
			writeFailure(w)
			return
		}
		if err := h.svc.Leave(r.Context(), in); err != nil {
			writeFailure(w)
			return
		}
		writeSuccess(w, nil)
	}
}

func (h *RoomHandlers) Heartbeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in approoms.SessionInput
		if err := decodeJSON(r, &in); err != nil {
			writeFailure(w)
			return
		}
		payload, err := h.svc.Heartbeat(r.Context(), in)
		if err != nil {
			writeFailure(w)
			return
		}
		writeSuccess(w, payload)
	}
}

func (h *RoomHandlers) StartRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in approoms.StartRoundInput
		if err := decodeJSON(r, &in); err != nil {
			writeFailure(w)
			return
		}
		if err := h.svc.StartRound(r.Context(), in); err != nil {
			writeFailure(w)
			return
		}
		writeSuccess(w, nil)
	}
}

func (h *RoomHandlers) StopRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in approoms.SessionInput
		if err := decodeJSON(r, &in); err != nil {
			writeFailure(w)
			return
		}
		if err := h.svc.StopRound(r.Context(), in); err != nil {
			writeFailure(w)
			return
		}
		writeSuccess(w, nil)
	}
}
