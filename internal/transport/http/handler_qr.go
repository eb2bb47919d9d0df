package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
)

// RoomQR renders a room code as a PNG QR code so a phone can scan its way
// into the lobby instead of typing the code.
func (h *RoomHandlers) RoomQR() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if !h.svc.RoomExists(code) {
			WriteHTTPError(w, http.StatusNotFound, "room_not_found")
			return
		}
		png, err := qrcode.Encode(code, qrcode.Medium, 256)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}
