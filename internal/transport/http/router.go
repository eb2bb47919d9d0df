package httptransport

import (
	"net/http"

	approoms "spy-room/internal/app/rooms"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(svc *approoms.Service) *chi.Mux {
	h := NewRoomHandlers(svc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", h.Health())
	r.With(APILogMiddleware()).Get("/room/{code}/qr", h.RoomQR())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Post("/create-room", h.CreateRoom())
		r.Post("/join-room", h.JoinRoom())
		r.Post("/leave-room", h.LeaveRoom())
		r.Post("/heartbeat", h.Heartbeat())
		r.Post("/start-round", h.StartRound())
		r.Post("/stop-round", h.StopRound())
	})
	return r
}

func LogRoutes(r chi.Router) {
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		log.Info().Str("method", method).Str("route", route).Msg("route registered")
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("walk routes failed")
	}
}
