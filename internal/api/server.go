// Package api exposes the bot to the WhatsApp bridge over HTTP: an inbound
// webhook for messages plus liveness and readiness probes.
package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuvaraja22/wordle-bot/internal/bot"
)

type Server struct {
	Bot          *bot.Bot
	DB           *sql.DB
	WebhookToken string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Post("/api/messages", s.handleInbound)
	})

	return r
}
