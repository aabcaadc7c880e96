package api

import (
	"encoding/json"
	"net/http"

	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/models"
)

type inboundResponse struct {
	Reply string `json:"reply"`
}

// handleInbound accepts one message from the bridge and returns the bot's
// reply, empty when the bot has nothing to say. The bridge decides whether
// to post the reply back to the chat.
func (s *Server) handleInbound(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var msg models.InboundMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.Warn("bad inbound payload: %v", err)
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if msg.Chat.ID == "" {
		log.Warn("inbound message without chat id")
		http.Error(w, "chat.id required", http.StatusBadRequest)
		return
	}

	reply := s.Bot.HandleMessage(r.Context(), msg)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(inboundResponse{Reply: reply}); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

// handleHealth is a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady checks the store before declaring the bot ready for traffic.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := s.DB.PingContext(r.Context()); err != nil {
		log.Warn("readiness check failed - database: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
