package server

import (
	"net/http"

	"rdfpoker/internal/db"
	"rdfpoker/internal/web"

	"github.com/google/uuid"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Home().Render(r.Context(), w); err != nil {
		s.logger.Error("render home", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	return id, err == nil
}

func (s *Server) handleCreateGame(w http.ResponseWriter, _ *http.Request) {
	game, err := s.createGame()
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, createdGameStateResponse{ID: game.ID})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "gameStateId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game state id")
		return
	}
	state, err := s.buildStateResponse(id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleGetPhase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "gameStateId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game state id")
		return
	}
	phase, err := s.getPhase(id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currentPhaseResponse{Phase: phase})
}

func (s *Server) handleGetTurn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "gameStateId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game state id")
		return
	}
	turn, err := s.getTurn(id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, turn)
}

func (s *Server) handleGetPlayedCards(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "gameStateId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game state id")
		return
	}
	cards, err := s.getPlayedCards(id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleAdvanceState(w http.ResponseWriter, r *http.Request) {
	var req gameStateAdvanceRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	phase, ok := db.ParsePhase(req.PhaseString)
	if !ok {
		s.writeDomainError(w, ErrUnknownPhase)
		return
	}
	if err := s.advanceState(req.ID, phase); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAddCard(w http.ResponseWriter, r *http.Request) {
	var req cardAddRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	card, err := s.addCard(req.PlayerID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleUpdateCard(w http.ResponseWriter, r *http.Request) {
	var req cardUpdateRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	card, err := s.updateCard(req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "cardId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}
	if err := s.deleteCard(id); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handlePlayCard(w http.ResponseWriter, r *http.Request) {
	var req cardPlayRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.playCard(req.ID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "playerId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid player id")
		return
	}
	player, err := s.getPlayer(id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerCreateRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	player, err := s.createPlayer(req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerUpdateRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	player, err := s.updatePlayer(req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleBetChip(w http.ResponseWriter, r *http.Request) {
	var req playerBetRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	player, err := s.betChip(req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (s *Server) handleSwapDealers(w http.ResponseWriter, r *http.Request) {
	var req dealerSwapRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.swapDealers(req); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleGetRules(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "gameStateId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game state id")
		return
	}
	rules, err := s.getRules(id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

func (s *Server) handleUpdateRules(w http.ResponseWriter, r *http.Request) {
	var req rulesUpdateRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rules, err := s.updateRules(req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

// handleReceive streams PHASE, TURN and RULES events for one game. The
// subscription outlives any single mutation; delivery failures only drop the
// subscriber, never the mutation.
func (s *Server) handleReceive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "gameStateId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game state id")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := s.broker.Subscribe(id)
	defer s.broker.Unsubscribe(id, ch)
	for {
		select {
		case <-r.Context().Done():
			return
		case frame, open := <-ch:
			if !open {
				return
			}
			if _, err := w.Write(frame); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
