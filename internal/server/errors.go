package server

import (
	"errors"
	"net/http"
)

// Domain errors raised by the game services. The boundary translates them to
// HTTP statuses in writeDomainError; everything else surfaces as a 500.
var (
	ErrGameStateNotFound  = errors.New("game state does not exist")
	ErrPlayerNotFound     = errors.New("player does not exist")
	ErrCardNotFound       = errors.New("card does not exist")
	ErrRulesNotFound      = errors.New("rules do not exist")
	ErrNicknameTaken      = errors.New("a player with that nickname already exists")
	ErrDealerExists       = errors.New("this game already has a dealer")
	ErrNotEnoughChips     = errors.New("not enough chips left")
	ErrChipsOutOfRange    = errors.New("requested chip count is out of range")
	ErrUnknownPhase       = errors.New("unknown phase")
	ErrUnknownCardStatus  = errors.New("unknown card status")
	ErrInvalidRules       = errors.New("invalid rules update")
	ErrWrongPhaseForRules = errors.New("rules may only change during PREGAME")
	ErrInvalidDealerSwap  = errors.New("invalid dealer swap")
	ErrForbiddenPlay      = errors.New("not this player's turn")
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrGameStateNotFound),
		errors.Is(err, ErrPlayerNotFound),
		errors.Is(err, ErrCardNotFound),
		errors.Is(err, ErrRulesNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbiddenPlay):
		return http.StatusForbidden
	case errors.Is(err, ErrNicknameTaken),
		errors.Is(err, ErrDealerExists),
		errors.Is(err, ErrNotEnoughChips),
		errors.Is(err, ErrChipsOutOfRange),
		errors.Is(err, ErrUnknownPhase),
		errors.Is(err, ErrUnknownCardStatus),
		errors.Is(err, ErrInvalidRules),
		errors.Is(err, ErrWrongPhaseForRules),
		errors.Is(err, ErrInvalidDealerSwap):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}
