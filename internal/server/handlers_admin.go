package server

import (
	"net/http"

	"rdfpoker/internal/db"

	"gorm.io/gorm"
)

// handleAdminStates lists every game with its players, cards and rules. The
// route answers 404 unless ADMIN_ENABLED is set, mirroring a debug-only
// deployment profile.
func (s *Server) handleAdminStates(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.AdminEnabled {
		http.NotFound(w, r)
		return
	}
	var games []db.GameState
	err := s.db.
		Preload("Players", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at, id")
		}).
		Preload("Players.Cards").
		Preload("Rules").
		Order("created_at").
		Find(&games).Error
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}
