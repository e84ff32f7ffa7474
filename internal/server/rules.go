package server

import (
	"errors"

	"rdfpoker/internal/db"
	"rdfpoker/internal/sse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func loadRules(tx *gorm.DB, gameStateID uuid.UUID) (*db.Rules, error) {
	var rules db.Rules
	err := tx.First(&rules, "game_state_id = ?", gameStateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rules, nil
}

func (s *Server) getRules(gameStateID uuid.UUID) (*db.Rules, error) {
	if _, err := loadGameState(s.db, gameStateID); err != nil {
		return nil, err
	}
	return loadRules(s.db, gameStateID)
}

// updateRules applies any provided subset of rule fields. Only legal while
// the game sits in PREGAME. Changing the chip allotment overwrites every
// current player's balance with the new value.
func (s *Server) updateRules(req rulesUpdateRequest) (*db.Rules, error) {
	var rules *db.Rules
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := loadGameState(tx, req.GameStateID)
		if err != nil {
			return err
		}
		if game.Rules == nil {
			return ErrRulesNotFound
		}
		if game.Phase != db.PhasePregame {
			return ErrWrongPhaseForRules
		}
		rules = game.Rules

		if req.Prompt != nil {
			rules.Prompt = *req.Prompt
		}
		if req.MaxCardsInHand != nil {
			rules.MaxCardsInHand = *req.MaxCardsInHand
		}
		if req.ChipsAllottedPerPlayer != nil {
			rules.ChipsAllottedPerPlayer = *req.ChipsAllottedPerPlayer
		}
		if req.PreparationTimerDuration != nil {
			rules.PreparationTimerDuration = *req.PreparationTimerDuration
		}
		if req.TurnTimerDuration != nil {
			rules.TurnTimerDuration = *req.TurnTimerDuration
		}
		if req.BettingTimerDuration != nil {
			rules.BettingTimerDuration = *req.BettingTimerDuration
		}
		if req.MinChipsForCardPostGameDiscussion != nil {
			rules.MinChipsForCardPostGameDiscussion = *req.MinChipsForCardPostGameDiscussion
		}
		if req.MinCardContribution != nil {
			rules.MinCardContribution = *req.MinCardContribution
		}

		if err := validateRules(rules); err != nil {
			return err
		}
		if err := tx.Save(rules).Error; err != nil {
			return err
		}
		if req.ChipsAllottedPerPlayer != nil {
			err := tx.Model(&db.Player{}).
				Where("game_state_id = ?", game.ID).
				Update("num_chips", *req.ChipsAllottedPerPlayer).Error
			if err != nil {
				return err
			}
		}
		return persistEvent(tx, game.ID, eventRulesChanged, rules)
	})
	if err != nil {
		return nil, err
	}
	s.broker.Publish(req.GameStateID, sse.EventRules, rules)
	return rules, nil
}
