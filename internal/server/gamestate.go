package server

import (
	"errors"
	"strings"

	"rdfpoker/internal/db"
	"rdfpoker/internal/sse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadGameState fetches a game with its rules and its players (in creation
// order) and their cards.
func loadGameState(tx *gorm.DB, id uuid.UUID) (*db.GameState, error) {
	var game db.GameState
	err := tx.
		Preload("Players", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at, id")
		}).
		Preload("Players.Cards").
		Preload("Rules").
		First(&game, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameStateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// createGame creates an empty PREGAME game with its default rules attached.
func (s *Server) createGame() (*db.GameState, error) {
	game := &db.GameState{Phase: db.PhasePregame}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		rules := db.DefaultRules(game.ID)
		if err := tx.Create(&rules).Error; err != nil {
			return err
		}
		game.Rules = &rules
		return persistEvent(tx, game.ID, eventGameCreated, createdGameStateResponse{ID: game.ID})
	})
	if err != nil {
		return nil, err
	}
	metricGamesCreated.Inc()
	return game, nil
}

// buildStateResponse assembles the full snapshot for one game.
func (s *Server) buildStateResponse(gameStateID uuid.UUID) (*StateResponse, error) {
	game, err := loadGameState(s.db, gameStateID)
	if err != nil {
		return nil, err
	}
	if game.Rules == nil {
		return nil, ErrRulesNotFound
	}

	cardsOnTable := []db.Card{}
	var cardDisplayed *db.Card
	for i := range game.Players {
		for j := range game.Players[i].Cards {
			card := game.Players[i].Cards[j]
			switch card.CardStatus {
			case db.CardOnTable:
				cardsOnTable = append(cardsOnTable, card)
			case db.CardOnDisplay:
				displayed := card
				cardDisplayed = &displayed
			}
		}
	}

	return &StateResponse{
		CardsOnTable:  cardsOnTable,
		CardDisplayed: cardDisplayed,
		Phase:         game.Phase,
		Rules:         *game.Rules,
		WhoseTurn:     turnResponseFor(whichPlayersTurn(game)),
	}, nil
}

// advanceState sets the game's phase unconditionally; there is no legality
// graph, any phase may follow any other. Entering TURN discards every
// blank-content card of the game's players and announces the turn owner
// (computed before the discard). Entering BETTING flushes the displayed card
// to the table.
func (s *Server) advanceState(gameStateID uuid.UUID, newPhase db.Phase) error {
	var turnNote *TurnResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := loadGameState(tx, gameStateID)
		if err != nil {
			return err
		}

		if err := tx.Model(game).Update("phase", newPhase).Error; err != nil {
			return err
		}

		switch newPhase {
		case db.PhaseTurn:
			note := turnResponseFor(whichPlayersTurn(game))
			turnNote = &note
			if err := discardBlankCards(tx, game); err != nil {
				return err
			}
		case db.PhaseBetting:
			if err := moveDisplayedCardToTable(tx); err != nil {
				return err
			}
		}

		return persistEvent(tx, game.ID, eventPhaseChanged, currentPhaseResponse{Phase: newPhase})
	})
	if err != nil {
		return err
	}

	s.broker.Publish(gameStateID, sse.EventPhase, currentPhaseResponse{Phase: newPhase})
	if turnNote != nil {
		s.broker.Publish(gameStateID, sse.EventTurn, *turnNote)
	}
	return nil
}

func (s *Server) getPhase(gameStateID uuid.UUID) (db.Phase, error) {
	game, err := loadGameState(s.db, gameStateID)
	if err != nil {
		return "", err
	}
	return game.Phase, nil
}

func (s *Server) getTurn(gameStateID uuid.UUID) (TurnResponse, error) {
	game, err := loadGameState(s.db, gameStateID)
	if err != nil {
		return TurnResponse{}, err
	}
	return turnResponseFor(whichPlayersTurn(game)), nil
}

// getPlayedCards returns every card of the game that is not in a hand.
func (s *Server) getPlayedCards(gameStateID uuid.UUID) ([]db.Card, error) {
	game, err := loadGameState(s.db, gameStateID)
	if err != nil {
		return nil, err
	}
	played := []db.Card{}
	for i := range game.Players {
		for j := range game.Players[i].Cards {
			card := game.Players[i].Cards[j]
			if card.CardStatus != db.CardInHand {
				played = append(played, card)
			}
		}
	}
	return played, nil
}

// moveDisplayedCardToTable flushes the card currently ONDISPLAY, if any, to
// ONTABLE. The lookup is global, not scoped to a game.
// TODO: scope the on-display lookup to the affected game.
func moveDisplayedCardToTable(tx *gorm.DB) error {
	var card db.Card
	err := tx.First(&card, "card_status = ?", db.CardOnDisplay).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	card.CardStatus = db.CardOnTable
	return tx.Save(&card).Error
}

// discardBlankCards hard-deletes every card with blank content across the
// game's players, regardless of card status.
func discardBlankCards(tx *gorm.DB, game *db.GameState) error {
	var ids []uuid.UUID
	for i := range game.Players {
		for j := range game.Players[i].Cards {
			card := game.Players[i].Cards[j]
			if strings.TrimSpace(card.Content) == "" {
				ids = append(ids, card.ID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return tx.Delete(&db.Card{}, "id IN ?", ids).Error
}
