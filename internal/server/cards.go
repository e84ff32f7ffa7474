package server

import (
	"errors"
	"time"

	"rdfpoker/internal/db"
	"rdfpoker/internal/sse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func loadCard(tx *gorm.DB, id uuid.UUID) (*db.Card, error) {
	var card db.Card
	err := tx.First(&card, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// addCard deals a fresh blank INHAND card to a player.
func (s *Server) addCard(playerID uuid.UUID) (*db.Card, error) {
	if _, err := loadPlayer(s.db, playerID); err != nil {
		return nil, err
	}
	card := &db.Card{PlayerID: playerID}
	if err := s.db.Create(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

// updateCard applies any provided subset of content, status and chips. A
// status change from INHAND to ONTABLE through this path completes the
// owner's turn exactly like playCard, but without the turn-ownership check.
func (s *Server) updateCard(req cardUpdateRequest) (*db.Card, error) {
	var (
		card     *db.Card
		gameID   uuid.UUID
		turnNote *TurnResponse
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		card, err = loadCard(tx, req.ID)
		if err != nil {
			return err
		}
		player, err := loadPlayer(tx, card.PlayerID)
		if err != nil {
			return err
		}
		gameID = player.GameStateID

		advancesTurn := false
		if req.Content != nil {
			card.Content = *req.Content
		}
		if req.CardStatus != nil {
			if _, ok := db.ParseCardStatus(string(*req.CardStatus)); !ok {
				return ErrUnknownCardStatus
			}
			if *req.CardStatus == db.CardOnTable && card.CardStatus == db.CardInHand {
				advancesTurn = true
			}
			card.CardStatus = *req.CardStatus
		}
		if req.NumChips != nil {
			card.NumChips = *req.NumChips
		}
		if err := tx.Save(card).Error; err != nil {
			return err
		}

		if !advancesTurn {
			return nil
		}
		if err := moveDisplayedCardToTable(tx); err != nil {
			return err
		}
		player.LastTurnCompleted = time.Now().UTC()
		if err := tx.Save(player).Error; err != nil {
			return err
		}
		game, err := loadGameState(tx, gameID)
		if err != nil {
			return err
		}
		note := turnResponseFor(whichPlayersTurn(game))
		turnNote = &note
		if err := persistEvent(tx, gameID, eventCardPlayed, cardPlayRequest{ID: card.ID}); err != nil {
			return err
		}
		return persistEvent(tx, gameID, eventTurnChanged, note)
	})
	if err != nil {
		return nil, err
	}
	if turnNote != nil {
		s.broker.Publish(gameID, sse.EventTurn, *turnNote)
		metricCardsPlayed.WithLabelValues(gameID.String()).Inc()
	}
	return card, nil
}

func (s *Server) deleteCard(cardID uuid.UUID) error {
	card, err := loadCard(s.db, cardID)
	if err != nil {
		return err
	}
	return s.db.Delete(card).Error
}

// playCard moves a card from the acting player's hand to display: the card
// already on display goes to the table, the played card replaces it, and the
// player's turn timestamp advances. Only the derived turn owner may play.
func (s *Server) playCard(cardID uuid.UUID) error {
	var (
		gameID   uuid.UUID
		turnNote TurnResponse
	)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		card, err := loadCard(tx, cardID)
		if err != nil {
			return err
		}
		player, err := loadPlayer(tx, card.PlayerID)
		if err != nil {
			return err
		}
		game, err := loadGameState(tx, player.GameStateID)
		if err != nil {
			return err
		}
		gameID = game.ID

		turn := whichPlayersTurn(game)
		if turn == nil || turn.ID != player.ID {
			return ErrForbiddenPlay
		}

		if err := moveDisplayedCardToTable(tx); err != nil {
			return err
		}
		card.CardStatus = db.CardOnDisplay
		if err := tx.Save(card).Error; err != nil {
			return err
		}
		player.LastTurnCompleted = time.Now().UTC()
		if err := tx.Save(player).Error; err != nil {
			return err
		}

		refreshed, err := loadGameState(tx, gameID)
		if err != nil {
			return err
		}
		turnNote = turnResponseFor(whichPlayersTurn(refreshed))
		if err := persistEvent(tx, gameID, eventCardPlayed, cardPlayRequest{ID: card.ID}); err != nil {
			return err
		}
		return persistEvent(tx, gameID, eventTurnChanged, turnNote)
	})
	if err != nil {
		return err
	}
	s.broker.Publish(gameID, sse.EventTurn, turnNote)
	metricCardsPlayed.WithLabelValues(gameID.String()).Inc()
	return nil
}
