package server

import (
	"errors"

	"rdfpoker/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func loadPlayer(tx *gorm.DB, id uuid.UUID) (*db.Player, error) {
	var player db.Player
	err := tx.First(&player, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Server) getPlayer(playerID uuid.UUID) (*db.Player, error) {
	return loadPlayer(s.db, playerID)
}

// createPlayer joins a player to a game. Nicknames must be unique within the
// game (exact match) and at most one player per game may be dealer. Chips are
// initialized from the game's rules.
func (s *Server) createPlayer(req playerCreateRequest) (*db.Player, error) {
	player := &db.Player{GameStateID: req.GameStateID, NickName: req.NickName, IsDealer: req.IsDealer}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := loadGameState(tx, req.GameStateID)
		if err != nil {
			return err
		}
		if game.Rules == nil {
			return ErrRulesNotFound
		}
		for i := range game.Players {
			existing := game.Players[i]
			if req.NickName != nil && existing.NickName != nil && *existing.NickName == *req.NickName {
				return ErrNicknameTaken
			}
			if req.IsDealer && existing.IsDealer {
				return ErrDealerExists
			}
		}
		player.NumChips = game.Rules.ChipsAllottedPerPlayer
		if err := tx.Create(player).Error; err != nil {
			return err
		}
		return persistEvent(tx, game.ID, eventPlayerCreated, playerCreatedEvent{PlayerID: player.ID, NickName: player.NickName})
	})
	if err != nil {
		return nil, err
	}
	metricPlayersCreated.WithLabelValues(req.GameStateID.String()).Inc()
	return player, nil
}

// updatePlayer applies any provided subset of chips and nickname. The chip
// count must stay within [0, chipsAllottedPerPlayer]; nickname uniqueness is
// only enforced at creation.
func (s *Server) updatePlayer(req playerUpdateRequest) (*db.Player, error) {
	var player *db.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		player, err = loadPlayer(tx, req.ID)
		if err != nil {
			return err
		}
		rules, err := loadRules(tx, player.GameStateID)
		if err != nil {
			return err
		}
		if req.NumChips != nil {
			if *req.NumChips < 0 || *req.NumChips > rules.ChipsAllottedPerPlayer {
				return ErrChipsOutOfRange
			}
			player.NumChips = *req.NumChips
		}
		if req.NickName != nil {
			player.NickName = req.NickName
		}
		return tx.Save(player).Error
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// betChip spends one of the player's chips on a card. The decrement and the
// increment commit together or not at all.
func (s *Server) betChip(req playerBetRequest) (*db.Player, error) {
	var player *db.Player
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		player, err = loadPlayer(tx, req.PlayerID)
		if err != nil {
			return err
		}
		card, err := loadCard(tx, req.CardID)
		if err != nil {
			return err
		}
		if player.NumChips <= 0 {
			return ErrNotEnoughChips
		}
		player.NumChips--
		if err := tx.Save(player).Error; err != nil {
			return err
		}
		card.NumChips++
		return tx.Save(card).Error
	})
	if err != nil {
		return nil, err
	}
	return player, nil
}

// swapDealers moves the dealer flag between two players of the same game in
// one transaction.
func (s *Server) swapDealers(req dealerSwapRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		current, err := loadPlayer(tx, req.CurrentDealerID)
		if err != nil {
			return err
		}
		future, err := loadPlayer(tx, req.FutureDealerID)
		if err != nil {
			return err
		}
		if current.GameStateID != future.GameStateID {
			return ErrInvalidDealerSwap
		}
		if !current.IsDealer {
			return ErrInvalidDealerSwap
		}
		current.IsDealer = false
		future.IsDealer = true
		if err := tx.Save(current).Error; err != nil {
			return err
		}
		return tx.Save(future).Error
	})
}
