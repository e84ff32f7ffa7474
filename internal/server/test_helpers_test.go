package server

import (
	"io"
	"testing"
	"time"

	"rdfpoker/internal/config"
	"rdfpoker/internal/db"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return New(conn, config.Default(), log.New(io.Discard))
}

func createTestGame(t *testing.T, s *Server) *db.GameState {
	t.Helper()
	game, err := s.createGame()
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	return game
}

func createTestPlayer(t *testing.T, s *Server, gameID uuid.UUID, nick string, dealer bool) *db.Player {
	t.Helper()
	var nickPtr *string
	if nick != "" {
		nickPtr = &nick
	}
	player, err := s.createPlayer(playerCreateRequest{
		GameStateID: gameID,
		NickName:    nickPtr,
		IsDealer:    dealer,
	})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	return player
}

func createTestCard(t *testing.T, s *Server, playerID uuid.UUID, content string, status db.CardStatus) *db.Card {
	t.Helper()
	card, err := s.addCard(playerID)
	if err != nil {
		t.Fatalf("add card: %v", err)
	}
	card.Content = content
	card.CardStatus = status
	if err := s.db.Save(card).Error; err != nil {
		t.Fatalf("save card: %v", err)
	}
	return card
}

func setLastTurn(t *testing.T, s *Server, playerID uuid.UUID, at time.Time) {
	t.Helper()
	err := s.db.Model(&db.Player{}).
		Where("id = ?", playerID).
		Update("last_turn_completed", at).Error
	if err != nil {
		t.Fatalf("set last turn: %v", err)
	}
}

func setGamePhase(t *testing.T, s *Server, gameID uuid.UUID, phase db.Phase) {
	t.Helper()
	err := s.db.Model(&db.GameState{}).
		Where("id = ?", gameID).
		Update("phase", phase).Error
	if err != nil {
		t.Fatalf("set phase: %v", err)
	}
}

func reloadCard(t *testing.T, s *Server, id uuid.UUID) *db.Card {
	t.Helper()
	card, err := loadCard(s.db, id)
	if err != nil {
		t.Fatalf("reload card: %v", err)
	}
	return card
}

func reloadPlayer(t *testing.T, s *Server, id uuid.UUID) *db.Player {
	t.Helper()
	player, err := loadPlayer(s.db, id)
	if err != nil {
		t.Fatalf("reload player: %v", err)
	}
	return player
}

func countDisplayedCards(t *testing.T, s *Server) int {
	t.Helper()
	var count int64
	err := s.db.Model(&db.Card{}).
		Where("card_status = ?", db.CardOnDisplay).
		Count(&count).Error
	if err != nil {
		t.Fatalf("count displayed cards: %v", err)
	}
	return int(count)
}
