package server

import (
	"testing"
	"time"

	"rdfpoker/internal/db"

	"github.com/google/uuid"
)

func playerWithCards(at time.Time, statuses ...db.CardStatus) db.Player {
	player := db.Player{ID: uuid.New(), LastTurnCompleted: at}
	for _, status := range statuses {
		player.Cards = append(player.Cards, db.Card{ID: uuid.New(), CardStatus: status})
	}
	return player
}

func TestWhichPlayersTurnNoEligiblePlayers(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		name string
		game db.GameState
	}{
		{"no players", db.GameState{}},
		{"no cards", db.GameState{Players: []db.Player{playerWithCards(now)}}},
		{"no hand cards", db.GameState{Players: []db.Player{
			playerWithCards(now, db.CardOnTable, db.CardOnDisplay),
		}}},
	}
	for _, tc := range cases {
		if got := whichPlayersTurn(&tc.game); got != nil {
			t.Errorf("%s: expected nil turn owner, got %v", tc.name, got.ID)
		}
	}
}

func TestWhichPlayersTurnPicksLongestWaiting(t *testing.T) {
	t0 := time.Now().UTC()
	waiting := playerWithCards(t0, db.CardInHand)
	recent := playerWithCards(t0.Add(time.Minute), db.CardInHand)
	game := db.GameState{Players: []db.Player{recent, waiting}}

	got := whichPlayersTurn(&game)
	if got == nil || got.ID != waiting.ID {
		t.Fatalf("expected longest-waiting player %v, got %v", waiting.ID, got)
	}
}

func TestWhichPlayersTurnIgnoresPlayersWithEmptyHands(t *testing.T) {
	t0 := time.Now().UTC()
	emptyHanded := playerWithCards(t0, db.CardOnTable)
	eligible := playerWithCards(t0.Add(time.Hour), db.CardInHand)
	game := db.GameState{Players: []db.Player{emptyHanded, eligible}}

	got := whichPlayersTurn(&game)
	if got == nil || got.ID != eligible.ID {
		t.Fatalf("expected eligible player %v, got %v", eligible.ID, got)
	}
}

func TestWhichPlayersTurnTieBreaksByLoadOrder(t *testing.T) {
	t0 := time.Now().UTC()
	first := playerWithCards(t0, db.CardInHand)
	second := playerWithCards(t0, db.CardInHand)
	game := db.GameState{Players: []db.Player{first, second}}

	got := whichPlayersTurn(&game)
	if got == nil || got.ID != first.ID {
		t.Fatalf("expected earlier-loaded player %v on tie, got %v", first.ID, got)
	}
}

func TestTurnResponseForNil(t *testing.T) {
	turn := turnResponseFor(nil)
	if turn.PlayerID != nil || turn.PlayerNickName != nil {
		t.Fatalf("expected null turn response, got %+v", turn)
	}
}
