package server

import (
	"errors"
	"testing"

	"rdfpoker/internal/db"

	"github.com/google/uuid"
)

func TestGetRulesUnknownGame(t *testing.T) {
	s := newTestServer(t)
	_, err := s.getRules(uuid.New())
	if !errors.Is(err, ErrGameStateNotFound) {
		t.Fatalf("expected ErrGameStateNotFound, got %v", err)
	}
}

func TestUpdateRulesMergesProvidedFields(t *testing.T) {
	s := newTestServer(t)
	game := createTestGame(t, s)

	rules, err := s.updateRules(rulesUpdateRequest{
		GameStateID: game.ID,
		Prompt:      strPtr("What would you build with a free weekend?"),
	})
	if err != nil {
		t.Fatalf("update rules: %v", err)
	}
	if rules.Prompt != "What would you build with a free weekend?" {
		t.Errorf("unexpected prompt %q", rules.Prompt)
	}
	defaults := db.DefaultRules(game.ID)
	if rules.MaxCardsInHand != defaults.MaxCardsInHand {
		t.Errorf("expected max cards untouched at %d, got %d", defaults.MaxCardsInHand, rules.MaxCardsInHand)
	}
}

func TestUpdateRulesOnlyInPregame(t *testing.T) {
	s := newTestServer(t)
	game := createTestGame(t, s)
	setGamePhase(t, s, game.ID, db.PhaseTurn)

	_, err := s.updateRules(rulesUpdateRequest{GameStateID: game.ID, Prompt: strPtr("too late")})
	if !errors.Is(err, ErrWrongPhaseForRules) {
		t.Fatalf("expected ErrWrongPhaseForRules, got %v", err)
	}
	rules, err := s.getRules(game.ID)
	if err != nil {
		t.Fatalf("get rules: %v", err)
	}
	if rules.Prompt != db.DefaultRules(game.ID).Prompt {
		t.Errorf("expected prompt unchanged, got %q", rules.Prompt)
	}
}

func TestUpdateRulesResetsPlayerChips(t *testing.T) {
	s := newTestServer(t)
	game := createTestGame(t, s)
	first := createTestPlayer(t, s, game.ID, "ada", false)
	second := createTestPlayer(t, s, game.ID, "bob", false)

	if _, err := s.updatePlayer(playerUpdateRequest{ID: first.ID, NumChips: intPtr(1)}); err != nil {
		t.Fatalf("spend chips: %v", err)
	}

	rules, err := s.updateRules(rulesUpdateRequest{GameStateID: game.ID, ChipsAllottedPerPlayer: intPtr(5)})
	if err != nil {
		t.Fatalf("update rules: %v", err)
	}
	if rules.ChipsAllottedPerPlayer != 5 {
		t.Errorf("expected allotment 5, got %d", rules.ChipsAllottedPerPlayer)
	}
	for _, id := range []uuid.UUID{first.ID, second.ID} {
		if got := reloadPlayer(t, s, id); got.NumChips != 5 {
			t.Errorf("expected player %v reset to 5 chips, got %d", id, got.NumChips)
		}
	}
}

func TestUpdateRulesValidation(t *testing.T) {
	s := newTestServer(t)
	game := createTestGame(t, s)

	cases := []struct {
		name string
		req  rulesUpdateRequest
	}{
		{"blank prompt", rulesUpdateRequest{GameStateID: game.ID, Prompt: strPtr("   ")}},
		{"hand too big", rulesUpdateRequest{GameStateID: game.ID, MaxCardsInHand: intPtr(7)}},
		{"hand too small", rulesUpdateRequest{GameStateID: game.ID, MaxCardsInHand: intPtr(0)}},
		{"too many chips", rulesUpdateRequest{GameStateID: game.ID, ChipsAllottedPerPlayer: intPtr(6)}},
		{"zero chips", rulesUpdateRequest{GameStateID: game.ID, ChipsAllottedPerPlayer: intPtr(0)}},
		{"zero turn timer", rulesUpdateRequest{GameStateID: game.ID, TurnTimerDuration: intPtr(0)}},
		{"negative contribution", rulesUpdateRequest{GameStateID: game.ID, MinCardContribution: intPtr(-1)}},
	}
	for _, tc := range cases {
		if _, err := s.updateRules(tc.req); !errors.Is(err, ErrInvalidRules) {
			t.Errorf("%s: expected ErrInvalidRules, got %v", tc.name, err)
		}
	}

	rules, err := s.getRules(game.ID)
	if err != nil {
		t.Fatalf("get rules: %v", err)
	}
	defaults := db.DefaultRules(game.ID)
	if rules.Prompt != defaults.Prompt || rules.MaxCardsInHand != defaults.MaxCardsInHand {
		t.Error("expected rules unchanged after rejected updates")
	}
}
