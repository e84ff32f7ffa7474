package server

import (
	"encoding/json"

	"rdfpoker/internal/db"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	eventGameCreated   = "game_created"
	eventPhaseChanged  = "phase_changed"
	eventTurnChanged   = "turn_changed"
	eventRulesChanged  = "rules_changed"
	eventPlayerCreated = "player_created"
	eventCardPlayed    = "card_played"
)

type playerCreatedEvent struct {
	PlayerID uuid.UUID `json:"playerId"`
	NickName *string   `json:"nickName"`
}

// persistEvent appends an audit row inside the caller's transaction.
func persistEvent(tx *gorm.DB, gameStateID uuid.UUID, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Create(&db.Event{
		GameStateID: gameStateID,
		Type:        eventType,
		Payload:     datatypes.JSON(raw),
	}).Error
}
