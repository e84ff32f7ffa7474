package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rules holds the per-game knobs. Mutable only while the game sits in
// PREGAME; timer durations are advisory client-side countdowns.
type Rules struct {
	ID                                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GameStateID                       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"gameStateId"`
	Prompt                            string    `gorm:"not null" json:"prompt"`
	MaxCardsInHand                    int       `gorm:"not null" json:"maxCardsInHand"`
	ChipsAllottedPerPlayer            int       `gorm:"not null" json:"chipsAllottedPerPlayer"`
	PreparationTimerDuration          int       `gorm:"not null" json:"preparationTimerDuration"`
	TurnTimerDuration                 int       `gorm:"not null" json:"turnTimerDuration"`
	BettingTimerDuration              int       `gorm:"not null" json:"bettingTimerDuration"`
	MinChipsForCardPostGameDiscussion int       `gorm:"not null" json:"minChipsForCardPostGameDiscussion"`
	MinCardContribution               int       `gorm:"not null" json:"minCardContribution"`
	CreatedAt                         time.Time `gorm:"not null" json:"-"`
	UpdatedAt                         time.Time `gorm:"not null" json:"-"`
}

func (r *Rules) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// DefaultRules returns the rules attached to every freshly created game.
func DefaultRules(gameStateID uuid.UUID) Rules {
	return Rules{
		GameStateID:                       gameStateID,
		Prompt:                            "Sweet, thought-provoking prompt",
		MaxCardsInHand:                    5,
		ChipsAllottedPerPlayer:            3,
		PreparationTimerDuration:          5,
		TurnTimerDuration:                 1,
		BettingTimerDuration:              1,
		MinChipsForCardPostGameDiscussion: 1,
		MinCardContribution:               1,
	}
}
