package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Phase is the coarse stage a game is in. Transitions are dealer-driven and
// unrestricted: any phase may follow any other.
type Phase string

const (
	PhasePregame     Phase = "PREGAME"
	PhasePreparation Phase = "PREPARATION"
	PhaseTurn        Phase = "TURN"
	PhaseBetting     Phase = "BETTING"
	PhasePostgame    Phase = "POSTGAME"
)

// ParsePhase maps a wire string to a Phase.
func ParsePhase(s string) (Phase, bool) {
	switch Phase(s) {
	case PhasePregame, PhasePreparation, PhaseTurn, PhaseBetting, PhasePostgame:
		return Phase(s), true
	}
	return "", false
}

type GameState struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Phase     Phase     `gorm:"size:16;not null" json:"phase"`
	Players   []Player  `gorm:"constraint:OnDelete:CASCADE" json:"players,omitempty"`
	Rules     *Rules    `gorm:"constraint:OnDelete:CASCADE" json:"rules,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

func (g *GameState) BeforeCreate(*gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
