package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Player struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GameStateID uuid.UUID `gorm:"type:uuid;index;not null" json:"gameStateId"`
	NumChips    int       `gorm:"not null" json:"numChips"`
	NickName    *string   `gorm:"size:64" json:"nickName"`
	IsDealer    bool      `gorm:"not null;default:false" json:"isDealer"`
	// LastTurnCompleted orders players for the turn derivation; it is not a
	// business timestamp. Defaults to the creation instant.
	LastTurnCompleted time.Time `gorm:"not null" json:"lastTurnCompletedTimestamp"`
	Cards             []Card    `gorm:"constraint:OnDelete:CASCADE" json:"cards,omitempty"`
	CreatedAt         time.Time `gorm:"not null" json:"-"`
	UpdatedAt         time.Time `gorm:"not null" json:"-"`
}

func (p *Player) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.LastTurnCompleted.IsZero() {
		p.LastTurnCompleted = time.Now().UTC()
	}
	return nil
}
