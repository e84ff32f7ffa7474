package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardStatus tracks a card through INHAND -> ONDISPLAY -> ONTABLE.
type CardStatus string

const (
	CardInHand    CardStatus = "INHAND"
	CardOnDisplay CardStatus = "ONDISPLAY"
	CardOnTable   CardStatus = "ONTABLE"
)

// ParseCardStatus maps a wire string to a CardStatus.
func ParseCardStatus(s string) (CardStatus, bool) {
	switch CardStatus(s) {
	case CardInHand, CardOnDisplay, CardOnTable:
		return CardStatus(s), true
	}
	return "", false
}

type Card struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"playerId"`
	Content    string     `gorm:"not null;default:''" json:"content"`
	CardStatus CardStatus `gorm:"size:16;not null" json:"cardStatus"`
	NumChips   int        `gorm:"not null;default:0" json:"numChips"`
	CreatedAt  time.Time  `gorm:"not null" json:"-"`
	UpdatedAt  time.Time  `gorm:"not null" json:"-"`
}

func (c *Card) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CardStatus == "" {
		c.CardStatus = CardInHand
	}
	return nil
}
