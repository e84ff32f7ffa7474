package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event is an append-only audit row, written in the same transaction as the
// mutation it records.
type Event struct {
	ID          uint           `gorm:"primaryKey"`
	GameStateID uuid.UUID      `gorm:"type:uuid;index;not null"`
	Type        string         `gorm:"size:64;not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"not null"`
}
