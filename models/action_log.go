// models/action_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionLog records a mutation an admin issued through the console.
type ActionLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Actor     string    `gorm:"type:varchar(255);index" json:"actor"`
	Action    string    `gorm:"type:varchar(50);index;not null" json:"action"`
	TargetID  string    `gorm:"type:varchar(64);index" json:"targetId"`
	Outcome   string    `gorm:"type:varchar(20)" json:"outcome"` // success, failed, blocked
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeBlocked = "blocked"
)

func (l *ActionLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	return
}
