package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistEntry is one e-mail collected by the public waitlist form.
type WaitlistEntry struct {
	EntryID   uuid.UUID `gorm:"column:entry_id;type:uuid;primaryKey" json:"entry_id"`
	Email     string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Source    string    `gorm:"column:source" json:"source"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (w *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.EntryID == uuid.Nil {
		w.EntryID = uuid.New()
	}
	return nil
}
