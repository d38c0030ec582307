package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedDocument is a generated document the user chose to keep
type SavedDocument struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	DocumentType string    `json:"document_type"`
	Filename     string    `json:"filename"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	StoragePath  string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
