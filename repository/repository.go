package repository

import (
	"context"
	"errors"

	"lexipro-backend/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("record already exists")
)

// UserStore persists user accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// DocumentStore persists saved document metadata
type DocumentStore interface {
	Create(ctx context.Context, doc *models.SavedDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavedDocument, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.SavedDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
