package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"lexipro-backend/models"

	"github.com/google/uuid"
)

// MemoryUserRepository is a UserStore kept in process memory
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

// NewMemoryUserRepository creates an empty in-memory user store
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]models.User)}
}

// Create stores a copy of user, assigning ID and timestamps
func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateKey
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

// GetByID retrieves a user by ID
func (r *MemoryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(email)
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryDocumentRepository is a DocumentStore kept in process memory
type MemoryDocumentRepository struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]models.SavedDocument
	now  func() time.Time
}

// NewMemoryDocumentRepository creates an empty in-memory document store
func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		docs: make(map[uuid.UUID]models.SavedDocument),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a copy of doc
func (r *MemoryDocumentRepository) Create(ctx context.Context, doc *models.SavedDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if _, exists := r.docs[doc.ID]; exists {
		return ErrDuplicateKey
	}
	doc.CreatedAt = r.now()
	r.docs[doc.ID] = *doc
	return nil
}

// GetByID retrieves a document by ID
func (r *MemoryDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &doc, nil
}

// ListByUserID returns a user's documents, newest first
func (r *MemoryDocumentRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.SavedDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]*models.SavedDocument, 0)
	for _, doc := range r.docs {
		if doc.UserID == userID {
			d := doc
			docs = append(docs, &d)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	if offset > 0 {
		if offset >= len(docs) {
			return []*models.SavedDocument{}, nil
		}
		docs = docs[offset:]
	}
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}
	return docs, nil
}

// Delete removes a document
func (r *MemoryDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

var (
	_ UserStore     = (*MemoryUserRepository)(nil)
	_ DocumentStore = (*MemoryDocumentRepository)(nil)
)
