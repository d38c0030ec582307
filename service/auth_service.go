package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lexipro-backend/models"
	"lexipro-backend/repository"
	"lexipro-backend/sampledata"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserExists         = errors.New("user already exists")
)

// Claims are the JWT claims issued at login
type Claims struct {
	Role models.Role `json:"role"`
	Name string      `json:"name"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller extracted from a token
type Identity struct {
	UserID uuid.UUID
	Role   models.Role
	Name   string
}

// AuthService issues and verifies session tokens
type AuthService struct {
	users    repository.UserStore
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// WithUserStore sets the user store
func WithUserStore(store repository.UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = store
	}
}

// WithJWTSecret sets the HMAC signing secret
func WithJWTSecret(secret string) AuthServiceOption {
	return func(s *AuthService) {
		s.secret = []byte(secret)
	}
}

// WithTokenTTL sets how long issued tokens stay valid
func WithTokenTTL(ttl time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		s.tokenTTL = ttl
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{
		tokenTTL: 24 * time.Hour,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	Email    string
	Password string
	Name     string
	Role     models.Role
	FirmName string
}

// CreateUser hashes the password and stores a new user
func (s *AuthService) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if s.users == nil {
		return nil, errors.New("user store not set")
	}
	switch {
	case strings.TrimSpace(req.Email) == "":
		return nil, missingField("email")
	case req.Password == "":
		return nil, missingField("password")
	case strings.TrimSpace(req.Name) == "":
		return nil, missingField("name")
	}
	if req.Role == "" {
		req.Role = models.RoleClient
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be client or lawyer", ErrInvalidField)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
	}
	if req.FirmName != "" {
		user.FirmName = &req.FirmName
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// SeedDemoUsers creates the sample accounts with a shared password.
// Accounts that already exist are left untouched; the created users are returned.
func (s *AuthService) SeedDemoUsers(ctx context.Context, password string) ([]*models.User, error) {
	var created []*models.User
	for _, a := range sampledata.Accounts() {
		user, err := s.CreateUser(ctx, CreateUserRequest{
			Email:    a.Email,
			Password: password,
			Name:     a.Name,
			Role:     a.Role,
			FirmName: a.FirmName,
		})
		if errors.Is(err, ErrUserExists) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to seed %s: %w", a.Email, err)
		}
		created = append(created, user)
	}
	return created, nil
}

// LoginResult carries the issued token
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// Login checks the credentials and issues a signed token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if s.users == nil {
		return nil, errors.New("user store not set")
	}
	if strings.TrimSpace(email) == "" {
		return nil, missingField("email")
	}
	if password == "" {
		return nil, missingField("password")
	}

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret not set")
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	claims := Claims{
		Role: user.Role,
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "lexipro",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Authenticate verifies a token and returns the caller's identity
func (s *AuthService) Authenticate(tokenString string) (*Identity, error) {
	if len(s.secret) == 0 {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer("lexipro"))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: userID, Role: claims.Role, Name: claims.Name}, nil
}

// GetUser returns the stored user for an identity
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.users == nil {
		return nil, errors.New("user store not set")
	}
	return s.users.GetByID(ctx, id)
}
