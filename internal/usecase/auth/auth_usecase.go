package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/repository"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	codeStore repository.CodeStore
	jwtSecret string
	codeTTL   time.Duration
	tokenTTL  time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	codeStore repository.CodeStore,
	jwtSecret string,
	codeTTL time.Duration,
	tokenTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		codeStore: codeStore,
		jwtSecret: jwtSecret,
		codeTTL:   codeTTL,
		tokenTTL:  tokenTTL,
	}
}

// RequestCodeRequest starts a login: a six-digit code is generated for
// the email and held until it expires or is used.
type RequestCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyRequest exchanges a pending code for a session token. Name is
// only used when the email has no account yet.
type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
	Name  string `json:"name" binding:"omitempty,max=100"`
}

// AuthResponse carries the signed session token.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
	IsNewUser bool         `json:"is_new_user"`
}

// RequestCode generates a login code for the email and stores its bcrypt
// hash. The plain code is returned so the caller can hand it to the mail
// delivery; it is never persisted.
func (uc *AuthUseCase) RequestCode(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", domain.ErrInvalidInput
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate login code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash login code: %w", err)
	}

	if err := uc.codeStore.SaveCode(ctx, email, string(hash), uc.codeTTL); err != nil {
		return "", err
	}

	return code, nil
}

// Verify checks the code against the stored hash, creates the account on
// first login and returns a signed session token. The code is single use.
func (uc *AuthUseCase) Verify(ctx context.Context, email, code, name string) (*AuthResponse, error) {
	email = normalizeEmail(email)
	if email == "" || code == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := uc.codeStore.GetCode(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return nil, domain.ErrInvalidLoginCode
	}

	if err := uc.codeStore.DeleteCode(ctx, email); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	isNewUser := false
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{
			Email: email,
			Name:  displayName(name, email),
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		isNewUser = true
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	token, expiresAt, err := uc.signToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		IsNewUser: isNewUser,
	}, nil
}

// Me returns the account behind a verified session.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (uc *AuthUseCase) signToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// VerifyToken validates a session token and returns the user ID it was
// issued for.
func (uc *AuthUseCase) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domain.ErrInvalidToken
	}

	return userID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// displayName falls back to the email local part when no name was given.
func displayName(name, email string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
