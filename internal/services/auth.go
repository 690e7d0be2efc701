package services

import (
	"errors"
	"log"
	"net/mail"
	"strings"

	"github.com/taskdeck-dev/taskdeck/internal/apperr"
	"github.com/taskdeck-dev/taskdeck/internal/auth"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/store"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 50
)

type RegisterInput struct {
	Username string
	Email    *string
	Password string
}

type LoginInput struct {
	Username string
	Email    string
	Password string
}

// AuthService orchestrates registration and login over the credential
// store, the password hasher and the token service.
type AuthService struct {
	users  store.CredentialStore
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewAuthService(users store.CredentialStore, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a user. It never issues a token; login is a separate
// step.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)

	if username == "" || input.Password == "" {
		return nil, apperr.New(apperr.KindValidation, "username and password are required")
	}

	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return nil, apperr.Newf(apperr.KindValidation, "username must be between %d and %d characters", usernameMinLen, usernameMaxLen)
	}

	var email *string

	if input.Email != nil && *input.Email != "" {
		normalized := strings.ToLower(strings.TrimSpace(*input.Email))
		if _, err := mail.ParseAddress(normalized); err != nil {
			return nil, apperr.New(apperr.KindValidation, "email is not valid")
		}
		email = &normalized
	}

	passwordHash, err := s.hasher.Hash(input.Password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.users.Insert(user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Generic on purpose: does not disclose which field collided.
			return nil, apperr.New(apperr.KindConflict, "account already exists")
		}
		log.Printf("Failed to create user: %v", err)
		return nil, apperr.Internal(err)
	}

	return user, nil
}

// Login authenticates by username or email and returns a signed token.
// Unknown accounts and wrong passwords produce the same error so account
// existence is never disclosed.
func (s *AuthService) Login(input LoginInput) (string, error) {
	if input.Password == "" || (input.Username == "" && input.Email == "") {
		return "", apperr.New(apperr.KindValidation, "username or email, and password are required")
	}

	var (
		user *models.User
		err  error
	)

	if input.Username != "" {
		user, err = s.users.FindByUsername(strings.TrimSpace(input.Username))
	} else {
		user, err = s.users.FindByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	}

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperr.New(apperr.KindAuthentication, "invalid credentials")
		}
		log.Printf("Failed to look up user: %v", err)
		return "", apperr.Internal(err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return "", apperr.New(apperr.KindAuthentication, "invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)

	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		return "", apperr.Internal(err)
	}

	return token, nil
}

// CurrentUser resolves the authenticated caller's record.
func (s *AuthService) CurrentUser(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, "account no longer exists")
		}
		log.Printf("Failed to fetch user %d: %v", userID, err)
		return nil, apperr.Internal(err)
	}

	return user, nil
}

// DeleteAccount removes the caller's user record after re-checking the
// password. All owned tasks go with it in the same transaction.
func (s *AuthService) DeleteAccount(userID uint, password string) error {
	if password == "" {
		return apperr.New(apperr.KindValidation, "password is required to delete the account")
	}

	user, err := s.CurrentUser(userID)

	if err != nil {
		return err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return apperr.New(apperr.KindAuthentication, "invalid credentials")
	}

	if err := s.users.Delete(user.ID); err != nil {
		log.Printf("Failed to delete user %d: %v", user.ID, err)
		return apperr.Internal(err)
	}

	return nil
}
