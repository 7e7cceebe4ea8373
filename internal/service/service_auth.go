package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/gatherly/internal/config"
	"github.com/MKhiriev/gatherly/internal/logger"
	"github.com/MKhiriev/gatherly/internal/store"
	"github.com/MKhiriev/gatherly/internal/validators"
	"github.com/MKhiriev/gatherly/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential checks and profile changes, stores
// passwords as bcrypt hashes and issues bearer tokens through a TokenIssuer.
type authService struct {
	userRepository store.UserRepository
	tokens         TokenIssuer
	validator      validators.Validator

	// passwordCost is the bcrypt work factor for new hashes.
	passwordCost int

	// tokenDuration is the lifetime of issued tokens.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repository and
// token issuer, taking the bcrypt cost and token lifetime from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenIssuer, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		validator:      validator,
		passwordCost:   cfg.PasswordCost,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a self-service account and signs the user in.
//
// Returns the new user with a token or:
//   - validation.Errors when the request is malformed.
//   - store.ErrEmailAlreadyExists (wrapped) when the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		req.Phone = &phone
		if phone == "" {
			req.Phone = nil
		}
	}

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("failed to hash password")
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         req.Role,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("failed to issue token after registration")
		return models.AuthResponse{}, err
	}

	log.Info().Int64("user_id", user.UserID).Str("role", user.Role.String()).Msg("user registered")
	return models.AuthResponse{User: user, Token: token.String()}, nil
}

// Login checks the credentials and issues a token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// A disabled account yields ErrAccountInactive, checked after the password so
// that it reveals nothing to someone without the password.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", req.Email).Msg("login failed: user not found")
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !checkPassword(user.PasswordHash, req.Password) {
		log.Warn().Int64("user_id", user.UserID).Msg("login failed: invalid password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn().Int64("user_id", user.UserID).Msg("login failed: account inactive")
		return models.AuthResponse{}, ErrAccountInactive
	}

	if err = a.userRepository.UpdateLastLogin(ctx, user.UserID); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("failed to record last login")
	}

	token, err := a.issueToken(user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("failed to issue token")
		return models.AuthResponse{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	return models.AuthResponse{User: user, Token: token.String()}, nil
}

// Me returns the freshly loaded account of principal.
func (a *authService) Me(ctx context.Context, principal models.Principal) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, principal.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", principal.UserID).Msg("failed to load profile")
		return models.User{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

func (a *authService) UpdateProfile(ctx context.Context, principal models.Principal, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	update.FullName = trimPtr(update.FullName)
	update.Phone = trimPtr(update.Phone)
	update.ProfileImage = trimPtr(update.ProfileImage)

	if err := a.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.UpdateProfile(ctx, principal.UserID, update)
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("failed to update profile")
		return models.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	log.Info().Int64("user_id", principal.UserID).Msg("profile updated")
	return user, nil
}

// ChangePassword replaces the password of principal after checking the
// current one. A wrong current password yields ErrWrongPassword.
func (a *authService) ChangePassword(ctx context.Context, principal models.Principal, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByID(ctx, principal.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("failed to load user")
		return fmt.Errorf("failed to load user: %w", err)
	}

	if !checkPassword(user.PasswordHash, req.CurrentPassword) {
		log.Warn().Int64("user_id", principal.UserID).Msg("password change rejected: wrong current password")
		return ErrWrongPassword
	}

	hash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, principal.UserID, hash); err != nil {
		log.Err(err).Int64("user_id", principal.UserID).Msg("failed to store new password")
		return fmt.Errorf("failed to store new password: %w", err)
	}

	log.Info().Int64("user_id", principal.UserID).Msg("password changed")
	return nil
}

// issueToken signs a token carrying the user id, email and role.
func (a *authService) issueToken(user models.User) (models.Token, error) {
	claims := models.NewClaims(user.UserID, map[string]any{
		models.ClaimEmail: user.Email,
		models.ClaimRole:  user.Role.String(),
	})

	token, err := a.tokens.Issue(claims, a.tokenDuration)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.passwordCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
