package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kirtlelatino/store-api/internal/users"
	pkgAuth "github.com/kirtlelatino/store-api/pkg/auth"
	"github.com/kirtlelatino/store-api/pkg/config"
	"github.com/kirtlelatino/store-api/pkg/db"
	"github.com/kirtlelatino/store-api/pkg/db/models"
	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
	"github.com/kirtlelatino/store-api/pkg/security"
)

const (
	tokenTypeBearer           = "bearer"
	invalidCredentialsMessage = "invalid credentials"
	identifierTakenMessage    = "email or username already in use"
)

// Service defines the behavior needed by the auth controller and middleware.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Resolve(ctx context.Context, token string) (*models.User, error)
}

type service struct {
	db          *db.Client
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	DB             *db.Client
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{
		db:          params.DB,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and username are required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *models.User
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := users.NewRepository(tx)

		taken, err := repo.ExistsEmailOrUsername(ctx, email, username)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check identifiers")
		}
		if taken {
			return pkgerrors.New(pkgerrors.CodeConflict, identifierTakenMessage)
		}

		created, err = repo.Create(ctx, users.CreateUserDTO{
			Email:        email,
			Username:     username,
			PasswordHash: passwordHash,
		})
		if err != nil {
			// A racing registration can slip past the check; the unique
			// indexes surface it here.
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, identifierTakenMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.tokenResponse(created)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := users.NewRepository(s.db.DB()).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	return s.tokenResponse(user)
}

// Resolve maps a bearer token back to its user. Signature, format and expiry
// failures as well as an unknown subject all surface as unauthorized.
func (s *service) Resolve(ctx context.Context, token string) (*models.User, error) {
	claims, err := pkgAuth.ParseAccessToken(s.jwtCfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token subject")
	}

	user, err := users.NewRepository(s.db.DB()).FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return user, nil
}

func (s *service) tokenResponse(user *models.User) (*TokenResponse, error) {
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now(), user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		User:        users.FromModel(user),
	}, nil
}
