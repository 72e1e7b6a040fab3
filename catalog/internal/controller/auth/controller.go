package auth

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/catalog/internal/repository"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/logging"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalid is returned when a request fails validation.
	ErrInvalid = errors.New("invalid request")
	// ErrConflict is returned when the username or email is taken.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials is returned when a login does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned for a missing, malformed or expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when the user does not exist.
	ErrNotFound = errors.New("user not found")
)

// maxPasswordBytes is the longest password bcrypt accepts.
const maxPasswordBytes = 72

// SecretProvider defines a provider of the token signing secret.
type SecretProvider func() []byte

type userRepository interface {
	Get(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	PutReset(ctx context.Context, token string, reset *model.PasswordReset) error
	GetReset(ctx context.Context, token string) (*model.PasswordReset, error)
	DeleteReset(ctx context.Context, token string) error
}

// Claims defines the token payload.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Session defines a signed-in user.
type Session struct {
	Token string        `json:"token"`
	User  model.Profile `json:"user"`
}

// SignupRequest defines an account creation.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,excludesrune=@"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines a sign-in by username or email.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate defines a partial profile change. Changing the password
// requires the current one.
type ProfileUpdate struct {
	Username        *string `json:"username" validate:"omitempty,min=3,max=32,excludesrune=@"`
	Email           *string `json:"email" validate:"omitempty,email,max=254"`
	ProfilePicture  *string `json:"profilePicture" validate:"omitempty,max=2048"`
	Password        *string `json:"password" validate:"omitempty,min=8,max=72"`
	CurrentPassword string  `json:"currentPassword"`
}

// Controller defines an account controller issuing HS256 bearer tokens.
type Controller struct {
	repo     userRepository
	secret   SecretProvider
	tokenTTL time.Duration
	resetTTL time.Duration
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

// New creates an account controller.
func New(repo userRepository, secret SecretProvider, tokenTTL, resetTTL time.Duration, logger *zap.Logger) *Controller {
	logger = logger.With(
		zap.String(logging.FieldComponent, "controller"),
		zap.String(logging.FieldType, "auth"),
	)
	return &Controller{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
		resetTTL: resetTTL,
		validate: validator.New(),
		now:      time.Now,
		logger:   logger,
	}
}

// Signup creates an account and signs it in.
func (c *Controller) Signup(ctx context.Context, req *SignupRequest) (*Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := checkUsername(req.Username); err != nil {
		return nil, err
	}
	if err := checkPassword(req.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    c.now().UnixMilli(),
	}
	if err := c.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, err
	}
	c.logger.Info("Created user", zap.String(logging.FieldUser, u.Username))
	return c.session(u)
}

// checkUsername rejects names in the anonymous identifier space.
func checkUsername(username string) error {
	if strings.HasPrefix(strings.ToLower(username), model.AnonymousPrefix) {
		return fmt.Errorf("%w: username must not start with %q", ErrInvalid, model.AnonymousPrefix)
	}
	return nil
}

func checkPassword(password string) error {
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password exceeds %d bytes", ErrInvalid, maxPasswordBytes)
	}
	return nil
}

// Login checks credentials and signs the user in.
func (c *Controller) Login(ctx context.Context, req *LoginRequest) (*Session, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	login := strings.TrimSpace(req.Login)
	var u *model.User
	var err error
	if strings.Contains(login, "@") {
		u, err = c.repo.GetByEmail(ctx, login)
	} else {
		u, err = c.repo.GetByUsername(ctx, login)
	}
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return c.session(u)
}

func (c *Controller) session(u *model.User) (*Session, error) {
	token, err := c.issueToken(u)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u.Profile()}, nil
}

func (c *Controller) issueToken(u *model.User) (string, error) {
	now := c.now()
	claims := Claims{
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if c.tokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.tokenTTL))
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret())
	if err != nil {
		c.logger.Error("Failed to sign token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// ValidateToken verifies a bearer token and returns its claims. Username is
// taken from the subject's current record; a deleted subject is unauthorized.
func (c *Controller) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrUnauthorized)
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret(), nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token: %v", ErrUnauthorized, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}
	u, err := c.repo.Get(ctx, claims.Subject)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: user no longer exists", ErrUnauthorized)
	} else if err != nil {
		return nil, err
	}
	claims.Username = u.Username
	return claims, nil
}

// UpdateProfile applies a profile change to userID and returns a fresh session
// carrying the new username.
func (c *Controller) UpdateProfile(ctx context.Context, userID string, upd *ProfileUpdate) (*Session, error) {
	if err := c.validate.Struct(upd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	u, err := c.repo.Get(ctx, userID)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if upd.Username != nil {
		u.Username = strings.TrimSpace(*upd.Username)
		if err := checkUsername(u.Username); err != nil {
			return nil, err
		}
	}
	if upd.Email != nil {
		u.Email = strings.TrimSpace(*upd.Email)
	}
	if upd.ProfilePicture != nil {
		u.ProfilePicture = *upd.ProfilePicture
	}
	if upd.Password != nil {
		if err := checkPassword(*upd.Password); err != nil {
			return nil, err
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(upd.CurrentPassword)); err != nil {
			return nil, ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := c.repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return nil, err
	}
	return c.session(u)
}

// ForgotPassword creates a reset token for the account with the given email.
// An unknown email yields an empty token and no error.
func (c *Controller) ForgotPassword(ctx context.Context, email string) (string, error) {
	u, err := c.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		c.logger.Debug("Password reset for unknown email")
		return "", nil
	} else if err != nil {
		return "", err
	}
	token := uuid.NewString()
	reset := &model.PasswordReset{UserID: u.ID, ExpiresAt: c.now().Add(c.resetTTL).UnixMilli()}
	if err := c.repo.PutReset(ctx, token, reset); err != nil {
		return "", err
	}
	c.logger.Info("Created password reset", zap.String(logging.FieldUser, u.Username))
	return token, nil
}

// ResetPassword sets a new password using a reset token. Tokens are single use.
func (c *Controller) ResetPassword(ctx context.Context, token, password string) error {
	if err := c.validate.Var(password, "required,min=8,max=72"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := checkPassword(password); err != nil {
		return err
	}
	reset, err := c.repo.GetReset(ctx, token)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: unknown reset token", ErrInvalid)
	} else if err != nil {
		return err
	}
	if c.now().UnixMilli() > reset.ExpiresAt {
		if err := c.repo.DeleteReset(ctx, token); err != nil {
			c.logger.Warn("Failed to delete expired reset", zap.Error(err))
		}
		return fmt.Errorf("%w: reset token expired", ErrInvalid)
	}
	u, err := c.repo.Get(ctx, reset.UserID)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	if err := c.repo.Update(ctx, u); err != nil {
		return err
	}
	return c.repo.DeleteReset(ctx, token)
}
