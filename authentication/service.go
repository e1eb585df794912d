package authentication

import (
	"context"
	"database/sql"
	"time"

	"github.com/Tetricia805/DayStar-DayCare-center/shared"
	"github.com/Tetricia805/DayStar-DayCare-center/store"

	"github.com/dgrijalva/jwt-go"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingMandatoryFields = errors.New("email and password are mandatory")
	ErrUserExists             = errors.New("a user with this email already exists")
	ErrInvalidRole            = errors.New("role must be administrator, manager, babysitter or parent")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrNoCredentials          = errors.New("no credentials in request context")
)

type Service interface {
	Register(ctx context.Context, request UserTransport) (store.User, string, error)
	Login(ctx context.Context, request LoginTransport) (store.User, string, error)
	CurrentUser(ctx context.Context) (store.User, error)
	UpdateProfile(ctx context.Context, request UserTransport) (store.User, error)
}

type AuthenticationService struct {
	Store interface {
		AddUser(tx *gorm.DB, user store.User) (store.User, error)
		GetUser(tx *gorm.DB, userId int) (store.User, error)
		GetUserByEmail(tx *gorm.DB, email string) (store.User, error)
		UpdateUserProfile(tx *gorm.DB, user store.User) (store.User, error)
	} `inject:""`
	Config *shared.AppConfig `inject:""`
	Logger *shared.Logger    `inject:""`
}

func (s *AuthenticationService) Register(ctx context.Context, request UserTransport) (store.User, string, error) {
	if request.Email == "" || request.Password == "" {
		return store.User{}, "", ErrMissingMandatoryFields
	}
	if !shared.IsValidRole(request.Role) {
		return store.User{}, "", ErrInvalidRole
	}

	_, err := s.Store.GetUserByEmail(nil, request.Email)
	if err == nil {
		return store.User{}, "", ErrUserExists
	}
	if errors.Cause(err) != store.ErrUserNotFound {
		return store.User{}, "", errors.Wrap(err, "failed to check email uniqueness")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return store.User{}, "", errors.Wrap(err, "failed to hash password")
	}

	user, err := s.Store.AddUser(nil, store.User{
		Email:     request.Email,
		Password:  string(hash),
		Role:      request.Role,
		FirstName: sql.NullString{String: request.FirstName, Valid: request.FirstName != ""},
		LastName:  sql.NullString{String: request.LastName, Valid: request.LastName != ""},
		Phone:     sql.NullString{String: request.Phone, Valid: request.Phone != ""},
	})
	if err != nil {
		return store.User{}, "", errors.Wrap(err, "failed to register user")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return store.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthenticationService) Login(ctx context.Context, request LoginTransport) (store.User, string, error) {
	if request.Email == "" || request.Password == "" {
		return store.User{}, "", ErrMissingMandatoryFields
	}

	user, err := s.Store.GetUserByEmail(nil, request.Email)
	if errors.Cause(err) == store.ErrUserNotFound {
		return store.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return store.User{}, "", errors.Wrap(err, "failed to get user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return store.User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return store.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthenticationService) CurrentUser(ctx context.Context) (store.User, error) {
	userId, err := userIdFromContext(ctx)
	if err != nil {
		return store.User{}, err
	}

	user, err := s.Store.GetUser(nil, userId)
	if err != nil {
		return user, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

func (s *AuthenticationService) UpdateProfile(ctx context.Context, request UserTransport) (store.User, error) {
	userId, err := userIdFromContext(ctx)
	if err != nil {
		return store.User{}, err
	}

	user, err := s.Store.UpdateUserProfile(nil, store.User{
		UserId:    userId,
		FirstName: sql.NullString{String: request.FirstName, Valid: request.FirstName != ""},
		LastName:  sql.NullString{String: request.LastName, Valid: request.LastName != ""},
		Phone:     sql.NullString{String: request.Phone, Valid: request.Phone != ""},
	})
	if err != nil {
		return user, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

func (s *AuthenticationService) issueToken(user store.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.UserId,
		"email":  user.Email,
		"roles":  []string{user.Role},
		"exp":    time.Now().Add(time.Duration(s.Config.TokenValidityInHours) * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(s.Config.JwtSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func userIdFromContext(ctx context.Context) (int, error) {
	claims, ok := ctx.Value("claims").(map[string]interface{})
	if !ok {
		return 0, ErrNoCredentials
	}
	userId, ok := claims["userId"].(int)
	if !ok {
		return 0, ErrNoCredentials
	}
	return userId, nil
}
