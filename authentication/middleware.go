package authentication

import (
	"context"
	"net/http"
	"strings"

	"github.com/Tetricia805/DayStar-DayCare-center/shared"

	"github.com/dgrijalva/jwt-go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

type TokenClaims struct {
	UserId int      `mapstructure:"userId"`
	Email  string   `mapstructure:"email"`
	Roles  []string `mapstructure:"roles"`
}

type Authenticator struct {
	Config *shared.AppConfig `inject:""`
	Logger *shared.Logger    `inject:""`
}

// Verify decodes the bearer token and stores the claims into the request
// context. Paths listed in excluded are served without a token.
func (a *Authenticator) Verify(next http.Handler, excluded []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		for _, path := range excluded {
			if req.URL.Path == path {
				next.ServeHTTP(w, req)
				return
			}
		}

		claims, err := a.parseToken(req)
		if err != nil {
			a.Logger.Warn(req.Context(), "token rejected", "error", err.Error())
			shared.HttpError(w, shared.NewError(err.Error()), http.StatusBadRequest)
			return
		}

		ctxClaims := map[string]interface{}{
			"userId": claims.UserId,
			"email":  claims.Email,
		}
		for _, role := range claims.Roles {
			ctxClaims[role] = true
		}

		ctx := context.WithValue(req.Context(), "claims", ctxClaims)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// Roles only lets the request through when the token carries one of the
// given roles.
func (a *Authenticator) Roles(next http.Handler, roles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		claims, ok := req.Context().Value("claims").(map[string]interface{})
		if !ok {
			shared.HttpError(w, shared.NewError("no credentials"), http.StatusUnauthorized)
			return
		}

		for _, role := range roles {
			if v, ok := claims[role]; ok && v == true {
				next.ServeHTTP(w, req)
				return
			}
		}

		a.Logger.Warn(req.Context(), "access denied", "uri", req.RequestURI)
		shared.HttpError(w, shared.NewError("access denied"), http.StatusUnauthorized)
	})
}

func (a *Authenticator) parseToken(req *http.Request) (TokenClaims, error) {
	header := req.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return TokenClaims{}, errors.New("missing bearer token")
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.Config.JwtSecret), nil
	})
	if err != nil {
		return TokenClaims{}, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return TokenClaims{}, errors.New("invalid token")
	}

	claims := TokenClaims{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &claims,
	})
	if err != nil {
		return TokenClaims{}, err
	}
	if err := decoder.Decode(map[string]interface{}(token.Claims.(jwt.MapClaims))); err != nil {
		return TokenClaims{}, errors.Wrap(err, "failed to decode claims")
	}

	return claims, nil
}
