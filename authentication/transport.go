package authentication

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Tetricia805/DayStar-DayCare-center/shared"
	"github.com/Tetricia805/DayStar-DayCare-center/store"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/pkg/errors"
)

type UserTransport struct {
	Id        int    `json:"id,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type LoginTransport struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenTransport struct {
	Token string        `json:"token"`
	User  UserTransport `json:"user"`
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Register(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeRegisterEndpoint(h.Service),
		decodeUserTransport,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) Login(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeLoginEndpoint(h.Service),
		decodeLoginTransport,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Me(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeMeEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) UpdateProfile(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeUpdateProfileEndpoint(h.Service),
		decodeUserTransport,
		shared.EncodeResponse200,
		opts...,
	)
}

func makeRegisterEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(UserTransport)
		user, token, err := svc.Register(ctx, req)
		if err != nil {
			return nil, err
		}

		return TokenTransport{
			Token: token,
			User:  userToTransport(user),
		}, nil
	}
}

func makeLoginEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(LoginTransport)
		user, token, err := svc.Login(ctx, req)
		if err != nil {
			return nil, err
		}

		return TokenTransport{
			Token: token,
			User:  userToTransport(user),
		}, nil
	}
}

func makeMeEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		user, err := svc.CurrentUser(ctx)
		if err != nil {
			return nil, err
		}

		return userToTransport(user), nil
	}
}

func makeUpdateProfileEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(UserTransport)
		user, err := svc.UpdateProfile(ctx, req)
		if err != nil {
			return nil, err
		}

		return userToTransport(user), nil
	}
}

func userToTransport(user store.User) UserTransport {
	return UserTransport{
		Id:        user.UserId,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName.String,
		LastName:  user.LastName.String,
		Phone:     user.Phone.String,
	}
}

func decodeUserTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request UserTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeLoginTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request LoginTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func ignorePayload(_ context.Context, r *http.Request) (interface{}, error) {
	return nil, nil
}

// encode errors from business-logic
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	switch errors.Cause(err) {
	case ErrMissingMandatoryFields, ErrUserExists, ErrInvalidRole, ErrInvalidCredentials:
		w.WriteHeader(http.StatusBadRequest)
	case ErrNoCredentials:
		w.WriteHeader(http.StatusUnauthorized)
	case store.ErrUserNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
