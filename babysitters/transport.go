package babysitters

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Tetricia805/DayStar-DayCare-center/shared"
	"github.com/Tetricia805/DayStar-DayCare-center/store"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var (
	ErrBadRouting = errors.New("inconsistent mapping between route and handler (programmer error)")
	ErrInvalidId  = errors.New("babysitter id must be an integer")
)

type BabysitterTransport struct {
	Id                    int    `json:"id,omitempty"`
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email,omitempty"`
	PhoneNumber           string `json:"phoneNumber"`
	Nin                   string `json:"nin"`
	DateOfBirth           string `json:"dateOfBirth"`
	NextOfKinName         string `json:"nextOfKinName"`
	NextOfKinPhone        string `json:"nextOfKinPhone"`
	NextOfKinRelationship string `json:"nextOfKinRelationship"`
}

type BabysitterCreatedTransport struct {
	BabysitterId int    `json:"babysitterId"`
	Message      string `json:"message"`
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Add(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddEndpoint(h.Service),
		decodeBabysitterTransport,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) Get(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeGetEndpoint(h.Service),
		decodeGetOrDeleteBabysitterTransport,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) List(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Update(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeUpdateEndpoint(h.Service),
		decodeUpdateBabysitterTransport,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Delete(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeDeleteEndpoint(h.Service),
		decodeGetOrDeleteBabysitterTransport,
		shared.EncodeResponse204,
		opts...,
	)
}

func makeAddEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(BabysitterTransport)
		babysitter, err := svc.AddBabysitter(ctx, req)
		if err != nil {
			return nil, err
		}

		return BabysitterCreatedTransport{
			BabysitterId: babysitter.BabysitterId,
			Message:      "Babysitter registered successfully",
		}, nil
	}
}

func makeGetEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(BabysitterTransport)
		babysitter, err := svc.GetBabysitter(ctx, req)
		if err != nil {
			return nil, err
		}

		return babysitterToTransport(babysitter), nil
	}
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		babysitters, err := svc.ListBabysitters(ctx)
		if err != nil {
			return nil, err
		}

		ret := []BabysitterTransport{}
		for _, babysitter := range babysitters {
			ret = append(ret, babysitterToTransport(babysitter))
		}

		return ret, nil
	}
}

func makeUpdateEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(BabysitterTransport)
		babysitter, err := svc.UpdateBabysitter(ctx, req)
		if err != nil {
			return nil, err
		}

		return babysitterToTransport(babysitter), nil
	}
}

func makeDeleteEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(BabysitterTransport)
		if err := svc.DeleteBabysitter(ctx, req); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func babysitterToTransport(babysitter store.Babysitter) BabysitterTransport {
	return BabysitterTransport{
		Id:                    babysitter.BabysitterId,
		FirstName:             babysitter.FirstName,
		LastName:              babysitter.LastName,
		Email:                 babysitter.Email.String,
		PhoneNumber:           babysitter.PhoneNumber,
		Nin:                   babysitter.Nin,
		DateOfBirth:           babysitter.DateOfBirth.UTC().Format("2006-01-02"),
		NextOfKinName:         babysitter.NextOfKinName,
		NextOfKinPhone:        babysitter.NextOfKinPhone,
		NextOfKinRelationship: babysitter.NextOfKinRelationship,
	}
}

func decodeBabysitterTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request BabysitterTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeGetOrDeleteBabysitterTransport(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	babysitterId, ok := vars["babysitterId"]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.Atoi(babysitterId)
	if err != nil {
		return nil, ErrInvalidId
	}
	return BabysitterTransport{Id: id}, nil
}

func decodeUpdateBabysitterTransport(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	babysitterId, ok := vars["babysitterId"]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.Atoi(babysitterId)
	if err != nil {
		return nil, ErrInvalidId
	}

	var request BabysitterTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	request.Id = id
	return request, nil
}

func ignorePayload(_ context.Context, r *http.Request) (interface{}, error) {
	return nil, nil
}

// encode errors from business-logic
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	switch errors.Cause(err) {
	case ErrMissingMandatoryFields, ErrInvalidAge, ErrInvalidId:
		w.WriteHeader(http.StatusBadRequest)
	case store.ErrBabysitterNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
