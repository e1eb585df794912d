package children

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
	ErrInvalidId  = errors.New("child id must be an integer")
)

type ChildTransport struct {
	Id                    int    `json:"id,omitempty"`
	FullName              string `json:"fullName"`
	Age                   int    `json:"age"`
	SessionType           string `json:"sessionType"`
	ParentName            string `json:"parentName"`
	ParentPhone           string `json:"parentPhone"`
	AlternateContactName  string `json:"alternateContactName"`
	AlternateContactPhone string `json:"alternateContactPhone"`
	RelationshipToChild   string `json:"relationshipToChild"`
	Allergies             string `json:"allergies,omitempty"`
	MedicalConditions     string `json:"medicalConditions,omitempty"`
	DietaryRestrictions   string `json:"dietaryRestrictions,omitempty"`
	AdditionalNotes       string `json:"additionalNotes,omitempty"`
}

type ChildCreatedTransport struct {
	ChildId int    `json:"childId"`
	Message string `json:"message"`
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Add(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddEndpoint(h.Service),
		decodeChildTransport,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) Get(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeGetEndpoint(h.Service),
		decodeGetOrDeleteChildTransport,
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
		decodeUpdateChildTransport,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Delete(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeDeleteEndpoint(h.Service),
		decodeGetOrDeleteChildTransport,
		shared.EncodeResponse204,
		opts...,
	)
}

func makeAddEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ChildTransport)
		child, err := svc.AddChild(ctx, req)
		if err != nil {
			return nil, err
		}

		return ChildCreatedTransport{
			ChildId: child.ChildId,
			Message: "Child registered successfully",
		}, nil
	}
}

func makeGetEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ChildTransport)
		child, err := svc.GetChild(ctx, req)
		if err != nil {
			return nil, err
		}

		return childToTransport(child), nil
	}
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		children, err := svc.ListChildren(ctx)
		if err != nil {
			return nil, err
		}

		ret := []ChildTransport{}
		for _, child := range children {
			ret = append(ret, childToTransport(child))
		}

		return ret, nil
	}
}

func makeUpdateEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ChildTransport)
		child, err := svc.UpdateChild(ctx, req)
		if err != nil {
			return nil, err
		}

		return childToTransport(child), nil
	}
}

func makeDeleteEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(ChildTransport)
		if err := svc.DeleteChild(ctx, req); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func childToTransport(child store.Child) ChildTransport {
	return ChildTransport{
		Id:                    child.ChildId,
		FullName:              child.FullName,
		Age:                   child.Age,
		SessionType:           child.SessionType,
		ParentName:            child.ParentName,
		ParentPhone:           child.ParentPhone,
		AlternateContactName:  child.AlternateContactName,
		AlternateContactPhone: child.AlternateContactPhone,
		RelationshipToChild:   child.RelationshipToChild,
		Allergies:             child.Allergies.String,
		MedicalConditions:     child.MedicalConditions.String,
		DietaryRestrictions:   child.DietaryRestrictions.String,
		AdditionalNotes:       child.AdditionalNotes.String,
	}
}

func decodeChildTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request ChildTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeGetOrDeleteChildTransport(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	childId, ok := vars["childId"]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.Atoi(childId)
	if err != nil {
		return nil, ErrInvalidId
	}
	return ChildTransport{Id: id}, nil
}

func decodeUpdateChildTransport(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	childId, ok := vars["childId"]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.Atoi(childId)
	if err != nil {
		return nil, ErrInvalidId
	}

	var request ChildTransport
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
	case ErrMissingMandatoryFields, ErrInvalidSessionType, ErrInvalidId:
		w.WriteHeader(http.StatusBadRequest)
	case store.ErrChildNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
