package incidents

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
	ErrInvalidId  = errors.New("id must be an integer")
)

type IncidentTransport struct {
	Id           int    `json:"id,omitempty"`
	ChildId      int    `json:"childId"`
	ChildName    string `json:"childName,omitempty"`
	Date         string `json:"date"`
	IncidentTime string `json:"incidentTime,omitempty"`
	IncidentType string `json:"incidentType"`
	Description  string `json:"description"`
	Location     string `json:"location,omitempty"`
	Severity     string `json:"severity"`
	ActionTaken  string `json:"actionTaken"`
	ReportedBy   string `json:"reportedBy"`
}

type IncidentCreatedTransport struct {
	Id      int    `json:"id"`
	Message string `json:"message"`
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Add(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddEndpoint(h.Service),
		decodeIncidentTransport,
		shared.EncodeResponse201,
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

func (h *HandlerFactory) ListByChild(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListByChildEndpoint(h.Service),
		decodeChildIdTransport,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Update(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeUpdateEndpoint(h.Service),
		decodeUpdateIncidentTransport,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) Report(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeReportEndpoint(h.Service),
		ignorePayload,
		shared.EncodeResponse200,
		opts...,
	)
}

func makeAddEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(IncidentTransport)
		incident, err := svc.AddIncident(ctx, req)
		if err != nil {
			return nil, err
		}

		return IncidentCreatedTransport{
			Id:      incident.IncidentId,
			Message: "Incident reported successfully",
		}, nil
	}
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		incidents, err := svc.ListIncidents(ctx)
		if err != nil {
			return nil, err
		}

		return incidentsToTransports(incidents), nil
	}
}

func makeListByChildEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(IncidentTransport)
		incidents, err := svc.ListChildIncidents(ctx, req.ChildId)
		if err != nil {
			return nil, err
		}

		return incidentsToTransports(incidents), nil
	}
}

func makeUpdateEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(IncidentTransport)
		incident, err := svc.UpdateIncident(ctx, req)
		if err != nil {
			return nil, err
		}

		return incidentToTransport(incident), nil
	}
}

func makeReportEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		report, err := svc.GetIncidentReport(ctx)
		if err != nil {
			return nil, err
		}

		return report, nil
	}
}

func incidentToTransport(incident store.Incident) IncidentTransport {
	return IncidentTransport{
		Id:           incident.IncidentId,
		ChildId:      incident.ChildId,
		ChildName:    incident.ChildName,
		Date:         incident.Date.UTC().Format("2006-01-02"),
		IncidentTime: incident.IncidentTime.String,
		IncidentType: incident.IncidentType,
		Description:  incident.Description,
		Location:     incident.Location.String,
		Severity:     incident.Severity,
		ActionTaken:  incident.ActionTaken,
		ReportedBy:   incident.ReportedBy,
	}
}

func incidentsToTransports(incidents []store.Incident) []IncidentTransport {
	ret := []IncidentTransport{}
	for _, incident := range incidents {
		ret = append(ret, incidentToTransport(incident))
	}
	return ret
}

func decodeIncidentTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request IncidentTransport
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeChildIdTransport(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	childId, ok := vars["childId"]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.Atoi(childId)
	if err != nil {
		return nil, ErrInvalidId
	}
	return IncidentTransport{ChildId: id}, nil
}

func decodeUpdateIncidentTransport(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	incidentId, ok := vars["incidentId"]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.Atoi(incidentId)
	if err != nil {
		return nil, ErrInvalidId
	}

	var request IncidentTransport
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
	case ErrUnknownChild, ErrInvalidSeverity, ErrInvalidDate, ErrMissingMandatoryFields, ErrInvalidId:
		w.WriteHeader(http.StatusBadRequest)
	case store.ErrIncidentNotFound, store.ErrChildNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
