package attendance

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

type AttendanceTransport struct {
	Id           int    `json:"id,omitempty"`
	ChildId      int    `json:"childId"`
	ChildName    string `json:"childName,omitempty"`
	Date         string `json:"date"`
	SessionType  string `json:"sessionType"`
	Status       string `json:"status"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type AttendanceCreatedTransport struct {
	Id      int    `json:"id"`
	Message string `json:"message"`
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Add(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeAddEndpoint(h.Service),
		decodeAttendanceTransport,
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
		decodeUpdateAttendanceTransport,
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
		req := request.(AttendanceTransport)
		attendance, err := svc.AddAttendance(ctx, req)
		if err != nil {
			return nil, err
		}

		return AttendanceCreatedTransport{
			Id:      attendance.AttendanceId,
			Message: "Attendance recorded successfully",
		}, nil
	}
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		records, err := svc.ListAttendance(ctx)
		if err != nil {
			return nil, err
		}

		return attendanceToTransports(records), nil
	}
}

func makeListByChildEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(AttendanceTransport)
		records, err := svc.ListChildAttendance(ctx, req.ChildId)
		if err != nil {
			return nil, err
		}

		return attendanceToTransports(records), nil
	}
}

func makeUpdateEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(AttendanceTransport)
		attendance, err := svc.UpdateAttendance(ctx, req)
		if err != nil {
			return nil, err
		}

		return attendanceToTransport(attendance), nil
	}
}

func makeReportEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		report, err := svc.GetAttendanceReport(ctx)
		if err != nil {
			return nil, err
		}

		return report, nil
	}
}

func attendanceToTransport(attendance store.Attendance) AttendanceTransport {
	return AttendanceTransport{
		Id:           attendance.AttendanceId,
		ChildId:      attendance.ChildId,
		ChildName:    attendance.ChildName,
		Date:         attendance.Date.UTC().Format("2006-01-02"),
		SessionType:  attendance.SessionType,
		Status:       attendance.Status,
		CheckInTime:  attendance.CheckInTime.String,
		CheckOutTime: attendance.CheckOutTime.String,
		Notes:        attendance.Notes.String,
	}
}

func attendanceToTransports(records []store.Attendance) []AttendanceTransport {
	ret := []AttendanceTransport{}
	for _, attendance := range records {
		ret = append(ret, attendanceToTransport(attendance))
	}
	return ret
}

func decodeAttendanceTransport(_ context.Context, r *http.Request) (interface{}, error) {
	var request AttendanceTransport
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
	return AttendanceTransport{ChildId: id}, nil
}

func decodeUpdateAttendanceTransport(_ context.Context, r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	attendanceId, ok := vars["attendanceId"]
	if !ok {
		return nil, ErrBadRouting
	}
	id, err := strconv.Atoi(attendanceId)
	if err != nil {
		return nil, ErrInvalidId
	}

	var request AttendanceTransport
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
	case ErrUnknownChild, ErrInvalidStatus, ErrInvalidSession, ErrInvalidDate, ErrInvalidId:
		w.WriteHeader(http.StatusBadRequest)
	case store.ErrAttendanceNotFound, store.ErrChildNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
