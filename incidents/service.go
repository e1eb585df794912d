package incidents

import (
	"context"
	"database/sql"
	"time"

	"github.com/Tetricia805/DayStar-DayCare-center/shared"
	"github.com/Tetricia805/DayStar-DayCare-center/store"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrUnknownChild           = errors.New("childId does not reference a registered child")
	ErrInvalidSeverity        = errors.New("severity must be low, medium or high")
	ErrInvalidDate            = errors.New("date is mandatory and must be a valid date")
	ErrMissingMandatoryFields = errors.New("incidentType, description, severity, actionTaken and reportedBy are mandatory")
)

type Service interface {
	AddIncident(ctx context.Context, request IncidentTransport) (store.Incident, error)
	ListIncidents(ctx context.Context) ([]store.Incident, error)
	ListChildIncidents(ctx context.Context, childId int) ([]store.Incident, error)
	UpdateIncident(ctx context.Context, request IncidentTransport) (store.Incident, error)
	GetIncidentReport(ctx context.Context) (IncidentReport, error)
}

type IncidentReport struct {
	TypeSummary    []store.IncidentTypeSummary    `json:"type_summary"`
	MonthlySummary []store.IncidentMonthlySummary `json:"monthly_summary"`
}

type IncidentService struct {
	Store interface {
		AddIncident(tx *gorm.DB, incident store.Incident) (store.Incident, error)
		ListIncidents(tx *gorm.DB) ([]store.Incident, error)
		ListChildIncidents(tx *gorm.DB, childId int) ([]store.Incident, error)
		UpdateIncident(tx *gorm.DB, incident store.Incident) (store.Incident, error)
		GetIncidentTypeSummary(tx *gorm.DB) ([]store.IncidentTypeSummary, error)
		GetIncidentMonthlySummary(tx *gorm.DB) ([]store.IncidentMonthlySummary, error)
		ChildExists(tx *gorm.DB, childId int) bool
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (s *IncidentService) AddIncident(ctx context.Context, request IncidentTransport) (store.Incident, error) {
	if request.IncidentType == "" || request.Description == "" ||
		request.ActionTaken == "" || request.ReportedBy == "" {
		return store.Incident{}, ErrMissingMandatoryFields
	}
	if !isValidSeverity(request.Severity) {
		return store.Incident{}, ErrInvalidSeverity
	}
	if request.Date == "" {
		return store.Incident{}, ErrInvalidDate
	}

	date, err := dateparse.ParseIn(request.Date, time.UTC)
	if err != nil {
		return store.Incident{}, errors.Wrap(ErrInvalidDate, err.Error())
	}

	if !s.Store.ChildExists(nil, request.ChildId) {
		return store.Incident{}, ErrUnknownChild
	}

	incident, err := s.Store.AddIncident(nil, store.Incident{
		ChildId:      request.ChildId,
		Date:         date,
		IncidentTime: sql.NullString{String: request.IncidentTime, Valid: request.IncidentTime != ""},
		IncidentType: request.IncidentType,
		Description:  request.Description,
		Location:     sql.NullString{String: request.Location, Valid: request.Location != ""},
		Severity:     request.Severity,
		ActionTaken:  request.ActionTaken,
		ReportedBy:   request.ReportedBy,
	})
	if err != nil {
		return store.Incident{}, errors.Wrap(err, "failed to report incident")
	}

	return incident, nil
}

func (s *IncidentService) ListIncidents(ctx context.Context) ([]store.Incident, error) {
	incidents, err := s.Store.ListIncidents(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list incidents")
	}

	return incidents, nil
}

func (s *IncidentService) ListChildIncidents(ctx context.Context, childId int) ([]store.Incident, error) {
	incidents, err := s.Store.ListChildIncidents(nil, childId)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list child incidents")
	}

	return incidents, nil
}

func (s *IncidentService) UpdateIncident(ctx context.Context, request IncidentTransport) (store.Incident, error) {
	if request.Severity != "" && !isValidSeverity(request.Severity) {
		return store.Incident{}, ErrInvalidSeverity
	}

	incident, err := s.Store.UpdateIncident(nil, store.Incident{
		IncidentId:   request.Id,
		IncidentType: request.IncidentType,
		Description:  request.Description,
		Severity:     request.Severity,
		ActionTaken:  request.ActionTaken,
	})
	if err != nil {
		return incident, errors.Wrap(err, "failed to update incident")
	}

	return incident, nil
}

func (s *IncidentService) GetIncidentReport(ctx context.Context) (IncidentReport, error) {
	types, err := s.Store.GetIncidentTypeSummary(nil)
	if err != nil {
		return IncidentReport{}, errors.Wrap(err, "failed to build incident report")
	}

	monthly, err := s.Store.GetIncidentMonthlySummary(nil)
	if err != nil {
		return IncidentReport{}, errors.Wrap(err, "failed to build incident report")
	}

	return IncidentReport{
		TypeSummary:    types,
		MonthlySummary: monthly,
	}, nil
}

func isValidSeverity(severity string) bool {
	switch severity {
	case store.SEVERITY_LOW, store.SEVERITY_MEDIUM, store.SEVERITY_HIGH:
		return true
	}
	return false
}
