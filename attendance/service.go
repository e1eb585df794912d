package attendance

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
	ErrUnknownChild   = errors.New("childId does not reference a registered child")
	ErrInvalidStatus  = errors.New("status must be present, absent or late")
	ErrInvalidSession = errors.New("sessionType must be half-day or full-day")
	ErrInvalidDate    = errors.New("date is mandatory and must be a valid date")
)

type Service interface {
	AddAttendance(ctx context.Context, request AttendanceTransport) (store.Attendance, error)
	ListAttendance(ctx context.Context) ([]store.Attendance, error)
	ListChildAttendance(ctx context.Context, childId int) ([]store.Attendance, error)
	UpdateAttendance(ctx context.Context, request AttendanceTransport) (store.Attendance, error)
	GetAttendanceReport(ctx context.Context) (AttendanceReport, error)
}

type AttendanceReport struct {
	MonthlySummary []store.AttendanceMonthlySummary `json:"monthly_summary"`
	ChildSummary   []store.ChildAttendanceSummary   `json:"child_summary"`
}

type AttendanceService struct {
	Store interface {
		AddAttendance(tx *gorm.DB, attendance store.Attendance) (store.Attendance, error)
		ListAttendance(tx *gorm.DB) ([]store.Attendance, error)
		ListChildAttendance(tx *gorm.DB, childId int) ([]store.Attendance, error)
		UpdateAttendance(tx *gorm.DB, attendance store.Attendance) (store.Attendance, error)
		GetAttendanceMonthlySummary(tx *gorm.DB) ([]store.AttendanceMonthlySummary, error)
		GetChildAttendanceSummary(tx *gorm.DB) ([]store.ChildAttendanceSummary, error)
		ChildExists(tx *gorm.DB, childId int) bool
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (s *AttendanceService) AddAttendance(ctx context.Context, request AttendanceTransport) (store.Attendance, error) {
	if !isValidStatus(request.Status) {
		return store.Attendance{}, ErrInvalidStatus
	}
	if request.SessionType != "half-day" && request.SessionType != "full-day" {
		return store.Attendance{}, ErrInvalidSession
	}
	if request.Date == "" {
		return store.Attendance{}, ErrInvalidDate
	}

	date, err := dateparse.ParseIn(request.Date, time.UTC)
	if err != nil {
		return store.Attendance{}, errors.Wrap(ErrInvalidDate, err.Error())
	}

	if !s.Store.ChildExists(nil, request.ChildId) {
		return store.Attendance{}, ErrUnknownChild
	}

	attendance, err := s.Store.AddAttendance(nil, store.Attendance{
		ChildId:      request.ChildId,
		Date:         date,
		SessionType:  request.SessionType,
		Status:       request.Status,
		CheckInTime:  sql.NullString{String: request.CheckInTime, Valid: request.CheckInTime != ""},
		CheckOutTime: sql.NullString{String: request.CheckOutTime, Valid: request.CheckOutTime != ""},
		Notes:        sql.NullString{String: request.Notes, Valid: request.Notes != ""},
	})
	if err != nil {
		return store.Attendance{}, errors.Wrap(err, "failed to record attendance")
	}

	return attendance, nil
}

func (s *AttendanceService) ListAttendance(ctx context.Context) ([]store.Attendance, error) {
	records, err := s.Store.ListAttendance(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attendance")
	}

	return records, nil
}

func (s *AttendanceService) ListChildAttendance(ctx context.Context, childId int) ([]store.Attendance, error) {
	records, err := s.Store.ListChildAttendance(nil, childId)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list child attendance")
	}

	return records, nil
}

func (s *AttendanceService) UpdateAttendance(ctx context.Context, request AttendanceTransport) (store.Attendance, error) {
	if !isValidStatus(request.Status) {
		return store.Attendance{}, ErrInvalidStatus
	}

	attendance, err := s.Store.UpdateAttendance(nil, store.Attendance{
		AttendanceId: request.Id,
		Status:       request.Status,
		CheckInTime:  sql.NullString{String: request.CheckInTime, Valid: request.CheckInTime != ""},
		CheckOutTime: sql.NullString{String: request.CheckOutTime, Valid: request.CheckOutTime != ""},
		Notes:        sql.NullString{String: request.Notes, Valid: request.Notes != ""},
	})
	if err != nil {
		return attendance, errors.Wrap(err, "failed to update attendance")
	}

	return attendance, nil
}

func (s *AttendanceService) GetAttendanceReport(ctx context.Context) (AttendanceReport, error) {
	monthly, err := s.Store.GetAttendanceMonthlySummary(nil)
	if err != nil {
		return AttendanceReport{}, errors.Wrap(err, "failed to build attendance report")
	}

	children, err := s.Store.GetChildAttendanceSummary(nil)
	if err != nil {
		return AttendanceReport{}, errors.Wrap(err, "failed to build attendance report")
	}

	return AttendanceReport{
		MonthlySummary: monthly,
		ChildSummary:   children,
	}, nil
}

func isValidStatus(status string) bool {
	switch status {
	case store.ATTENDANCE_PRESENT, store.ATTENDANCE_ABSENT, store.ATTENDANCE_LATE:
		return true
	}
	return false
}
