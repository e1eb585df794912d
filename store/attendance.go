package store

import (
	"database/sql"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

type Attendance struct {
	AttendanceId int `gorm:"column:id;primary_key"`
	ChildId      int
	Date         time.Time
	SessionType  string
	Status       string
	CheckInTime  sql.NullString
	CheckOutTime sql.NullString
	Notes        sql.NullString
	CreatedAt    time.Time
	ChildName    string `sql:"-"`
}

func (Attendance) TableName() string {
	return "attendance"
}

const (
	ATTENDANCE_PRESENT = "present"
	ATTENDANCE_ABSENT  = "absent"
	ATTENDANCE_LATE    = "late"
)

type AttendanceMonthlySummary struct {
	Month       int `json:"month"`
	Year        int `json:"year"`
	TotalDays   int `json:"total_days"`
	PresentDays int `json:"present_days"`
	AbsentDays  int `json:"absent_days"`
	LateDays    int `json:"late_days"`
}

type ChildAttendanceSummary struct {
	ChildId     int    `json:"id"`
	FullName    string `json:"full_name"`
	TotalDays   int    `json:"total_days"`
	PresentDays int    `json:"present_days"`
	AbsentDays  int    `json:"absent_days"`
	LateDays    int    `json:"late_days"`
}

func (s *Store) AddAttendance(tx *gorm.DB, attendance Attendance) (Attendance, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&attendance).Error; err != nil {
		return Attendance{}, err
	}

	return attendance, nil
}

func (s *Store) ListAttendance(tx *gorm.DB) ([]Attendance, error) {
	return s.listAttendance(tx, 0)
}

func (s *Store) ListChildAttendance(tx *gorm.DB, childId int) ([]Attendance, error) {
	return s.listAttendance(tx, childId)
}

func (s *Store) listAttendance(tx *gorm.DB, childId int) ([]Attendance, error) {
	db := s.dbOrTx(tx)

	query := db.Table("attendance").
		Select("attendance.id," +
			"attendance.child_id," +
			"attendance.date," +
			"attendance.session_type," +
			"attendance.status," +
			"attendance.check_in_time," +
			"attendance.check_out_time," +
			"attendance.notes," +
			"attendance.created_at," +
			"children.full_name").
		Joins("join children on children.id = attendance.child_id").
		Order("attendance.date DESC")
	if childId != 0 {
		query = query.Where("attendance.child_id = ?", childId)
	}

	rows, err := query.Rows()
	if err != nil {
		return []Attendance{}, err
	}
	defer rows.Close()

	return s.scanAttendanceRows(rows)
}

func (s *Store) scanAttendanceRows(rows *sql.Rows) ([]Attendance, error) {
	records := []Attendance{}
	for rows.Next() {
		current := Attendance{}
		if err := rows.Scan(&current.AttendanceId,
			&current.ChildId,
			&current.Date,
			&current.SessionType,
			&current.Status,
			&current.CheckInTime,
			&current.CheckOutTime,
			&current.Notes,
			&current.CreatedAt,
			&current.ChildName); err != nil {
			return []Attendance{}, err
		}
		records = append(records, current)
	}

	return records, nil
}

func (s *Store) UpdateAttendance(tx *gorm.DB, attendance Attendance) (Attendance, error) {
	db := s.dbOrTx(tx)

	if !s.attendanceExists(db, attendance.AttendanceId) {
		return Attendance{}, ErrAttendanceNotFound
	}

	if err := db.Model(&Attendance{}).Where("id = ?", attendance.AttendanceId).Updates(map[string]interface{}{
		"check_in_time":  attendance.CheckInTime,
		"check_out_time": attendance.CheckOutTime,
		"status":         attendance.Status,
		"notes":          attendance.Notes,
	}).Error; err != nil {
		return Attendance{}, err
	}

	updated := Attendance{}
	if err := db.Where("id = ?", attendance.AttendanceId).First(&updated).Error; err != nil {
		return Attendance{}, err
	}

	return updated, nil
}

func (s *Store) attendanceExists(tx *gorm.DB, attendanceId int) bool {
	a := Attendance{}
	return !tx.Model(Attendance{}).Where("id = ?", attendanceId).First(&a).RecordNotFound()
}

func (s *Store) GetAttendanceMonthlySummary(tx *gorm.DB) ([]AttendanceMonthlySummary, error) {
	db := s.dbOrTx(tx)

	rows, err := db.Table("attendance").
		Select("CAST(date_part('month', date) AS int) AS month," +
			"CAST(date_part('year', date) AS int) AS year," +
			"COUNT(*) AS total_days," +
			"SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END) AS present_days," +
			"SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END) AS absent_days," +
			"SUM(CASE WHEN status = 'late' THEN 1 ELSE 0 END) AS late_days").
		Group("date_part('year', date), date_part('month', date)").
		Order("year DESC, month DESC").
		Rows()
	if err != nil {
		return []AttendanceMonthlySummary{}, err
	}
	defer rows.Close()

	summaries := []AttendanceMonthlySummary{}
	for rows.Next() {
		current := AttendanceMonthlySummary{}
		if err := rows.Scan(&current.Month,
			&current.Year,
			&current.TotalDays,
			&current.PresentDays,
			&current.AbsentDays,
			&current.LateDays); err != nil {
			return []AttendanceMonthlySummary{}, err
		}
		summaries = append(summaries, current)
	}

	return summaries, nil
}

func (s *Store) GetChildAttendanceSummary(tx *gorm.DB) ([]ChildAttendanceSummary, error) {
	db := s.dbOrTx(tx)

	rows, err := db.Table("children").
		Select("children.id," +
			"children.full_name," +
			"COUNT(attendance.id) AS total_days," +
			"SUM(CASE WHEN attendance.status = 'present' THEN 1 ELSE 0 END) AS present_days," +
			"SUM(CASE WHEN attendance.status = 'absent' THEN 1 ELSE 0 END) AS absent_days," +
			"SUM(CASE WHEN attendance.status = 'late' THEN 1 ELSE 0 END) AS late_days").
		Joins("left join attendance on attendance.child_id = children.id").
		Group("children.id, children.full_name").
		Rows()
	if err != nil {
		return []ChildAttendanceSummary{}, err
	}
	defer rows.Close()

	summaries := []ChildAttendanceSummary{}
	for rows.Next() {
		current := ChildAttendanceSummary{}
		var presentDays, absentDays, lateDays sql.NullInt64
		if err := rows.Scan(&current.ChildId,
			&current.FullName,
			&current.TotalDays,
			&presentDays,
			&absentDays,
			&lateDays); err != nil {
			return []ChildAttendanceSummary{}, err
		}
		current.PresentDays = int(presentDays.Int64)
		current.AbsentDays = int(absentDays.Int64)
		current.LateDays = int(lateDays.Int64)
		summaries = append(summaries, current)
	}

	return summaries, nil
}
