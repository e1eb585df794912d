package store

import (
	"database/sql"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrIncidentNotFound = errors.New("incident not found")
)

type Incident struct {
	IncidentId   int `gorm:"column:id;primary_key"`
	ChildId      int
	Date         time.Time
	IncidentTime sql.NullString
	IncidentType string
	Description  string
	Location     sql.NullString
	Severity     string
	ActionTaken  string
	ReportedBy   string
	CreatedAt    time.Time
	ChildName    string `sql:"-"`
}

func (Incident) TableName() string {
	return "incidents"
}

const (
	SEVERITY_LOW    = "low"
	SEVERITY_MEDIUM = "medium"
	SEVERITY_HIGH   = "high"
)

type IncidentTypeSummary struct {
	IncidentType   string `json:"incident_type"`
	TotalIncidents int    `json:"total_incidents"`
	HighSeverity   int    `json:"high_severity"`
	MediumSeverity int    `json:"medium_severity"`
	LowSeverity    int    `json:"low_severity"`
}

type IncidentMonthlySummary struct {
	Month          int `json:"month"`
	Year           int `json:"year"`
	TotalIncidents int `json:"total_incidents"`
	HighSeverity   int `json:"high_severity"`
	MediumSeverity int `json:"medium_severity"`
	LowSeverity    int `json:"low_severity"`
}

func (s *Store) AddIncident(tx *gorm.DB, incident Incident) (Incident, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&incident).Error; err != nil {
		return Incident{}, err
	}

	return incident, nil
}

func (s *Store) ListIncidents(tx *gorm.DB) ([]Incident, error) {
	return s.listIncidents(tx, 0)
}

func (s *Store) ListChildIncidents(tx *gorm.DB, childId int) ([]Incident, error) {
	return s.listIncidents(tx, childId)
}

func (s *Store) listIncidents(tx *gorm.DB, childId int) ([]Incident, error) {
	db := s.dbOrTx(tx)

	query := db.Table("incidents").
		Select("incidents.id," +
			"incidents.child_id," +
			"incidents.date," +
			"incidents.incident_time," +
			"incidents.incident_type," +
			"incidents.description," +
			"incidents.location," +
			"incidents.severity," +
			"incidents.action_taken," +
			"incidents.reported_by," +
			"incidents.created_at," +
			"children.full_name").
		Joins("join children on children.id = incidents.child_id").
		Order("incidents.date DESC, incidents.created_at DESC")
	if childId != 0 {
		query = query.Where("incidents.child_id = ?", childId)
	}

	rows, err := query.Rows()
	if err != nil {
		return []Incident{}, err
	}
	defer rows.Close()

	incidents := []Incident{}
	for rows.Next() {
		current := Incident{}
		if err := rows.Scan(&current.IncidentId,
			&current.ChildId,
			&current.Date,
			&current.IncidentTime,
			&current.IncidentType,
			&current.Description,
			&current.Location,
			&current.Severity,
			&current.ActionTaken,
			&current.ReportedBy,
			&current.CreatedAt,
			&current.ChildName); err != nil {
			return []Incident{}, err
		}
		incidents = append(incidents, current)
	}

	return incidents, nil
}

func (s *Store) UpdateIncident(tx *gorm.DB, incident Incident) (Incident, error) {
	db := s.dbOrTx(tx)

	if !s.incidentExists(db, incident.IncidentId) {
		return Incident{}, ErrIncidentNotFound
	}

	if err := db.Model(&Incident{}).Where("id = ?", incident.IncidentId).Updates(map[string]interface{}{
		"incident_type": incident.IncidentType,
		"description":   incident.Description,
		"severity":      incident.Severity,
		"action_taken":  incident.ActionTaken,
	}).Error; err != nil {
		return Incident{}, err
	}

	updated := Incident{}
	if err := db.Where("id = ?", incident.IncidentId).First(&updated).Error; err != nil {
		return Incident{}, err
	}

	return updated, nil
}

func (s *Store) incidentExists(tx *gorm.DB, incidentId int) bool {
	i := Incident{}
	return !tx.Model(Incident{}).Where("id = ?", incidentId).First(&i).RecordNotFound()
}

func (s *Store) GetIncidentTypeSummary(tx *gorm.DB) ([]IncidentTypeSummary, error) {
	db := s.dbOrTx(tx)

	rows, err := db.Table("incidents").
		Select("incident_type," +
			"COUNT(*) AS total_incidents," +
			"SUM(CASE WHEN severity = 'high' THEN 1 ELSE 0 END) AS high_severity," +
			"SUM(CASE WHEN severity = 'medium' THEN 1 ELSE 0 END) AS medium_severity," +
			"SUM(CASE WHEN severity = 'low' THEN 1 ELSE 0 END) AS low_severity").
		Group("incident_type").
		Rows()
	if err != nil {
		return []IncidentTypeSummary{}, err
	}
	defer rows.Close()

	summaries := []IncidentTypeSummary{}
	for rows.Next() {
		current := IncidentTypeSummary{}
		if err := rows.Scan(&current.IncidentType,
			&current.TotalIncidents,
			&current.HighSeverity,
			&current.MediumSeverity,
			&current.LowSeverity); err != nil {
			return []IncidentTypeSummary{}, err
		}
		summaries = append(summaries, current)
	}

	return summaries, nil
}

func (s *Store) GetIncidentMonthlySummary(tx *gorm.DB) ([]IncidentMonthlySummary, error) {
	db := s.dbOrTx(tx)

	rows, err := db.Table("incidents").
		Select("CAST(date_part('month', date) AS int) AS month," +
			"CAST(date_part('year', date) AS int) AS year," +
			"COUNT(*) AS total_incidents," +
			"SUM(CASE WHEN severity = 'high' THEN 1 ELSE 0 END) AS high_severity," +
			"SUM(CASE WHEN severity = 'medium' THEN 1 ELSE 0 END) AS medium_severity," +
			"SUM(CASE WHEN severity = 'low' THEN 1 ELSE 0 END) AS low_severity").
		Group("date_part('year', date), date_part('month', date)").
		Order("year DESC, month DESC").
		Rows()
	if err != nil {
		return []IncidentMonthlySummary{}, err
	}
	defer rows.Close()

	summaries := []IncidentMonthlySummary{}
	for rows.Next() {
		current := IncidentMonthlySummary{}
		if err := rows.Scan(&current.Month,
			&current.Year,
			&current.TotalIncidents,
			&current.HighSeverity,
			&current.MediumSeverity,
			&current.LowSeverity); err != nil {
			return []IncidentMonthlySummary{}, err
		}
		summaries = append(summaries, current)
	}

	return summaries, nil
}
