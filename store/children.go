package store

import (
	"database/sql"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrChildNotFound = errors.New("child not found")
)

type Child struct {
	ChildId               int `gorm:"column:id;primary_key"`
	FullName              string
	Age                   int
	SessionType           string
	ParentName            string
	ParentPhone           string
	AlternateContactName  string
	AlternateContactPhone string
	RelationshipToChild   string
	Allergies             sql.NullString
	MedicalConditions     sql.NullString
	DietaryRestrictions   sql.NullString
	AdditionalNotes       sql.NullString
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Child) TableName() string {
	return "children"
}

func (s *Store) AddChild(tx *gorm.DB, child Child) (Child, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&child).Error; err != nil {
		return Child{}, err
	}

	return child, nil
}

func (s *Store) GetChild(tx *gorm.DB, childId int) (Child, error) {
	db := s.dbOrTx(tx)

	child := Child{}
	res := db.Where("id = ?", childId).First(&child)
	if res.RecordNotFound() {
		return Child{}, ErrChildNotFound
	}
	if err := res.Error; err != nil {
		return Child{}, err
	}

	return child, nil
}

func (s *Store) ListChildren(tx *gorm.DB) ([]Child, error) {
	db := s.dbOrTx(tx)

	children := []Child{}
	if err := db.Order("created_at DESC").Find(&children).Error; err != nil {
		return []Child{}, err
	}

	return children, nil
}

func (s *Store) UpdateChild(tx *gorm.DB, child Child) (Child, error) {
	db := s.dbOrTx(tx)

	if !s.ChildExists(db, child.ChildId) {
		return Child{}, ErrChildNotFound
	}

	if err := db.Model(&Child{}).Where("id = ?", child.ChildId).Updates(map[string]interface{}{
		"full_name":               child.FullName,
		"age":                     child.Age,
		"session_type":            child.SessionType,
		"parent_name":             child.ParentName,
		"parent_phone":            child.ParentPhone,
		"alternate_contact_name":  child.AlternateContactName,
		"alternate_contact_phone": child.AlternateContactPhone,
		"relationship_to_child":   child.RelationshipToChild,
		"allergies":               child.Allergies,
		"medical_conditions":      child.MedicalConditions,
		"dietary_restrictions":    child.DietaryRestrictions,
		"additional_notes":        child.AdditionalNotes,
	}).Error; err != nil {
		return Child{}, err
	}

	return s.GetChild(db, child.ChildId)
}

func (s *Store) DeleteChild(tx *gorm.DB, childId int) error {
	db := s.dbOrTx(tx)

	if !s.ChildExists(db, childId) {
		return ErrChildNotFound
	}

	if err := db.Where("id = ?", childId).Delete(&Child{}).Error; err != nil {
		return err
	}

	return nil
}

func (s *Store) ChildExists(tx *gorm.DB, childId int) bool {
	db := s.dbOrTx(tx)

	c := Child{}
	return !db.Model(Child{}).Where("id = ?", childId).First(&c).RecordNotFound()
}
