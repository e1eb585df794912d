package store

import (
	"database/sql"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrBabysitterNotFound = errors.New("babysitter not found")
)

type Babysitter struct {
	BabysitterId          int `gorm:"column:id;primary_key"`
	FirstName             string
	LastName              string
	Email                 sql.NullString
	PhoneNumber           string
	Nin                   string
	DateOfBirth           time.Time
	NextOfKinName         string
	NextOfKinPhone        string
	NextOfKinRelationship string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Babysitter) TableName() string {
	return "babysitters"
}

func (s *Store) AddBabysitter(tx *gorm.DB, babysitter Babysitter) (Babysitter, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&babysitter).Error; err != nil {
		return Babysitter{}, err
	}

	return babysitter, nil
}

func (s *Store) GetBabysitter(tx *gorm.DB, babysitterId int) (Babysitter, error) {
	db := s.dbOrTx(tx)

	babysitter := Babysitter{}
	res := db.Where("id = ?", babysitterId).First(&babysitter)
	if res.RecordNotFound() {
		return Babysitter{}, ErrBabysitterNotFound
	}
	if err := res.Error; err != nil {
		return Babysitter{}, err
	}

	return babysitter, nil
}

func (s *Store) ListBabysitters(tx *gorm.DB) ([]Babysitter, error) {
	db := s.dbOrTx(tx)

	babysitters := []Babysitter{}
	if err := db.Order("created_at DESC").Find(&babysitters).Error; err != nil {
		return []Babysitter{}, err
	}

	return babysitters, nil
}

func (s *Store) UpdateBabysitter(tx *gorm.DB, babysitter Babysitter) (Babysitter, error) {
	db := s.dbOrTx(tx)

	if !s.babysitterExists(db, babysitter.BabysitterId) {
		return Babysitter{}, ErrBabysitterNotFound
	}

	if err := db.Model(&Babysitter{}).Where("id = ?", babysitter.BabysitterId).Updates(map[string]interface{}{
		"first_name":               babysitter.FirstName,
		"last_name":                babysitter.LastName,
		"email":                    babysitter.Email,
		"phone_number":             babysitter.PhoneNumber,
		"nin":                      babysitter.Nin,
		"date_of_birth":            babysitter.DateOfBirth,
		"next_of_kin_name":         babysitter.NextOfKinName,
		"next_of_kin_phone":        babysitter.NextOfKinPhone,
		"next_of_kin_relationship": babysitter.NextOfKinRelationship,
	}).Error; err != nil {
		return Babysitter{}, err
	}

	return s.GetBabysitter(db, babysitter.BabysitterId)
}

func (s *Store) DeleteBabysitter(tx *gorm.DB, babysitterId int) error {
	db := s.dbOrTx(tx)

	if !s.babysitterExists(db, babysitterId) {
		return ErrBabysitterNotFound
	}

	if err := db.Where("id = ?", babysitterId).Delete(&Babysitter{}).Error; err != nil {
		return err
	}

	return nil
}

func (s *Store) babysitterExists(tx *gorm.DB, babysitterId int) bool {
	b := Babysitter{}
	return !tx.Model(Babysitter{}).Where("id = ?", babysitterId).First(&b).RecordNotFound()
}
