package babysitters

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
	ErrMissingMandatoryFields = errors.New("firstName, lastName, phoneNumber, nin, dateOfBirth and next of kin details are mandatory")
	ErrInvalidAge             = errors.New("babysitter must be between 21 and 35 years old")
)

const (
	minBabysitterAge = 21
	maxBabysitterAge = 35
)

type Service interface {
	AddBabysitter(ctx context.Context, request BabysitterTransport) (store.Babysitter, error)
	GetBabysitter(ctx context.Context, request BabysitterTransport) (store.Babysitter, error)
	ListBabysitters(ctx context.Context) ([]store.Babysitter, error)
	UpdateBabysitter(ctx context.Context, request BabysitterTransport) (store.Babysitter, error)
	DeleteBabysitter(ctx context.Context, request BabysitterTransport) error
}

type BabysitterService struct {
	Store interface {
		AddBabysitter(tx *gorm.DB, babysitter store.Babysitter) (store.Babysitter, error)
		GetBabysitter(tx *gorm.DB, babysitterId int) (store.Babysitter, error)
		ListBabysitters(tx *gorm.DB) ([]store.Babysitter, error)
		UpdateBabysitter(tx *gorm.DB, babysitter store.Babysitter) (store.Babysitter, error)
		DeleteBabysitter(tx *gorm.DB, babysitterId int) error
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (s *BabysitterService) AddBabysitter(ctx context.Context, request BabysitterTransport) (store.Babysitter, error) {
	if request.FirstName == "" || request.LastName == "" || request.PhoneNumber == "" || request.Nin == "" ||
		request.DateOfBirth == "" || request.NextOfKinName == "" || request.NextOfKinPhone == "" || request.NextOfKinRelationship == "" {
		return store.Babysitter{}, ErrMissingMandatoryFields
	}

	dateOfBirth, err := dateparse.ParseIn(request.DateOfBirth, time.UTC)
	if err != nil {
		return store.Babysitter{}, errors.Wrap(ErrMissingMandatoryFields, err.Error())
	}

	if age := ageAt(dateOfBirth, time.Now().UTC()); age < minBabysitterAge || age > maxBabysitterAge {
		return store.Babysitter{}, ErrInvalidAge
	}

	babysitter, err := s.Store.AddBabysitter(nil, store.Babysitter{
		FirstName:             request.FirstName,
		LastName:              request.LastName,
		Email:                 sql.NullString{String: request.Email, Valid: request.Email != ""},
		PhoneNumber:           request.PhoneNumber,
		Nin:                   request.Nin,
		DateOfBirth:           dateOfBirth,
		NextOfKinName:         request.NextOfKinName,
		NextOfKinPhone:        request.NextOfKinPhone,
		NextOfKinRelationship: request.NextOfKinRelationship,
	})
	if err != nil {
		return store.Babysitter{}, errors.Wrap(err, "failed to add babysitter")
	}

	return babysitter, nil
}

func (s *BabysitterService) GetBabysitter(ctx context.Context, request BabysitterTransport) (store.Babysitter, error) {
	babysitter, err := s.Store.GetBabysitter(nil, request.Id)
	if err != nil {
		return babysitter, errors.Wrap(err, "failed to get babysitter")
	}

	return babysitter, nil
}

func (s *BabysitterService) ListBabysitters(ctx context.Context) ([]store.Babysitter, error) {
	babysitters, err := s.Store.ListBabysitters(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list babysitters")
	}

	return babysitters, nil
}

func (s *BabysitterService) UpdateBabysitter(ctx context.Context, request BabysitterTransport) (store.Babysitter, error) {
	if request.FirstName == "" || request.LastName == "" || request.PhoneNumber == "" || request.Nin == "" ||
		request.DateOfBirth == "" || request.NextOfKinName == "" || request.NextOfKinPhone == "" || request.NextOfKinRelationship == "" {
		return store.Babysitter{}, ErrMissingMandatoryFields
	}

	dateOfBirth, err := dateparse.ParseIn(request.DateOfBirth, time.UTC)
	if err != nil {
		return store.Babysitter{}, errors.Wrap(ErrMissingMandatoryFields, err.Error())
	}

	if age := ageAt(dateOfBirth, time.Now().UTC()); age < minBabysitterAge || age > maxBabysitterAge {
		return store.Babysitter{}, ErrInvalidAge
	}

	babysitter, err := s.Store.UpdateBabysitter(nil, store.Babysitter{
		BabysitterId:          request.Id,
		FirstName:             request.FirstName,
		LastName:              request.LastName,
		Email:                 sql.NullString{String: request.Email, Valid: request.Email != ""},
		PhoneNumber:           request.PhoneNumber,
		Nin:                   request.Nin,
		DateOfBirth:           dateOfBirth,
		NextOfKinName:         request.NextOfKinName,
		NextOfKinPhone:        request.NextOfKinPhone,
		NextOfKinRelationship: request.NextOfKinRelationship,
	})
	if err != nil {
		return babysitter, errors.Wrap(err, "failed to update babysitter")
	}

	return babysitter, nil
}

func (s *BabysitterService) DeleteBabysitter(ctx context.Context, request BabysitterTransport) error {
	if err := s.Store.DeleteBabysitter(nil, request.Id); err != nil {
		return errors.Wrap(err, "failed to delete babysitter")
	}

	return nil
}

func ageAt(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.YearDay() < dateOfBirth.YearDay() {
		age--
	}
	return age
}
