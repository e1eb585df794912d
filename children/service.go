package children

import (
	"context"
	"database/sql"

	"github.com/Tetricia805/DayStar-DayCare-center/shared"
	"github.com/Tetricia805/DayStar-DayCare-center/store"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrMissingMandatoryFields = errors.New("fullName, age, sessionType, parent and alternate contact details are mandatory")
	ErrInvalidSessionType     = errors.New("sessionType must be half-day or full-day")
)

const (
	SESSION_HALF_DAY = "half-day"
	SESSION_FULL_DAY = "full-day"
)

type Service interface {
	AddChild(ctx context.Context, request ChildTransport) (store.Child, error)
	GetChild(ctx context.Context, request ChildTransport) (store.Child, error)
	ListChildren(ctx context.Context) ([]store.Child, error)
	UpdateChild(ctx context.Context, request ChildTransport) (store.Child, error)
	DeleteChild(ctx context.Context, request ChildTransport) error
}

type ChildService struct {
	Store interface {
		AddChild(tx *gorm.DB, child store.Child) (store.Child, error)
		GetChild(tx *gorm.DB, childId int) (store.Child, error)
		ListChildren(tx *gorm.DB) ([]store.Child, error)
		UpdateChild(tx *gorm.DB, child store.Child) (store.Child, error)
		DeleteChild(tx *gorm.DB, childId int) error
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (s *ChildService) AddChild(ctx context.Context, request ChildTransport) (store.Child, error) {
	if err := validateChildTransport(request); err != nil {
		return store.Child{}, err
	}

	child, err := s.Store.AddChild(nil, childFromTransport(request))
	if err != nil {
		return store.Child{}, errors.Wrap(err, "failed to add child")
	}

	return child, nil
}

func (s *ChildService) GetChild(ctx context.Context, request ChildTransport) (store.Child, error) {
	child, err := s.Store.GetChild(nil, request.Id)
	if err != nil {
		return child, errors.Wrap(err, "failed to get child")
	}

	return child, nil
}

func (s *ChildService) ListChildren(ctx context.Context) ([]store.Child, error) {
	children, err := s.Store.ListChildren(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list children")
	}

	return children, nil
}

func (s *ChildService) UpdateChild(ctx context.Context, request ChildTransport) (store.Child, error) {
	if err := validateChildTransport(request); err != nil {
		return store.Child{}, err
	}

	child := childFromTransport(request)
	child.ChildId = request.Id

	updated, err := s.Store.UpdateChild(nil, child)
	if err != nil {
		return updated, errors.Wrap(err, "failed to update child")
	}

	return updated, nil
}

func (s *ChildService) DeleteChild(ctx context.Context, request ChildTransport) error {
	if err := s.Store.DeleteChild(nil, request.Id); err != nil {
		return errors.Wrap(err, "failed to delete child")
	}

	return nil
}

func validateChildTransport(request ChildTransport) error {
	if request.FullName == "" || request.Age == 0 || request.SessionType == "" ||
		request.ParentName == "" || request.ParentPhone == "" ||
		request.AlternateContactName == "" || request.AlternateContactPhone == "" || request.RelationshipToChild == "" {
		return ErrMissingMandatoryFields
	}
	if request.SessionType != SESSION_HALF_DAY && request.SessionType != SESSION_FULL_DAY {
		return ErrInvalidSessionType
	}
	return nil
}

func childFromTransport(request ChildTransport) store.Child {
	return store.Child{
		FullName:              request.FullName,
		Age:                   request.Age,
		SessionType:           request.SessionType,
		ParentName:            request.ParentName,
		ParentPhone:           request.ParentPhone,
		AlternateContactName:  request.AlternateContactName,
		AlternateContactPhone: request.AlternateContactPhone,
		RelationshipToChild:   request.RelationshipToChild,
		Allergies:             sql.NullString{String: request.Allergies, Valid: request.Allergies != ""},
		MedicalConditions:     sql.NullString{String: request.MedicalConditions, Valid: request.MedicalConditions != ""},
		DietaryRestrictions:   sql.NullString{String: request.DietaryRestrictions, Valid: request.DietaryRestrictions != ""},
		AdditionalNotes:       sql.NullString{String: request.AdditionalNotes, Valid: request.AdditionalNotes != ""},
	}
}
