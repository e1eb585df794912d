package finance

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
	ErrInvalidAmount          = errors.New("amount must be a positive number")
	ErrMissingMandatoryFields = errors.New("missing mandatory fields")
	ErrInvalidDate            = errors.New("date is mandatory and must be a valid date")
	ErrInvalidMonth           = errors.New("month must use the YYYY-MM format")
	ErrInvalidPaymentStatus   = errors.New("status must be pending, paid or overdue")
	ErrUnknownChild           = errors.New("childId does not reference a registered child")
)

type Service interface {
	AddIncome(ctx context.Context, request IncomeTransport) (store.Income, error)
	ListIncome(ctx context.Context) ([]store.Income, error)
	AddExpense(ctx context.Context, request ExpenseTransport) (store.Expense, error)
	ListExpenses(ctx context.Context) ([]store.Expense, error)
	AddBudget(ctx context.Context, request BudgetTransport) (store.Budget, error)
	ListBudget(ctx context.Context) ([]store.Budget, error)
	AddPayment(ctx context.Context, request PaymentTransport) (store.Payment, error)
	ListPayments(ctx context.Context) ([]store.Payment, error)
	UpdatePaymentStatus(ctx context.Context, request PaymentTransport) (store.Payment, error)
	GetDashboard(ctx context.Context) (Dashboard, error)
	GetFinanceReport(ctx context.Context) (FinanceReport, error)
}

type Dashboard struct {
	TotalIncome     float64 `json:"total_income"`
	TotalExpenses   float64 `json:"total_expenses"`
	PendingPayments int     `json:"pending_payments"`
}

type FinanceReport struct {
	MonthlyIncome   []store.MonthlyTotal       `json:"monthly_income"`
	MonthlyExpenses []store.MonthlyTotal       `json:"monthly_expenses"`
	PaymentStatus   []store.PaymentStatusCount `json:"payment_status"`
}

type FinanceService struct {
	Store interface {
		AddIncome(tx *gorm.DB, income store.Income) (store.Income, error)
		ListIncome(tx *gorm.DB) ([]store.Income, error)
		AddExpense(tx *gorm.DB, expense store.Expense) (store.Expense, error)
		ListExpenses(tx *gorm.DB) ([]store.Expense, error)
		AddBudget(tx *gorm.DB, budget store.Budget) (store.Budget, error)
		ListBudget(tx *gorm.DB) ([]store.Budget, error)
		AddPayment(tx *gorm.DB, payment store.Payment) (store.Payment, error)
		ListPayments(tx *gorm.DB) ([]store.Payment, error)
		UpdatePaymentStatus(tx *gorm.DB, paymentId int, status string) (store.Payment, error)
		CurrentMonthIncomeTotal(tx *gorm.DB) (float64, error)
		CurrentMonthExpenseTotal(tx *gorm.DB) (float64, error)
		CountPendingPayments(tx *gorm.DB) (int, error)
		GetMonthlyIncome(tx *gorm.DB) ([]store.MonthlyTotal, error)
		GetMonthlyExpenses(tx *gorm.DB) ([]store.MonthlyTotal, error)
		GetPaymentStatusCounts(tx *gorm.DB) ([]store.PaymentStatusCount, error)
		ChildExists(tx *gorm.DB, childId int) bool
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (s *FinanceService) AddIncome(ctx context.Context, request IncomeTransport) (store.Income, error) {
	if request.Source == "" {
		return store.Income{}, ErrMissingMandatoryFields
	}
	if request.Amount <= 0 {
		return store.Income{}, ErrInvalidAmount
	}

	date, err := parseDate(request.IncomeDate)
	if err != nil {
		return store.Income{}, err
	}

	income, err := s.Store.AddIncome(nil, store.Income{
		Amount:      request.Amount,
		Source:      request.Source,
		Description: sql.NullString{String: request.Description, Valid: request.Description != ""},
		IncomeDate:  date,
	})
	if err != nil {
		return store.Income{}, errors.Wrap(err, "failed to add income")
	}

	return income, nil
}

func (s *FinanceService) ListIncome(ctx context.Context) ([]store.Income, error) {
	income, err := s.Store.ListIncome(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list income")
	}

	return income, nil
}

func (s *FinanceService) AddExpense(ctx context.Context, request ExpenseTransport) (store.Expense, error) {
	if request.Category == "" {
		return store.Expense{}, ErrMissingMandatoryFields
	}
	if request.Amount <= 0 {
		return store.Expense{}, ErrInvalidAmount
	}

	date, err := parseDate(request.ExpenseDate)
	if err != nil {
		return store.Expense{}, err
	}

	expense, err := s.Store.AddExpense(nil, store.Expense{
		Amount:      request.Amount,
		Category:    request.Category,
		Description: sql.NullString{String: request.Description, Valid: request.Description != ""},
		ExpenseDate: date,
	})
	if err != nil {
		return store.Expense{}, errors.Wrap(err, "failed to add expense")
	}

	return expense, nil
}

func (s *FinanceService) ListExpenses(ctx context.Context) ([]store.Expense, error) {
	expenses, err := s.Store.ListExpenses(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return expenses, nil
}

func (s *FinanceService) AddBudget(ctx context.Context, request BudgetTransport) (store.Budget, error) {
	if request.Category == "" {
		return store.Budget{}, ErrMissingMandatoryFields
	}
	if request.Amount <= 0 {
		return store.Budget{}, ErrInvalidAmount
	}
	if _, err := time.Parse("2006-01", request.Month); err != nil {
		return store.Budget{}, ErrInvalidMonth
	}

	budget, err := s.Store.AddBudget(nil, store.Budget{
		Category: request.Category,
		Amount:   request.Amount,
		Month:    request.Month,
	})
	if err != nil {
		return store.Budget{}, errors.Wrap(err, "failed to add budget line")
	}

	return budget, nil
}

func (s *FinanceService) ListBudget(ctx context.Context) ([]store.Budget, error) {
	budget, err := s.Store.ListBudget(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list budget")
	}

	return budget, nil
}

func (s *FinanceService) AddPayment(ctx context.Context, request PaymentTransport) (store.Payment, error) {
	if request.ParentId == 0 || request.PaymentType == "" {
		return store.Payment{}, ErrMissingMandatoryFields
	}
	if request.Amount <= 0 {
		return store.Payment{}, ErrInvalidAmount
	}

	paymentDate, err := parseDate(request.PaymentDate)
	if err != nil {
		return store.Payment{}, err
	}
	dueDate, err := parseDate(request.DueDate)
	if err != nil {
		return store.Payment{}, err
	}

	if !s.Store.ChildExists(nil, request.ChildId) {
		return store.Payment{}, ErrUnknownChild
	}

	payment, err := s.Store.AddPayment(nil, store.Payment{
		ParentId:    request.ParentId,
		ChildId:     request.ChildId,
		Amount:      request.Amount,
		PaymentType: request.PaymentType,
		PaymentDate: paymentDate,
		DueDate:     dueDate,
	})
	if err != nil {
		return store.Payment{}, errors.Wrap(err, "failed to add payment")
	}

	return payment, nil
}

func (s *FinanceService) ListPayments(ctx context.Context) ([]store.Payment, error) {
	payments, err := s.Store.ListPayments(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

func (s *FinanceService) UpdatePaymentStatus(ctx context.Context, request PaymentTransport) (store.Payment, error) {
	switch request.Status {
	case store.PAYMENT_PENDING, store.PAYMENT_PAID, store.PAYMENT_OVERDUE:
	default:
		return store.Payment{}, ErrInvalidPaymentStatus
	}

	payment, err := s.Store.UpdatePaymentStatus(nil, request.Id, request.Status)
	if err != nil {
		return payment, errors.Wrap(err, "failed to update payment status")
	}

	return payment, nil
}

func (s *FinanceService) GetDashboard(ctx context.Context) (Dashboard, error) {
	income, err := s.Store.CurrentMonthIncomeTotal(nil)
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "failed to build finance dashboard")
	}

	expenses, err := s.Store.CurrentMonthExpenseTotal(nil)
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "failed to build finance dashboard")
	}

	pending, err := s.Store.CountPendingPayments(nil)
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "failed to build finance dashboard")
	}

	return Dashboard{
		TotalIncome:     income,
		TotalExpenses:   expenses,
		PendingPayments: pending,
	}, nil
}

func (s *FinanceService) GetFinanceReport(ctx context.Context) (FinanceReport, error) {
	income, err := s.Store.GetMonthlyIncome(nil)
	if err != nil {
		return FinanceReport{}, errors.Wrap(err, "failed to build finance report")
	}

	expenses, err := s.Store.GetMonthlyExpenses(nil)
	if err != nil {
		return FinanceReport{}, errors.Wrap(err, "failed to build finance report")
	}

	statuses, err := s.Store.GetPaymentStatusCounts(nil)
	if err != nil {
		return FinanceReport{}, errors.Wrap(err, "failed to build finance report")
	}

	return FinanceReport{
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		PaymentStatus:   statuses,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	date, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrap(ErrInvalidDate, err.Error())
	}
	return date, nil
}
