package mocks

import (
	"github.com/Tetricia805/DayStar-DayCare-center/store"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) AddUser(tx *gorm.DB, user store.User) (store.User, error) {
	args := m.Called(tx, user)
	return args.Get(0).(store.User), args.Error(1)
}

func (m *MockStore) GetUser(tx *gorm.DB, userId int) (store.User, error) {
	args := m.Called(tx, userId)
	return args.Get(0).(store.User), args.Error(1)
}

func (m *MockStore) GetUserByEmail(tx *gorm.DB, email string) (store.User, error) {
	args := m.Called(tx, email)
	return args.Get(0).(store.User), args.Error(1)
}

func (m *MockStore) UpdateUserProfile(tx *gorm.DB, user store.User) (store.User, error) {
	args := m.Called(tx, user)
	return args.Get(0).(store.User), args.Error(1)
}

func (m *MockStore) AddBabysitter(tx *gorm.DB, babysitter store.Babysitter) (store.Babysitter, error) {
	args := m.Called(tx, babysitter)
	return args.Get(0).(store.Babysitter), args.Error(1)
}

func (m *MockStore) GetBabysitter(tx *gorm.DB, babysitterId int) (store.Babysitter, error) {
	args := m.Called(tx, babysitterId)
	return args.Get(0).(store.Babysitter), args.Error(1)
}

func (m *MockStore) ListBabysitters(tx *gorm.DB) ([]store.Babysitter, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.Babysitter), args.Error(1)
}

func (m *MockStore) UpdateBabysitter(tx *gorm.DB, babysitter store.Babysitter) (store.Babysitter, error) {
	args := m.Called(tx, babysitter)
	return args.Get(0).(store.Babysitter), args.Error(1)
}

func (m *MockStore) DeleteBabysitter(tx *gorm.DB, babysitterId int) error {
	args := m.Called(tx, babysitterId)
	return args.Error(0)
}

func (m *MockStore) AddChild(tx *gorm.DB, child store.Child) (store.Child, error) {
	args := m.Called(tx, child)
	return args.Get(0).(store.Child), args.Error(1)
}

func (m *MockStore) GetChild(tx *gorm.DB, childId int) (store.Child, error) {
	args := m.Called(tx, childId)
	return args.Get(0).(store.Child), args.Error(1)
}

func (m *MockStore) ListChildren(tx *gorm.DB) ([]store.Child, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.Child), args.Error(1)
}

func (m *MockStore) UpdateChild(tx *gorm.DB, child store.Child) (store.Child, error) {
	args := m.Called(tx, child)
	return args.Get(0).(store.Child), args.Error(1)
}

func (m *MockStore) DeleteChild(tx *gorm.DB, childId int) error {
	args := m.Called(tx, childId)
	return args.Error(0)
}

func (m *MockStore) ChildExists(tx *gorm.DB, childId int) bool {
	args := m.Called(tx, childId)
	return args.Bool(0)
}

func (m *MockStore) AddAttendance(tx *gorm.DB, attendance store.Attendance) (store.Attendance, error) {
	args := m.Called(tx, attendance)
	return args.Get(0).(store.Attendance), args.Error(1)
}

func (m *MockStore) ListAttendance(tx *gorm.DB) ([]store.Attendance, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.Attendance), args.Error(1)
}

func (m *MockStore) ListChildAttendance(tx *gorm.DB, childId int) ([]store.Attendance, error) {
	args := m.Called(tx, childId)
	return args.Get(0).([]store.Attendance), args.Error(1)
}

func (m *MockStore) UpdateAttendance(tx *gorm.DB, attendance store.Attendance) (store.Attendance, error) {
	args := m.Called(tx, attendance)
	return args.Get(0).(store.Attendance), args.Error(1)
}

func (m *MockStore) GetAttendanceMonthlySummary(tx *gorm.DB) ([]store.AttendanceMonthlySummary, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.AttendanceMonthlySummary), args.Error(1)
}

func (m *MockStore) GetChildAttendanceSummary(tx *gorm.DB) ([]store.ChildAttendanceSummary, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.ChildAttendanceSummary), args.Error(1)
}

func (m *MockStore) AddIncident(tx *gorm.DB, incident store.Incident) (store.Incident, error) {
	args := m.Called(tx, incident)
	return args.Get(0).(store.Incident), args.Error(1)
}

func (m *MockStore) ListIncidents(tx *gorm.DB) ([]store.Incident, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.Incident), args.Error(1)
}

func (m *MockStore) ListChildIncidents(tx *gorm.DB, childId int) ([]store.Incident, error) {
	args := m.Called(tx, childId)
	return args.Get(0).([]store.Incident), args.Error(1)
}

func (m *MockStore) UpdateIncident(tx *gorm.DB, incident store.Incident) (store.Incident, error) {
	args := m.Called(tx, incident)
	return args.Get(0).(store.Incident), args.Error(1)
}

func (m *MockStore) GetIncidentTypeSummary(tx *gorm.DB) ([]store.IncidentTypeSummary, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.IncidentTypeSummary), args.Error(1)
}

func (m *MockStore) GetIncidentMonthlySummary(tx *gorm.DB) ([]store.IncidentMonthlySummary, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.IncidentMonthlySummary), args.Error(1)
}

func (m *MockStore) AddIncome(tx *gorm.DB, income store.Income) (store.Income, error) {
	args := m.Called(tx, income)
	return args.Get(0).(store.Income), args.Error(1)
}

func (m *MockStore) ListIncome(tx *gorm.DB) ([]store.Income, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.Income), args.Error(1)
}

func (m *MockStore) AddExpense(tx *gorm.DB, expense store.Expense) (store.Expense, error) {
	args := m.Called(tx, expense)
	return args.Get(0).(store.Expense), args.Error(1)
}

func (m *MockStore) ListExpenses(tx *gorm.DB) ([]store.Expense, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.Expense), args.Error(1)
}

func (m *MockStore) AddBudget(tx *gorm.DB, budget store.Budget) (store.Budget, error) {
	args := m.Called(tx, budget)
	return args.Get(0).(store.Budget), args.Error(1)
}

func (m *MockStore) ListBudget(tx *gorm.DB) ([]store.Budget, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.Budget), args.Error(1)
}

func (m *MockStore) AddPayment(tx *gorm.DB, payment store.Payment) (store.Payment, error) {
	args := m.Called(tx, payment)
	return args.Get(0).(store.Payment), args.Error(1)
}

func (m *MockStore) ListPayments(tx *gorm.DB) ([]store.Payment, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.Payment), args.Error(1)
}

func (m *MockStore) UpdatePaymentStatus(tx *gorm.DB, paymentId int, status string) (store.Payment, error) {
	args := m.Called(tx, paymentId, status)
	return args.Get(0).(store.Payment), args.Error(1)
}

func (m *MockStore) CurrentMonthIncomeTotal(tx *gorm.DB) (float64, error) {
	args := m.Called(tx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStore) CurrentMonthExpenseTotal(tx *gorm.DB) (float64, error) {
	args := m.Called(tx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStore) CountPendingPayments(tx *gorm.DB) (int, error) {
	args := m.Called(tx)
	return args.Get(0).(int), args.Error(1)
}

func (m *MockStore) GetMonthlyIncome(tx *gorm.DB) ([]store.MonthlyTotal, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.MonthlyTotal), args.Error(1)
}

func (m *MockStore) GetMonthlyExpenses(tx *gorm.DB) ([]store.MonthlyTotal, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.MonthlyTotal), args.Error(1)
}

func (m *MockStore) GetPaymentStatusCounts(tx *gorm.DB) ([]store.PaymentStatusCount, error) {
	args := m.Called(tx)
	return args.Get(0).([]store.PaymentStatusCount), args.Error(1)
}
