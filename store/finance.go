package store

import (
	"database/sql"
	"time"

	"github.com/jinzhu/gorm"
)

type Income struct {
	IncomeId    int `gorm:"column:id;primary_key"`
	Amount      float64
	Source      string
	Description sql.NullString
	IncomeDate  time.Time
	CreatedAt   time.Time
}

func (Income) TableName() string {
	return "income"
}

type Expense struct {
	ExpenseId   int `gorm:"column:id;primary_key"`
	Amount      float64
	Category    string
	Description sql.NullString
	ExpenseDate time.Time
	CreatedAt   time.Time
}

func (Expense) TableName() string {
	return "expenses"
}

type Budget struct {
	BudgetId  int `gorm:"column:id;primary_key"`
	Category  string
	Amount    float64
	Month     string
	CreatedAt time.Time
}

func (Budget) TableName() string {
	return "budget"
}

type MonthlyTotal struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

func (s *Store) AddIncome(tx *gorm.DB, income Income) (Income, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&income).Error; err != nil {
		return Income{}, err
	}

	return income, nil
}

func (s *Store) ListIncome(tx *gorm.DB) ([]Income, error) {
	db := s.dbOrTx(tx)

	income := []Income{}
	if err := db.Order("income_date DESC").Find(&income).Error; err != nil {
		return []Income{}, err
	}

	return income, nil
}

func (s *Store) AddExpense(tx *gorm.DB, expense Expense) (Expense, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&expense).Error; err != nil {
		return Expense{}, err
	}

	return expense, nil
}

func (s *Store) ListExpenses(tx *gorm.DB) ([]Expense, error) {
	db := s.dbOrTx(tx)

	expenses := []Expense{}
	if err := db.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		return []Expense{}, err
	}

	return expenses, nil
}

func (s *Store) AddBudget(tx *gorm.DB, budget Budget) (Budget, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&budget).Error; err != nil {
		return Budget{}, err
	}

	return budget, nil
}

func (s *Store) ListBudget(tx *gorm.DB) ([]Budget, error) {
	db := s.dbOrTx(tx)

	budget := []Budget{}
	if err := db.Order("month DESC").Find(&budget).Error; err != nil {
		return []Budget{}, err
	}

	return budget, nil
}

func (s *Store) CurrentMonthIncomeTotal(tx *gorm.DB) (float64, error) {
	return s.currentMonthTotal(tx, "income", "income_date")
}

func (s *Store) CurrentMonthExpenseTotal(tx *gorm.DB) (float64, error) {
	return s.currentMonthTotal(tx, "expenses", "expense_date")
}

func (s *Store) currentMonthTotal(tx *gorm.DB, table, dateColumn string) (float64, error) {
	db := s.dbOrTx(tx)

	row := db.Table(table).
		Select("COALESCE(SUM(amount), 0)").
		Where("date_part('month', "+dateColumn+") = date_part('month', CURRENT_DATE)").
		Where("date_part('year', "+dateColumn+") = date_part('year', CURRENT_DATE)").
		Row()

	var total float64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (s *Store) GetMonthlyIncome(tx *gorm.DB) ([]MonthlyTotal, error) {
	return s.monthlyTotals(tx, "income", "income_date")
}

func (s *Store) GetMonthlyExpenses(tx *gorm.DB) ([]MonthlyTotal, error) {
	return s.monthlyTotals(tx, "expenses", "expense_date")
}

func (s *Store) monthlyTotals(tx *gorm.DB, table, dateColumn string) ([]MonthlyTotal, error) {
	db := s.dbOrTx(tx)

	rows, err := db.Table(table).
		Select("CAST(date_part('month', " + dateColumn + ") AS int) AS month," +
			"CAST(date_part('year', " + dateColumn + ") AS int) AS year," +
			"SUM(amount) AS total").
		Group("date_part('year', " + dateColumn + "), date_part('month', " + dateColumn + ")").
		Order("year DESC, month DESC").
		Rows()
	if err != nil {
		return []MonthlyTotal{}, err
	}
	defer rows.Close()

	totals := []MonthlyTotal{}
	for rows.Next() {
		current := MonthlyTotal{}
		if err := rows.Scan(&current.Month, &current.Year, &current.Total); err != nil {
			return []MonthlyTotal{}, err
		}
		totals = append(totals, current)
	}

	return totals, nil
}
