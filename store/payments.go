package store

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
)

type Payment struct {
	PaymentId   int `gorm:"column:id;primary_key"`
	ParentId    int
	ChildId     int
	Amount      float64
	PaymentType string
	Status      string
	Reference   string
	PaymentDate time.Time
	DueDate     time.Time
	CreatedAt   time.Time
	ChildName   string `sql:"-"`
	ParentName  string `sql:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

const (
	PAYMENT_PENDING = "pending"
	PAYMENT_PAID    = "paid"
	PAYMENT_OVERDUE = "overdue"
)

type PaymentStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func (s *Store) AddPayment(tx *gorm.DB, payment Payment) (Payment, error) {
	db := s.dbOrTx(tx)

	payment.Status = PAYMENT_PENDING
	payment.Reference = s.StringGenerator.GenerateUuid()

	if err := db.Create(&payment).Error; err != nil {
		return Payment{}, err
	}

	return payment, nil
}

func (s *Store) ListPayments(tx *gorm.DB) ([]Payment, error) {
	db := s.dbOrTx(tx)

	rows, err := db.Table("payments").
		Select("payments.id," +
			"payments.parent_id," +
			"payments.child_id," +
			"payments.amount," +
			"payments.payment_type," +
			"payments.status," +
			"payments.reference," +
			"payments.payment_date," +
			"payments.due_date," +
			"payments.created_at," +
			"children.full_name," +
			"concat_ws(' ', users.first_name, users.last_name)").
		Joins("join children on children.id = payments.child_id").
		Joins("join users on users.id = payments.parent_id").
		Order("payments.payment_date DESC").
		Rows()
	if err != nil {
		return []Payment{}, err
	}
	defer rows.Close()

	payments := []Payment{}
	for rows.Next() {
		current := Payment{}
		if err := rows.Scan(&current.PaymentId,
			&current.ParentId,
			&current.ChildId,
			&current.Amount,
			&current.PaymentType,
			&current.Status,
			&current.Reference,
			&current.PaymentDate,
			&current.DueDate,
			&current.CreatedAt,
			&current.ChildName,
			&current.ParentName); err != nil {
			return []Payment{}, err
		}
		payments = append(payments, current)
	}

	return payments, nil
}

func (s *Store) UpdatePaymentStatus(tx *gorm.DB, paymentId int, status string) (Payment, error) {
	db := s.dbOrTx(tx)

	if !s.paymentExists(db, paymentId) {
		return Payment{}, ErrPaymentNotFound
	}

	if err := db.Model(&Payment{}).Where("id = ?", paymentId).Update("status", status).Error; err != nil {
		return Payment{}, err
	}

	updated := Payment{}
	if err := db.Where("id = ?", paymentId).First(&updated).Error; err != nil {
		return Payment{}, err
	}

	return updated, nil
}

func (s *Store) paymentExists(tx *gorm.DB, paymentId int) bool {
	p := Payment{}
	return !tx.Model(Payment{}).Where("id = ?", paymentId).First(&p).RecordNotFound()
}

func (s *Store) CountPendingPayments(tx *gorm.DB) (int, error) {
	db := s.dbOrTx(tx)

	var count int
	if err := db.Model(Payment{}).Where("status = ?", PAYMENT_PENDING).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (s *Store) GetPaymentStatusCounts(tx *gorm.DB) ([]PaymentStatusCount, error) {
	db := s.dbOrTx(tx)

	rows, err := db.Table("payments").
		Select("status, COUNT(*) AS count").
		Group("status").
		Rows()
	if err != nil {
		return []PaymentStatusCount{}, err
	}
	defer rows.Close()

	counts := []PaymentStatusCount{}
	for rows.Next() {
		current := PaymentStatusCount{}
		if err := rows.Scan(&current.Status, &current.Count); err != nil {
			return []PaymentStatusCount{}, err
		}
		counts = append(counts, current)
	}

	return counts, nil
}
