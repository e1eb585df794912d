package store

import (
	"database/sql"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type User struct {
	UserId    int    `gorm:"column:id;primary_key"`
	Email     string `gorm:"column:email"`
	Password  string `gorm:"column:password"`
	Role      string `gorm:"column:role"`
	FirstName sql.NullString
	LastName  sql.NullString
	Phone     sql.NullString
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

func (s *Store) AddUser(tx *gorm.DB, user User) (User, error) {
	db := s.dbOrTx(tx)

	if err := db.Create(&user).Error; err != nil {
		return User{}, err
	}

	return user, nil
}

func (s *Store) GetUser(tx *gorm.DB, userId int) (User, error) {
	db := s.dbOrTx(tx)

	user := User{}
	res := db.Where("id = ?", userId).First(&user)
	if res.RecordNotFound() {
		return User{}, ErrUserNotFound
	}
	if err := res.Error; err != nil {
		return User{}, err
	}

	return user, nil
}

func (s *Store) GetUserByEmail(tx *gorm.DB, email string) (User, error) {
	db := s.dbOrTx(tx)

	user := User{}
	res := db.Where("email = ?", email).First(&user)
	if res.RecordNotFound() {
		return User{}, ErrUserNotFound
	}
	if err := res.Error; err != nil {
		return User{}, err
	}

	return user, nil
}

func (s *Store) UpdateUserProfile(tx *gorm.DB, user User) (User, error) {
	db := s.dbOrTx(tx)

	if !s.userExists(db, user.UserId) {
		return User{}, ErrUserNotFound
	}

	if err := db.Model(&User{}).Where("id = ?", user.UserId).Updates(map[string]interface{}{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"phone":      user.Phone,
	}).Error; err != nil {
		return User{}, err
	}

	return s.GetUser(db, user.UserId)
}

func (s *Store) userExists(tx *gorm.DB, userId int) bool {
	u := User{}
	return !tx.Model(User{}).Where("id = ?", userId).First(&u).RecordNotFound()
}
