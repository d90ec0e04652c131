package models

import (
	"time"

	"gorm.io/datatypes"
)

type Student struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	DateOfBirth datatypes.Date `json:"date_of_birth" gorm:"not null"`
	Phone       string         `json:"phone" gorm:"size:20"`
	Address     string         `json:"address" gorm:"size:500"`
	UserID      uint           `json:"user_id" gorm:"not null;uniqueIndex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Student) TableName() string {
	return "students"
}

// All returns every persisted model in dependency order, users first.
func All() []interface{} {
	return []interface{}{&User{}, &Admin{}, &Teacher{}, &Student{}}
}
