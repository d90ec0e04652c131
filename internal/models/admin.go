package models

import "time"

type Admin struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Role   string `json:"role" gorm:"not null;size:100"`
	UserID uint   `json:"user_id" gorm:"not null;uniqueIndex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Admin) TableName() string {
	return "admins"
}
