package models

import "time"

// User is the account row every profile (Admin, Teacher, Student) hangs off.
// Password holds a bcrypt hash, never the plaintext submitted by clients.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null;size:100"`
	Password string `json:"-" gorm:"not null;size:255"`
	Email    string `json:"email" gorm:"not null;size:255"`
	FullName string `json:"full_name" gorm:"not null;size:200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Admin   *Admin   `json:"admin,omitempty" gorm:"foreignKey:UserID"`
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:UserID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
