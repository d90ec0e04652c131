package models

import "time"

type Teacher struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	Bio               string `json:"bio" gorm:"type:text"`
	Qualification     string `json:"qualification" gorm:"size:500"`
	YearsOfExperience int    `json:"years_of_experience" gorm:"not null;default:0"`
	Phone             string `json:"phone" gorm:"size:20"`
	Address           string `json:"address" gorm:"size:500"`
	UserID            uint   `json:"user_id" gorm:"not null;uniqueIndex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Teacher) TableName() string {
	return "teachers"
}
