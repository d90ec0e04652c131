package models

import "time"

// ===== USER DTOs =====

type UserDto struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type UserCreateDto struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,password_strength"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,min=5"`
}

// UserUpdateDto is also nested inside profile updates, where ID may be omitted.
type UserUpdateDto struct {
	ID       uint    `json:"id"`
	Username *string `json:"username" validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,password_strength"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"fullName" validate:"omitempty,min=5"`
}

// ===== ADMIN DTOs =====

type AdminDto struct {
	ID       uint   `json:"id"`
	Role     string `json:"role"`
	UserID   uint   `json:"userId"`
	FullName string `json:"fullName"`
}

type AdminCreateDto struct {
	Role   string `json:"role" validate:"required,notblank"`
	UserID uint   `json:"userId" validate:"required"`
}

type AdminUpdateDto struct {
	ID   uint           `json:"id" validate:"required"`
	Role *string        `json:"role" validate:"omitempty,notblank"`
	User *UserUpdateDto `json:"user"`
}

// ===== TEACHER DTOs =====

type TeacherDto struct {
	ID                uint   `json:"id"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Bio               string `json:"bio"`
	Qualification     string `json:"qualification"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	UserID            uint   `json:"userId"`
}

type TeacherCreateDto struct {
	Bio               string `json:"bio" validate:"max=1000"`
	Qualification     string `json:"qualification" validate:"max=500"`
	YearsOfExperience int    `json:"yearsOfExperience" validate:"min=1,max=50"`
	Phone             string `json:"phone" validate:"required,min=10,max=20,phone"`
	Address           string `json:"address" validate:"required,notblank"`
	UserID            uint   `json:"userId" validate:"required"`
}

type TeacherUpdateDto struct {
	ID                uint           `json:"id" validate:"required"`
	Bio               *string        `json:"bio" validate:"omitempty,max=1000"`
	Qualification     *string        `json:"qualification" validate:"omitempty,max=500"`
	YearsOfExperience *int           `json:"yearsOfExperience" validate:"omitempty,min=1,max=50"`
	Phone             *string        `json:"phone" validate:"omitempty,min=10,max=20,phone"`
	Address           *string        `json:"address" validate:"omitempty,notblank"`
	User              *UserUpdateDto `json:"user"`
}

// ===== STUDENT DTOs =====

type StudentDto struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	UserID      uint      `json:"userId"`
}

type StudentCreateDto struct {
	DateOfBirth time.Time `json:"dateOfBirth" validate:"required"`
	Phone       string    `json:"phone" validate:"required,min=10,max=20,phone"`
	Address     string    `json:"address" validate:"required,notblank"`
	UserID      uint      `json:"userId" validate:"required"`
}

type StudentUpdateDto struct {
	ID          uint           `json:"id" validate:"required"`
	DateOfBirth *time.Time     `json:"dateOfBirth"`
	Phone       *string        `json:"phone" validate:"omitempty,min=10,max=20,phone"`
	Address     *string        `json:"address" validate:"omitempty,notblank"`
	User        *UserUpdateDto `json:"user"`
}
