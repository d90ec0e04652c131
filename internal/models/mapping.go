package models

import (
	"time"

	"gorm.io/datatypes"
)

// Mapping between persisted entities and transport DTOs is explicit per entity.
// Apply* functions merge a validated partial update onto a loaded entity; Copy*
// functions overwrite every mutable column and are what repositories stage.

// ===== USER =====

func ToUserDto(u *User) UserDto {
	return UserDto{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
	}
}

func ToUserDtos(users []*User) []UserDto {
	out := make([]UserDto, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDto(u))
	}
	return out
}

// NewUser maps a create request. passwordHash is stored instead of the plaintext.
func NewUser(req *UserCreateDto, passwordHash string) *User {
	return &User{
		Username: req.Username,
		Password: passwordHash,
		Email:    req.Email,
		FullName: req.FullName,
	}
}

// ApplyUserUpdate merges the non-nil fields of req onto u. The password, when
// present, must already be hashed by the caller.
func ApplyUserUpdate(u *User, req *UserUpdateDto, passwordHash *string) {
	if req == nil || u == nil {
		return
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if passwordHash != nil {
		u.Password = *passwordHash
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
}

func CopyUser(dst, src *User) {
	dst.Username = src.Username
	dst.Password = src.Password
	dst.Email = src.Email
	dst.FullName = src.FullName
}

// ===== ADMIN =====

func ToAdminDto(a *Admin) AdminDto {
	dto := AdminDto{
		ID:     a.ID,
		Role:   a.Role,
		UserID: a.UserID,
	}
	if a.User != nil {
		dto.FullName = a.User.FullName
	}
	return dto
}

func ToAdminDtos(admins []*Admin) []AdminDto {
	out := make([]AdminDto, 0, len(admins))
	for _, a := range admins {
		out = append(out, ToAdminDto(a))
	}
	return out
}

func NewAdmin(req *AdminCreateDto) *Admin {
	return &Admin{
		Role:   req.Role,
		UserID: req.UserID,
	}
}

func ApplyAdminUpdate(a *Admin, req *AdminUpdateDto, passwordHash *string) {
	if req.Role != nil {
		a.Role = *req.Role
	}
	ApplyUserUpdate(a.User, req.User, passwordHash)
}

// CopyAdmin overwrites dst with src, including the linked user when both sides
// carry one.
func CopyAdmin(dst, src *Admin) {
	dst.Role = src.Role
	dst.UserID = src.UserID
	if dst.User != nil && src.User != nil {
		CopyUser(dst.User, src.User)
	}
}

// ===== TEACHER =====

func ToTeacherDto(t *Teacher) TeacherDto {
	dto := TeacherDto{
		ID:                t.ID,
		Phone:             t.Phone,
		Address:           t.Address,
		Bio:               t.Bio,
		Qualification:     t.Qualification,
		YearsOfExperience: t.YearsOfExperience,
		UserID:            t.UserID,
	}
	if t.User != nil {
		dto.FullName = t.User.FullName
		dto.Email = t.User.Email
	}
	return dto
}

func ToTeacherDtos(teachers []*Teacher) []TeacherDto {
	out := make([]TeacherDto, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, ToTeacherDto(t))
	}
	return out
}

func NewTeacher(req *TeacherCreateDto) *Teacher {
	return &Teacher{
		Bio:               req.Bio,
		Qualification:     req.Qualification,
		YearsOfExperience: req.YearsOfExperience,
		Phone:             req.Phone,
		Address:           req.Address,
		UserID:            req.UserID,
	}
}

func ApplyTeacherUpdate(t *Teacher, req *TeacherUpdateDto, passwordHash *string) {
	if req.Bio != nil {
		t.Bio = *req.Bio
	}
	if req.Qualification != nil {
		t.Qualification = *req.Qualification
	}
	if req.YearsOfExperience != nil {
		t.YearsOfExperience = *req.YearsOfExperience
	}
	if req.Phone != nil {
		t.Phone = *req.Phone
	}
	if req.Address != nil {
		t.Address = *req.Address
	}
	ApplyUserUpdate(t.User, req.User, passwordHash)
}

func CopyTeacher(dst, src *Teacher) {
	dst.Bio = src.Bio
	dst.Qualification = src.Qualification
	dst.YearsOfExperience = src.YearsOfExperience
	dst.Phone = src.Phone
	dst.Address = src.Address
	dst.UserID = src.UserID
	if dst.User != nil && src.User != nil {
		CopyUser(dst.User, src.User)
	}
}

// ===== STUDENT =====

func ToStudentDto(s *Student) StudentDto {
	dto := StudentDto{
		ID:          s.ID,
		DateOfBirth: time.Time(s.DateOfBirth),
		Phone:       s.Phone,
		Address:     s.Address,
		UserID:      s.UserID,
	}
	if s.User != nil {
		dto.FullName = s.User.FullName
		dto.Email = s.User.Email
	}
	return dto
}

func ToStudentDtos(students []*Student) []StudentDto {
	out := make([]StudentDto, 0, len(students))
	for _, s := range students {
		out = append(out, ToStudentDto(s))
	}
	return out
}

func NewStudent(req *StudentCreateDto) *Student {
	return &Student{
		DateOfBirth: datatypes.Date(req.DateOfBirth),
		Phone:       req.Phone,
		Address:     req.Address,
		UserID:      req.UserID,
	}
}

func ApplyStudentUpdate(s *Student, req *StudentUpdateDto, passwordHash *string) {
	if req.DateOfBirth != nil {
		s.DateOfBirth = datatypes.Date(*req.DateOfBirth)
	}
	if req.Phone != nil {
		s.Phone = *req.Phone
	}
	if req.Address != nil {
		s.Address = *req.Address
	}
	ApplyUserUpdate(s.User, req.User, passwordHash)
}

func CopyStudent(dst, src *Student) {
	dst.DateOfBirth = src.DateOfBirth
	dst.Phone = src.Phone
	dst.Address = src.Address
	dst.UserID = src.UserID
	if dst.User != nil && src.User != nil {
		CopyUser(dst.User, src.User)
	}
}
