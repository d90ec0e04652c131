package models

import "gorm.io/gorm"

// linkedUserID resolves a profile's foreign key from its User when only the
// pointer was set. The user must have been inserted earlier in the same
// transaction.
func linkedUserID(userID uint, user *User) uint {
	if userID == 0 && user != nil {
		return user.ID
	}
	return userID
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	a.UserID = linkedUserID(a.UserID, a.User)
	return nil
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	t.UserID = linkedUserID(t.UserID, t.User)
	return nil
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	s.UserID = linkedUserID(s.UserID, s.User)
	return nil
}
