package validator

import (
	"testing"
	"time"

	"github.com/SAP-F-2025/english-school-service/internal/models"
)

func fieldsOf(errs ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Rule
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestValidator_UserCreate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.UserCreateDto
		wantField string
		wantRule  string
	}{
		{
			name: "valid",
			req: models.UserCreateDto{
				Username: "alice",
				Password: "Passw0rd!",
				Email:    "a@x.com",
				FullName: "Alice A",
			},
		},
		{
			name:      "missing username",
			req:       models.UserCreateDto{Password: "Passw0rd!", Email: "a@x.com", FullName: "Alice A"},
			wantField: "username",
			wantRule:  "required",
		},
		{
			name:      "bad email",
			req:       models.UserCreateDto{Username: "alice", Password: "Passw0rd!", Email: "nope", FullName: "Alice A"},
			wantField: "email",
			wantRule:  "email",
		},
		{
			name:      "short full name",
			req:       models.UserCreateDto{Username: "alice", Password: "Passw0rd!", Email: "a@x.com", FullName: "Al"},
			wantField: "fullName",
			wantRule:  "min",
		},
		{
			name:      "password without symbol",
			req:       models.UserCreateDto{Username: "alice", Password: "Passw0rdd", Email: "a@x.com", FullName: "Alice A"},
			wantField: "password",
			wantRule:  "password_strength",
		},
		{
			name:      "password too long",
			req:       models.UserCreateDto{Username: "alice", Password: "Passw0rd!Passw0rd!", Email: "a@x.com", FullName: "Alice A"},
			wantField: "password",
			wantRule:  "password_strength",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(&tt.req)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			got := fieldsOf(errs)
			if got[tt.wantField] != tt.wantRule {
				t.Fatalf("expected %s to fail %s, got %v", tt.wantField, tt.wantRule, errs)
			}
		})
	}
}

func TestValidator_PasswordNeverEchoed(t *testing.T) {
	v := New()
	errs := v.Validate(&models.UserCreateDto{Username: "alice", Password: "weak", Email: "a@x.com", FullName: "Alice A"})
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if errs[0].Value != nil {
		t.Errorf("password value leaked into validation error: %v", errs[0].Value)
	}
}

func TestValidator_TeacherCreate(t *testing.T) {
	v := New()

	valid := models.TeacherCreateDto{
		Bio:               "Teaches grammar",
		Qualification:     "CELTA",
		YearsOfExperience: 5,
		Phone:             "(555) 123-4567",
		Address:           "1 Main St",
		UserID:            1,
	}
	if errs := v.Validate(&valid); len(errs) != 0 {
		t.Fatalf("expected valid teacher, got %v", errs)
	}

	bad := valid
	bad.YearsOfExperience = 51
	bad.Phone = "12345"
	bad.Address = "   "
	bad.UserID = 0
	got := fieldsOf(v.Validate(&bad))
	for field, rule := range map[string]string{
		"yearsOfExperience": "max",
		"phone":             "min",
		"address":           "notblank",
		"userId":            "required",
	} {
		if got[field] != rule {
			t.Errorf("expected %s to fail %s, got %v", field, rule, got)
		}
	}
}

func TestValidator_StudentCreateRequiresDateOfBirth(t *testing.T) {
	v := New()
	errs := v.Validate(&models.StudentCreateDto{
		Phone:   "555-123-4567",
		Address: "1 Main St",
		UserID:  3,
	})
	if fieldsOf(errs)["dateOfBirth"] != "required" {
		t.Fatalf("expected dateOfBirth required, got %v", errs)
	}

	errs = v.Validate(&models.StudentCreateDto{
		DateOfBirth: time.Date(2010, 1, 2, 0, 0, 0, 0, time.UTC),
		Phone:       "555-123-4567",
		Address:     "1 Main St",
		UserID:      3,
	})
	if len(errs) != 0 {
		t.Fatalf("expected valid student, got %v", errs)
	}
}

func TestValidator_NestedUserUpdate(t *testing.T) {
	v := New()
	errs := v.Validate(&models.AdminUpdateDto{
		ID:   1,
		Role: strPtr("Manager"),
		User: &models.UserUpdateDto{Email: strPtr("broken")},
	})
	if fieldsOf(errs)["user.email"] != "email" {
		t.Fatalf("expected nested user.email error, got %v", errs)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "validation failed" {
		t.Errorf("unexpected message %q", got)
	}
	one := ValidationErrors{{Field: "email", Message: "is required"}}
	if got := one.Error(); got != "validation failed: email is required" {
		t.Errorf("unexpected message %q", got)
	}
	two := append(one, ValidationError{Field: "role", Message: "is required"})
	if got := two.Error(); got != "validation failed: 2 field errors" {
		t.Errorf("unexpected message %q", got)
	}
}
