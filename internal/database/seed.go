package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SAP-F-2025/english-school-service/internal/models"
	"github.com/SAP-F-2025/english-school-service/internal/repositories"
)

// Seed sizes
const (
	seedUsers    = 20
	seedAdmins   = 2
	seedTeachers = 3
	seedStudents = 5
)

// SeedPassword is the password every seeded account can log in with
const SeedPassword = "Welcome1!"

var (
	firstNames = []string{"Alice", "Bruno", "Chloe", "Diego", "Emma", "Farid", "Grace", "Hiro", "Ines", "Jonas"}
	lastNames  = []string{"Martin", "Silva", "Nguyen", "Kowalski", "Okafor"}
	adminRoles = []string{"Admin", "SuperAdmin", "Developer", "Manager"}
	streets    = []string{"Oak Street", "Maple Avenue", "Harbour Road", "Station Lane", "Mill Court"}
)

// PasswordHasher hashes the seed password before it is stored
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Seed fills an empty database with demo users and profiles in a single
// transaction. Profiles point at their user, so the foreign key is filled in
// once the user row has been inserted.
func Seed(ctx context.Context, factory repositories.UnitOfWorkFactory, hasher PasswordHasher, log *slog.Logger) error {
	uow := factory.Begin(ctx)
	defer uow.Close()

	count, err := uow.Users().Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Info("Seed skipped, users already present", "users", count)
		return nil
	}

	hash, err := hasher.Hash(SeedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, seedUsers)
	for i := 0; i < seedUsers; i++ {
		first := firstNames[i%len(firstNames)]
		last := lastNames[(i/len(firstNames)+i)%len(lastNames)]
		u := &models.User{
			Username: fmt.Sprintf("%s.%s%d", strings.ToLower(first), strings.ToLower(last), i+1),
			Password: hash,
			Email:    fmt.Sprintf("%s.%s%d@school.test", strings.ToLower(first), strings.ToLower(last), i+1),
			FullName: first + " " + last,
		}
		if err := uow.Users().Add(ctx, u); err != nil {
			return err
		}
		users = append(users, u)
	}

	next := 0
	for i := 0; i < seedAdmins; i++ {
		if err := uow.Admins().Add(ctx, &models.Admin{
			Role: adminRoles[i%len(adminRoles)],
			User: users[next],
		}); err != nil {
			return err
		}
		next++
	}
	for i := 0; i < seedTeachers; i++ {
		if err := uow.Teachers().Add(ctx, &models.Teacher{
			Bio:               fmt.Sprintf("%s has taught English for several years.", users[next].FullName),
			Qualification:     "CELTA",
			YearsOfExperience: 1 + i*3,
			Phone:             fmt.Sprintf("(555) 010-%04d", 1000+next),
			Address:           address(next),
			User:              users[next],
		}); err != nil {
			return err
		}
		next++
	}
	for i := 0; i < seedStudents; i++ {
		dob := time.Date(2005+i, time.Month(1+i), 10+i, 0, 0, 0, 0, time.UTC)
		student := models.NewStudent(&models.StudentCreateDto{
			DateOfBirth: dob,
			Phone:       fmt.Sprintf("555-020-%04d", 1000+next),
			Address:     address(next),
		})
		student.User = users[next]
		if err := uow.Students().Add(ctx, student); err != nil {
			return err
		}
		next++
	}
	if err := uow.Save(ctx); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	log.Info("Seed data inserted",
		"users", seedUsers,
		"admins", seedAdmins,
		"teachers", seedTeachers,
		"students", seedStudents)
	return nil
}

func address(n int) string {
	return fmt.Sprintf("%d %s", 10+n, streets[n%len(streets)])
}
