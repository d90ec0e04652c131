package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"
)

// Entity names an exportable list
type Entity string

const (
	EntityAdmin   Entity = "admin"
	EntityTeacher Entity = "teacher"
	EntityStudent Entity = "student"
	EntityUser    Entity = "user"
)

const exportSheet = "Sheet1"

type exportService struct {
	admins   AdminService
	teachers TeacherService
	students StudentService
	users    UserService
	logger   *slog.Logger
}

func NewExportService(admins AdminService, teachers TeacherService, students StudentService, users UserService, logger *slog.Logger) ExportService {
	return &exportService{
		admins:   admins,
		teachers: teachers,
		students: students,
		users:    users,
		logger:   logger,
	}
}

// Export writes the cached list of entity as an xlsx workbook to w
func (s *exportService) Export(ctx context.Context, entity Entity, w io.Writer) error {
	header, rows, err := s.rows(ctx, entity)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.ErrorContext(ctx, "Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	s.logger.InfoContext(ctx, "Exported list", "entity", entity, "rows", len(rows))
	return nil
}

func (s *exportService) rows(ctx context.Context, entity Entity) ([]interface{}, [][]interface{}, error) {
	switch entity {
	case EntityAdmin:
		list, err := s.admins.List(ctx)
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]interface{}, 0, len(list))
		for _, a := range list {
			rows = append(rows, []interface{}{a.ID, a.Role, a.UserID, a.FullName})
		}
		return []interface{}{"ID", "Role", "User ID", "Full Name"}, rows, nil

	case EntityTeacher:
		list, err := s.teachers.List(ctx)
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]interface{}, 0, len(list))
		for _, t := range list {
			rows = append(rows, []interface{}{t.ID, t.FullName, t.Email, t.Phone, t.Address, t.Bio, t.Qualification, t.YearsOfExperience, t.UserID})
		}
		return []interface{}{"ID", "Full Name", "Email", "Phone", "Address", "Bio", "Qualification", "Years Of Experience", "User ID"}, rows, nil

	case EntityStudent:
		list, err := s.students.List(ctx)
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]interface{}, 0, len(list))
		for _, st := range list {
			rows = append(rows, []interface{}{st.ID, st.FullName, st.Email, st.DateOfBirth.Format(time.DateOnly), st.Phone, st.Address, st.UserID})
		}
		return []interface{}{"ID", "Full Name", "Email", "Date Of Birth", "Phone", "Address", "User ID"}, rows, nil

	case EntityUser:
		list, err := s.users.List(ctx)
		if err != nil {
			return nil, nil, err
		}
		rows := make([][]interface{}, 0, len(list))
		for _, u := range list {
			rows = append(rows, []interface{}{u.ID, u.Username, u.Email, u.FullName})
		}
		return []interface{}{"ID", "Username", "Email", "Full Name"}, rows, nil
	}
	return nil, nil, fmt.Errorf("unknown entity %q", entity)
}
