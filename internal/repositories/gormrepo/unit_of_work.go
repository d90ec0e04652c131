package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/english-school-service/internal/repositories"
)

type stagedOp struct {
	desc string
	fn   func(tx *gorm.DB) error
}

// UnitOfWork implements repositories.UnitOfWork over a gorm session. Writes are
// closures queued by the repositories and replayed inside one transaction.
type UnitOfWork struct {
	db     *gorm.DB
	ops    []stagedOp
	closed bool

	admins   *AdminRepository
	teachers *TeacherRepository
	students *StudentRepository
	users    *UserRepository
}

func newUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Admins() repositories.AdminRepository {
	if u.admins == nil {
		u.admins = &AdminRepository{uow: u}
	}
	return u.admins
}

func (u *UnitOfWork) Teachers() repositories.TeacherRepository {
	if u.teachers == nil {
		u.teachers = &TeacherRepository{uow: u}
	}
	return u.teachers
}

func (u *UnitOfWork) Students() repositories.StudentRepository {
	if u.students == nil {
		u.students = &StudentRepository{uow: u}
	}
	return u.students
}

func (u *UnitOfWork) Users() repositories.UserRepository {
	if u.users == nil {
		u.users = &UserRepository{uow: u}
	}
	return u.users
}

// Pending reports how many writes are waiting for Save
func (u *UnitOfWork) Pending() int {
	return len(u.ops)
}

func (u *UnitOfWork) stage(desc string, fn func(tx *gorm.DB) error) error {
	if u.closed {
		return repositories.ErrClosed
	}
	u.ops = append(u.ops, stagedOp{desc: desc, fn: fn})
	return nil
}

// session returns the read handle bound to ctx
func (u *UnitOfWork) session(ctx context.Context) (*gorm.DB, error) {
	if u.closed {
		return nil, repositories.ErrClosed
	}
	return u.db.WithContext(ctx), nil
}

// Save runs every staged write in one transaction. The queue is cleared
// whether or not the commit succeeds.
func (u *UnitOfWork) Save(ctx context.Context) error {
	if u.closed {
		return repositories.ErrClosed
	}
	if len(u.ops) == 0 {
		return nil
	}

	ops := u.ops
	u.ops = nil

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op.fn(tx); err != nil {
				return fmt.Errorf("%s: %w", op.desc, err)
			}
		}
		return nil
	})
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (u *UnitOfWork) Close() error {
	u.closed = true
	u.ops = nil
	return nil
}

func translateError(err error) error {
	kind := repositories.KindUnknown
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		kind = repositories.KindConcurrency
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrRecordNotFound):
		kind = repositories.KindUpdate
	}
	return &repositories.PersistenceError{Kind: kind, Err: err}
}

// UnitOfWorkFactory creates units of work bound to one database handle
type UnitOfWorkFactory struct {
	db *gorm.DB
}

func NewUnitOfWorkFactory(db *gorm.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

func (f *UnitOfWorkFactory) Begin(ctx context.Context) repositories.UnitOfWork {
	return newUnitOfWork(f.db.Session(&gorm.Session{Context: ctx}))
}
