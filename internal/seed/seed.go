package seed

import (
	"context"
	"errors"

	"github.com/afaq832/GHSS117-Backend/internal/models"
	"github.com/afaq832/GHSS117-Backend/internal/store"
)

// AdminEmail is the sentinel account the setup check keys on.
const (
	AdminEmail   = "admin@school.com"
	TeacherEmail = "teacher@school.com"
)

// Accounts returns the two fixed records the setup routine creates.
func Accounts() []models.Teacher {
	return []models.Teacher{
		{
			Email:           AdminEmail,
			Name:            "School Admin",
			Role:            models.RoleAdmin,
			AssignedClasses: []models.ClassAssignment{},
		},
		{
			Email:           TeacherEmail,
			Name:            "Class Teacher",
			Role:            models.RoleTeacher,
			AssignedClasses: []models.ClassAssignment{{ClassName: "10", Section: "A"}},
		},
	}
}

// Run seeds the fixed admin and teacher accounts unless an admin with
// AdminEmail already exists. An existing admin suppresses teacher
// creation too; the call then reports created=false with whatever
// accounts are on record.
func Run(ctx context.Context, s store.Store) (created bool, accounts []models.Teacher, err error) {
	_, err = s.GetTeacherByEmail(ctx, AdminEmail)
	if err == nil {
		existing, err := s.ListTeachers(ctx)
		if err != nil {
			return false, nil, err
		}
		return false, existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, nil, err
	}

	for _, acct := range Accounts() {
		acct := acct
		if err := s.CreateTeacher(ctx, &acct); err != nil {
			return false, nil, err
		}
		accounts = append(accounts, acct)
	}
	return true, accounts, nil
}
