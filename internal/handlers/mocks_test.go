package handlers

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Foysalhossain/musicy-server/internal/models"
	"github.com/Foysalhossain/musicy-server/internal/store"
)

var errMockStore = errors.New("store error")

// mockUserStore implements UserStore with overridable function fields.
type mockUserStore struct {
	ListUsersFunc       func(ctx context.Context) ([]models.User, error)
	ListInstructorsFunc func(ctx context.Context) ([]models.User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	CreateUserFunc      func(ctx context.Context, user models.User) (*store.InsertResult, error)
	SetUserRoleFunc     func(ctx context.Context, id primitive.ObjectID, role models.UserRole, updated time.Time) (*store.UpdateResult, error)
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserStore) ListInstructors(ctx context.Context) ([]models.User, error) {
	if m.ListInstructorsFunc != nil {
		return m.ListInstructorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindUserByEmailFunc != nil {
		return m.FindUserByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserStore) CreateUser(ctx context.Context, user models.User) (*store.InsertResult, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	return &store.InsertResult{}, nil
}

func (m *mockUserStore) SetUserRole(ctx context.Context, id primitive.ObjectID, role models.UserRole, updated time.Time) (*store.UpdateResult, error) {
	if m.SetUserRoleFunc != nil {
		return m.SetUserRoleFunc(ctx, id, role, updated)
	}
	return &store.UpdateResult{}, nil
}

// mockClassStore implements ClassStore.
type mockClassStore struct {
	ListClassesFunc func(ctx context.Context) ([]models.Class, error)
}

func (m *mockClassStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	if m.ListClassesFunc != nil {
		return m.ListClassesFunc(ctx)
	}
	return nil, nil
}

// mockEnrollmentStore implements EnrollmentStore.
type mockEnrollmentStore struct {
	CreateEnrollmentFunc       func(ctx context.Context, enrollment models.Enrollment) (*store.InsertResult, error)
	ListEnrollmentsFunc        func(ctx context.Context) ([]models.Enrollment, error)
	ListEnrollmentsByEmailFunc func(ctx context.Context, email string, paid bool) ([]models.Enrollment, error)
	FindEnrollmentFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error)
	MarkEnrollmentPaidFunc     func(ctx context.Context, id primitive.ObjectID, paid bool, transactionID, date string) (*store.UpdateResult, error)
	DeleteEnrollmentFunc       func(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error)
}

func (m *mockEnrollmentStore) CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (*store.InsertResult, error) {
	if m.CreateEnrollmentFunc != nil {
		return m.CreateEnrollmentFunc(ctx, enrollment)
	}
	return &store.InsertResult{}, nil
}

func (m *mockEnrollmentStore) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	if m.ListEnrollmentsFunc != nil {
		return m.ListEnrollmentsFunc(ctx)
	}
	return nil, nil
}

func (m *mockEnrollmentStore) ListEnrollmentsByEmail(ctx context.Context, email string, paid bool) ([]models.Enrollment, error) {
	if m.ListEnrollmentsByEmailFunc != nil {
		return m.ListEnrollmentsByEmailFunc(ctx, email, paid)
	}
	return nil, nil
}

func (m *mockEnrollmentStore) FindEnrollment(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error) {
	if m.FindEnrollmentFunc != nil {
		return m.FindEnrollmentFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEnrollmentStore) MarkEnrollmentPaid(ctx context.Context, id primitive.ObjectID, paid bool, transactionID, date string) (*store.UpdateResult, error) {
	if m.MarkEnrollmentPaidFunc != nil {
		return m.MarkEnrollmentPaidFunc(ctx, id, paid, transactionID, date)
	}
	return &store.UpdateResult{}, nil
}

func (m *mockEnrollmentStore) DeleteEnrollment(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	if m.DeleteEnrollmentFunc != nil {
		return m.DeleteEnrollmentFunc(ctx, id)
	}
	return &store.DeleteResult{}, nil
}

// mockIntentCreator implements IntentCreator.
type mockIntentCreator struct {
	CreateIntentFunc func(amount int64) (string, error)
}

func (m *mockIntentCreator) CreateIntent(amount int64) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(amount)
	}
	return "", nil
}
