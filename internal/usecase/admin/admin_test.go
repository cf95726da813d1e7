package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	admindomain "github.com/BruksfildServices01/service-marketplace/internal/domain/admin"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/usecase/admin"
)

// -------- mocks --------

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	list, _ := args.Get(0).([]models.User)
	return list, args.Error(1)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Dashboard(ctx context.Context) (*admindomain.Dashboard, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(*admindomain.Dashboard)
	return d, args.Error(1)
}

func (m *MockAdminRepository) DeleteProviderCascade(ctx context.Context, id uint) (*admindomain.CascadeResult, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*admindomain.CascadeResult)
	return r, args.Error(1)
}

func (m *MockAdminRepository) DeleteCustomerCascade(ctx context.Context, id uint) (*admindomain.CascadeResult, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*admindomain.CascadeResult)
	return r, args.Error(1)
}

func (m *MockAdminRepository) ListAuditLogs(ctx context.Context, f admindomain.AuditFilter) ([]models.AuditLog, int64, error) {
	args := m.Called(ctx, f)
	logs, _ := args.Get(0).([]models.AuditLog)
	return logs, args.Get(1).(int64), args.Error(2)
}

type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) RevokeBefore(ctx context.Context, userID uint, t time.Time) error {
	return m.Called(ctx, userID, t).Error(0)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, userID uint, issuedAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, issuedAt)
	return args.Bool(0), args.Error(1)
}

type recorder struct{ events []audit.Event }

func (r *recorder) Dispatch(ev audit.Event) { r.events = append(r.events, ev) }

var root = domain.Actor{ID: 1, Email: "root@example.com", Role: models.RoleAdmin}

// ======================================================
// BLOCK / UNBLOCK
// ======================================================

func TestBlock_RequiresReason(t *testing.T) {
	users := new(MockUserRepository)
	uc := admin.NewSetBlocked(users, &recorder{}, new(MockRevocationStore))

	for _, reason := range []string{"", "   "} {
		_, err := uc.Block(context.Background(), root, 5, reason)
		assert.True(t, httperr.Is(err, "block_reason_required"))
		assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
	}
	users.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestBlock_PersistsAndRevokes(t *testing.T) {
	users := new(MockUserRepository)
	store := new(MockRevocationStore)
	rec := &recorder{}
	u := &models.User{ID: 5, Role: models.RoleCustomer}

	users.On("GetUser", mock.Anything, uint(5)).Return(u, nil)
	users.On("UpdateUser", mock.Anything, u).Return(nil)
	store.On("RevokeBefore", mock.Anything, uint(5), mock.AnythingOfType("time.Time")).Return(nil)

	got, err := admin.NewSetBlocked(users, rec, store).Block(context.Background(), root, 5, " spam ")
	require.NoError(t, err)

	assert.True(t, got.Blocked)
	assert.Equal(t, "spam", got.BlockReason)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "block_user", rec.events[0].Action)
	users.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestBlock_CannotBlockAdmin(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetUser", mock.Anything, uint(2)).Return(&models.User{ID: 2, Role: models.RoleAdmin}, nil)

	_, err := admin.NewSetBlocked(users, &recorder{}, nil).Block(context.Background(), root, 2, "nope")

	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
	users.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUnblock_ClearsReason(t *testing.T) {
	users := new(MockUserRepository)
	rec := &recorder{}
	u := &models.User{ID: 5, Role: models.RoleProvider, Blocked: true, BlockReason: "spam"}

	users.On("GetUser", mock.Anything, uint(5)).Return(u, nil)
	users.On("UpdateUser", mock.Anything, u).Return(nil)

	got, err := admin.NewSetBlocked(users, rec, nil).Unblock(context.Background(), root, 5)
	require.NoError(t, err)

	assert.False(t, got.Blocked)
	assert.Empty(t, got.BlockReason)
	assert.Equal(t, "unblock_user", rec.events[0].Action)
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteUser_AdminForbidden(t *testing.T) {
	users := new(MockUserRepository)
	repo := new(MockAdminRepository)
	users.On("GetUser", mock.Anything, uint(2)).Return(&models.User{ID: 2, Role: models.RoleAdmin}, nil)

	_, err := admin.NewDeleteUser(users, repo, &recorder{}).Execute(context.Background(), root, 2)

	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))
	repo.AssertNotCalled(t, "DeleteCustomerCascade", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteProviderCascade", mock.Anything, mock.Anything)
}

func TestDeleteUser_ProviderGoesThroughCascade(t *testing.T) {
	users := new(MockUserRepository)
	repo := new(MockAdminRepository)
	rec := &recorder{}
	res := &admindomain.CascadeResult{ServicesDeleted: 2, BookingsDeleted: 3}

	users.On("GetUser", mock.Anything, uint(7)).Return(&models.User{ID: 7, Role: models.RoleProvider}, nil)
	repo.On("DeleteProviderCascade", mock.Anything, uint(7)).Return(res, nil)

	got, err := admin.NewDeleteUser(users, repo, rec).Execute(context.Background(), root, 7)
	require.NoError(t, err)

	assert.Equal(t, res, got)
	assert.Equal(t, "delete_provider", rec.events[0].Action)
	repo.AssertExpectations(t)
}

func TestDeleteUser_CustomerCascade(t *testing.T) {
	users := new(MockUserRepository)
	repo := new(MockAdminRepository)
	rec := &recorder{}

	users.On("GetUser", mock.Anything, uint(4)).Return(&models.User{ID: 4, Role: models.RoleCustomer}, nil)
	repo.On("DeleteCustomerCascade", mock.Anything, uint(4)).Return(&admindomain.CascadeResult{BookingsDeleted: 1}, nil)

	got, err := admin.NewDeleteUser(users, repo, rec).Execute(context.Background(), root, 4)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.BookingsDeleted)
	assert.Equal(t, "delete_user", rec.events[0].Action)
}

func TestDeleteProvider_NotAProvider(t *testing.T) {
	repo := new(MockAdminRepository)
	rec := &recorder{}
	repo.On("DeleteProviderCascade", mock.Anything, uint(4)).Return(nil, domain.ErrNotFound)

	_, err := admin.NewDeleteProvider(repo, rec).Execute(context.Background(), root, 4)

	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
	assert.Empty(t, rec.events)
}

func TestDeleteProvider_StorageFailure(t *testing.T) {
	repo := new(MockAdminRepository)
	repo.On("DeleteProviderCascade", mock.Anything, uint(4)).Return(nil, errors.New("tx aborted"))

	_, err := admin.NewDeleteProvider(repo, &recorder{}).Execute(context.Background(), root, 4)

	assert.Equal(t, httperr.KindInternal, httperr.KindOf(err))
}

// ======================================================
// VIEWS
// ======================================================

func TestListUsers_RejectsUnknownRole(t *testing.T) {
	users := new(MockUserRepository)

	_, err := admin.NewListUsers(users).Execute(context.Background(), "owner")

	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

func TestListAuditLogs_ClampsPaging(t *testing.T) {
	repo := new(MockAdminRepository)
	repo.On("ListAuditLogs", mock.Anything, admindomain.AuditFilter{Action: "block_user", Page: 1, Limit: 50}).
		Return([]models.AuditLog{{ID: 1, Action: "block_user"}}, int64(1), nil)

	page, err := admin.NewListAuditLogs(repo).Execute(context.Background(), admindomain.AuditFilter{
		Action: "block_user",
		Page:   0,
		Limit:  5000,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Logs, 1)
	repo.AssertExpectations(t)
}

func TestDashboard(t *testing.T) {
	repo := new(MockAdminRepository)
	repo.On("Dashboard", mock.Anything).Return(&admindomain.Dashboard{TotalBookings: 3, TotalRevenue: 75}, nil)

	d, err := admin.NewGetDashboard(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 75.0, d.TotalRevenue)
}
