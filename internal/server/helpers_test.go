package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"raptor/internal/config"
	"raptor/internal/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindDuplicate(ctx context.Context, username, email string, excludeID uint) (*models.User, error) {
	args := m.Called(ctx, username, email, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SearchByName(ctx context.Context, query string) ([]models.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockRaptRepository is a mock of the RaptRepository interface
type MockRaptRepository struct {
	mock.Mock
}

func (m *MockRaptRepository) Create(ctx context.Context, rapt *models.Rapt) error {
	args := m.Called(ctx, rapt)
	return args.Error(0)
}

func (m *MockRaptRepository) GetByID(ctx context.Context, id uint) (*models.Rapt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rapt), args.Error(1)
}

func (m *MockRaptRepository) ListByUser(ctx context.Context, userID uint) ([]models.Rapt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rapt), args.Error(1)
}

func (m *MockRaptRepository) ListLatest(ctx context.Context) ([]models.Rapt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rapt), args.Error(1)
}

func (m *MockRaptRepository) ListLikedBy(ctx context.Context, userID uint) ([]models.Rapt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rapt), args.Error(1)
}

func (m *MockRaptRepository) Search(ctx context.Context, query string) ([]models.Rapt, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rapt), args.Error(1)
}

func (m *MockRaptRepository) UpdateOwned(ctx context.Context, raptID, userID uint, title, content string) (*models.Rapt, error) {
	args := m.Called(ctx, raptID, userID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rapt), args.Error(1)
}

func (m *MockRaptRepository) DeleteOwned(ctx context.Context, raptID, userID uint) error {
	args := m.Called(ctx, raptID, userID)
	return args.Error(0)
}

func (m *MockRaptRepository) ToggleLike(ctx context.Context, userID, raptID uint) (bool, error) {
	args := m.Called(ctx, userID, raptID)
	return args.Bool(0), args.Error(1)
}

// MockRippleRepository is a mock of the RippleRepository interface
type MockRippleRepository struct {
	mock.Mock
}

func (m *MockRippleRepository) Create(ctx context.Context, ripple *models.Ripple) error {
	args := m.Called(ctx, ripple)
	return args.Error(0)
}

func (m *MockRippleRepository) ListByRapt(ctx context.Context, raptID uint) ([]models.Ripple, error) {
	args := m.Called(ctx, raptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ripple), args.Error(1)
}

func (m *MockRippleRepository) UpdateOwned(ctx context.Context, rippleID, userID, raptID uint, content string) (*models.Ripple, error) {
	args := m.Called(ctx, rippleID, userID, raptID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ripple), args.Error(1)
}

func (m *MockRippleRepository) DeleteOwned(ctx context.Context, rippleID, userID, raptID uint) error {
	args := m.Called(ctx, rippleID, userID, raptID)
	return args.Error(0)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Toggle(ctx context.Context, followerID, followeeID uint) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, userID uint) ([]models.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follow), args.Error(1)
}

func (m *MockFollowRepository) ListFollowing(ctx context.Context, userID uint) ([]models.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Follow), args.Error(1)
}

// testConfig returns a minimal config for handler tests.
func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test_secret",
		Port:      "8080",
		Env:       "test",
	}
}

// jsonRequest builds a JSON request for app.Test.
func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeBody reads the response body into a map.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// readBody reads the raw response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
