// Package testutil provides helpers shared by the ShopLedger test suites:
// mocked databases, gin contexts carrying an authenticated actor, tenant
// actors and event recording.
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockDB is a gorm connection backed by sqlmock
type MockDB struct {
	DB    *gorm.DB
	Mock  sqlmock.Sqlmock
	SqlDB *sql.DB
}

// NewMockDB opens a postgres-dialect gorm DB over sqlmock. It is closed
// when the test ends.
func NewMockDB(t *testing.T) *MockDB {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create sqlmock")
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, DriverName: "postgres"}),
		&gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err, "Failed to open GORM connection")

	return &MockDB{DB: db, Mock: mock, SqlDB: sqlDB}
}

// ExpectationsWereMet fails the test on unmet SQL expectations
func (m *MockDB) ExpectationsWereMet(t *testing.T) {
	t.Helper()
	require.NoError(t, m.Mock.ExpectationsWereMet(), "Unmet database expectations")
}

// GinContext is a gin context wired to a response recorder
type GinContext struct {
	Context  *gin.Context
	Recorder *httptest.ResponseRecorder
}

// NewGinContext builds a context for method and path. A non-nil body is
// sent as JSON.
func NewGinContext(t *testing.T, method, path string, body any) *GinContext {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return &GinContext{Context: c, Recorder: w}
}

// SetActor stores the actor the way JWTAuth does after a valid token
func (gc *GinContext) SetActor(actor shared.Actor) {
	gc.Context.Set(middleware.JWTTenantIDKey, actor.TenantID.String())
	gc.Context.Set(middleware.JWTUserIDKey, actor.UserID.String())
	gc.Context.Set(middleware.ActorKey, actor)
}

// Decode unmarshals the recorded response body into v
func (gc *GinContext) Decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(gc.Recorder.Body.Bytes(), v), "Response is not valid JSON: %s", gc.Recorder.Body.String())
}

// Status returns the recorded status code
func (gc *GinContext) Status() int {
	if gc.Context.Writer.Written() {
		return gc.Context.Writer.Status()
	}
	return gc.Recorder.Code
}

// NewTestUUID derives a stable UUID from seed
func NewTestUUID(seed string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("shopledger-test:"+seed))
}

// TestTenantID is the tenant of TestActor
func TestTenantID() uuid.UUID { return NewTestUUID("tenant") }

// TestUserID is the user of TestActor
func TestUserID() uuid.UUID { return NewTestUUID("user") }

// TestActor returns the standard actor for tests
func TestActor() shared.Actor {
	return shared.Actor{TenantID: TestTenantID(), UserID: TestUserID(), UserName: "Test User"}
}

// NewTenantActor returns an actor for a fresh random tenant. Tests sharing a
// database use one per test to stay isolated.
func NewTenantActor(name string) shared.Actor {
	return shared.Actor{TenantID: uuid.New(), UserID: uuid.New(), UserName: name}
}

// StatusOf is a small adapter for asserting on a handler func directly
func StatusOf(t *testing.T, h gin.HandlerFunc, gc *GinContext) int {
	t.Helper()
	h(gc.Context)
	return gc.Status()
}
