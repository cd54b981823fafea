package testutil

import (
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMockDB(t *testing.T) {
	mockDB := NewMockDB(t)
	defer mockDB.Close()

	assert.NotNil(t, mockDB.DB)
	assert.NotNil(t, mockDB.Mock)
	assert.NotNil(t, mockDB.SqlDB)

	// no expectations set, should pass
	mockDB.ExpectationsWereMet(t)
}

func TestNewTestContext(t *testing.T) {
	tc := NewTestContext(t)

	assert.NotNil(t, tc.Context)
	assert.NotNil(t, tc.Recorder)
	assert.NotNil(t, tc.Engine)
	assert.Equal(t, http.MethodGet, tc.Context.Request.Method)
}

func TestTestContextSetters(t *testing.T) {
	tc := NewTestContext(t)

	tc.SetRequestID("req-123")
	val, exists := tc.Context.Get("request_id")
	assert.True(t, exists)
	assert.Equal(t, "req-123", val)

	tc.SetSessionID("sess-456")
	val, exists = tc.Context.Get("session_id")
	assert.True(t, exists)
	assert.Equal(t, "sess-456", val)

	tc.SetHeader("X-Custom", "value")
	assert.Equal(t, "value", tc.Context.Request.Header.Get("X-Custom"))
}

func TestNewTestUUIDIsDeterministic(t *testing.T) {
	a := NewTestUUID("seed-a")
	b := NewTestUUID("seed-a")
	c := NewTestUUID("seed-b")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestAssertEventually(t *testing.T) {
	var done atomic.Bool
	go func() {
		time.Sleep(20 * time.Millisecond)
		done.Store(true)
	}()

	AssertEventually(t, func() bool { return done.Load() }, time.Second, 5*time.Millisecond)
}

func TestAssertNever(t *testing.T) {
	AssertNever(t, func() bool { return false }, 30*time.Millisecond, 5*time.Millisecond)
}
