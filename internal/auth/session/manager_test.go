package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/flusio/soutenir/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(config.Config{SessionSecret: "test-session-secret"})
}

func contextWithCookie(token string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		c.Request.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: token})
	}
	return c
}

func TestCurrentRoundTrip(t *testing.T) {
	m := newTestManager()
	accountID := snowflake.ID(42)

	token := m.Token(accountID, false, time.Now().Add(time.Hour))
	sess, ok := m.Current(contextWithCookie(token))
	require.True(t, ok)
	assert.Equal(t, accountID, sess.AccountID)
	assert.False(t, sess.Admin)

	token = m.Token(accountID, true, time.Now().Add(time.Hour))
	sess, ok = m.Current(contextWithCookie(token))
	require.True(t, ok)
	assert.True(t, sess.Admin)
}

func TestCurrentRejectsMissingCookie(t *testing.T) {
	m := newTestManager()

	_, ok := m.Current(contextWithCookie(""))
	assert.False(t, ok)
}

func TestCurrentRejectsTamperedToken(t *testing.T) {
	m := newTestManager()
	token := m.Token(snowflake.ID(42), false, time.Now().Add(time.Hour))

	_, ok := m.Current(contextWithCookie(token + "0"))
	assert.False(t, ok)

	// Flipping the admin flag invalidates the signature.
	tampered := m.Token(snowflake.ID(42), false, time.Now().Add(time.Hour))
	tampered = "42.true." + tampered[len("42.false."):]
	_, ok = m.Current(contextWithCookie(tampered))
	assert.False(t, ok)
}

func TestCurrentRejectsExpiredSession(t *testing.T) {
	m := newTestManager()
	token := m.Token(snowflake.ID(42), false, time.Now().Add(-time.Minute))

	_, ok := m.Current(contextWithCookie(token))
	assert.False(t, ok)
}

func TestCurrentRejectsOtherSecret(t *testing.T) {
	other := NewManager(config.Config{SessionSecret: "another-secret"})
	token := other.Token(snowflake.ID(42), false, time.Now().Add(time.Hour))

	_, ok := newTestManager().Current(contextWithCookie(token))
	assert.False(t, ok)
}
