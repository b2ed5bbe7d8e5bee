package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/flusio/soutenir/internal/config"
	"github.com/gin-gonic/gin"
)

const DefaultCookieName = "_sid"

const sessionTTL = 30 * 24 * time.Hour

// Session is the authenticated state carried by the auth cookie.
type Session struct {
	AccountID snowflake.ID
	Admin     bool
}

// Manager manages the HMAC-signed auth session cookie.
type Manager struct {
	cookieName string
	secure     bool
	secret     []byte
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		secure:     cfg.AuthCookieSecure,
		secret:     []byte(cfg.SessionSecret),
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// LogIn establishes a session for the given account.
func (m *Manager) LogIn(c *gin.Context, accountID snowflake.ID, admin bool) {
	expiresAt := time.Now().Add(sessionTTL)
	payload := fmt.Sprintf("%d.%t.%d", accountID, admin, expiresAt.Unix())
	token := payload + "." + m.sign(payload)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(sessionTTL.Seconds()), "/", "", m.secure, true)
}

// Token builds a raw cookie value without writing it, for tests and tooling.
func (m *Manager) Token(accountID snowflake.ID, admin bool, expiresAt time.Time) string {
	payload := fmt.Sprintf("%d.%t.%d", accountID, admin, expiresAt.Unix())
	return payload + "." + m.sign(payload)
}

// Current returns the session bound to the request cookie, if the signature
// is valid and the session has not expired.
func (m *Manager) Current(c *gin.Context) (Session, bool) {
	token, err := c.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(token) == "" {
		return Session{}, false
	}

	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return Session{}, false
	}
	payload := strings.Join(parts[:3], ".")
	if !hmac.Equal([]byte(m.sign(payload)), []byte(parts[3])) {
		return Session{}, false
	}

	expiresAt, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || time.Now().Unix() >= expiresAt {
		return Session{}, false
	}

	rawID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || rawID == 0 {
		return Session{}, false
	}
	admin, err := strconv.ParseBool(parts[1])
	if err != nil {
		return Session{}, false
	}

	return Session{AccountID: snowflake.ID(rawID), Admin: admin}, true
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

func (m *Manager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
