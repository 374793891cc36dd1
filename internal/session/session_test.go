package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewStore(rdb, "test-secret", time.Hour)
}

func requestContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "salon_session" {
			return ck
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)

	c, w := requestContext()
	sess := store.FromRequest(c)
	assert.Nil(t, sess.User())

	sess.SetUser(&User{ID: 7, Username: "priya", Role: "customer"})
	sess.Flash("success", "Welcome back, priya!")
	require.NoError(t, sess.Persist(context.Background()))

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)

	c2, _ := requestContext(cookie)
	sess2 := store.FromRequest(c2)

	user := sess2.User()
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "priya", user.Username)

	flashes := sess2.PopFlashes()
	require.Len(t, flashes, 1)
	assert.Equal(t, "success", flashes[0].Level)
	require.NoError(t, sess2.Persist(context.Background()))

	// Flashes are one-shot.
	c3, _ := requestContext(cookie)
	sess3 := store.FromRequest(c3)
	assert.Empty(t, sess3.PopFlashes())
	require.NotNil(t, sess3.User())
}

func TestTamperedCookieStartsFresh(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)

	c, w := requestContext()
	sess := store.FromRequest(c)
	sess.SetUser(&User{ID: 1, Username: "admin", Role: "admin"})
	require.NoError(t, sess.Persist(context.Background()))

	cookie := sessionCookie(t, w)
	cookie.Value += "tampered"

	c2, w2 := requestContext(cookie)
	sess2 := store.FromRequest(c2)

	assert.Nil(t, sess2.User())
	// A replacement cookie is issued.
	assert.NotNil(t, sessionCookie(t, w2))
}

func TestClearUserKeepsFlashes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore(t)

	c, w := requestContext()
	sess := store.FromRequest(c)
	sess.SetUser(&User{ID: 3, Username: "sam"})
	require.NoError(t, sess.Persist(context.Background()))
	cookie := sessionCookie(t, w)

	c2, _ := requestContext(cookie)
	sess2 := store.FromRequest(c2)
	sess2.ClearUser()
	sess2.Flash("success", "You have been logged out.")
	require.NoError(t, sess2.Persist(context.Background()))

	c3, _ := requestContext(cookie)
	sess3 := store.FromRequest(c3)
	assert.Nil(t, sess3.User())
	require.Len(t, sess3.PopFlashes(), 1)
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, (*User)(nil).IsAdmin())
	assert.False(t, (&User{Role: "customer"}).IsAdmin())
	assert.True(t, (&User{Role: "admin"}).IsAdmin())
}
