package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/velvetrow/salon-booking/internal/models"
)

const cookieName = "salon_session"

// User is the per-client identity kept in the session after login. Absence
// means anonymous.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == models.RoleAdmin
}

// Flash is a one-shot notification rendered on the next page.
type Flash struct {
	Level   string `json:"level"` // "success", "error", "info"
	Message string `json:"message"`
}

type data struct {
	User    *User   `json:"user,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
}

// Store keeps session data in Redis. The cookie holds only the session ID,
// wrapped in an HS256 JWT so it is tamper-evident.
type Store struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewStore(rdb *redis.Client, secret string, ttl time.Duration) *Store {
	return &Store{rdb: rdb, secret: []byte(secret), ttl: ttl}
}

// Session is one client's state for the duration of a request.
type Session struct {
	id    string
	data  data
	dirty bool
	store *Store
}

// FromRequest resolves the request's session, creating a fresh anonymous one
// when the cookie is missing or invalid. A fresh session sets its cookie
// immediately, before any handler writes the body.
func (s *Store) FromRequest(c *gin.Context) *Session {
	sess := &Session{store: s}

	if token, err := c.Cookie(cookieName); err == nil {
		if id, err := s.decodeCookie(token); err == nil {
			sess.id = id
			if d, err := s.load(c.Request.Context(), id); err == nil {
				sess.data = *d
			}
			return sess
		}
	}

	sess.id = uuid.NewString()
	if token, err := s.encodeCookie(sess.id); err == nil {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, token, int(s.ttl.Seconds()), "/", "", false, true)
	}
	return sess
}

func (sess *Session) User() *User {
	return sess.data.User
}

func (sess *Session) SetUser(u *User) {
	sess.data.User = u
	sess.dirty = true
}

// ClearUser logs the client out but keeps the session (and its flashes).
func (sess *Session) ClearUser() {
	sess.data.User = nil
	sess.dirty = true
}

func (sess *Session) Flash(level, message string) {
	sess.data.Flashes = append(sess.data.Flashes, Flash{Level: level, Message: message})
	sess.dirty = true
}

// PopFlashes returns pending flashes and clears them.
func (sess *Session) PopFlashes() []Flash {
	flashes := sess.data.Flashes
	if len(flashes) > 0 {
		sess.data.Flashes = nil
		sess.dirty = true
	}
	return flashes
}

// Persist writes the session to Redis if it changed.
func (sess *Session) Persist(ctx context.Context) error {
	if !sess.dirty {
		return nil
	}
	if err := sess.store.save(ctx, sess.id, &sess.data); err != nil {
		return err
	}
	sess.dirty = false
	return nil
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

func sessionKey(id string) string {
	return "session:" + id
}

func (s *Store) load(ctx context.Context, id string) (*data, error) {
	val, err := s.rdb.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	var d data
	if err := json.Unmarshal([]byte(val), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) save(ctx context.Context, id string, d *data) error {
	val, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(id), val, s.ttl).Err()
}

// --------------------------------------------------
// Cookie codec
// --------------------------------------------------

func (s *Store) encodeCookie(id string) (string, error) {
	claims := jwt.MapClaims{
		"sid": id,
		"exp": time.Now().Add(s.ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Store) decodeCookie(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", errors.New("session: missing sid claim")
	}
	return id, nil
}
