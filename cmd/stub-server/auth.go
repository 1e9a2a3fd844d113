package main

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a pre-computed bcrypt hash used when a login username doesn't
// match. Running bcrypt against it (instead of returning early) keeps
// response time constant, preventing timing-based username enumeration.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// authState holds the single stub account and its issued tokens.
type authState struct {
	mu           sync.RWMutex
	username     string
	passwordHash []byte
	tokens       map[string]bool
}

func newAuthState(username, password string) (*authState, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authState{
		username:     username,
		passwordHash: hash,
		tokens:       make(map[string]bool),
	}, nil
}

// login verifies username/password and issues a bearer token.
// POST /api/login (public — no auth required).
func (h *handler) login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// Always run bcrypt so response time doesn't reveal whether the username exists.
	hashToCheck := dummyHash
	matched := body.Username == h.auth.username
	if matched {
		hashToCheck = h.auth.passwordHash
	}
	compareErr := bcrypt.CompareHashAndPassword(hashToCheck, []byte(body.Password))

	if !matched || compareErr != nil {
		apiError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := uuid.New().String()
	h.auth.mu.Lock()
	h.auth.tokens[token] = true
	h.auth.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// authMiddleware validates the Bearer token issued by login.
func (h *handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		h.auth.mu.RLock()
		ok := h.auth.tokens[token]
		h.auth.mu.RUnlock()
		if !ok {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Next()
	}
}
