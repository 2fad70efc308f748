package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// Limites par endpoint
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	// Durées de cooldown
	LoginCooldown    = 15 * time.Minute
	RegisterCooldown = 30 * time.Minute
)

// Compteurs de tentatives en mémoire, avec expiration par cooldown.
// Tout vit dans le process, comme le reste de l'état.
type attemptTracker struct {
	mu        sync.Mutex
	attempts  map[string]int
	cooldowns map[string]time.Time
}

func newAttemptTracker() *attemptTracker {
	return &attemptTracker{
		attempts:  make(map[string]int),
		cooldowns: make(map[string]time.Time),
	}
}

// check renvoie (bloqué, temps restant)
func (t *attemptTracker) check(key string, max int, cooldown time.Duration) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if until, ok := t.cooldowns[key]; ok {
		if remaining := time.Until(until); remaining > 0 {
			return true, remaining
		}
		delete(t.cooldowns, key)
		delete(t.attempts, key)
	}

	if t.attempts[key] >= max {
		t.cooldowns[key] = time.Now().Add(cooldown)
		delete(t.attempts, key)
		return true, cooldown
	}
	return false, 0
}

func (t *attemptTracker) fail(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.attempts[key]++
}

func (t *attemptTracker) reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.attempts, key)
	delete(t.cooldowns, key)
}

var loginTracker = newAttemptTracker()
var registerTracker = newAttemptTracker()

// RecordFailedLogin est appelé par le handler après un échec d'authentification
func RecordFailedLogin(email string) { loginTracker.fail(email) }

// ResetLoginAttempts est appelé après un login réussi
func ResetLoginAttempts(email string) { loginTracker.reset(email) }

// LoginRateLimit limite les tentatives de connexion par email
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if blocked, remaining := loginTracker.check(input.Email, LoginMaxAttempts, LoginCooldown); blocked {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives échouées. Réessayez dans %d minutes", int(remaining.Minutes())+1),
				"retry_after": int(remaining.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RegisterRateLimit limite les créations de compte par IP
func RegisterRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if blocked, remaining := registerTracker.check(key, RegisterMaxAttempts, RegisterCooldown); blocked {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de créations de compte. Réessayez dans %d minutes", int(remaining.Minutes())+1),
				"retry_after": int(remaining.Seconds()),
			})
			c.Abort()
			return
		}

		registerTracker.fail(key)
		c.Next()
	}
}
