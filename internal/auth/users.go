package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"freshmart_back_end/internal/models"
	"freshmart_back_end/internal/utils"
)

// Identifiants du compte démo admin. Il n'y a pas de vrai backend
// d'authentification : les règles sont volontairement codées en dur.
const (
	AdminEmail    = "admin@grocery.com"
	adminPassword = "admin123"

	MinPasswordLen = 6
)

var (
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	ErrPasswordTooShort   = fmt.Errorf("le mot de passe doit contenir au moins %d caractères", MinPasswordLen)
	ErrEmailTaken         = errors.New("un compte avec cet email existe déjà")
)

// Registry garde les comptes en mémoire. Tout disparaît au redémarrage,
// sauf le compte admin recréé à l'initialisation.
type Registry struct {
	mu    sync.RWMutex
	users map[string]models.User // clé : email en minuscules
}

func NewRegistry() *Registry {
	r := &Registry{users: make(map[string]models.User)}
	r.users[AdminEmail] = models.User{
		ID:    "admin-1",
		Name:  "Store Admin",
		Email: AdminEmail,
		Role:  models.RoleAdmin,
	}
	return r
}

// Register crée un compte client avec mot de passe hashé en Argon2id.
func (r *Registry) Register(name, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < MinPasswordLen {
		return models.User{}, ErrPasswordTooShort
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[email]; exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       fmt.Sprintf("customer-%d", time.Now().UnixMilli()),
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleCustomer,
	}
	r.users[email] = user

	log.Printf("✅ Compte client créé : %s", email)
	return user, nil
}

// Login applique les règles du check simulé : l'admin exige les
// identifiants exacts, un client inconnu est auto-provisionné si le mot
// de passe fait au moins 6 caractères.
func (r *Registry) Login(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == AdminEmail {
		if password != adminPassword {
			return models.User{}, ErrInvalidCredentials
		}
		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.users[AdminEmail], nil
	}

	r.mu.RLock()
	user, exists := r.users[email]
	r.mu.RUnlock()

	if exists {
		ok, err := utils.VerifyPassword(password, user.Password)
		if err != nil || !ok {
			return models.User{}, ErrInvalidCredentials
		}
		return user, nil
	}

	// comportement stub hérité du front : tout email avec un mot de
	// passe assez long passe et devient un compte client
	if len(password) < MinPasswordLen {
		return models.User{}, ErrInvalidCredentials
	}

	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}

	return r.provision(name, email, password)
}

func (r *Registry) provision(name, email, password string) (models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if u, exists := r.users[email]; exists {
		return u, nil
	}
	user := models.User{
		ID:       fmt.Sprintf("customer-%d", time.Now().UnixMilli()),
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleCustomer,
	}
	r.users[email] = user
	return user, nil
}

// ByEmail sert au middleware et aux tests.
func (r *Registry) ByEmail(email string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(email)]
	return u, ok
}
