// File: /repositories/user_repository.go
package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"carbontrack-api/models"
)

// UserRepository stores registered identities. The carbon core only ever
// consumes the numeric user id; everything else is auth glue.
type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(userID uint) (*models.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByID(userID uint) (*models.User, error) {
	var user models.User
	err := r.db.Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// MemoryUserRepository is the in-memory counterpart used by tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID uint
	for _, existing := range r.users {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	user.ID = maxID + 1
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByID(userID uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == userID {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
