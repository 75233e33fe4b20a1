package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

// UserRepository defines the interface for account database operations.
type UserRepository interface {
	CreateUser(user *models.User, hashedPassword string) (int64, error)
	FindUserByUsername(username string) (*models.User, string, error) // Returns User, HashedPassword, Error
	FindUserByID(id int64) (*models.User, error)
}

type userRepository struct {
	mgr *database.Manager
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(mgr *database.Manager) UserRepository {
	return &userRepository{mgr: mgr}
}

func (r *userRepository) CreateUser(user *models.User, hashedPassword string) (int64, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return 0, ErrStoreUnavailable
	}

	now := time.Now()
	err := db.QueryRow(
		`INSERT INTO users (username, password_hash, full_name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		user.Username, hashedPassword, user.FullName, user.Role, now, now,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: username '%s' already exists", ErrDuplicateKey, user.Username)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user.ID, nil
}

func (r *userRepository) FindUserByUsername(username string) (*models.User, string, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, "", ErrStoreUnavailable
	}

	user := &models.User{}
	var hashedPassword string
	var fullName sql.NullString
	err := db.QueryRow(
		`SELECT id, username, password_hash, full_name, role, created_at, updated_at
		 FROM users WHERE username = $1`, username,
	).Scan(&user.ID, &user.Username, &hashedPassword, &fullName, &user.Role,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding user %s: %v", ErrDatabaseError, username, err)
	}
	if fullName.Valid {
		user.FullName = &fullName.String
	}
	return user, hashedPassword, nil
}

func (r *userRepository) FindUserByID(id int64) (*models.User, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, ErrStoreUnavailable
	}

	user := &models.User{}
	var fullName sql.NullString
	err := db.QueryRow(
		`SELECT id, username, full_name, role, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.Username, &fullName, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user %d: %v", ErrDatabaseError, id, err)
	}
	if fullName.Valid {
		user.FullName = &fullName.String
	}
	return user, nil
}
