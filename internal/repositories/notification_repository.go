package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

// fallbackCapacity bounds the in-process notification buffer to the most
// recent entries when the backing store is unreachable.
const fallbackCapacity = 20

// NotificationRepository stores advisory messages. Unlike the durable
// entities, it degrades to a bounded in-process buffer when the backing
// store is unavailable: notifications are best-effort telemetry and must
// keep working for the remainder of the process lifetime.
type NotificationRepository interface {
	GetNotifications(f Filters) ([]models.Notification, error)
	CreateNotification(n *models.Notification) error
	MarkRead(id int64) error
	MarkAllRead() error
	UnreadCount() (int, error)
	DeleteNotification(id int64) error
}

type notificationRepository struct {
	mgr *database.Manager

	// Fallback buffer, newest first. Guarded by mu: gin serves requests on
	// concurrent goroutines.
	mu     sync.Mutex
	buf    []models.Notification
	nextID int64
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(mgr *database.Manager) NotificationRepository {
	return &notificationRepository{mgr: mgr, nextID: 1}
}

var notificationQuery = TableQuery{
	Base:          `SELECT id, title, message, type, is_read, created_at FROM notifications`,
	SearchColumns: []string{"title", "message"},
	Columns: map[string]string{
		"type": "type",
	},
	OrderBy: "created_at DESC",
}

func (r *notificationRepository) GetNotifications(f Filters) ([]models.Notification, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return r.bufferList(f), nil
	}

	notifications := []models.Notification{}
	query, args := notificationQuery.Build(f)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting notifications: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning notification: %v", ErrDatabaseError, err)
		}
		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating notifications: %v", ErrDatabaseError, err)
	}
	return notifications, nil
}

func (r *notificationRepository) CreateNotification(n *models.Notification) error {
	db, ok := r.mgr.Handle()
	if !ok {
		r.bufferAdd(n)
		return nil
	}

	n.CreatedAt = time.Now()
	err := db.QueryRow(
		`INSERT INTO notifications (title, message, type, is_read, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		n.Title, n.Message, n.Type, n.IsRead, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("%w: creating notification: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *notificationRepository) MarkRead(id int64) error {
	db, ok := r.mgr.Handle()
	if !ok {
		return r.bufferMarkRead(id)
	}

	result, err := db.Exec(`UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: marking notification %d read: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead() error {
	db, ok := r.mgr.Handle()
	if !ok {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i := range r.buf {
			r.buf[i].IsRead = true
		}
		return nil
	}

	if _, err := db.Exec(`UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE`); err != nil {
		return fmt.Errorf("%w: marking all notifications read: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *notificationRepository) UnreadCount() (int, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		r.mu.Lock()
		defer r.mu.Unlock()
		count := 0
		for _, n := range r.buf {
			if !n.IsRead {
				count++
			}
		}
		return count, nil
	}

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM notifications WHERE is_read = FALSE`).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: counting unread notifications: %v", ErrDatabaseError, err)
	}
	return count, nil
}

func (r *notificationRepository) DeleteNotification(id int64) error {
	db, ok := r.mgr.Handle()
	if !ok {
		return r.bufferDelete(id)
	}

	result, err := db.Exec(`DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting notification %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- fallback buffer ---

func (r *notificationRepository) bufferAdd(n *models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.nextID
	r.nextID++
	n.CreatedAt = time.Now()
	r.buf = append([]models.Notification{*n}, r.buf...)
	if len(r.buf) > fallbackCapacity {
		r.buf = r.buf[:fallbackCapacity]
	}
}

func (r *notificationRepository) bufferList(f Filters) []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Notification{}
	for _, n := range r.buf {
		if t := f["type"]; t != "" && n.Type != t {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (r *notificationRepository) bufferMarkRead(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.buf {
		if r.buf[i].ID == id {
			r.buf[i].IsRead = true
			return nil
		}
	}
	return ErrNotFound
}

func (r *notificationRepository) bufferDelete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.buf {
		if r.buf[i].ID == id {
			r.buf = append(r.buf[:i], r.buf[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
