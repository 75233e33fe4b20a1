package services

import (
	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
	"stocktrack_backend/pkg/utils"
)

// Broadcaster pushes a created notification to connected clients.
// Implemented by the websocket hub; may be nil when no hub is wired.
type Broadcaster interface {
	BroadcastNotification(n models.Notification)
}

type NotificationService interface {
	Notifier
	GetNotifications(f repositories.Filters) ([]models.Notification, error)
	CreateNotification(title, message, notificationType string) (*models.Notification, error)
	MarkRead(id int64) error
	MarkAllRead() error
	UnreadCount() (int, error)
	DeleteNotification(id int64) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	hub              Broadcaster
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repositories.NotificationRepository, hub Broadcaster) NotificationService {
	return &notificationService{notificationRepo: repo, hub: hub}
}

func (s *notificationService) GetNotifications(f repositories.Filters) ([]models.Notification, error) {
	return s.notificationRepo.GetNotifications(f)
}

func (s *notificationService) CreateNotification(title, message, notificationType string) (*models.Notification, error) {
	if err := requireField(title, "title"); err != nil {
		return nil, err
	}
	if notificationType == "" {
		notificationType = models.NotificationInfo
	}
	if err := requireOneOf(notificationType, "type",
		models.NotificationInfo, models.NotificationSuccess,
		models.NotificationWarning, models.NotificationError); err != nil {
		return nil, err
	}

	n := &models.Notification{Title: title, Message: message, Type: notificationType}
	if err := s.notificationRepo.CreateNotification(n); err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.BroadcastNotification(*n)
	}
	return n, nil
}

// Notify is the best-effort side-effect variant of CreateNotification used
// by the other services: it must never fail the primary operation, so any
// error is logged and dropped.
func (s *notificationService) Notify(title, message, notificationType string) {
	if _, err := s.CreateNotification(title, message, notificationType); err != nil {
		utils.LogError(err, "failed to record notification: "+title)
	}
}

func (s *notificationService) MarkRead(id int64) error {
	return s.notificationRepo.MarkRead(id)
}

func (s *notificationService) MarkAllRead() error {
	return s.notificationRepo.MarkAllRead()
}

func (s *notificationService) UnreadCount() (int, error) {
	return s.notificationRepo.UnreadCount()
}

func (s *notificationService) DeleteNotification(id int64) error {
	return s.notificationRepo.DeleteNotification(id)
}
