package handlers

import (
	"net/http"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler holds the notification service.
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ns services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

type createNotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"`
}

// GetNotifications handles fetching notifications, optionally filtered by type.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.notificationService.GetNotifications(queryFilters(c))
	if err != nil {
		utils.LogError(err, "GetNotifications: Error from notificationService.GetNotifications")
		respondServiceError(c, err, "Notification")
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// CreateNotification handles creation of a notification.
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	notification, err := h.notificationService.CreateNotification(req.Title, req.Message, req.Type)
	if err != nil {
		utils.LogError(err, "CreateNotification: Error from notificationService.CreateNotification")
		respondServiceError(c, err, "Notification")
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// MarkRead handles marking a single notification as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "notification")
	if !ok {
		return
	}
	if err := h.notificationService.MarkRead(id); err != nil {
		utils.LogError(err, "MarkRead: Error from notificationService.MarkRead")
		respondServiceError(c, err, "Notification")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead handles marking every notification as read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(); err != nil {
		utils.LogError(err, "MarkAllRead: Error from notificationService.MarkAllRead")
		respondServiceError(c, err, "Notification")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// UnreadCount reports the number of unread notifications.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notificationService.UnreadCount()
	if err != nil {
		utils.LogError(err, "UnreadCount: Error from notificationService.UnreadCount")
		respondServiceError(c, err, "Notification")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// DeleteNotification handles deleting a notification.
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, ok := parseIDParam(c, "notification")
	if !ok {
		return
	}
	if err := h.notificationService.DeleteNotification(id); err != nil {
		utils.LogError(err, "DeleteNotification: Error from notificationService.DeleteNotification")
		respondServiceError(c, err, "Notification")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}
