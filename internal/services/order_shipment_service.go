package services

import (
	"fmt"
	"time"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
)

// --- Order shipment DTOs ---

type CreateOrderShipmentRequest struct {
	Code           string     `json:"code"`
	CustomerName   string     `json:"customer_name" binding:"required"`
	ItemCode       *string    `json:"item_code"`
	ProductName    string     `json:"product_name"`
	Quantity       int        `json:"quantity"`
	TotalValue     float64    `json:"total_value"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	OrderDate      *time.Time `json:"order_date"`
	ShipDate       *time.Time `json:"ship_date"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	TrackingNumber *string    `json:"tracking_number"`
	Notes          *string    `json:"notes"`
}

type UpdateOrderShipmentRequest struct {
	CustomerName   *string    `json:"customer_name"`
	ItemCode       *string    `json:"item_code"`
	ProductName    *string    `json:"product_name"`
	Quantity       *int       `json:"quantity"`
	TotalValue     *float64   `json:"total_value"`
	Priority       *string    `json:"priority"`
	Status         *string    `json:"status"`
	OrderDate      *time.Time `json:"order_date"`
	ShipDate       *time.Time `json:"ship_date"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	TrackingNumber *string    `json:"tracking_number"`
	Notes          *string    `json:"notes"`
}

type OrderShipmentService interface {
	GetOrders(f repositories.Filters) ([]models.OrderShipment, error)
	GetOrderByID(id int64) (*models.OrderShipment, error)
	CreateOrder(req CreateOrderShipmentRequest) (*models.OrderShipment, error)
	UpdateOrder(id int64, req UpdateOrderShipmentRequest) (*models.OrderShipment, error)
	DeleteOrder(id int64) (*models.OrderShipment, error)
	DeleteOrders(ids []int64) ([]models.OrderShipment, error)
}

type orderShipmentService struct {
	orderRepo repositories.OrderShipmentRepository
	notifier  Notifier
}

// NewOrderShipmentService creates a new OrderShipmentService.
func NewOrderShipmentService(repo repositories.OrderShipmentRepository, notifier Notifier) OrderShipmentService {
	return &orderShipmentService{orderRepo: repo, notifier: notifier}
}

func (s *orderShipmentService) GetOrders(f repositories.Filters) ([]models.OrderShipment, error) {
	return s.orderRepo.GetOrders(f)
}

func (s *orderShipmentService) GetOrderByID(id int64) (*models.OrderShipment, error) {
	return s.orderRepo.GetOrderByID(id)
}

func (s *orderShipmentService) CreateOrder(req CreateOrderShipmentRequest) (*models.OrderShipment, error) {
	if err := requireField(req.CustomerName, "customer_name"); err != nil {
		return nil, err
	}
	priority := req.Priority
	if priority == "" {
		priority = models.OrderPriorityMedium
	}
	if err := requireOneOf(priority, "priority",
		models.OrderPriorityLow, models.OrderPriorityMedium, models.OrderPriorityHigh); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.OrderStatusProcessing
	}
	if err := requireOneOf(status, "status",
		models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered); err != nil {
		return nil, err
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if err := requireNonNegative(req.TotalValue, "total_value"); err != nil {
		return nil, err
	}

	code := req.Code
	if code == "" {
		code = newShipmentCode("ORD")
	}

	order := &models.OrderShipment{
		Code:           code,
		CustomerName:   req.CustomerName,
		ItemCode:       req.ItemCode,
		ProductName:    req.ProductName,
		Quantity:       req.Quantity,
		TotalValue:     req.TotalValue,
		Priority:       priority,
		Status:         status,
		OrderDate:      req.OrderDate,
		ShipDate:       req.ShipDate,
		DeliveryDate:   req.DeliveryDate,
		TrackingNumber: req.TrackingNumber,
		Notes:          req.Notes,
	}
	id, err := s.orderRepo.CreateOrder(order)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify("Order created",
		fmt.Sprintf("Order %s for %s was created", order.Code, order.CustomerName),
		models.NotificationInfo)
	return s.orderRepo.GetOrderByID(id)
}

func (s *orderShipmentService) UpdateOrder(id int64, req UpdateOrderShipmentRequest) (*models.OrderShipment, error) {
	order, err := s.orderRepo.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	previousStatus := order.Status

	if req.CustomerName != nil {
		if err := requireField(*req.CustomerName, "customer_name"); err != nil {
			return nil, err
		}
		order.CustomerName = *req.CustomerName
	}
	if req.ItemCode != nil {
		order.ItemCode = req.ItemCode
	}
	if req.ProductName != nil {
		order.ProductName = *req.ProductName
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
		}
		order.Quantity = *req.Quantity
	}
	if req.TotalValue != nil {
		if err := requireNonNegative(*req.TotalValue, "total_value"); err != nil {
			return nil, err
		}
		order.TotalValue = *req.TotalValue
	}
	if req.Priority != nil {
		if err := requireOneOf(*req.Priority, "priority",
			models.OrderPriorityLow, models.OrderPriorityMedium, models.OrderPriorityHigh); err != nil {
			return nil, err
		}
		order.Priority = *req.Priority
	}
	if req.Status != nil {
		if err := requireOneOf(*req.Status, "status",
			models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered); err != nil {
			return nil, err
		}
		order.Status = *req.Status
	}
	if req.OrderDate != nil {
		order.OrderDate = req.OrderDate
	}
	if req.ShipDate != nil {
		order.ShipDate = req.ShipDate
	}
	if req.DeliveryDate != nil {
		order.DeliveryDate = req.DeliveryDate
	}
	if req.TrackingNumber != nil {
		order.TrackingNumber = req.TrackingNumber
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}

	if err := s.orderRepo.UpdateOrder(order); err != nil {
		return nil, err
	}
	if order.Status == models.OrderStatusDelivered && previousStatus != models.OrderStatusDelivered {
		s.notifier.Notify("Order delivered",
			fmt.Sprintf("Order %s for %s was delivered", order.Code, order.CustomerName),
			models.NotificationSuccess)
	}
	return s.orderRepo.GetOrderByID(id)
}

func (s *orderShipmentService) DeleteOrder(id int64) (*models.OrderShipment, error) {
	return s.orderRepo.DeleteOrder(id)
}

func (s *orderShipmentService) DeleteOrders(ids []int64) ([]models.OrderShipment, error) {
	return s.orderRepo.DeleteOrders(ids)
}
