package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
)

// --- Material shipment DTOs ---

type CreateMaterialShipmentRequest struct {
	Code          string     `json:"code"`
	MaterialName  string     `json:"material_name" binding:"required"`
	ItemCode      *string    `json:"item_code"`
	CategoryCode  *string    `json:"category_code"`
	Quantity      int        `json:"quantity"`
	Unit          string     `json:"unit"`
	Type          string     `json:"type" binding:"required"`
	Status        string     `json:"status"`
	Source        string     `json:"source"`
	Destination   string     `json:"destination"`
	ShippedDate   *time.Time `json:"shipped_date"`
	EstimatedDate *time.Time `json:"estimated_date"`
	ReceivedDate  *time.Time `json:"received_date"`
	Handler       *string    `json:"handler"`
	Notes         *string    `json:"notes"`
}

type UpdateMaterialShipmentRequest struct {
	MaterialName  *string    `json:"material_name"`
	ItemCode      *string    `json:"item_code"`
	CategoryCode  *string    `json:"category_code"`
	Quantity      *int       `json:"quantity"`
	Unit          *string    `json:"unit"`
	Type          *string    `json:"type"`
	Status        *string    `json:"status"`
	Source        *string    `json:"source"`
	Destination   *string    `json:"destination"`
	ShippedDate   *time.Time `json:"shipped_date"`
	EstimatedDate *time.Time `json:"estimated_date"`
	ReceivedDate  *time.Time `json:"received_date"`
	Handler       *string    `json:"handler"`
	Notes         *string    `json:"notes"`
}

type MaterialShipmentService interface {
	GetShipments(f repositories.Filters) ([]models.MaterialShipment, error)
	GetShipmentByID(id int64) (*models.MaterialShipment, error)
	CreateShipment(req CreateMaterialShipmentRequest) (*models.MaterialShipment, error)
	UpdateShipment(id int64, req UpdateMaterialShipmentRequest) (*models.MaterialShipment, error)
	DeleteShipment(id int64) (*models.MaterialShipment, error)
	DeleteShipments(ids []int64) ([]models.MaterialShipment, error)
}

type materialShipmentService struct {
	shipmentRepo repositories.MaterialShipmentRepository
	notifier     Notifier
}

// NewMaterialShipmentService creates a new MaterialShipmentService.
func NewMaterialShipmentService(repo repositories.MaterialShipmentRepository, notifier Notifier) MaterialShipmentService {
	return &materialShipmentService{shipmentRepo: repo, notifier: notifier}
}

// newShipmentCode derives a short unique code for shipments created without
// an explicit one.
func newShipmentCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *materialShipmentService) GetShipments(f repositories.Filters) ([]models.MaterialShipment, error) {
	return s.shipmentRepo.GetShipments(f)
}

func (s *materialShipmentService) GetShipmentByID(id int64) (*models.MaterialShipment, error) {
	return s.shipmentRepo.GetShipmentByID(id)
}

func (s *materialShipmentService) CreateShipment(req CreateMaterialShipmentRequest) (*models.MaterialShipment, error) {
	if err := requireField(req.MaterialName, "material_name"); err != nil {
		return nil, err
	}
	if err := requireOneOf(req.Type, "type",
		models.ShipmentTypeInbound, models.ShipmentTypeOutbound); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.ShipmentStatusPending
	}
	if err := requireOneOf(status, "status",
		models.ShipmentStatusPending, models.ShipmentStatusShipped, models.ShipmentStatusDelivered); err != nil {
		return nil, err
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}

	code := req.Code
	if code == "" {
		code = newShipmentCode("SHP")
	}
	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	shipment := &models.MaterialShipment{
		Code:          code,
		MaterialName:  req.MaterialName,
		ItemCode:      req.ItemCode,
		CategoryCode:  req.CategoryCode,
		Quantity:      req.Quantity,
		Unit:          unit,
		Type:          req.Type,
		Status:        status,
		Source:        req.Source,
		Destination:   req.Destination,
		ShippedDate:   req.ShippedDate,
		EstimatedDate: req.EstimatedDate,
		ReceivedDate:  req.ReceivedDate,
		Handler:       req.Handler,
		Notes:         req.Notes,
	}
	id, err := s.shipmentRepo.CreateShipment(shipment)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify("Shipment created",
		fmt.Sprintf("%s shipment %s for %s was created", shipment.Type, shipment.Code, shipment.MaterialName),
		models.NotificationInfo)
	return s.shipmentRepo.GetShipmentByID(id)
}

func (s *materialShipmentService) UpdateShipment(id int64, req UpdateMaterialShipmentRequest) (*models.MaterialShipment, error) {
	shipment, err := s.shipmentRepo.GetShipmentByID(id)
	if err != nil {
		return nil, err
	}
	previousStatus := shipment.Status

	if req.MaterialName != nil {
		if err := requireField(*req.MaterialName, "material_name"); err != nil {
			return nil, err
		}
		shipment.MaterialName = *req.MaterialName
	}
	if req.ItemCode != nil {
		shipment.ItemCode = req.ItemCode
	}
	if req.CategoryCode != nil {
		shipment.CategoryCode = req.CategoryCode
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
		}
		shipment.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		shipment.Unit = *req.Unit
	}
	if req.Type != nil {
		if err := requireOneOf(*req.Type, "type",
			models.ShipmentTypeInbound, models.ShipmentTypeOutbound); err != nil {
			return nil, err
		}
		shipment.Type = *req.Type
	}
	if req.Status != nil {
		if err := requireOneOf(*req.Status, "status",
			models.ShipmentStatusPending, models.ShipmentStatusShipped, models.ShipmentStatusDelivered); err != nil {
			return nil, err
		}
		shipment.Status = *req.Status
	}
	if req.Source != nil {
		shipment.Source = *req.Source
	}
	if req.Destination != nil {
		shipment.Destination = *req.Destination
	}
	if req.ShippedDate != nil {
		shipment.ShippedDate = req.ShippedDate
	}
	if req.EstimatedDate != nil {
		shipment.EstimatedDate = req.EstimatedDate
	}
	if req.ReceivedDate != nil {
		shipment.ReceivedDate = req.ReceivedDate
	}
	if req.Handler != nil {
		shipment.Handler = req.Handler
	}
	if req.Notes != nil {
		shipment.Notes = req.Notes
	}

	if err := s.shipmentRepo.UpdateShipment(shipment); err != nil {
		return nil, err
	}
	if shipment.Status == models.ShipmentStatusDelivered && previousStatus != models.ShipmentStatusDelivered {
		s.notifier.Notify("Shipment delivered",
			fmt.Sprintf("Shipment %s (%s) was delivered", shipment.Code, shipment.MaterialName),
			models.NotificationSuccess)
	}
	return s.shipmentRepo.GetShipmentByID(id)
}

func (s *materialShipmentService) DeleteShipment(id int64) (*models.MaterialShipment, error) {
	return s.shipmentRepo.DeleteShipment(id)
}

func (s *materialShipmentService) DeleteShipments(ids []int64) ([]models.MaterialShipment, error) {
	return s.shipmentRepo.DeleteShipments(ids)
}
