package services

import (
	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
)

// --- Category DTOs ---

type CreateCategoryRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateCategoryRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// --- Warehouse DTOs ---

type CreateWarehouseRequest struct {
	Code     string  `json:"code" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
	Capacity *int    `json:"capacity"`
}

type UpdateWarehouseRequest struct {
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Capacity *int    `json:"capacity"`
}

// ReferenceService manages the category and warehouse lookup tables.
type ReferenceService interface {
	GetCategories(f repositories.Filters) ([]models.Category, error)
	GetCategoryByID(id int64) (*models.Category, error)
	CreateCategory(req CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id int64, req UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id int64) (*models.Category, error)

	GetWarehouses(f repositories.Filters) ([]models.Warehouse, error)
	GetWarehouseByID(id int64) (*models.Warehouse, error)
	CreateWarehouse(req CreateWarehouseRequest) (*models.Warehouse, error)
	UpdateWarehouse(id int64, req UpdateWarehouseRequest) (*models.Warehouse, error)
	DeleteWarehouse(id int64) (*models.Warehouse, error)
}

type referenceService struct {
	refRepo repositories.ReferenceRepository
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(repo repositories.ReferenceRepository) ReferenceService {
	return &referenceService{refRepo: repo}
}

func (s *referenceService) GetCategories(f repositories.Filters) ([]models.Category, error) {
	return s.refRepo.GetCategories(f)
}

func (s *referenceService) GetCategoryByID(id int64) (*models.Category, error) {
	return s.refRepo.GetCategoryByID(id)
}

func (s *referenceService) CreateCategory(req CreateCategoryRequest) (*models.Category, error) {
	if err := requireField(req.Code, "code"); err != nil {
		return nil, err
	}
	if err := requireField(req.Name, "name"); err != nil {
		return nil, err
	}
	category := &models.Category{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := s.refRepo.CreateCategory(category)
	if err != nil {
		return nil, err
	}
	return s.refRepo.GetCategoryByID(id)
}

func (s *referenceService) UpdateCategory(id int64, req UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.refRepo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if req.Code != nil {
		if err := requireField(*req.Code, "code"); err != nil {
			return nil, err
		}
		category.Code = *req.Code
	}
	if req.Name != nil {
		if err := requireField(*req.Name, "name"); err != nil {
			return nil, err
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if err := s.refRepo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return s.refRepo.GetCategoryByID(id)
}

func (s *referenceService) DeleteCategory(id int64) (*models.Category, error) {
	return s.refRepo.DeleteCategory(id)
}

func (s *referenceService) GetWarehouses(f repositories.Filters) ([]models.Warehouse, error) {
	return s.refRepo.GetWarehouses(f)
}

func (s *referenceService) GetWarehouseByID(id int64) (*models.Warehouse, error) {
	return s.refRepo.GetWarehouseByID(id)
}

func (s *referenceService) CreateWarehouse(req CreateWarehouseRequest) (*models.Warehouse, error) {
	if err := requireField(req.Code, "code"); err != nil {
		return nil, err
	}
	if err := requireField(req.Name, "name"); err != nil {
		return nil, err
	}
	warehouse := &models.Warehouse{
		Code:     req.Code,
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	}
	id, err := s.refRepo.CreateWarehouse(warehouse)
	if err != nil {
		return nil, err
	}
	return s.refRepo.GetWarehouseByID(id)
}

func (s *referenceService) UpdateWarehouse(id int64, req UpdateWarehouseRequest) (*models.Warehouse, error) {
	warehouse, err := s.refRepo.GetWarehouseByID(id)
	if err != nil {
		return nil, err
	}
	if req.Code != nil {
		if err := requireField(*req.Code, "code"); err != nil {
			return nil, err
		}
		warehouse.Code = *req.Code
	}
	if req.Name != nil {
		if err := requireField(*req.Name, "name"); err != nil {
			return nil, err
		}
		warehouse.Name = *req.Name
	}
	if req.Location != nil {
		warehouse.Location = req.Location
	}
	if req.Capacity != nil {
		warehouse.Capacity = req.Capacity
	}
	if err := s.refRepo.UpdateWarehouse(warehouse); err != nil {
		return nil, err
	}
	return s.refRepo.GetWarehouseByID(id)
}

func (s *referenceService) DeleteWarehouse(id int64) (*models.Warehouse, error) {
	return s.refRepo.DeleteWarehouse(id)
}
