package services

import (
	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
)

// recordedNotification captures one Notify call.
type recordedNotification struct {
	Title   string
	Message string
	Type    string
}

type fakeNotifier struct {
	notifications []recordedNotification
}

func (f *fakeNotifier) Notify(title, message, notificationType string) {
	f.notifications = append(f.notifications, recordedNotification{title, message, notificationType})
}

// fakeInventoryRepo is an in-memory InventoryRepository.
type fakeInventoryRepo struct {
	items  map[int64]*models.InventoryItem
	nextID int64
	err    error // when set, every call fails with it
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: map[int64]*models.InventoryItem{}, nextID: 1}
}

func (f *fakeInventoryRepo) GetItems(repositories.Filters) ([]models.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.InventoryItem{}
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeInventoryRepo) GetItemByID(id int64) (*models.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeInventoryRepo) GetItemByCode(code string) (*models.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, item := range f.items {
		if item.Code == code {
			copied := *item
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeInventoryRepo) CreateItem(item *models.InventoryItem) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	item.ID = f.nextID
	f.nextID++
	copied := *item
	f.items[item.ID] = &copied
	return item.ID, nil
}

func (f *fakeInventoryRepo) UpdateItem(item *models.InventoryItem) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[item.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeInventoryRepo) DeleteItem(id int64) (*models.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(f.items, id)
	return item, nil
}

func (f *fakeInventoryRepo) DeleteItems(ids []int64) ([]models.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	deleted := []models.InventoryItem{}
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			deleted = append(deleted, *item)
			delete(f.items, id)
		}
	}
	return deleted, nil
}

func (f *fakeInventoryRepo) AdjustQuantity(id int64, amount int, mode string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	switch mode {
	case repositories.AdjustSet:
		item.Quantity = amount
	case repositories.AdjustAdd:
		item.Quantity += amount
	case repositories.AdjustSubtract:
		item.Quantity -= amount
		if item.Quantity < 0 {
			item.Quantity = 0
		}
	}
	return item.Quantity, nil
}

// fakeShipmentRepo is an in-memory MaterialShipmentRepository.
type fakeShipmentRepo struct {
	shipments map[int64]*models.MaterialShipment
	nextID    int64
}

func newFakeShipmentRepo() *fakeShipmentRepo {
	return &fakeShipmentRepo{shipments: map[int64]*models.MaterialShipment{}, nextID: 1}
}

func (f *fakeShipmentRepo) GetShipments(repositories.Filters) ([]models.MaterialShipment, error) {
	out := []models.MaterialShipment{}
	for _, s := range f.shipments {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeShipmentRepo) GetShipmentByID(id int64) (*models.MaterialShipment, error) {
	s, ok := f.shipments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeShipmentRepo) CreateShipment(s *models.MaterialShipment) (int64, error) {
	s.ID = f.nextID
	f.nextID++
	copied := *s
	f.shipments[s.ID] = &copied
	return s.ID, nil
}

func (f *fakeShipmentRepo) UpdateShipment(s *models.MaterialShipment) error {
	if _, ok := f.shipments[s.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *s
	f.shipments[s.ID] = &copied
	return nil
}

func (f *fakeShipmentRepo) DeleteShipment(id int64) (*models.MaterialShipment, error) {
	s, ok := f.shipments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(f.shipments, id)
	return s, nil
}

func (f *fakeShipmentRepo) DeleteShipments(ids []int64) ([]models.MaterialShipment, error) {
	deleted := []models.MaterialShipment{}
	for _, id := range ids {
		if s, ok := f.shipments[id]; ok {
			deleted = append(deleted, *s)
			delete(f.shipments, id)
		}
	}
	return deleted, nil
}

// fakeScanRepo is an in-memory ScanRepository.
type fakeScanRepo struct {
	scans  []models.ScanRecord
	nextID int64
}

func newFakeScanRepo() *fakeScanRepo { return &fakeScanRepo{nextID: 1} }

func (f *fakeScanRepo) GetScans(repositories.Filters) ([]models.ScanRecord, error) {
	return append([]models.ScanRecord{}, f.scans...), nil
}

func (f *fakeScanRepo) GetScanByID(id int64) (*models.ScanRecord, error) {
	for _, s := range f.scans {
		if s.ID == id {
			copied := s
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeScanRepo) CreateScan(scan *models.ScanRecord) error {
	scan.ID = f.nextID
	f.nextID++
	f.scans = append(f.scans, *scan)
	return nil
}

func (f *fakeScanRepo) DeleteScan(id int64) error {
	for i := range f.scans {
		if f.scans[i].ID == id {
			f.scans = append(f.scans[:i], f.scans[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[int64]*models.User
	hashes map[string]string
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, hashes: map[string]string{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(user *models.User, hashedPassword string) (int64, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return 0, repositories.ErrDuplicateKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	f.hashes[user.Username] = hashedPassword
	return user.ID, nil
}

func (f *fakeUserRepo) FindUserByUsername(username string) (*models.User, string, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, f.hashes[username], nil
		}
	}
	return nil, "", repositories.ErrNotFound
}

func (f *fakeUserRepo) FindUserByID(id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

// fakeStatsRepo returns canned aggregates.
type fakeStatsRepo struct {
	flows  []repositories.ShipmentFlow
	stocks []repositories.ItemStock
}

func (f *fakeStatsRepo) InventoryStats() (*models.InventoryStats, error) {
	return &models.InventoryStats{}, nil
}

func (f *fakeStatsRepo) MaterialShipmentStats() (*models.MaterialShipmentStats, error) {
	return &models.MaterialShipmentStats{}, nil
}

func (f *fakeStatsRepo) OrderShipmentStats() (*models.OrderShipmentStats, error) {
	return &models.OrderShipmentStats{}, nil
}

func (f *fakeStatsRepo) ShipmentFlows() ([]repositories.ShipmentFlow, error) {
	return f.flows, nil
}

func (f *fakeStatsRepo) ItemStocks() ([]repositories.ItemStock, error) {
	return f.stocks, nil
}
