package services

import (
	"errors"
	"strings"
	"testing"

	"stocktrack_backend/internal/models"
)

func TestCreateShipmentGeneratesCode(t *testing.T) {
	repo := newFakeShipmentRepo()
	notifier := &fakeNotifier{}
	svc := NewMaterialShipmentService(repo, notifier)

	shipment, err := svc.CreateShipment(CreateMaterialShipmentRequest{
		MaterialName: "Copper Wire",
		Type:         models.ShipmentTypeInbound,
		Quantity:     100,
	})
	if err != nil {
		t.Fatalf("CreateShipment failed: %v", err)
	}
	if !strings.HasPrefix(shipment.Code, "SHP-") {
		t.Errorf("Expected generated SHP- code, got %q", shipment.Code)
	}
	if shipment.Status != models.ShipmentStatusPending {
		t.Errorf("Expected default status pending, got %q", shipment.Status)
	}
	if shipment.Unit != "pcs" {
		t.Errorf("Expected default unit pcs, got %q", shipment.Unit)
	}
	if len(notifier.notifications) != 1 || notifier.notifications[0].Title != "Shipment created" {
		t.Errorf("Expected creation notification, got %+v", notifier.notifications)
	}

	// An explicit code is kept as-is.
	shipment, err = svc.CreateShipment(CreateMaterialShipmentRequest{
		Code:         "SHP-CUSTOM",
		MaterialName: "Steel Rod",
		Type:         models.ShipmentTypeOutbound,
	})
	if err != nil {
		t.Fatalf("CreateShipment failed: %v", err)
	}
	if shipment.Code != "SHP-CUSTOM" {
		t.Errorf("Expected explicit code preserved, got %q", shipment.Code)
	}
}

func TestCreateShipmentValidation(t *testing.T) {
	svc := NewMaterialShipmentService(newFakeShipmentRepo(), &fakeNotifier{})

	cases := []struct {
		name string
		req  CreateMaterialShipmentRequest
	}{
		{"missing material name", CreateMaterialShipmentRequest{Type: models.ShipmentTypeInbound}},
		{"missing type", CreateMaterialShipmentRequest{MaterialName: "Wire"}},
		{"bad type", CreateMaterialShipmentRequest{MaterialName: "Wire", Type: "sideways"}},
		{"bad status", CreateMaterialShipmentRequest{MaterialName: "Wire", Type: models.ShipmentTypeInbound, Status: "lost"}},
		{"negative quantity", CreateMaterialShipmentRequest{MaterialName: "Wire", Type: models.ShipmentTypeInbound, Quantity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateShipment(tc.req); !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdateShipmentDeliveredNotification(t *testing.T) {
	repo := newFakeShipmentRepo()
	notifier := &fakeNotifier{}
	svc := NewMaterialShipmentService(repo, notifier)

	created, err := svc.CreateShipment(CreateMaterialShipmentRequest{
		MaterialName: "Copper Wire",
		Type:         models.ShipmentTypeInbound,
		Status:       models.ShipmentStatusShipped,
	})
	if err != nil {
		t.Fatalf("CreateShipment failed: %v", err)
	}
	notifier.notifications = nil

	status := models.ShipmentStatusDelivered
	updated, err := svc.UpdateShipment(created.ID, UpdateMaterialShipmentRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateShipment failed: %v", err)
	}
	if updated.Status != models.ShipmentStatusDelivered {
		t.Errorf("Expected delivered status, got %q", updated.Status)
	}
	if len(notifier.notifications) != 1 || notifier.notifications[0].Title != "Shipment delivered" {
		t.Errorf("Expected delivery notification, got %+v", notifier.notifications)
	}

	// Updating an already delivered shipment does not notify again.
	notifier.notifications = nil
	notes := "left at dock"
	if _, err := svc.UpdateShipment(created.ID, UpdateMaterialShipmentRequest{Notes: &notes}); err != nil {
		t.Fatalf("UpdateShipment failed: %v", err)
	}
	if len(notifier.notifications) != 0 {
		t.Errorf("Expected no repeat notification, got %+v", notifier.notifications)
	}
}
