package service

import (
	"errors"
	"testing"

	"github.com/sara-ops/sara-api/internal/repository"

	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := newServiceTestDB(t, "catalog_service_test")
	svc := NewCatalogService(repository.NewProductRepository(db), newTestAuditService(db))
	return svc, db
}

func TestCreateProductDefaultsUnit(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	product, err := svc.CreateProduct(adminSession(), CreateProductInput{Name: "  Bondiola "})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.Name != "Bondiola" {
		t.Fatalf("name should be trimmed, got %q", product.Name)
	}
	if product.Unit != "kg" {
		t.Fatalf("default unit want kg got %s", product.Unit)
	}
	if !product.Active {
		t.Fatalf("new product should start active")
	}

	if _, err := svc.CreateProduct(adminSession(), CreateProductInput{Name: "   "}); !errors.Is(err, ErrProductNameRequired) {
		t.Fatalf("expected ErrProductNameRequired, got %v", err)
	}
}

func TestSetProductActive(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	product, err := svc.CreateProduct(adminSession(), CreateProductInput{Name: "Salame", Unit: "unidad"})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := svc.SetProductActive(adminSession(), product.ID, false); err != nil {
		t.Fatalf("set product inactive failed: %v", err)
	}
	got, err := svc.GetProduct(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.Active {
		t.Fatalf("product should be inactive")
	}

	if err := svc.SetProductActive(adminSession(), 9999, true); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
