package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCatalogRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:catalog_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Offer{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func createCatalogTestProduct(t *testing.T, db *gorm.DB, code, barcode string, enabled bool) models.Product {
	t.Helper()
	product := models.Product{
		Code:      code,
		Barcode:   barcode,
		BaseNoTax: models.NewMoneyFromFloat(100),
		TaxCode:   constants.TaxCodeStandard,
		Enabled:   enabled,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestGetByBarcodeReturnsNilWhenMissing(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewProductRepository(db)

	product, err := repo.GetByBarcode("0000000000000")
	if err != nil {
		t.Fatalf("get by barcode failed: %v", err)
	}
	if product != nil {
		t.Fatalf("missing barcode should return nil, got %+v", product)
	}
}

func TestListByBarcodesReturnsOnlyMatches(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewProductRepository(db)

	createCatalogTestProduct(t, db, "P-1", "7790000000011", true)
	createCatalogTestProduct(t, db, "P-2", "7790000000028", false)
	createCatalogTestProduct(t, db, "P-3", "7790000000035", true)

	products, err := repo.ListByBarcodes([]string{"7790000000011", "7790000000028", "7790000000999"})
	if err != nil {
		t.Fatalf("list by barcodes failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products want 2 got %d", len(products))
	}

	empty, err := repo.ListByBarcodes(nil)
	if err != nil {
		t.Fatalf("list with empty batch failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty batch should return no products, got %d", len(empty))
	}
}

func TestListActiveByBarcodesSkipsInactiveOffers(t *testing.T) {
	db := setupCatalogRepositoryTest(t)
	repo := NewOfferRepository(db)

	offers := []models.Offer{
		{Barcode: "7790000000011", Kind: constants.OfferTypeOffer, OfferPrice: models.NewMoneyFromFloat(90), IsActive: true},
		{Barcode: "7790000000011", Kind: constants.OfferTypeClearance, OfferPrice: models.NewMoneyFromFloat(80), IsActive: false},
		{Barcode: "7790000000028", Kind: constants.OfferTypeFeatured, OfferPrice: models.NewMoneyFromFloat(70), IsActive: true},
	}
	for i := range offers {
		active := offers[i].IsActive
		if err := db.Create(&offers[i]).Error; err != nil {
			t.Fatalf("create offer failed: %v", err)
		}
		if !active {
			if err := db.Model(&offers[i]).Update("activo", false).Error; err != nil {
				t.Fatalf("deactivate offer failed: %v", err)
			}
		}
	}

	active, err := repo.ListActiveByBarcodes([]string{"7790000000011"})
	if err != nil {
		t.Fatalf("list active offers failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("active offers want 1 got %d", len(active))
	}
	if active[0].OfferPrice.String() != "90.00" {
		t.Fatalf("offer price want 90.00 got %s", active[0].OfferPrice.String())
	}
}
