package public

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/geo"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/provider"
	"github.com/mercadito-app/mercadito-api/internal/repository"
	"github.com/mercadito-app/mercadito-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type stubGeocoder struct {
	coords map[string]geo.Coordinate
}

func (g *stubGeocoder) Geocode(ctx context.Context, address string) (geo.Coordinate, error) {
	coord, ok := g.coords[address]
	if !ok {
		return geo.Coordinate{}, geo.ErrNoResults
	}
	return coord, nil
}

func setupQuoteHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_quote_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Offer{},
		&models.PromoRule{},
		&models.Coupon{},
		&models.CouponRedemption{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	storeAddress := "San Martín 1500, Rosario"
	geocoder := &stubGeocoder{coords: map[string]geo.Coordinate{
		storeAddress:         {Lat: -32.9442, Lng: -60.6505},
		"Mitre 742, Rosario": {Lat: -33.9442, Lng: -60.6505},
	}}

	productRepo := repository.NewProductRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	promoRuleRepo := repository.NewPromoRuleRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	redemptionRepo := repository.NewCouponRedemptionRepository(db)

	pricingService := service.NewPricingService(productRepo, offerRepo)
	shippingService := service.NewShippingService(geocoder, service.ShippingOptions{
		StoreAddress:  storeAddress,
		PickupKeyword: "retiro",
		BaseFee:       500,
		PerKmRate:     10,
	})
	promoRuleService := service.NewPromoRuleService(promoRuleRepo)
	couponService := service.NewCouponService(couponRepo, redemptionRepo)
	quoteService := service.NewQuoteService(pricingService, shippingService, promoRuleService, couponService)

	h := &Handler{Container: &provider.Container{
		QuoteService: quoteService,
	}}
	return h, db
}

func newQuoteRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.POST("/api/v1/public/quote", h.CreateQuote)
	return r
}

func TestCreateQuoteReturnsTotals(t *testing.T) {
	h, db := setupQuoteHandlerTest(t)

	product := models.Product{
		Code:      "ART-1",
		Barcode:   "7791111111111",
		BaseNoTax: models.NewMoneyFromFloat(500),
		TaxCode:   constants.TaxCodeExempt,
		Enabled:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	body := `{"items":[{"codigo_barras":"7791111111111","cantidad":2}],"forma_entrega":"local"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newQuoteRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d body %s", w.Code, w.Body.String())
	}
	var resp struct {
		StatusCode int           `json:"status_code"`
		Data       service.Quote `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	if resp.Data.Subtotal.String() != "1000.00" {
		t.Fatalf("subtotal want 1000.00 got %s", resp.Data.Subtotal.String())
	}
	if resp.Data.Total.String() != "1000.00" {
		t.Fatalf("total want 1000.00 got %s", resp.Data.Total.String())
	}
	if !resp.Data.Shipping.IsZero() {
		t.Fatalf("pickup shipping want 0 got %s", resp.Data.Shipping.String())
	}
	if resp.Data.Snapshot.SnapshotID == "" {
		t.Fatalf("snapshot id should not be empty")
	}
}

func TestCreateQuoteUnknownProductReturnsNotFound(t *testing.T) {
	h, _ := setupQuoteHandlerTest(t)

	body := `{"items":[{"codigo_barras":"0000000000000","cantidad":1}],"forma_entrega":"local"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newQuoteRouter(h).ServeHTTP(w, req)

	var resp struct {
		StatusCode int    `json:"status_code"`
		Msg        string `json:"msg"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d", resp.StatusCode)
	}
}

func TestCreateQuoteInvalidCouponReturnsBadRequest(t *testing.T) {
	h, db := setupQuoteHandlerTest(t)

	product := models.Product{
		Code:      "ART-2",
		Barcode:   "7792222222222",
		BaseNoTax: models.NewMoneyFromFloat(100),
		TaxCode:   constants.TaxCodeExempt,
		Enabled:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	body := `{"items":[{"codigo_barras":"7792222222222","cantidad":1}],"forma_entrega":"local","cupon":"NOEXISTE"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newQuoteRouter(h).ServeHTTP(w, req)

	var resp struct {
		StatusCode int    `json:"status_code"`
		Msg        string `json:"msg"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
	if resp.Msg != service.ErrCouponInvalid.Error() {
		t.Fatalf("msg want %q got %q", service.ErrCouponInvalid.Error(), resp.Msg)
	}
}

func TestCreateQuoteMalformedBodyReturnsBadRequest(t *testing.T) {
	h, _ := setupQuoteHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/quote", strings.NewReader(`{"items":`))
	req.Header.Set("Content-Type", "application/json")
	newQuoteRouter(h).ServeHTTP(w, req)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
}
