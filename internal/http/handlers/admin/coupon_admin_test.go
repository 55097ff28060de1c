package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/provider"
	"github.com/mercadito-app/mercadito-api/internal/repository"
	"github.com/mercadito-app/mercadito-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCouponAdminHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:coupon_admin_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}, &models.CouponRedemption{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	couponRepo := repository.NewCouponRepository(db)
	redemptionRepo := repository.NewCouponRedemptionRepository(db)

	h := &Handler{Container: &provider.Container{
		CouponAdminService: service.NewCouponAdminService(couponRepo, redemptionRepo),
	}}
	return h, db
}

func newCouponAdminRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.POST("/api/v1/admin/coupons", h.CreateCoupon)
	r.GET("/api/v1/admin/coupons", h.GetAdminCoupons)
	r.GET("/api/v1/admin/coupons/:id", h.GetAdminCoupon)
	return r
}

func TestCreateCouponNormalizesCode(t *testing.T) {
	h, db := setupCouponAdminHandlerTest(t)

	body := `{"codigo":" vera no10 ","tipo":"porcentaje","valor":10,"usos_maximos":5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/coupons", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newCouponAdminRouter(h).ServeHTTP(w, req)

	var resp struct {
		StatusCode int           `json:"status_code"`
		Data       models.Coupon `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d body %s", resp.StatusCode, w.Body.String())
	}
	if resp.Data.Code != "VERANO10" {
		t.Fatalf("code want VERANO10 got %s", resp.Data.Code)
	}

	var stored models.Coupon
	if err := db.Where("codigo = ?", "VERANO10").First(&stored).Error; err != nil {
		t.Fatalf("stored coupon lookup failed: %v", err)
	}
}

func TestCreateCouponRejectsDuplicateCode(t *testing.T) {
	h, _ := setupCouponAdminHandlerTest(t)

	body := `{"codigo":"DUPLICADO","tipo":"monto_fijo","valor":100,"usos_maximos":1}`
	router := newCouponAdminRouter(h)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/coupons", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(first, req)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/admin/coupons", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(second, req2)

	var resp struct {
		StatusCode int    `json:"status_code"`
		Msg        string `json:"msg"`
	}
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}
	if resp.Msg != service.ErrCouponCodeTaken.Error() {
		t.Fatalf("msg want %q got %q", service.ErrCouponCodeTaken.Error(), resp.Msg)
	}
}

func TestGetAdminCouponInvalidIDReturnsBadRequest(t *testing.T) {
	h, _ := setupCouponAdminHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/coupons/abc", nil)
	newCouponAdminRouter(h).ServeHTTP(w, req)

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

func TestGetAdminCouponsFiltersByNormalizedCode(t *testing.T) {
	h, db := setupCouponAdminHandlerTest(t)

	coupons := []models.Coupon{
		{Code: "VERANO10", Kind: "porcentaje", Value: models.NewMoneyFromFloat(10), MaxUses: 5, IsActive: true},
		{Code: "INVIERNO20", Kind: "porcentaje", Value: models.NewMoneyFromFloat(20), MaxUses: 5, IsActive: true},
	}
	for i := range coupons {
		if err := db.Create(&coupons[i]).Error; err != nil {
			t.Fatalf("create coupon failed: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/coupons?codigo=+vera+no10+", nil)
	newCouponAdminRouter(h).ServeHTTP(w, req)

	var resp struct {
		StatusCode int             `json:"status_code"`
		Data       []models.Coupon `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	if resp.Pagination.Total != 1 {
		t.Fatalf("total want 1 got %d", resp.Pagination.Total)
	}
	if len(resp.Data) != 1 || resp.Data[0].Code != "VERANO10" {
		t.Fatalf("filtered list should contain only VERANO10, got %+v", resp.Data)
	}
}
