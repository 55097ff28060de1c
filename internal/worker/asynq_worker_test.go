package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/provider"
	"github.com/mercadito-app/mercadito-api/internal/queue"
	"github.com/mercadito-app/mercadito-api/internal/repository"
	"github.com/mercadito-app/mercadito-api/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupCouponSweepTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:coupon_sweep_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}, &models.CouponRedemption{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	couponRepo := repository.NewCouponRepository(db)
	redemptionRepo := repository.NewCouponRedemptionRepository(db)
	consumer := NewConsumer(&provider.Container{
		CouponAdminService: service.NewCouponAdminService(couponRepo, redemptionRepo),
	})
	return consumer, db
}

func TestHandleCouponExpireSweepDeactivatesEndedCoupons(t *testing.T) {
	consumer, db := setupCouponSweepTest(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	coupons := []models.Coupon{
		{Code: "VENCIDO", Kind: "porcentaje", Value: models.NewMoneyFromFloat(10), MaxUses: 1, EndsAt: &past, IsActive: true},
		{Code: "VIGENTE", Kind: "porcentaje", Value: models.NewMoneyFromFloat(10), MaxUses: 1, EndsAt: &future, IsActive: true},
		{Code: "SINFECHA", Kind: "porcentaje", Value: models.NewMoneyFromFloat(10), MaxUses: 1, IsActive: true},
	}
	for i := range coupons {
		if err := db.Create(&coupons[i]).Error; err != nil {
			t.Fatalf("create coupon failed: %v", err)
		}
	}

	task, err := queue.NewCouponExpireSweepTask(queue.CouponExpireSweepPayload{RequestedAt: time.Now()})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleCouponExpireSweep(context.Background(), task); err != nil {
		t.Fatalf("handle sweep failed: %v", err)
	}

	var expired models.Coupon
	if err := db.Where("codigo = ?", "VENCIDO").First(&expired).Error; err != nil {
		t.Fatalf("expired coupon lookup failed: %v", err)
	}
	if expired.IsActive {
		t.Fatalf("ended coupon should be deactivated")
	}

	var active int64
	if err := db.Model(&models.Coupon{}).Where("activo = ?", true).Count(&active).Error; err != nil {
		t.Fatalf("count active coupons failed: %v", err)
	}
	if active != 2 {
		t.Fatalf("active coupons want 2 got %d", active)
	}
}

func TestHandleCouponExpireSweepRejectsBadPayload(t *testing.T) {
	consumer, _ := setupCouponSweepTest(t)

	task := asynq.NewTask(queue.TaskCouponExpireSweep, []byte("{bad"))
	if err := consumer.handleCouponExpireSweep(context.Background(), task); err == nil {
		t.Fatalf("malformed payload should fail")
	}
}
