package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentora/internal/adapter/http/handlers/mocks"
	"rentora/internal/domain/entities"
	"rentora/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Stats(t *testing.T) {
	t.Run("should return the aggregated month summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().
			Stats(gomock.Any(), testOwner, time.April, 2025).
			Return(usecase.DashboardStats{
				Month:           time.April,
				Year:            2025,
				MonthlyIncome:   2000,
				IncomeVariation: 25,
				PendingTotal:    800,
				PropertyCount:   3,
				TenantCount:     3,
				DelinquentCount: 1,
			}, nil)

		handler := NewDashboardHandler(uc, stubClock{now: time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)})
		router := newTestRouter()
		router.GET("/v1/dashboard/stats", handler.Stats)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats?month=4&year=2025", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error parsing body: %v", err)
		}
		if body["monthly_income"] != float64(2000) {
			t.Errorf("expected monthly_income 2000, got %v", body["monthly_income"])
		}
		if body["income_variation"] != float64(25) {
			t.Errorf("expected income_variation 25, got %v", body["income_variation"])
		}
		if body["pending_total"] != float64(800) {
			t.Errorf("expected pending_total 800, got %v", body["pending_total"])
		}
		if body["delinquent_count"] != float64(1) {
			t.Errorf("expected delinquent_count 1, got %v", body["delinquent_count"])
		}
	})

	t.Run("should default to the current month when query is absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().
			Stats(gomock.Any(), testOwner, time.Month(0), 0).
			Return(usecase.DashboardStats{Month: time.April, Year: 2025}, nil)

		handler := NewDashboardHandler(uc, stubClock{now: time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)})
		router := newTestRouter()
		router.GET("/v1/dashboard/stats", handler.Stats)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("should return 500 when the aggregation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().
			Stats(gomock.Any(), testOwner, gomock.Any(), gomock.Any()).
			Return(usecase.DashboardStats{}, errors.New("dynamodb unavailable"))

		handler := NewDashboardHandler(uc, stubClock{now: time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)})
		router := newTestRouter()
		router.GET("/v1/dashboard/stats", handler.Stats)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", rec.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error parsing body: %v", err)
		}
		if body["code"] != "INTERNAL_ERROR" {
			t.Errorf("expected code INTERNAL_ERROR, got %v", body["code"])
		}
	})
}

func TestDashboardHandler_LatePayments(t *testing.T) {
	t.Run("should return late payments with derived lateness", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		due := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().
			LatePayments(gomock.Any(), testOwner, time.April, 2025).
			Return([]entities.Payment{
				{ID: "pay-1", OwnerID: testOwner, Amount: 500, DueDate: due, Status: entities.PaymentStatusLate},
			}, nil)

		handler := NewDashboardHandler(uc, stubClock{now: time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)})
		router := newTestRouter()
		router.GET("/v1/dashboard/late-payments", handler.LatePayments)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/late-payments?month=4&year=2025", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error parsing body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(body))
		}
		if body[0]["status"] != string(entities.PaymentStatusLate) {
			t.Errorf("expected status late, got %v", body[0]["status"])
		}
		if body[0]["days_late"] != float64(5) {
			t.Errorf("expected days_late 5, got %v", body[0]["days_late"])
		}
	})
}

func TestDashboardHandler_ExpiringContracts(t *testing.T) {
	t.Run("should return contracts near their end date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().
			ExpiringContracts(gomock.Any(), testOwner).
			Return([]entities.Contract{
				{
					ID:        "contract-1",
					OwnerID:   testOwner,
					StartDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
					EndDate:   time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
					Status:    entities.ContractStatusExpiringSoon,
				},
			}, nil)

		handler := NewDashboardHandler(uc, stubClock{now: time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)})
		router := newTestRouter()
		router.GET("/v1/dashboard/expiring-contracts", handler.ExpiringContracts)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/expiring-contracts", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error parsing body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 contract, got %d", len(body))
		}
		if body[0]["status"] != string(entities.ContractStatusExpiringSoon) {
			t.Errorf("expected status expiring_soon, got %v", body[0]["status"])
		}
	})
}

func TestDashboardHandler_FeaturedProperties(t *testing.T) {
	t.Run("should return the featured selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().
			FeaturedProperties(gomock.Any(), testOwner).
			Return([]entities.Property{
				{ID: "prop-1", OwnerID: testOwner, Name: "Loft 12", Status: entities.PropertyStatusOccupied},
			}, nil)

		handler := NewDashboardHandler(uc, stubClock{now: time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)})
		router := newTestRouter()
		router.GET("/v1/dashboard/featured-properties", handler.FeaturedProperties)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/featured-properties", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error parsing body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 property, got %d", len(body))
		}
		if body[0]["name"] != "Loft 12" {
			t.Errorf("expected name Loft 12, got %v", body[0]["name"])
		}
	})
}
