package handlers

import (
	"net/http"

	"rentora/internal/adapter/http/dto/response"
	"rentora/internal/adapter/http/middleware"
	"rentora/internal/usecase"
	"rentora/internal/usecase/interfaces"
	"rentora/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler exposes the read-only portfolio reporting views.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	clock   interfaces.Clock
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, clock interfaces.Clock) *DashboardHandler {
	return &DashboardHandler{usecase: uc, clock: clock}
}

// Stats returns the month-scoped summary; ?month= and ?year= default to the
// current month.
func (h *DashboardHandler) Stats(c *gin.Context) {
	month, year := monthYearQuery(c)
	stats, err := h.usecase.Stats(c.Request.Context(), middleware.OwnerID(c), month, year)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) LatePayments(c *gin.Context) {
	month, year := monthYearQuery(c)
	payments, err := h.usecase.LatePayments(c.Request.Context(), middleware.OwnerID(c), month, year)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments, h.clock.Now()))
}

func (h *DashboardHandler) ExpiringContracts(c *gin.Context) {
	contracts, err := h.usecase.ExpiringContracts(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *DashboardHandler) FeaturedProperties(c *gin.Context) {
	props, err := h.usecase.FeaturedProperties(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperties(props))
}

func mapDashboardError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
