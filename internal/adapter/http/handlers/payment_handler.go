package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"rentora/internal/adapter/http/dto/request"
	"rentora/internal/adapter/http/dto/response"
	"rentora/internal/adapter/http/middleware"
	"rentora/internal/domain/entities"
	"rentora/internal/usecase"
	"rentora/internal/usecase/interfaces"
	"rentora/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for rent payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	clock   interfaces.Clock
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, clock interfaces.Clock) *PaymentHandler {
	return &PaymentHandler{usecase: uc, clock: clock}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), in)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(payment, h.clock.Now()))
}

func (h *PaymentHandler) Update(c *gin.Context) {
	var payload request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.OwnerID(c), in)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment, h.clock.Now()))
}

// Register settles a payment, defaulting the paid date to today. The body is
// optional; an empty one settles with today's date and no receipt.
func (h *PaymentHandler) Register(c *gin.Context) {
	var payload request.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	var paidDate *time.Time
	if payload.PaidDate != nil && *payload.PaidDate != "" {
		t, err := time.Parse("2006-01-02", *payload.PaidDate)
		if err != nil {
			c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
			return
		}
		paidDate = &t
	}

	payment, err := h.usecase.Register(c.Request.Context(), c.Param("id"), middleware.OwnerID(c), paidDate, payload.ReceiptURL)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment, h.clock.Now()))
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment, h.clock.Now()))
}

// List returns the owner's payments, optionally filtered by ?tenant_id= or
// ?property_id=.
func (h *PaymentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	ownerID := middleware.OwnerID(c)

	var (
		payments []entities.Payment
		err      error
	)
	switch {
	case c.Query("tenant_id") != "":
		payments, err = h.usecase.ListByTenant(ctx, c.Query("tenant_id"), ownerID)
	case c.Query("property_id") != "":
		payments, err = h.usecase.ListByProperty(ctx, c.Query("property_id"), ownerID)
	default:
		payments, err = h.usecase.ListByOwner(ctx, ownerID)
	}
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments, h.clock.Now()))
}

func (h *PaymentHandler) ListByStatus(c *gin.Context) {
	payments, err := h.usecase.ListByStatus(c.Request.Context(), middleware.OwnerID(c), entities.PaymentStatus(c.Param("status")))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments, h.clock.Now()))
}

// ListLate returns overdue unpaid payments, optionally month-scoped via
// ?month= and ?year=.
func (h *PaymentHandler) ListLate(c *gin.Context) {
	month, year := monthYearQuery(c)
	payments, err := h.usecase.ListLate(c.Request.Context(), middleware.OwnerID(c), month, year)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments, h.clock.Now()))
}

func (h *PaymentHandler) Recompute(c *gin.Context) {
	updated, err := h.usecase.RecomputeStatuses(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RecomputeResponse{Updated: updated})
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), middleware.OwnerID(c)); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// monthYearQuery parses optional ?month= and ?year= filters; zero values mean
// unfiltered.
func monthYearQuery(c *gin.Context) (time.Month, int) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	if month < 1 || month > 12 {
		return 0, year
	}
	return time.Month(month), year
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrMissingDueDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS", "Invalid payment status", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
