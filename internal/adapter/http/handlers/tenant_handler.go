package handlers

import (
	"errors"
	"net/http"

	"rentora/internal/adapter/http/dto/request"
	"rentora/internal/adapter/http/dto/response"
	"rentora/internal/adapter/http/middleware"
	"rentora/internal/usecase"
	"rentora/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTenantPayload = pkg.NewDomainErrorSimple("INVALID_TENANT_INPUT", "Invalid tenant payload", http.StatusBadRequest)

// TenantHandler handles HTTP requests for renters.

type TenantHandler struct {
	usecase usecase.ITenantUseCase
}

func NewTenantHandler(uc usecase.ITenantUseCase) *TenantHandler {
	return &TenantHandler{usecase: uc}
}

func (h *TenantHandler) Create(c *gin.Context) {
	var payload request.CreateTenantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	tenant, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), usecase.CreateTenantInput{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Document:   payload.Document,
		AvatarURL:  payload.AvatarURL,
		PropertyID: payload.PropertyID,
	})
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTenant(tenant))
}

func (h *TenantHandler) Update(c *gin.Context) {
	var payload request.UpdateTenantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTenantPayload.HTTPStatus, errInvalidTenantPayload.ToHTTPError())
		return
	}

	tenant, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.OwnerID(c), usecase.UpdateTenantInput{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Document:   payload.Document,
		AvatarURL:  payload.AvatarURL,
		PropertyID: payload.PropertyID,
	})
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

func (h *TenantHandler) GetByID(c *gin.Context) {
	tenant, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.usecase.ListByOwner(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenants(tenants))
}

func (h *TenantHandler) ListWithoutProperty(c *gin.Context) {
	tenants, err := h.usecase.ListWithoutProperty(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTenants(tenants))
}

func (h *TenantHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), middleware.OwnerID(c)); err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapTenantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidTenantInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantEmailTaken):
		return pkg.NewDomainErrorSimple("TENANT_EMAIL_TAKEN", "Tenant email already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrTenantDocumentTaken):
		return pkg.NewDomainErrorSimple("TENANT_DOCUMENT_TAKEN", "Tenant document already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Entity was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
