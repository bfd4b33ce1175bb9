package handlers

import (
	"errors"
	"net/http"

	"rentora/internal/adapter/http/dto/request"
	"rentora/internal/adapter/http/dto/response"
	"rentora/internal/adapter/http/middleware"
	"rentora/internal/domain/entities"
	"rentora/internal/usecase"
	"rentora/internal/usecase/interfaces"
	"rentora/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles HTTP requests for lease contracts.

type ContractHandler struct {
	usecase usecase.IContractUseCase
	storage interfaces.IFileStorage
}

func NewContractHandler(uc usecase.IContractUseCase, storage interfaces.IFileStorage) *ContractHandler {
	return &ContractHandler{usecase: uc, storage: storage}
}

func (h *ContractHandler) Create(c *gin.Context) {
	var payload request.CreateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), in)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

func (h *ContractHandler) Update(c *gin.Context) {
	var payload request.UpdateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.OwnerID(c), in)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateContractStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), middleware.OwnerID(c), entities.ContractStatus(payload.Status))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) Sign(c *gin.Context) {
	contract, err := h.usecase.Sign(c.Request.Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) Finalize(c *gin.Context) {
	contract, err := h.usecase.Finalize(c.Request.Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) GetByID(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

// List returns the owner's contracts, optionally filtered by ?tenant_id= or
// ?property_id=.
func (h *ContractHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	ownerID := middleware.OwnerID(c)

	var (
		contracts []entities.Contract
		err       error
	)
	switch {
	case c.Query("tenant_id") != "":
		contracts, err = h.usecase.ListByTenant(ctx, c.Query("tenant_id"), ownerID)
	case c.Query("property_id") != "":
		contracts, err = h.usecase.ListByProperty(ctx, c.Query("property_id"), ownerID)
	default:
		contracts, err = h.usecase.ListByOwner(ctx, ownerID)
	}
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) ListByStatus(c *gin.Context) {
	contracts, err := h.usecase.ListByStatus(c.Request.Context(), middleware.OwnerID(c), entities.ContractStatus(c.Param("status")))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) ListExpiring(c *gin.Context) {
	days := request.ExpiringDays(c.Query("days"), entities.ExpiringSoonThresholdDays)
	contracts, err := h.usecase.ListExpiring(c.Request.Context(), middleware.OwnerID(c), days)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) Recompute(c *gin.Context) {
	updated, err := h.usecase.RecomputeStatuses(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RecomputeResponse{Updated: updated})
}

func (h *ContractHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), middleware.OwnerID(c)); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadDocument accepts either a multipart "file" part, stored through the
// object storage, or a JSON body carrying an already-hosted document_url.
func (h *ContractHandler) UploadDocument(c *gin.Context) {
	url := ""
	if data, contentType, ok := readUpload(c); ok {
		stored, err := h.storage.Store(c.Request.Context(), data, contentType, "contracts")
		if err != nil {
			appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not store file", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		url = stored
	} else {
		var payload request.SetContractDocumentRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
			return
		}
		url = payload.DocumentURL
	}

	contract, err := h.usecase.SetDocumentURL(c.Request.Context(), c.Param("id"), middleware.OwnerID(c), url)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidContractDates),
		errors.Is(err, usecase.ErrInvalidContractRent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContractStatus):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_STATUS", "Invalid contract status", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrContractOverlap):
		return pkg.NewDomainErrorSimple("CONTRACT_OVERLAP", "An overlapping contract exists for this property", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractNotSignable):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_SIGNABLE", "Contract is not in a signable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Contract entities were modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
