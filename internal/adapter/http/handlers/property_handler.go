package handlers

import (
	"errors"
	"io"
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

var errInvalidPropertyPayload = pkg.NewDomainErrorSimple("INVALID_PROPERTY_INPUT", "Invalid property payload", http.StatusBadRequest)

// PropertyHandler handles HTTP requests for rental units.

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
	storage interfaces.IFileStorage
}

func NewPropertyHandler(uc usecase.IPropertyUseCase, storage interfaces.IFileStorage) *PropertyHandler {
	return &PropertyHandler{usecase: uc, storage: storage}
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var payload request.CreatePropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	prop, err := h.usecase.Create(c.Request.Context(), middleware.OwnerID(c), usecase.CreatePropertyInput{
		Name:        payload.Name,
		Address:     payload.Address,
		City:        payload.City,
		Country:     payload.Country,
		Type:        entities.PropertyType(payload.Type),
		MonthlyRent: payload.MonthlyRent,
		Status:      entities.PropertyStatus(payload.Status),
		ImageURL:    payload.ImageURL,
	})
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProperty(prop))
}

func (h *PropertyHandler) Update(c *gin.Context) {
	var payload request.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPropertyPayload.HTTPStatus, errInvalidPropertyPayload.ToHTTPError())
		return
	}

	in := usecase.UpdatePropertyInput{
		Name:        payload.Name,
		Address:     payload.Address,
		City:        payload.City,
		Country:     payload.Country,
		MonthlyRent: payload.MonthlyRent,
		ImageURL:    payload.ImageURL,
	}
	if payload.Type != nil {
		t := entities.PropertyType(*payload.Type)
		in.Type = &t
	}
	if payload.Status != nil {
		s := entities.PropertyStatus(*payload.Status)
		in.Status = &s
	}

	prop, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.OwnerID(c), in)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(prop))
}

func (h *PropertyHandler) GetByID(c *gin.Context) {
	prop, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(prop))
}

// List returns the owner's properties, optionally filtered by ?status=.
func (h *PropertyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	ownerID := middleware.OwnerID(c)

	var (
		props []entities.Property
		err   error
	)
	if status := c.Query("status"); status != "" {
		props, err = h.usecase.ListByStatus(ctx, ownerID, entities.PropertyStatus(status))
	} else {
		props, err = h.usecase.ListByOwner(ctx, ownerID)
	}
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperties(props))
}

func (h *PropertyHandler) ListAvailable(c *gin.Context) {
	props, err := h.usecase.ListAvailable(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperties(props))
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), middleware.OwnerID(c)); err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage stores a multipart "file" part and stamps its URL on the
// property.
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	data, contentType, ok := readUpload(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_FILE", "Missing or unreadable file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	url, err := h.storage.Store(c.Request.Context(), data, contentType, "properties")
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Could not store file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	prop, err := h.usecase.SetImageURL(c.Request.Context(), c.Param("id"), middleware.OwnerID(c), url)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(prop))
}

func readUpload(c *gin.Context) (data []byte, contentType string, ok bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", false
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", false
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, "", false
	}
	return data, fh.Header.Get("Content-Type"), true
}

func mapPropertyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPropertyID),
		errors.Is(err, usecase.ErrInvalidPropertyInput),
		errors.Is(err, usecase.ErrInvalidPropertyRent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPropertyStatus):
		return pkg.NewDomainErrorSimple("INVALID_PROPERTY_STATUS", "Invalid property status", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Property was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
