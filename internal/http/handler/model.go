package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"key-catalog/internal/domain/model"
	apperrors "key-catalog/pkg/errors"
)

type ModelHandler struct {
	modelRepo ModelRepository
}

func NewModelHandler(modelRepo ModelRepository) *ModelHandler {
	return &ModelHandler{modelRepo: modelRepo}
}

type CreateModelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateModelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// ListModels returns all models under a brand, sorted by name.
func (h *ModelHandler) ListModels(c echo.Context) error {
	brandID, ok := parseObjectID(c.Param(paramBrandID))
	if !ok {
		return apperrors.BadRequest(msgInvalidBrandID)
	}

	models, err := h.modelRepo.ListByBrand(c.Request().Context(), brandID)
	if err != nil {
		return apperrors.InternalServer(msgFetchModelsFail, err)
	}

	return c.JSON(http.StatusOK, models)
}

func (h *ModelHandler) GetModel(c echo.Context) error {
	brandID, brandOK := parseObjectID(c.Param(paramBrandID))
	modelID, modelOK := parseObjectID(c.Param(paramModelID))
	if !brandOK || !modelOK {
		return apperrors.BadRequest(msgInvalidIDFormat)
	}

	m, err := h.modelRepo.Get(c.Request().Context(), brandID, modelID)
	if err != nil {
		return wrapInternal(err, msgFetchModelFail)
	}

	return c.JSON(http.StatusOK, m)
}

func (h *ModelHandler) CreateModel(c echo.Context) error {
	brandID, ok := parseObjectID(c.Param(paramBrandID))
	if !ok {
		return apperrors.BadRequest(msgInvalidBrandID)
	}

	var req CreateModelRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if strings.TrimSpace(req.Name) == "" || req.ImageURL == "" {
		return apperrors.BadRequest(msgNameImageRequired)
	}

	m, err := h.modelRepo.Create(c.Request().Context(), model.CreateModelInput{
		BrandID:     brandID,
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		return wrapInternal(err, msgCreateModelFail)
	}

	return c.JSON(http.StatusCreated, m)
}

func (h *ModelHandler) UpdateModel(c echo.Context) error {
	brandID, brandOK := parseObjectID(c.Param(paramBrandID))
	modelID, modelOK := parseObjectID(c.Param(paramModelID))
	if !brandOK || !modelOK {
		return apperrors.BadRequest(msgInvalidIDFormat)
	}

	var req UpdateModelRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if strings.TrimSpace(req.Name) == "" {
		return apperrors.BadRequest(msgNameRequired)
	}

	m, err := h.modelRepo.Update(c.Request().Context(), brandID, modelID, model.UpdateModelInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return wrapInternal(err, msgUpdateModelFail)
	}

	return c.JSON(http.StatusOK, m)
}

// DeleteModel removes the model only; its variants keep their modelId.
func (h *ModelHandler) DeleteModel(c echo.Context) error {
	brandID, brandOK := parseObjectID(c.Param(paramBrandID))
	modelID, modelOK := parseObjectID(c.Param(paramModelID))
	if !brandOK || !modelOK {
		return apperrors.BadRequest(msgInvalidIDFormat)
	}

	m, err := h.modelRepo.Delete(c.Request().Context(), brandID, modelID)
	if err != nil {
		return wrapInternal(err, msgDeleteModelFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		jsonKeyMessage: msgModelDeleted,
		"model":        m,
	})
}
