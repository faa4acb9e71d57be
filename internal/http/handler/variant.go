package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"key-catalog/internal/domain/variant"
	apperrors "key-catalog/pkg/errors"
)

type VariantHandler struct {
	variantRepo VariantRepository
	modelRepo   ModelChecker
}

func NewVariantHandler(variantRepo VariantRepository, modelRepo ModelChecker) *VariantHandler {
	return &VariantHandler{
		variantRepo: variantRepo,
		modelRepo:   modelRepo,
	}
}

type VariantRequest struct {
	Name             string                     `json:"name"`
	RKID             string                     `json:"rkid"`
	ImageURL         string                     `json:"imageUrl"`
	Images           *variant.Images            `json:"images"`
	VehicleInfo      *variant.VehicleInfo       `json:"vehicleInfo"`
	KeyBladeProfiles map[string]variant.Profile `json:"keyBladeProfiles"`
	ProgrammingInfo  *variant.ProgrammingInfo   `json:"programmingInfo"`
	Pathways         []variant.Pathway          `json:"pathways"`
	Resources        *variant.Resources         `json:"resources"`
	NewModelID       string                     `json:"newModelId"`
}

// ListVariants returns all variants under a model, sorted by name. Only the
// model id scopes the query.
func (h *VariantHandler) ListVariants(c echo.Context) error {
	modelID, ok := parseObjectID(c.Param(paramModelID))
	if !ok {
		return apperrors.BadRequest(msgInvalidModelID)
	}

	variants, err := h.variantRepo.ListByModel(c.Request().Context(), modelID)
	if err != nil {
		return apperrors.InternalServer(msgFetchVariantsFail, err)
	}

	return c.JSON(http.StatusOK, variants)
}

func (h *VariantHandler) GetVariant(c echo.Context) error {
	modelID, modelOK := parseObjectID(c.Param(paramModelID))
	variantID, variantOK := parseObjectID(c.Param(paramVariantID))
	if !modelOK || !variantOK {
		return apperrors.BadRequest(msgInvalidIDFormat)
	}

	v, err := h.variantRepo.Get(c.Request().Context(), modelID, variantID)
	if err != nil {
		return wrapInternal(err, msgFetchVariantFail)
	}

	return c.JSON(http.StatusOK, v)
}

// CreateVariant stores the nested structures exactly as given. Default
// filling of programming info is an editor concern at create time; only the
// update path normalizes.
func (h *VariantHandler) CreateVariant(c echo.Context) error {
	brandID, brandOK := parseObjectID(c.Param(paramBrandID))
	modelID, modelOK := parseObjectID(c.Param(paramModelID))
	if !brandOK || !modelOK {
		return apperrors.BadRequest(msgInvalidIDs)
	}

	var req VariantRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if strings.TrimSpace(req.Name) == "" {
		return apperrors.BadRequest(msgNameRequired)
	}

	v, err := h.variantRepo.Create(c.Request().Context(), variant.CreateVariantInput{
		BrandID:          brandID,
		ModelID:          modelID,
		Name:             req.Name,
		RKID:             req.RKID,
		ImageURL:         req.ImageURL,
		Images:           req.Images,
		VehicleInfo:      req.VehicleInfo,
		KeyBladeProfiles: req.KeyBladeProfiles,
		ProgrammingInfo:  req.ProgrammingInfo,
		Pathways:         req.Pathways,
		Resources:        req.Resources,
	})
	if err != nil {
		return wrapInternal(err, msgCreateVariantFail)
	}

	return c.JSON(http.StatusCreated, v)
}

// UpdateVariant merges the fields present in the request into the stored
// document. Programming info passes through the sentinel fill rule; a valid
// newModelId re-parents the variant to another model.
func (h *VariantHandler) UpdateVariant(c echo.Context) error {
	modelID, modelOK := parseObjectID(c.Param(paramModelID))
	variantID, variantOK := parseObjectID(c.Param(paramVariantID))
	if !modelOK || !variantOK {
		return apperrors.BadRequest(msgInvalidIDFormat)
	}

	var req VariantRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if strings.TrimSpace(req.Name) == "" {
		return apperrors.BadRequest(msgNameRequired)
	}

	input := variant.UpdateVariantInput{
		Name:             req.Name,
		RKID:             req.RKID,
		ImageURL:         req.ImageURL,
		Images:           req.Images,
		VehicleInfo:      req.VehicleInfo,
		KeyBladeProfiles: req.KeyBladeProfiles,
		ProgrammingInfo:  variant.NormalizeProgrammingInfo(req.ProgrammingInfo),
		Pathways:         req.Pathways,
		Resources:        req.Resources,
	}

	if req.NewModelID != "" {
		newModelID, ok := parseObjectID(req.NewModelID)
		if !ok {
			return apperrors.BadRequest(msgInvalidNewModelID)
		}

		exists, err := h.modelRepo.Exists(c.Request().Context(), newModelID)
		if err != nil {
			return apperrors.InternalServer(msgVerifyModelFail, err)
		}
		if !exists {
			return apperrors.BadRequest(msgNewModelNotFound)
		}

		input.NewModelID = &newModelID
	}

	v, err := h.variantRepo.Update(c.Request().Context(), modelID, variantID, input)
	if err != nil {
		return wrapInternal(err, msgUpdateVariantFail)
	}

	return c.JSON(http.StatusOK, v)
}

func (h *VariantHandler) DeleteVariant(c echo.Context) error {
	modelID, modelOK := parseObjectID(c.Param(paramModelID))
	variantID, variantOK := parseObjectID(c.Param(paramVariantID))
	if !modelOK || !variantOK {
		return apperrors.BadRequest(msgInvalidIDFormat)
	}

	v, err := h.variantRepo.Delete(c.Request().Context(), modelID, variantID)
	if err != nil {
		return wrapInternal(err, msgDeleteVariantFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		jsonKeyMessage: msgVariantDeleted,
		"variant":      v,
	})
}
