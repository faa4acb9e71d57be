package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"key-catalog/internal/domain/brand"
	apperrors "key-catalog/pkg/errors"
)

type BrandHandler struct {
	brandRepo BrandRepository
}

func NewBrandHandler(brandRepo BrandRepository) *BrandHandler {
	return &BrandHandler{brandRepo: brandRepo}
}

type BrandRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// ListBrands returns every brand, newest first.
func (h *BrandHandler) ListBrands(c echo.Context) error {
	brands, err := h.brandRepo.List(c.Request().Context())
	if err != nil {
		return apperrors.InternalServer(msgFetchBrandsFail, err)
	}

	return c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) GetBrand(c echo.Context) error {
	id, ok := parseObjectID(c.Param(paramBrandID))
	if !ok {
		return apperrors.BadRequest(msgInvalidBrandID)
	}

	b, err := h.brandRepo.Get(c.Request().Context(), id)
	if err != nil {
		return wrapInternal(err, msgFetchBrandFail)
	}

	return c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) CreateBrand(c echo.Context) error {
	var req BrandRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.LogoURL == "" {
		return apperrors.BadRequest(msgBrandNameLogoRequired)
	}

	existing, err := h.brandRepo.FindByName(c.Request().Context(), req.Name, nil)
	if err != nil {
		return apperrors.InternalServer(msgCheckDuplicateFail, err)
	}
	if existing != nil {
		return apperrors.Conflict(msgBrandExists, fmt.Sprintf(msgBrandExistsDetailFmt, existing.Name))
	}

	b, err := h.brandRepo.Create(c.Request().Context(), brand.CreateBrandInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		return wrapInternal(err, msgCreateBrandFail)
	}

	return c.JSON(http.StatusCreated, b)
}

func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	id, ok := parseObjectID(c.Param(paramBrandID))
	if !ok {
		return apperrors.BadRequest(msgInvalidBrandID)
	}

	var req BrandRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.LogoURL == "" {
		return apperrors.BadRequest(msgBrandNameLogoRequired)
	}

	// The brand being updated must not collide with any other brand's name.
	existing, err := h.brandRepo.FindByName(c.Request().Context(), req.Name, &id)
	if err != nil {
		return apperrors.InternalServer(msgCheckDuplicateFail, err)
	}
	if existing != nil {
		return apperrors.Conflict(msgBrandExists, fmt.Sprintf(msgBrandExistsDetailFmt, existing.Name))
	}

	b, err := h.brandRepo.Update(c.Request().Context(), id, brand.UpdateBrandInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		return wrapInternal(err, msgUpdateBrandFail)
	}

	return c.JSON(http.StatusOK, b)
}

// DeleteBrand removes the brand only. Models and variants under it are left
// in place, and the logo object stays in storage.
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	id, ok := parseObjectID(c.Param(paramID))
	if !ok {
		return apperrors.BadRequest(msgInvalidBrandID)
	}

	b, err := h.brandRepo.Delete(c.Request().Context(), id)
	if err != nil {
		return wrapInternal(err, msgDeleteBrandFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		jsonKeyMessage: msgBrandDeleted,
		"brand":        b,
	})
}
