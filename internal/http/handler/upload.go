package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"key-catalog/internal/config"
	"key-catalog/internal/storage/s3"
	apperrors "key-catalog/pkg/errors"
	"key-catalog/pkg/validator"
)

type UploadHandler struct {
	authorizer UploadAuthorizer
	cfg        config.UploadConfig
}

func NewUploadHandler(authorizer UploadAuthorizer, cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{
		authorizer: authorizer,
		cfg:        cfg,
	}
}

type PresignRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	BrandName   string `json:"brandName"`
	Folder      string `json:"folder"`
}

type PresignResponse struct {
	URL           string            `json:"url"`
	Fields        map[string]string `json:"fields"`
	PublicURL     string            `json:"publicUrl"`
	MaxUploadSize int64             `json:"maxUploadSize"`
}

// Presign issues a write-once upload authorization. The browser uploads the
// bytes directly to storage; this server only ever stores the resulting URL
// string.
func (h *UploadHandler) Presign(c echo.Context) error {
	var req PresignRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	req.Filename = strings.TrimSpace(req.Filename)
	req.ContentType = strings.TrimSpace(req.ContentType)

	if req.Filename == "" || req.ContentType == "" {
		return &apperrors.AppError{
			Code:    "BAD_REQUEST",
			Message: msgUploadFieldsRequired,
			Details: msgUploadFieldsDetails,
			Err:     apperrors.ErrBadRequest,
		}
	}

	if err := validator.FileName(req.Filename); err != nil {
		return apperrors.BadRequest(err.Error())
	}

	contentType, err := validator.SanitizeContentType(req.ContentType)
	if err != nil {
		return apperrors.BadRequest(err.Error())
	}

	folder := req.Folder
	if folder == "" {
		folder = h.cfg.DefaultFolder
	}

	key := s3.BuildObjectKey(folder, req.BrandName, req.Filename)

	upload, err := h.authorizer.GeneratePresignedUpload(key, contentType)
	if err != nil {
		return apperrors.InternalServer(msgUploadURLFail, err)
	}

	return c.JSON(http.StatusOK, PresignResponse{
		URL:           upload.URL,
		Fields:        upload.Fields,
		PublicURL:     h.authorizer.PublicURL(key),
		MaxUploadSize: h.cfg.MaxUploadSize,
	})
}
