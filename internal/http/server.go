package http

import (
	"context"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"key-catalog/internal/config"
	"key-catalog/internal/http/handler"
	"key-catalog/internal/http/middleware"
	"key-catalog/internal/repository/mongo"
	"key-catalog/internal/storage/s3"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config      *config.Config
	BrandRepo   *mongo.BrandRepository
	ModelRepo   *mongo.ModelRepository
	VariantRepo *mongo.VariantRepository
	S3Client    *s3.Client
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	brandHandler := handler.NewBrandHandler(deps.BrandRepo)
	modelHandler := handler.NewModelHandler(deps.ModelRepo)
	variantHandler := handler.NewVariantHandler(deps.VariantRepo, deps.ModelRepo)
	uploadHandler := handler.NewUploadHandler(deps.S3Client, deps.Config.Upload)

	e.GET("/health", healthCheck)

	e.GET("/brands", brandHandler.ListBrands)
	e.POST("/brands", brandHandler.CreateBrand)
	e.GET("/brands/:brandId", brandHandler.GetBrand)
	e.PUT("/brands/:brandId", brandHandler.UpdateBrand)
	// Legacy delete path kept for the existing admin pages.
	e.DELETE("/brands/:id/delete", brandHandler.DeleteBrand)

	e.GET("/brands/:brandId/models", modelHandler.ListModels)
	e.POST("/brands/:brandId/models", modelHandler.CreateModel)
	e.GET("/brands/:brandId/models/:modelId", modelHandler.GetModel)
	e.PUT("/brands/:brandId/models/:modelId", modelHandler.UpdateModel)
	e.DELETE("/brands/:brandId/models/:modelId", modelHandler.DeleteModel)

	e.GET("/brands/:brandId/models/:modelId/variants", variantHandler.ListVariants)
	e.POST("/brands/:brandId/models/:modelId/variants", variantHandler.CreateVariant)
	e.GET("/brands/:brandId/models/:modelId/variants/:variantId", variantHandler.GetVariant)
	e.PUT("/brands/:brandId/models/:modelId/variants/:variantId", variantHandler.UpdateVariant)
	e.DELETE("/brands/:brandId/models/:modelId/variants/:variantId", variantHandler.DeleteVariant)

	e.POST("/uploads/presign", uploadHandler.Presign)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
