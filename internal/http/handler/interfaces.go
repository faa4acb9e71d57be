package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"key-catalog/internal/domain/brand"
	"key-catalog/internal/domain/model"
	"key-catalog/internal/domain/variant"
	"key-catalog/internal/storage/s3"
)

// Consumer-side interfaces defined by handlers
// Each interface contains only the methods needed by the specific handler

type BrandRepository interface {
	List(ctx context.Context) ([]*brand.Brand, error)
	Get(ctx context.Context, id primitive.ObjectID) (*brand.Brand, error)
	FindByName(ctx context.Context, name string, excludeID *primitive.ObjectID) (*brand.Brand, error)
	Create(ctx context.Context, input brand.CreateBrandInput) (*brand.Brand, error)
	Update(ctx context.Context, id primitive.ObjectID, input brand.UpdateBrandInput) (*brand.Brand, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*brand.Brand, error)
}

type ModelRepository interface {
	ListByBrand(ctx context.Context, brandID primitive.ObjectID) ([]*model.Model, error)
	Get(ctx context.Context, brandID, modelID primitive.ObjectID) (*model.Model, error)
	Create(ctx context.Context, input model.CreateModelInput) (*model.Model, error)
	Update(ctx context.Context, brandID, modelID primitive.ObjectID, input model.UpdateModelInput) (*model.Model, error)
	Delete(ctx context.Context, brandID, modelID primitive.ObjectID) (*model.Model, error)
}

// ModelChecker is the slice of the model repository the variant handler
// needs to validate re-parent targets.
type ModelChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type VariantRepository interface {
	ListByModel(ctx context.Context, modelID primitive.ObjectID) ([]*variant.Variant, error)
	Get(ctx context.Context, modelID, variantID primitive.ObjectID) (*variant.Variant, error)
	Create(ctx context.Context, input variant.CreateVariantInput) (*variant.Variant, error)
	Update(ctx context.Context, modelID, variantID primitive.ObjectID, input variant.UpdateVariantInput) (*variant.Variant, error)
	Delete(ctx context.Context, modelID, variantID primitive.ObjectID) (*variant.Variant, error)
}

type UploadAuthorizer interface {
	GeneratePresignedUpload(objectKey, contentType string) (*s3.PresignedUpload, error)
	PublicURL(objectKey string) string
}
