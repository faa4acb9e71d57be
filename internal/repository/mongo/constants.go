package mongo

import (
	"fmt"
	"time"
)

const (
	collectionBrands   = "brands"
	collectionModels   = "models"
	collectionVariants = "variants"

	fieldID          = "_id"
	fieldName        = "name"
	fieldBrandID     = "brandId"
	fieldModelID     = "modelId"
	fieldLogoURL     = "logoUrl"
	fieldImageURL    = "imageUrl"
	fieldDescription = "description"
	fieldCreatedAt   = "createdAt"
	fieldUpdatedAt   = "updatedAt"

	collationLocale                  = "en"
	collationStrengthCaseInsensitive = 2

	dbConnectTimeout = 10 * time.Second
	dbPingTimeout    = 5 * time.Second

	errBrandNotFound   = "brand not found"
	errModelNotFound   = "model not found"
	errVariantNotFound = "variant not found"

	msgBrandExists        = "Brand already exists"
	msgBrandExistsGeneric = "A brand with this name already exists in the system"
	msgModelExists        = "Model already exists"
	msgModelExistsGeneric = "A model with this name already exists for this brand"

	errFailedConnectDatabaseFmt = "failed to connect to database: %w"
	errFailedPingDatabaseFmt    = "failed to ping database: %w"
	errFailedCreateIndexesFmt   = "failed to create indexes: %w"

	errFailedCreateBrandFmt = "failed to create brand: %w"
	errFailedGetBrandFmt    = "failed to get brand: %w"
	errFailedListBrandsFmt  = "failed to list brands: %w"
	errFailedUpdateBrandFmt = "failed to update brand: %w"
	errFailedDeleteBrandFmt = "failed to delete brand: %w"
	errFailedProbeBrandFmt  = "failed to check brand name: %w"

	errFailedCreateModelFmt = "failed to create model: %w"
	errFailedGetModelFmt    = "failed to get model: %w"
	errFailedListModelsFmt  = "failed to list models: %w"
	errFailedUpdateModelFmt = "failed to update model: %w"
	errFailedDeleteModelFmt = "failed to delete model: %w"
	errFailedCountModelsFmt = "failed to count models: %w"

	errFailedCreateVariantFmt = "failed to create variant: %w"
	errFailedGetVariantFmt    = "failed to get variant: %w"
	errFailedListVariantsFmt  = "failed to list variants: %w"
	errFailedUpdateVariantFmt = "failed to update variant: %w"
	errFailedDeleteVariantFmt = "failed to delete variant: %w"
)

func errFailedConnectDatabase(err error) error { return fmt.Errorf(errFailedConnectDatabaseFmt, err) }
func errFailedPingDatabase(err error) error    { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
func errFailedCreateIndexes(err error) error   { return fmt.Errorf(errFailedCreateIndexesFmt, err) }
