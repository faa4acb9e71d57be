package handler

const (
	jsonKeyMessage = "message"

	paramBrandID   = "brandId"
	paramModelID   = "modelId"
	paramVariantID = "variantId"
	paramID        = "id"

	msgInvalidBrandID    = "Invalid brand ID"
	msgInvalidIDFormat   = "Invalid id format"
	msgInvalidModelID    = "Invalid modelId"
	msgInvalidIDs        = "Invalid IDs"
	msgInvalidNewModelID = "Invalid newModelId"
	msgNewModelNotFound  = "newModelId does not reference an existing model"

	msgBrandNameLogoRequired = "Brand name and logo are required"
	msgNameImageRequired     = "Name and image URL are required"
	msgNameRequired          = "Name is required"
	msgUploadFieldsRequired  = "Missing required fields"
	msgUploadFieldsDetails   = "Filename and content type are required"

	msgBrandExists          = "Brand already exists"
	msgBrandExistsDetailFmt = "A brand with the name %q already exists"

	msgBrandDeleted   = "Brand deleted"
	msgModelDeleted   = "Model deleted"
	msgVariantDeleted = "Variant deleted"

	msgFetchBrandsFail    = "Failed to fetch brands"
	msgFetchBrandFail     = "Failed to fetch brand"
	msgCreateBrandFail    = "Failed to create brand"
	msgUpdateBrandFail    = "Failed to update brand"
	msgDeleteBrandFail    = "Failed to delete brand"
	msgFetchModelsFail    = "Failed to fetch models"
	msgFetchModelFail     = "Failed to fetch model"
	msgCreateModelFail    = "Failed to create model"
	msgUpdateModelFail    = "Failed to update model"
	msgDeleteModelFail    = "Failed to delete model"
	msgFetchVariantsFail  = "Failed to fetch variants"
	msgFetchVariantFail   = "Failed to fetch variant"
	msgCreateVariantFail  = "Failed to create variant"
	msgUpdateVariantFail  = "Failed to update variant"
	msgDeleteVariantFail  = "Failed to delete variant"
	msgCheckDuplicateFail = "Failed to check for duplicate name"
	msgVerifyModelFail    = "Failed to verify model"
	msgUploadURLFail      = "Failed to generate upload URL"

	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "Invalid request body"
)
