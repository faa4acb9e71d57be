package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"key-catalog/internal/domain/variant"
	apperrors "key-catalog/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	fieldRKID             = "rkid"
	fieldImages           = "images"
	fieldVehicleInfo      = "vehicleInfo"
	fieldKeyBladeProfiles = "keyBladeProfiles"
	fieldProgrammingInfo  = "programmingInfo"
	fieldPathways         = "pathways"
	fieldResources        = "resources"
)

type VariantRepository struct {
	collection *mongo.Collection
}

func NewVariantRepository(db *DB) *VariantRepository {
	return &VariantRepository{collection: db.Collection(collectionVariants)}
}

// ListByModel returns all variants under a model, sorted by name.
func (r *VariantRepository) ListByModel(ctx context.Context, modelID primitive.ObjectID) ([]*variant.Variant, error) {
	opts := options.Find().SetSort(bson.D{{Key: fieldName, Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{fieldModelID: modelID}, opts)
	if err != nil {
		return nil, fmt.Errorf(errFailedListVariantsFmt, err)
	}
	defer cursor.Close(ctx)

	variants := []*variant.Variant{}
	if err := cursor.All(ctx, &variants); err != nil {
		return nil, fmt.Errorf(errFailedListVariantsFmt, err)
	}

	return variants, nil
}

func (r *VariantRepository) Get(ctx context.Context, modelID, variantID primitive.ObjectID) (*variant.Variant, error) {
	v := &variant.Variant{}
	err := r.collection.FindOne(ctx, bson.M{fieldID: variantID, fieldModelID: modelID}).Decode(v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errVariantNotFound)
		}
		return nil, fmt.Errorf(errFailedGetVariantFmt, err)
	}

	return v, nil
}

func (r *VariantRepository) Create(ctx context.Context, input variant.CreateVariantInput) (*variant.Variant, error) {
	now := time.Now().UTC()
	v := &variant.Variant{
		ID:               primitive.NewObjectID(),
		Name:             input.Name,
		RKID:             input.RKID,
		ImageURL:         input.ImageURL,
		Images:           input.Images,
		BrandID:          input.BrandID,
		ModelID:          input.ModelID,
		VehicleInfo:      input.VehicleInfo,
		KeyBladeProfiles: input.KeyBladeProfiles,
		ProgrammingInfo:  input.ProgrammingInfo,
		Pathways:         input.Pathways,
		Resources:        input.Resources,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := r.collection.InsertOne(ctx, v); err != nil {
		return nil, fmt.Errorf(errFailedCreateVariantFmt, err)
	}

	return v, nil
}

// Update merges only the fields present in the input into the stored
// document. The caller has already normalized programming info and validated
// any re-parent target.
func (r *VariantRepository) Update(ctx context.Context, modelID, variantID primitive.ObjectID, input variant.UpdateVariantInput) (*variant.Variant, error) {
	set := bson.M{
		fieldName:      input.Name,
		fieldUpdatedAt: time.Now().UTC(),
	}
	if input.RKID != "" {
		set[fieldRKID] = input.RKID
	}
	if input.ImageURL != "" {
		set[fieldImageURL] = input.ImageURL
	}
	if input.Images != nil {
		set[fieldImages] = input.Images
	}
	if input.VehicleInfo != nil {
		set[fieldVehicleInfo] = input.VehicleInfo
	}
	if input.KeyBladeProfiles != nil {
		set[fieldKeyBladeProfiles] = input.KeyBladeProfiles
	}
	if input.ProgrammingInfo != nil {
		set[fieldProgrammingInfo] = input.ProgrammingInfo
	}
	if input.Pathways != nil {
		set[fieldPathways] = input.Pathways
	}
	if input.Resources != nil {
		set[fieldResources] = input.Resources
	}
	if input.NewModelID != nil {
		set[fieldModelID] = *input.NewModelID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	v := &variant.Variant{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{fieldID: variantID, fieldModelID: modelID}, bson.M{"$set": set}, opts).Decode(v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errVariantNotFound)
		}
		return nil, fmt.Errorf(errFailedUpdateVariantFmt, err)
	}

	return v, nil
}

func (r *VariantRepository) Delete(ctx context.Context, modelID, variantID primitive.ObjectID) (*variant.Variant, error) {
	v := &variant.Variant{}
	err := r.collection.FindOneAndDelete(ctx, bson.M{fieldID: variantID, fieldModelID: modelID}).Decode(v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errVariantNotFound)
		}
		return nil, fmt.Errorf(errFailedDeleteVariantFmt, err)
	}

	return v, nil
}
