package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"key-catalog/internal/domain/model"
	apperrors "key-catalog/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ModelRepository struct {
	collection *mongo.Collection
}

func NewModelRepository(db *DB) *ModelRepository {
	return &ModelRepository{collection: db.Collection(collectionModels)}
}

// ListByBrand returns all models under a brand, sorted by name.
func (r *ModelRepository) ListByBrand(ctx context.Context, brandID primitive.ObjectID) ([]*model.Model, error) {
	opts := options.Find().SetSort(bson.D{{Key: fieldName, Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{fieldBrandID: brandID}, opts)
	if err != nil {
		return nil, fmt.Errorf(errFailedListModelsFmt, err)
	}
	defer cursor.Close(ctx)

	models := []*model.Model{}
	if err := cursor.All(ctx, &models); err != nil {
		return nil, fmt.Errorf(errFailedListModelsFmt, err)
	}

	return models, nil
}

func (r *ModelRepository) Get(ctx context.Context, brandID, modelID primitive.ObjectID) (*model.Model, error) {
	m := &model.Model{}
	err := r.collection.FindOne(ctx, bson.M{fieldID: modelID, fieldBrandID: brandID}).Decode(m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errModelNotFound)
		}
		return nil, fmt.Errorf(errFailedGetModelFmt, err)
	}

	return m, nil
}

// Exists reports whether a model with the given id exists under any brand.
func (r *ModelRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{fieldID: id})
	if err != nil {
		return false, fmt.Errorf(errFailedCountModelsFmt, err)
	}
	return count > 0, nil
}

func (r *ModelRepository) Create(ctx context.Context, input model.CreateModelInput) (*model.Model, error) {
	now := time.Now().UTC()
	m := &model.Model{
		ID:          primitive.NewObjectID(),
		Name:        model.NormalizeName(input.Name),
		BrandID:     input.BrandID,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.collection.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict(msgModelExists, msgModelExistsGeneric)
		}
		return nil, fmt.Errorf(errFailedCreateModelFmt, err)
	}

	return m, nil
}

func (r *ModelRepository) Update(ctx context.Context, brandID, modelID primitive.ObjectID, input model.UpdateModelInput) (*model.Model, error) {
	set := bson.M{
		fieldName:        model.NormalizeName(input.Name),
		fieldDescription: input.Description,
		fieldUpdatedAt:   time.Now().UTC(),
	}
	if input.ImageURL != "" {
		set[fieldImageURL] = input.ImageURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	m := &model.Model{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{fieldID: modelID, fieldBrandID: brandID}, bson.M{"$set": set}, opts).Decode(m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errModelNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict(msgModelExists, msgModelExistsGeneric)
		}
		return nil, fmt.Errorf(errFailedUpdateModelFmt, err)
	}

	return m, nil
}

// Delete removes the model document only; variants under it are left in
// place with their modelId intact.
func (r *ModelRepository) Delete(ctx context.Context, brandID, modelID primitive.ObjectID) (*model.Model, error) {
	m := &model.Model{}
	err := r.collection.FindOneAndDelete(ctx, bson.M{fieldID: modelID, fieldBrandID: brandID}).Decode(m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errModelNotFound)
		}
		return nil, fmt.Errorf(errFailedDeleteModelFmt, err)
	}

	return m, nil
}
