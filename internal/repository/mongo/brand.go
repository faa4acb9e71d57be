package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"key-catalog/internal/domain/brand"
	apperrors "key-catalog/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BrandRepository struct {
	collection *mongo.Collection
}

func NewBrandRepository(db *DB) *BrandRepository {
	return &BrandRepository{collection: db.Collection(collectionBrands)}
}

// List returns all brands, newest first.
func (r *BrandRepository) List(ctx context.Context) ([]*brand.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: fieldCreatedAt, Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf(errFailedListBrandsFmt, err)
	}
	defer cursor.Close(ctx)

	brands := []*brand.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf(errFailedListBrandsFmt, err)
	}

	return brands, nil
}

func (r *BrandRepository) Get(ctx context.Context, id primitive.ObjectID) (*brand.Brand, error) {
	b := &brand.Brand{}
	err := r.collection.FindOne(ctx, bson.M{fieldID: id}).Decode(b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errBrandNotFound)
		}
		return nil, fmt.Errorf(errFailedGetBrandFmt, err)
	}

	return b, nil
}

// FindByName probes for a brand whose name matches case-insensitively,
// optionally excluding one id (the brand being updated). A nil result with a
// nil error means no collision.
func (r *BrandRepository) FindByName(ctx context.Context, name string, excludeID *primitive.ObjectID) (*brand.Brand, error) {
	filter := bson.M{
		fieldName: primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(name) + "$",
			Options: "i",
		},
	}
	if excludeID != nil {
		filter[fieldID] = bson.M{"$ne": *excludeID}
	}

	b := &brand.Brand{}
	err := r.collection.FindOne(ctx, filter).Decode(b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf(errFailedProbeBrandFmt, err)
	}

	return b, nil
}

func (r *BrandRepository) Create(ctx context.Context, input brand.CreateBrandInput) (*brand.Brand, error) {
	now := time.Now().UTC()
	b := &brand.Brand{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		LogoURL:   input.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.collection.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict(msgBrandExists, msgBrandExistsGeneric)
		}
		return nil, fmt.Errorf(errFailedCreateBrandFmt, err)
	}

	return b, nil
}

func (r *BrandRepository) Update(ctx context.Context, id primitive.ObjectID, input brand.UpdateBrandInput) (*brand.Brand, error) {
	update := bson.M{"$set": bson.M{
		fieldName:      input.Name,
		fieldLogoURL:   input.LogoURL,
		fieldUpdatedAt: time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	b := &brand.Brand{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{fieldID: id}, update, opts).Decode(b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errBrandNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict(msgBrandExists, msgBrandExistsGeneric)
		}
		return nil, fmt.Errorf(errFailedUpdateBrandFmt, err)
	}

	return b, nil
}

// Delete removes the brand document only. Child models and variants keep
// their back-references and the logo object stays in storage.
func (r *BrandRepository) Delete(ctx context.Context, id primitive.ObjectID) (*brand.Brand, error) {
	b := &brand.Brand{}
	err := r.collection.FindOneAndDelete(ctx, bson.M{fieldID: id}).Decode(b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(errBrandNotFound)
		}
		return nil, fmt.Errorf(errFailedDeleteBrandFmt, err)
	}

	return b, nil
}
