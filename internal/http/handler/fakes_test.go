package handler_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"key-catalog/internal/domain/brand"
	"key-catalog/internal/domain/model"
	"key-catalog/internal/domain/variant"
	"key-catalog/internal/storage/s3"
	apperrors "key-catalog/pkg/errors"
)

// In-memory fakes implementing the handler-side repository interfaces. They
// reproduce the repository contracts: case-insensitive name probes, model
// name normalization at the write boundary, scoped lookups.

type fakeBrandRepo struct {
	brands map[primitive.ObjectID]*brand.Brand
	calls  int
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: map[primitive.ObjectID]*brand.Brand{}}
}

func (r *fakeBrandRepo) List(_ context.Context) ([]*brand.Brand, error) {
	r.calls++
	out := []*brand.Brand{}
	for _, b := range r.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBrandRepo) Get(_ context.Context, id primitive.ObjectID) (*brand.Brand, error) {
	r.calls++
	b, ok := r.brands[id]
	if !ok {
		return nil, apperrors.NotFound("brand not found")
	}
	return b, nil
}

func (r *fakeBrandRepo) FindByName(_ context.Context, name string, excludeID *primitive.ObjectID) (*brand.Brand, error) {
	r.calls++
	for _, b := range r.brands {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBrandRepo) Create(_ context.Context, input brand.CreateBrandInput) (*brand.Brand, error) {
	r.calls++
	now := time.Now().UTC()
	b := &brand.Brand{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		LogoURL:   input.LogoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.brands[b.ID] = b
	return b, nil
}

func (r *fakeBrandRepo) Update(_ context.Context, id primitive.ObjectID, input brand.UpdateBrandInput) (*brand.Brand, error) {
	r.calls++
	b, ok := r.brands[id]
	if !ok {
		return nil, apperrors.NotFound("brand not found")
	}
	b.Name = input.Name
	b.LogoURL = input.LogoURL
	b.UpdatedAt = time.Now().UTC()
	return b, nil
}

func (r *fakeBrandRepo) Delete(_ context.Context, id primitive.ObjectID) (*brand.Brand, error) {
	r.calls++
	b, ok := r.brands[id]
	if !ok {
		return nil, apperrors.NotFound("brand not found")
	}
	delete(r.brands, id)
	return b, nil
}

type fakeModelRepo struct {
	models map[primitive.ObjectID]*model.Model
	calls  int
}

func newFakeModelRepo() *fakeModelRepo {
	return &fakeModelRepo{models: map[primitive.ObjectID]*model.Model{}}
}

func (r *fakeModelRepo) ListByBrand(_ context.Context, brandID primitive.ObjectID) ([]*model.Model, error) {
	r.calls++
	out := []*model.Model{}
	for _, m := range r.models {
		if m.BrandID == brandID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeModelRepo) Get(_ context.Context, brandID, modelID primitive.ObjectID) (*model.Model, error) {
	r.calls++
	m, ok := r.models[modelID]
	if !ok || m.BrandID != brandID {
		return nil, apperrors.NotFound("model not found")
	}
	return m, nil
}

func (r *fakeModelRepo) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.calls++
	_, ok := r.models[id]
	return ok, nil
}

func (r *fakeModelRepo) Create(_ context.Context, input model.CreateModelInput) (*model.Model, error) {
	r.calls++
	name := model.NormalizeName(input.Name)
	for _, m := range r.models {
		if m.BrandID == input.BrandID && strings.EqualFold(m.Name, name) {
			return nil, apperrors.Conflict("Model already exists", "A model with this name already exists for this brand")
		}
	}
	now := time.Now().UTC()
	m := &model.Model{
		ID:          primitive.NewObjectID(),
		Name:        name,
		BrandID:     input.BrandID,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.models[m.ID] = m
	return m, nil
}

func (r *fakeModelRepo) Update(_ context.Context, brandID, modelID primitive.ObjectID, input model.UpdateModelInput) (*model.Model, error) {
	r.calls++
	m, ok := r.models[modelID]
	if !ok || m.BrandID != brandID {
		return nil, apperrors.NotFound("model not found")
	}
	m.Name = model.NormalizeName(input.Name)
	m.Description = input.Description
	if input.ImageURL != "" {
		m.ImageURL = input.ImageURL
	}
	m.UpdatedAt = time.Now().UTC()
	return m, nil
}

func (r *fakeModelRepo) Delete(_ context.Context, brandID, modelID primitive.ObjectID) (*model.Model, error) {
	r.calls++
	m, ok := r.models[modelID]
	if !ok || m.BrandID != brandID {
		return nil, apperrors.NotFound("model not found")
	}
	delete(r.models, modelID)
	return m, nil
}

type fakeVariantRepo struct {
	variants map[primitive.ObjectID]*variant.Variant
	calls    int
}

func newFakeVariantRepo() *fakeVariantRepo {
	return &fakeVariantRepo{variants: map[primitive.ObjectID]*variant.Variant{}}
}

func (r *fakeVariantRepo) ListByModel(_ context.Context, modelID primitive.ObjectID) ([]*variant.Variant, error) {
	r.calls++
	out := []*variant.Variant{}
	for _, v := range r.variants {
		if v.ModelID == modelID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeVariantRepo) Get(_ context.Context, modelID, variantID primitive.ObjectID) (*variant.Variant, error) {
	r.calls++
	v, ok := r.variants[variantID]
	if !ok || v.ModelID != modelID {
		return nil, apperrors.NotFound("variant not found")
	}
	return v, nil
}

func (r *fakeVariantRepo) Create(_ context.Context, input variant.CreateVariantInput) (*variant.Variant, error) {
	r.calls++
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
	r.variants[v.ID] = v
	return v, nil
}

func (r *fakeVariantRepo) Update(_ context.Context, modelID, variantID primitive.ObjectID, input variant.UpdateVariantInput) (*variant.Variant, error) {
	r.calls++
	v, ok := r.variants[variantID]
	if !ok || v.ModelID != modelID {
		return nil, apperrors.NotFound("variant not found")
	}
	v.Name = input.Name
	if input.RKID != "" {
		v.RKID = input.RKID
	}
	if input.ImageURL != "" {
		v.ImageURL = input.ImageURL
	}
	if input.Images != nil {
		v.Images = input.Images
	}
	if input.VehicleInfo != nil {
		v.VehicleInfo = input.VehicleInfo
	}
	if input.KeyBladeProfiles != nil {
		v.KeyBladeProfiles = input.KeyBladeProfiles
	}
	if input.ProgrammingInfo != nil {
		v.ProgrammingInfo = input.ProgrammingInfo
	}
	if input.Pathways != nil {
		v.Pathways = input.Pathways
	}
	if input.Resources != nil {
		v.Resources = input.Resources
	}
	if input.NewModelID != nil {
		v.ModelID = *input.NewModelID
	}
	v.UpdatedAt = time.Now().UTC()
	return v, nil
}

func (r *fakeVariantRepo) Delete(_ context.Context, modelID, variantID primitive.ObjectID) (*variant.Variant, error) {
	r.calls++
	v, ok := r.variants[variantID]
	if !ok || v.ModelID != modelID {
		return nil, apperrors.NotFound("variant not found")
	}
	delete(r.variants, variantID)
	return v, nil
}

type fakeAuthorizer struct {
	lastKey         string
	lastContentType string
	fail            bool
}

func (f *fakeAuthorizer) GeneratePresignedUpload(objectKey, contentType string) (*s3.PresignedUpload, error) {
	if f.fail {
		return nil, apperrors.ErrInternalServer
	}
	f.lastKey = objectKey
	f.lastContentType = contentType
	return &s3.PresignedUpload{
		URL: "https://bucket.s3.eu-west-2.amazonaws.com/",
		Fields: map[string]string{
			"Content-Type": contentType,
			"key":          objectKey,
		},
	}, nil
}

func (f *fakeAuthorizer) PublicURL(objectKey string) string {
	return "https://bucket.s3.eu-west-2.amazonaws.com/" + objectKey
}
