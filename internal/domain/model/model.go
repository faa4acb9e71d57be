package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Model is a vehicle model belonging to one Brand. Names are stored uppercase
// and are unique within their brand, compared case-insensitively.
type Model struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	BrandID     primitive.ObjectID `json:"brandId" bson:"brandId"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateModelInput struct {
	BrandID     primitive.ObjectID
	Name        string
	ImageURL    string
	Description string
}

type UpdateModelInput struct {
	Name        string
	Description string
	ImageURL    string
}

// NormalizeName applies the storage form of a model name: trimmed and
// uppercased. Every write path goes through this so the stored value never
// depends on what the caller sent.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
