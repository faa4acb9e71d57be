package brand

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand is a top-level catalog entry (manufacturer). Names are unique across
// the whole catalog, compared case-insensitively.
type Brand struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	LogoURL   string             `json:"logoUrl" bson:"logoUrl"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateBrandInput struct {
	Name    string
	LogoURL string
}

type UpdateBrandInput struct {
	Name    string
	LogoURL string
}
