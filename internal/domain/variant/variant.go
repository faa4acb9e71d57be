package variant

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotApplicable is the sentinel substituted for missing required sub-fields
// in programming info entries.
const NotApplicable = "Not Applicable"

// Variant is a specific configuration of a Model, carrying the key/remote
// programming reference data rendered by the variant editor.
type Variant struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	RKID             string             `json:"rkid,omitempty" bson:"rkid,omitempty"`
	ImageURL         string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Images           *Images            `json:"images,omitempty" bson:"images,omitempty"`
	BrandID          primitive.ObjectID `json:"brandId" bson:"brandId"`
	ModelID          primitive.ObjectID `json:"modelId" bson:"modelId"`
	VehicleInfo      *VehicleInfo       `json:"vehicleInfo,omitempty" bson:"vehicleInfo,omitempty"`
	KeyBladeProfiles map[string]Profile `json:"keyBladeProfiles,omitempty" bson:"keyBladeProfiles,omitempty"`
	ProgrammingInfo  *ProgrammingInfo   `json:"programmingInfo,omitempty" bson:"programmingInfo,omitempty"`
	Pathways         []Pathway          `json:"pathways,omitempty" bson:"pathways,omitempty"`
	Resources        *Resources         `json:"resources,omitempty" bson:"resources,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Images holds the current image slots; ImageURL on Variant is the legacy
// single-image field kept for older documents.
type Images struct {
	Car string `json:"car,omitempty" bson:"car,omitempty"`
}

// VehicleInfo is a flat bag of optional strings plus positionally correlated
// name/link array pairs. The pairing is a caller convention, not enforced
// here.
type VehicleInfo struct {
	Make                 string   `json:"make,omitempty" bson:"make,omitempty"`
	Model                string   `json:"model,omitempty" bson:"model,omitempty"`
	Series               string   `json:"series,omitempty" bson:"series,omitempty"`
	YearRange            string   `json:"yearRange,omitempty" bson:"yearRange,omitempty"`
	KeyType              string   `json:"keyType,omitempty" bson:"keyType,omitempty"`
	TransponderChip      []string `json:"transponderChip,omitempty" bson:"transponderChip,omitempty"`
	TransponderChipLinks []string `json:"transponderChipLinks,omitempty" bson:"transponderChipLinks,omitempty"`
	RemoteFrequency      string   `json:"remoteFrequency,omitempty" bson:"remoteFrequency,omitempty"`
	KingParts            []string `json:"KingParts,omitempty" bson:"KingParts,omitempty"`
	KingPartsLinks       []string `json:"KingPartsLinks,omitempty" bson:"KingPartsLinks,omitempty"`
	Lishi                string   `json:"Lishi,omitempty" bson:"Lishi,omitempty"`
	LishiLink            string   `json:"LishiLink,omitempty" bson:"LishiLink,omitempty"`
}

// Profile is one key-blade profile reference.
type Profile struct {
	RefNo string `json:"refNo,omitempty" bson:"refNo,omitempty"`
	Link  string `json:"link,omitempty" bson:"link,omitempty"`
}

// Option is one entry in a programming info category. The Color field keeps
// its historical capitalized wire name.
type Option struct {
	Name   string   `json:"name" bson:"name"`
	Models []string `json:"models" bson:"models"`
	Color  string   `json:"Color" bson:"Color"`
}

// ProgrammingInfo holds the nine fixed procedure categories.
type ProgrammingInfo struct {
	RemoteOptions     []Option `json:"remoteOptions" bson:"remoteOptions"`
	KeyBladeOptions   []Option `json:"keyBladeOptions" bson:"keyBladeOptions"`
	CloningOptions    []Option `json:"cloningOptions" bson:"cloningOptions"`
	AllKeysLost       []Option `json:"allKeysLost" bson:"allKeysLost"`
	AddSpareKey       []Option `json:"addSpareKey" bson:"addSpareKey"`
	AddRemote         []Option `json:"addRemote" bson:"addRemote"`
	PinRequired       []Option `json:"pinRequired" bson:"pinRequired"`
	PinReading        []Option `json:"pinReading" bson:"pinReading"`
	RemoteProgramming []Option `json:"remoteProgramming" bson:"remoteProgramming"`
}

// Pathway is a free-form navigation entry.
type Pathway struct {
	Name string `json:"name,omitempty" bson:"name,omitempty"`
	Path string `json:"path,omitempty" bson:"path,omitempty"`
}

type Resources struct {
	QuickReference *QuickReference `json:"quickReference,omitempty" bson:"quickReference,omitempty"`
	Videos         []Video         `json:"videos,omitempty" bson:"videos,omitempty"`
	Documents      []Document      `json:"documents,omitempty" bson:"documents,omitempty"`
}

type QuickReference struct {
	EmergencyStart  string `json:"emergencyStart,omitempty" bson:"emergencyStart,omitempty"`
	OBDPortLocation string `json:"obdPortLocation,omitempty" bson:"obdPortLocation,omitempty"`
}

type Video struct {
	Title   string `json:"title,omitempty" bson:"title,omitempty"`
	EmbedID string `json:"embedId,omitempty" bson:"embedId,omitempty"`
}

type Document struct {
	Title string `json:"title,omitempty" bson:"title,omitempty"`
	Link  string `json:"link,omitempty" bson:"link,omitempty"`
}

type CreateVariantInput struct {
	BrandID          primitive.ObjectID
	ModelID          primitive.ObjectID
	Name             string
	RKID             string
	ImageURL         string
	Images           *Images
	VehicleInfo      *VehicleInfo
	KeyBladeProfiles map[string]Profile
	ProgrammingInfo  *ProgrammingInfo
	Pathways         []Pathway
	Resources        *Resources
}

// UpdateVariantInput carries only the fields present in an update request;
// nil fields are left untouched in the stored document.
type UpdateVariantInput struct {
	Name             string
	RKID             string
	ImageURL         string
	Images           *Images
	VehicleInfo      *VehicleInfo
	KeyBladeProfiles map[string]Profile
	ProgrammingInfo  *ProgrammingInfo
	Pathways         []Pathway
	Resources        *Resources
	NewModelID       *primitive.ObjectID
}

// fillDefaults replaces blank required sub-fields of a single option with the
// sentinel. Each field is handled independently.
func fillDefaults(opt Option) Option {
	if strings.TrimSpace(opt.Name) == "" {
		opt.Name = NotApplicable
	} else {
		opt.Name = strings.TrimSpace(opt.Name)
	}

	if strings.TrimSpace(opt.Color) == "" {
		opt.Color = NotApplicable
	} else {
		opt.Color = strings.TrimSpace(opt.Color)
	}

	if len(opt.Models) == 0 {
		opt.Models = []string{NotApplicable}
	}

	return opt
}

func normalizeCategory(opts []Option) []Option {
	if len(opts) == 0 {
		return []Option{fillDefaults(Option{})}
	}

	out := make([]Option, len(opts))
	for i, opt := range opts {
		out[i] = fillDefaults(opt)
	}
	return out
}

// NormalizeProgrammingInfo walks every category and passes every entry
// through the sentinel fill rule. Empty categories come back as a single
// fully-sentinel entry, so no category is ever persisted empty.
func NormalizeProgrammingInfo(pi *ProgrammingInfo) *ProgrammingInfo {
	if pi == nil {
		return nil
	}

	return &ProgrammingInfo{
		RemoteOptions:     normalizeCategory(pi.RemoteOptions),
		KeyBladeOptions:   normalizeCategory(pi.KeyBladeOptions),
		CloningOptions:    normalizeCategory(pi.CloningOptions),
		AllKeysLost:       normalizeCategory(pi.AllKeysLost),
		AddSpareKey:       normalizeCategory(pi.AddSpareKey),
		AddRemote:         normalizeCategory(pi.AddRemote),
		PinRequired:       normalizeCategory(pi.PinRequired),
		PinReading:        normalizeCategory(pi.PinReading),
		RemoteProgramming: normalizeCategory(pi.RemoteProgramming),
	}
}
