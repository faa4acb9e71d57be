package s3

import (
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var nonAlphanumericRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name, collapses runs of non-alphanumeric characters
// to single hyphens and trims leading/trailing hyphens.
func Slugify(name string) string {
	slug := nonAlphanumericRuns.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// BuildObjectKey derives the storage key for an upload: the slugified brand
// name (when given) plus a random unique suffix and the original file
// extension, namespaced under folder. Without a brand name the key is just
// the random suffix.
func BuildObjectKey(folder, brandName, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	base := uuid.New().String()
	if slug := Slugify(brandName); slug != "" {
		base = slug + "-" + base
	}

	return folder + "/" + base + ext
}
