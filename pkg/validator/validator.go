package validator

import (
	"fmt"
	"mime"
	"regexp"
	"strings"
)

const (
	maxNameLen        = 255
	maxFileNameLen    = 255
	maxContentTypeLen = 255
	asciiControlStart = 32
	asciiDelete       = 127

	errObjectIDInvalidFmt      = "invalid id format"
	errNameEmptyFmt            = "name cannot be empty"
	errNameMaxLengthFmt        = "name must not exceed %d characters"
	errNameControlCharsFmt     = "name cannot contain control characters"
	errFileNameEmptyFmt        = "file name cannot be empty"
	errFileNameMaxLengthFmt    = "file name must not exceed %d characters"
	errFileNamePathSepFmt      = "file name cannot contain path separators"
	errFileNameControlCharsFmt = "file name cannot contain control characters"
	errContentTypeEmptyFmt     = "content type cannot be empty"
	errContentTypeMaxLengthFmt = "content type must not exceed %d characters"
	errContentTypeInvalidFmt   = "invalid content type"
)

// objectIDRegex matches the 24-character hexadecimal shape of document ids.
var objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ObjectID rejects any identifier that is not a 24-character hex string,
// before a lookup ever reaches the database.
func ObjectID(id string) error {
	if !objectIDRegex.MatchString(id) {
		return fmt.Errorf(errObjectIDInvalidFmt)
	}
	return nil
}

func Name(name string) error {
	if name == "" {
		return fmt.Errorf(errNameEmptyFmt)
	}

	if len(name) > maxNameLen {
		return fmt.Errorf(errNameMaxLengthFmt, maxNameLen)
	}

	if containsControlChars(name) {
		return fmt.Errorf(errNameControlCharsFmt)
	}

	return nil
}

func FileName(name string) error {
	if name == "" {
		return fmt.Errorf(errFileNameEmptyFmt)
	}

	if len(name) > maxFileNameLen {
		return fmt.Errorf(errFileNameMaxLengthFmt, maxFileNameLen)
	}

	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf(errFileNamePathSepFmt)
	}

	if containsControlChars(name) {
		return fmt.Errorf(errFileNameControlCharsFmt)
	}

	return nil
}

// SanitizeContentType parses and normalizes a MIME type, stripping parameters.
func SanitizeContentType(contentType string) (string, error) {
	if contentType == "" {
		return "", fmt.Errorf(errContentTypeEmptyFmt)
	}

	if len(contentType) > maxContentTypeLen {
		return "", fmt.Errorf(errContentTypeMaxLengthFmt, maxContentTypeLen)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf(errContentTypeInvalidFmt)
	}

	return mediaType, nil
}

func containsControlChars(s string) bool {
	for _, r := range s {
		if r < asciiControlStart || r == asciiDelete {
			return true
		}
	}
	return false
}
