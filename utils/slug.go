package utils

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// GenerateSlug builds a URL-safe slug from a listing name with a short
// random suffix for uniqueness.
func GenerateSlug(name string) string {
	return slug.Make(name) + "-" + uuid.NewString()[:8]
}
