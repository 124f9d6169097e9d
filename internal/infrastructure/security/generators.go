package security

import (
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenerateVisitorID generates a new visitor identifier. ULIDs sort by
// creation time, which keeps visitor rows naturally ordered.
func GenerateVisitorID() string {
	return "v_" + strings.ToLower(ulid.Make().String())
}

// GenerateUploadFilename builds a unique stored filename for an upload,
// preserving the (normalized) extension.
func GenerateUploadFilename(prefix, ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	if prefix != "" {
		name = prefix + "_" + name
	}
	return name + "." + ext
}
