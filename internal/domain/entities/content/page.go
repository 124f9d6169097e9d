package content

import (
	"encoding/json"
	"time"
)

// Page holds one editable page's content as an opaque serialized blob.
// The blob is a string-keyed mapping of field name to text or image
// path; no schema is enforced beyond what each editor screen expects.
type Page struct {
	ID        int64     `json:"id"`
	PageKey   string    `json:"page_key"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fields parses the stored blob into its field mapping. Invalid or
// empty blobs parse to an empty mapping, never an error.
func (p *Page) Fields() map[string]string {
	return ParseContent(p.Content)
}

// ParseContent parses a page content blob. Malformed input yields an
// empty mapping so a broken blob can never take a page down.
func ParseContent(blob string) map[string]string {
	fields := make(map[string]string)
	if blob == "" {
		return fields
	}
	if err := json.Unmarshal([]byte(blob), &fields); err != nil {
		return make(map[string]string)
	}
	return fields
}

// MergeContent overlays stored fields over hardcoded defaults: a
// stored non-empty value wins, everything else keeps its default.
func MergeContent(defaults map[string]string, stored map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(stored))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range stored {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}
