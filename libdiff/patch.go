package libdiff

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch taking the JSON document from
// to the JSON document to.
func MergePatch(from, to []byte) ([]byte, error) {
	d, err := jsonpatch.CreateMergePatch(from, to)
	if err != nil {
		return nil, fmt.Errorf("could not create merge patch: %w", err)
	}
	return d, nil
}
