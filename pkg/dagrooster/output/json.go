// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
)

// ToJSON serializes a field catalog.
func ToJSON(fc *models.FieldCatalog, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(fc, "", "  ")
	}
	return json.Marshal(fc)
}
