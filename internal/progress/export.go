package progress

import (
	"encoding/json"
	"fmt"

	"github.com/abbr-trainer/backend/internal/domain/item"
)

// DefaultExportLimit is how many characters of the export are shown.
const DefaultExportLimit = 500

// ExportMarker is appended when an export was cut short.
const ExportMarker = "\n…(truncated)"

// Export renders items as indented JSON for manual inspection. When limit is
// positive and the text is longer than limit characters, it is cut at limit
// and ExportMarker is appended.
func Export(items []item.Item, limit int) (string, error) {
	if items == nil {
		items = []item.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export progress: %w", err)
	}

	text := []rune(string(data))
	if limit <= 0 || len(text) <= limit {
		return string(data), nil
	}
	return string(text[:limit]) + ExportMarker, nil
}
