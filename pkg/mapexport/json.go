package mapexport

import (
	"encoding/json"
	"os"

	"github.com/deanfra/erebos-level-generator/pkg/mapstate"
)

// ExportJSON serializes the complete map, including every placed room
// and its door connections, to JSON with 2-space indentation.
func ExportJSON(m *mapstate.Map) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// ExportJSONCompact serializes the map without indentation, suitable
// for storage or transmission.
func ExportJSONCompact(m *mapstate.Map) ([]byte, error) {
	return json.Marshal(m)
}

// SaveJSONToFile exports the map to an indented JSON file. The file is
// created with 0644 permissions.
func SaveJSONToFile(m *mapstate.Map, filepath string) error {
	data, err := ExportJSON(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONCompactToFile exports the map to a compact JSON file. The
// file is created with 0644 permissions.
func SaveJSONCompactToFile(m *mapstate.Map, filepath string) error {
	data, err := ExportJSONCompact(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
