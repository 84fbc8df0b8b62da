package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// maxSchemeFileSize caps scheme files at 1 MiB.
const maxSchemeFileSize = 1 << 20

// LoadScheme reads a Scheme from a JSON file such as
//
//	{"match": 5, "mismatch": -2, "indel": -4, "co_gap": 0}
//
// Fields omitted from the file keep their DefaultScheme values, so partial
// files are safe. The file must carry a .json extension.
func LoadScheme(path string) (Scheme, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Scheme{}, fmt.Errorf("scoring: scheme file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return Scheme{}, fmt.Errorf("scoring: stat scheme file: %w", err)
	}
	if info.Size() > maxSchemeFileSize {
		return Scheme{}, fmt.Errorf("scoring: scheme file too large: %d bytes (max %d)", info.Size(), maxSchemeFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Scheme{}, fmt.Errorf("scoring: read scheme file: %w", err)
	}

	s := DefaultScheme()
	if err := json.Unmarshal(data, &s); err != nil {
		return Scheme{}, fmt.Errorf("scoring: parse %s: %w", cleanPath, err)
	}
	if err := s.Validate(); err != nil {
		return Scheme{}, fmt.Errorf("scoring: %s: %w", cleanPath, err)
	}

	return s, nil
}
