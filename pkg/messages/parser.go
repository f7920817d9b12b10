package messages

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser turns catalog file content into a flat identifier -> template map.
// Identifiers are message codes (CONTAINER_FIXED_SIZE) or dotted message
// keys (container.fixedSize); nested maps are joined with dots.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]string, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q must be a string or a map, got %T", ErrInvalidStructure, key, v)
		}
	}
	return nil
}
