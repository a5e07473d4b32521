package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// maxTypeNameLength bounds part type names in catalogs and diagrams.
const maxTypeNameLength = 64

// typeNameRegex matches part type names such as "ElbowTube" or "kettle-in".
var typeNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateTypeName validates a part type name used as a catalog key.
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidCatalog, "part type name cannot be empty")
	}
	if len(name) > maxTypeNameLength {
		return New(ErrCodeInvalidCatalog, "part type name too long (max %d characters)", maxTypeNameLength)
	}
	if !typeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidCatalog, "invalid part type name: %q", name)
	}
	return nil
}

// ValidatePath validates a diagram or catalog file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .json or .toml
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".toml":
		return nil
	default:
		return New(ErrCodeInvalidFormat, "unsupported file extension %q (must be .json or .toml)", filepath.Ext(path))
	}
}
