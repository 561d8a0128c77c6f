package output

import (
	"strings"

	"github.com/PaesslerAG/jsonpath"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
)

// applyJSONPath extracts a value from data using a JSONPath expression.
// A leading "$" is implied when missing.
func applyJSONPath(data interface{}, path string) (interface{}, error) {
	normalized := normalizeJSONPath(path)
	if normalized == "" {
		return nil, clierrors.NewUserError("invalid --jsonpath value", "Example: --jsonpath '$.groups[0].key'")
	}

	normalizedData, err := normalizeToInterface(data)
	if err != nil {
		return nil, err
	}

	value, err := jsonpath.Get(normalized, normalizedData)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --jsonpath value", "Example: --jsonpath '$.groups[0].key'")
	}
	return value, nil
}

func normalizeJSONPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(trimmed, "$"), strings.HasPrefix(trimmed, "@"):
		// keep as-is
	case strings.HasPrefix(trimmed, "."), strings.HasPrefix(trimmed, "["):
		trimmed = "$" + trimmed
	default:
		trimmed = "$." + trimmed
	}
	return trimmed
}
