package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Request limits
const (
	MaxJSONSize    = 1 * 1024 * 1024 // 1MB - maximum request body
	MaxIDLength    = 128
	MaxParamsDepth = 8
)

// ToolIDPattern allows alphanumeric, hyphens, underscores, and dots (for service.tool format)
var ToolIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidateToolID checks a "<service>.<tool>" identifier
func ValidateToolID(toolID string) error {
	if toolID == "" {
		return fmt.Errorf("tool_id is required")
	}
	if len(toolID) > MaxIDLength {
		return fmt.Errorf("tool_id exceeds maximum length of %d", MaxIDLength)
	}
	if !ToolIDPattern.MatchString(toolID) {
		return fmt.Errorf("tool_id contains invalid characters")
	}
	if !strings.Contains(toolID, ".") {
		return fmt.Errorf("tool_id must have the form <service>.<tool>")
	}
	return nil
}

// ValidateJSONDepth checks if JSON nesting depth is within limits
func ValidateJSONDepth(data interface{}, maxDepth int) error {
	return checkDepth(data, 0, maxDepth)
}

func checkDepth(data interface{}, currentDepth int, maxDepth int) error {
	if currentDepth > maxDepth {
		return fmt.Errorf("JSON nesting depth %d exceeds maximum %d", currentDepth, maxDepth)
	}

	switch v := data.(type) {
	case map[string]interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, value := range v {
			if err := checkDepth(value, currentDepth+1, maxDepth); err != nil {
				return err
			}
		}
	}

	return nil
}
