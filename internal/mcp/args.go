package mcp

import (
	"fmt"
	"strconv"
)

// MissingArgumentError reports a required argument that is absent or null.
// The message text is part of the tool contract.
type MissingArgumentError struct {
	Key string
}

func (e *MissingArgumentError) Error() string {
	return "Missing required argument: " + e.Key
}

// InvalidArgumentError reports an argument that is present but not parseable
// as the requested type.
type InvalidArgumentError struct {
	Key string
}

func (e *InvalidArgumentError) Error() string {
	return "Invalid number for argument: " + e.Key
}

// UnknownToolError reports a dispatch to a name with no registered handler.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "Unknown tool: " + e.Name
}

// coerceString renders any JSON-decoded value as a string. Present-but-falsy
// values keep their literal form ("0", "false"); they are never treated as
// missing.
func coerceString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// RequireString extracts a required argument and coerces it to a string.
func RequireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", &MissingArgumentError{Key: key}
	}
	return coerceString(v), nil
}

// OptionalString extracts an optional argument; nil means absent or null.
func OptionalString(args map[string]any, key string) *string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}
	s := coerceString(v)
	return &s
}

// RequireNumber extracts a required numeric argument.
func RequireNumber(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, &MissingArgumentError{Key: key}
	}
	n, err := toNumber(v)
	if err != nil {
		return 0, &InvalidArgumentError{Key: key}
	}
	return n, nil
}

// OptionalNumber extracts an optional numeric argument; nil means absent or
// null. A present but unparseable value is an InvalidArgumentError.
func OptionalNumber(args map[string]any, key string) (*float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	n, err := toNumber(v)
	if err != nil {
		return nil, &InvalidArgumentError{Key: key}
	}
	return &n, nil
}

func toNumber(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		return strconv.ParseFloat(x, 64)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
