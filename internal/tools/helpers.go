package tools

import "fmt"

// JSON numbers arrive as float64; these helpers normalize the loosely typed
// tool input maps.

func strArg(input map[string]interface{}, key string) string {
	s, _ := input[key].(string)
	return s
}

func intArg(input map[string]interface{}, key string, def int) int {
	switch v := input[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func floatArg(input map[string]interface{}, key string, def float64) float64 {
	switch v := input[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// optFloatArg distinguishes "absent" from zero.
func optFloatArg(input map[string]interface{}, key string) *float64 {
	switch v := input[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func boolArg(input map[string]interface{}, key string, def bool) bool {
	if v, ok := input[key].(bool); ok {
		return v
	}
	return def
}

// optBoolArg distinguishes "absent" from false.
func optBoolArg(input map[string]interface{}, key string) *bool {
	if v, ok := input[key].(bool); ok {
		return &v
	}
	return nil
}

func strSliceArg(input map[string]interface{}, key string) ([]string, error) {
	raw, ok := input[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

func floatSliceArg(raw []interface{}, key string) ([]float64, error) {
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("%s must contain only numbers", key)
		}
		out = append(out, f)
	}
	return out, nil
}
