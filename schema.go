package gemcall

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/skosovsky/gemcall/internal/cast"
)

// toGenaiSchema converts a JSON-Schema-shaped map into *genai.Schema.
// Handles type, description, format, properties, items, required, enum,
// nullable, minimum/maximum, and minItems/maxItems; recursive for nested
// objects and arrays. An unknown "type" is a caller mistake and fails with
// ErrConfiguration.
func toGenaiSchema(m map[string]any) (*genai.Schema, error) {
	if m == nil {
		return nil, nil
	}
	s := &genai.Schema{}
	if t, ok := m["type"].(string); ok && t != "" {
		typ, err := schemaType(t)
		if err != nil {
			return nil, err
		}
		s.Type = typ
	} else {
		// A missing type means object.
		s.Type = genai.TypeObject
	}
	if desc, ok := m["description"].(string); ok {
		s.Description = desc
	}
	if format, ok := m["format"].(string); ok {
		s.Format = format
	}
	if nullable, ok := m["nullable"].(bool); ok {
		s.Nullable = &nullable
	}
	if p, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(p))
		for k, v := range p {
			sub, ok := v.(map[string]any)
			if !ok {
				continue
			}
			conv, err := toGenaiSchema(sub)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", k, err)
			}
			if conv != nil {
				s.Properties[k] = conv
			}
		}
	}
	if r, ok := m["required"]; ok {
		if required, ok := cast.ToStringSlice(r); ok {
			s.Required = required
		}
	}
	if items, ok := m["items"].(map[string]any); ok {
		conv, err := toGenaiSchema(items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		s.Items = conv
	}
	if enum, ok := m["enum"]; ok {
		if values, ok := cast.ToStringSlice(enum); ok {
			s.Enum = values
		}
	}
	if v, ok := m["minimum"]; ok {
		if f, ok := cast.ToFloat64(v); ok {
			s.Minimum = &f
		}
	}
	if v, ok := m["maximum"]; ok {
		if f, ok := cast.ToFloat64(v); ok {
			s.Maximum = &f
		}
	}
	if v, ok := m["minItems"]; ok {
		if n, ok := cast.ToInt64(v); ok {
			s.MinItems = &n
		}
	}
	if v, ok := m["maxItems"]; ok {
		if n, ok := cast.ToInt64(v); ok {
			s.MaxItems = &n
		}
	}
	return s, nil
}

func schemaType(t string) (genai.Type, error) {
	switch strings.ToLower(t) {
	case "string":
		return genai.TypeString, nil
	case "number":
		return genai.TypeNumber, nil
	case "integer":
		return genai.TypeInteger, nil
	case "boolean":
		return genai.TypeBoolean, nil
	case "array":
		return genai.TypeArray, nil
	case "object":
		return genai.TypeObject, nil
	default:
		return genai.TypeUnspecified, fmt.Errorf("%w: unsupported schema type %q", ErrConfiguration, t)
	}
}
