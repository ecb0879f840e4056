package analysis

// BuildLabelJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the model as a structured output constraint and also use it
// locally to validate before trusting the response.
func BuildLabelJSONSchema(allowedBeverageTypes []string) map[string]any {
	props := map[string]any{
		"brand_name":             map[string]any{"type": "string", "minLength": 1},
		"beverage_type":          map[string]any{"type": "string"},
		"alcohol_content":        map[string]any{"type": "string", "pattern": `^\d{1,2}(\.\d{1,2})?$`},
		"net_contents":           map[string]any{"type": "string"},
		"producer_name":          map[string]any{"type": "string"},
		"has_government_warning": map[string]any{"type": "boolean"},
		"discrepancies": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{"brand_name", "beverage_type", "has_government_warning"}

	// Constrain beverage_type if a taxonomy is provided.
	if len(allowedBeverageTypes) > 0 {
		props["beverage_type"] = map[string]any{
			"type": "string",
			"enum": allowedBeverageTypes,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}
