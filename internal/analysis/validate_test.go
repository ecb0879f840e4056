package analysis

import (
	"testing"
)

func TestValidateLabelFields_Accepts(t *testing.T) {
	schema := BuildLabelJSONSchema([]string{"Wine", "MaltBeverage"})
	doc := []byte(`{
		"brand_name": "Old Harbor",
		"beverage_type": "Wine",
		"alcohol_content": "13.5",
		"has_government_warning": true,
		"confidence": 0.92
	}`)
	if err := ValidateJSONAgainstSchema(schema, doc); err != nil {
		t.Fatalf("expected valid document, got: %v", err)
	}
}

func TestValidateLabelFields_RejectsUnknownBeverageType(t *testing.T) {
	schema := BuildLabelJSONSchema([]string{"Wine"})
	doc := []byte(`{
		"brand_name": "Old Harbor",
		"beverage_type": "Kombucha",
		"has_government_warning": false
	}`)
	if err := ValidateJSONAgainstSchema(schema, doc); err == nil {
		t.Fatal("expected enum violation, got nil")
	}
}

func TestValidateLabelFields_RejectsMissingRequired(t *testing.T) {
	schema := BuildLabelJSONSchema(nil)
	doc := []byte(`{"beverage_type": "Wine"}`)
	if err := ValidateJSONAgainstSchema(schema, doc); err == nil {
		t.Fatal("expected missing-required violation, got nil")
	}
}

func TestValidateLabelFields_RejectsBadAlcoholContent(t *testing.T) {
	schema := BuildLabelJSONSchema(nil)
	doc := []byte(`{
		"brand_name": "Old Harbor",
		"beverage_type": "Wine",
		"alcohol_content": "13.5% ABV",
		"has_government_warning": true
	}`)
	if err := ValidateJSONAgainstSchema(schema, doc); err == nil {
		t.Fatal("expected pattern violation, got nil")
	}
}
