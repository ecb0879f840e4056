package analysis

import "context"

// LabelFields is the normalized shape we want from the analyzer.
type LabelFields struct {
	BrandName         string   `json:"brand_name"`
	BeverageType      string   `json:"beverage_type"`
	AlcoholContent    string   `json:"alcohol_content,omitempty"` // percent ABV, decimal string
	NetContents       string   `json:"net_contents,omitempty"`
	ProducerName      string   `json:"producer_name,omitempty"`
	GovernmentWarning bool     `json:"has_government_warning"`
	Discrepancies     []string `json:"discrepancies,omitempty"` // mismatches vs the application data
	ModelConfidence   float32  `json:"confidence,omitempty"`    // 0..1
}

// ApplicationContext is what the applicant declared on the application form;
// the analyzer compares the label image against it.
type ApplicationContext struct {
	BrandName      string `json:"brand_name,omitempty"`
	BeverageType   string `json:"beverage_type,omitempty"`
	AlcoholContent string `json:"alcohol_content,omitempty"`
}

type AnalyzeRequest struct {
	ImagePath            string
	AllowedBeverageTypes []string
	Application          ApplicationContext
}

// Analyzer is the interface the batch processor depends on. The analysis
// itself is an opaque asynchronous operation; implementations must return
// an error rather than panic.
type Analyzer interface {
	AnalyzeLabel(ctx context.Context, req AnalyzeRequest) (LabelFields, []byte /*rawJSON*/, error)
}
