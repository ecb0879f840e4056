package constants

import "strings"

// BeverageType is the regulated product class printed on the label.
type BeverageType string

const (
	Wine             BeverageType = "Wine"
	MaltBeverage     BeverageType = "MaltBeverage"
	DistilledSpirits BeverageType = "DistilledSpirits"
	Cider            BeverageType = "Cider"
	Sake             BeverageType = "Sake"
	OtherBeverage    BeverageType = "Other"
)

var allBeverageTypes = []BeverageType{
	Wine,
	MaltBeverage,
	DistilledSpirits,
	Cider,
	Sake,
	OtherBeverage,
}

// BeverageTypesAsStrings returns the taxonomy for schema enums and prompts.
func BeverageTypesAsStrings() []string {
	result := make([]string, len(allBeverageTypes))
	for i, bt := range allBeverageTypes {
		result[i] = string(bt)
	}
	return result
}

// CanonicalizeBeverageType maps free-form analyzer output onto the taxonomy.
func CanonicalizeBeverageType(input string) (BeverageType, bool) {
	if input == "" {
		return OtherBeverage, false
	}
	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]BeverageType{
		"wine":              Wine,
		"sparkling wine":    Wine,
		"table wine":        Wine,
		"beer":              MaltBeverage,
		"malt beverage":     MaltBeverage,
		"ale":               MaltBeverage,
		"lager":             MaltBeverage,
		"stout":             MaltBeverage,
		"spirits":           DistilledSpirits,
		"distilled spirits": DistilledSpirits,
		"whiskey":           DistilledSpirits,
		"whisky":            DistilledSpirits,
		"vodka":             DistilledSpirits,
		"gin":               DistilledSpirits,
		"rum":               DistilledSpirits,
		"tequila":           DistilledSpirits,
		"brandy":            DistilledSpirits,
		"cider":             Cider,
		"hard cider":        Cider,
		"sake":              Sake,
	}
	if bt, ok := synonyms[normalized]; ok {
		return bt, true
	}

	for _, bt := range allBeverageTypes {
		if strings.EqualFold(string(bt), normalized) {
			return bt, true
		}
	}
	return OtherBeverage, false
}

// AllowedImageExtensions holds the accepted label-image extensions for
// batch ingestion, lowercased without the dot.
var AllowedImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
