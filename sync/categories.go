package sync

import "strings"

// Canonical menu categories. Every vendor spelling converges onto one of
// these so the dashboard and the public view filter on a single vocabulary.
const (
	CategoryFlower       = "Flower"
	CategoryPreRolls     = "Pre-Rolls"
	CategoryVaporizers   = "Vaporizers"
	CategoryConcentrates = "Concentrates"
	CategoryEdibles      = "Edibles"
	CategoryBeverages    = "Beverages"
	CategoryTinctures    = "Tinctures"
	CategoryTopicals     = "Topicals"
	CategoryAccessories  = "Accessories"
	CategoryOther        = "Other"
)

var categoryAliases = map[string]string{
	"flower":        CategoryFlower,
	"flowers":       CategoryFlower,
	"bud":           CategoryFlower,
	"preroll":       CategoryPreRolls,
	"prerolls":      CategoryPreRolls,
	"pre-roll":      CategoryPreRolls,
	"pre-rolls":     CategoryPreRolls,
	"pre_rolls":     CategoryPreRolls,
	"joint":         CategoryPreRolls,
	"joints":        CategoryPreRolls,
	"vape":          CategoryVaporizers,
	"vapes":         CategoryVaporizers,
	"vaporizer":     CategoryVaporizers,
	"vaporizers":    CategoryVaporizers,
	"cartridge":     CategoryVaporizers,
	"cartridges":    CategoryVaporizers,
	"carts":         CategoryVaporizers,
	"concentrate":   CategoryConcentrates,
	"concentrates":  CategoryConcentrates,
	"extract":       CategoryConcentrates,
	"extracts":      CategoryConcentrates,
	"wax":           CategoryConcentrates,
	"shatter":       CategoryConcentrates,
	"rosin":         CategoryConcentrates,
	"edible":        CategoryEdibles,
	"edibles":       CategoryEdibles,
	"gummies":       CategoryEdibles,
	"chocolates":    CategoryEdibles,
	"beverage":      CategoryBeverages,
	"beverages":     CategoryBeverages,
	"drinks":        CategoryBeverages,
	"tincture":      CategoryTinctures,
	"tinctures":     CategoryTinctures,
	"sublingual":    CategoryTinctures,
	"topical":       CategoryTopicals,
	"topicals":      CategoryTopicals,
	"lotion":        CategoryTopicals,
	"balm":          CategoryTopicals,
	"accessory":     CategoryAccessories,
	"accessories":   CategoryAccessories,
	"gear":          CategoryAccessories,
	"merchandise":   CategoryAccessories,
	"merch":         CategoryAccessories,
	"miscellaneous": CategoryOther,
	"misc":          CategoryOther,
	"other":         CategoryOther,
}

// NormalizeCategory folds a vendor category spelling into the canonical
// taxonomy. Unknown and empty spellings land in Other rather than leaking
// vendor vocabulary into the catalog.
func NormalizeCategory(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := categoryAliases[key]; ok {
		return canonical
	}
	return CategoryOther
}
