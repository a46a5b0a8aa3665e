package compose

import (
	"strings"

	"ai-legalaid-be/internal/constant"
)

type categoryRule struct {
	category string
	terms    []string
}

// Rules are evaluated in order; the first hit wins, so the more specific
// areas come before the broad civil bucket.
var categoryRules = []categoryRule{
	{constant.CategoryConstitutional, []string{"constitution", "fundamental right", "article", "writ", "pil", "public interest litigation"}},
	{constant.CategoryCriminal, []string{"crime", "criminal", "murder", "theft", "ipc", "penal", "bail", "fir"}},
	{constant.CategoryConsumer, []string{"consumer", "defective", "unfair trade", "refund"}},
	{constant.CategoryCorporate, []string{"company", "director", "corporate", "shareholder"}},
	{constant.CategoryFamily, []string{"marriage", "divorce", "custody", "alimony", "succession", "adoption"}},
	{constant.CategoryProperty, []string{"property", "land", "tenant", "landlord", "lease", "registration of property"}},
	{constant.CategoryLabour, []string{"employment", "worker", "wages", "industrial dispute", "provident fund", "labour", "gratuity"}},
	{constant.CategoryCivil, []string{"contract", "breach", "agreement", "damages", "tort", "civil suit", "compensation"}},
}

// Classify assigns a legal category to the combined query and answer text.
// Purely lexical and deterministic.
func Classify(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.category
			}
		}
	}
	return constant.CategoryGeneral
}
