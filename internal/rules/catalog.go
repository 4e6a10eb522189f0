package rules

import (
	"regexp"

	"github.com/philint/philint/internal/types"
)

// Catalog categories in report order.
const (
	PhoneNumbers     types.Category = "phone_numbers"
	EmailAddresses   types.Category = "email_addresses"
	Names            types.Category = "names"
	MedicalIDs       types.Category = "medical_ids"
	Addresses        types.Category = "addresses"
	MedicalTerms     types.Category = "medical_terms"
	DatesWithContext types.Category = "dates_with_context"
	SSNPatterns      types.Category = "ssn_patterns"
	CreditCards      types.Category = "credit_cards"
	CommonPHITerms   types.Category = "common_phi_terms"
)

// entry pairs a category with its ordered pattern sources. Order within a
// category is not semantically meaningful but is kept stable so report
// output is reproducible run to run.
type entry struct {
	category types.Category
	patterns []string
}

// Pattern sources. All are compiled case-insensitive. Broad numeric rules
// (bare 9/10-digit) are deliberately kept: narrowing them is a policy call
// left to category disabling, not the catalog.
var sources = []entry{
	{PhoneNumbers, []string{
		`\b[6-9]\d{9}\b`,            // Indian mobile
		`\+91[6-9]\d{9}\b`,          // Indian mobile with country code
		`\b91[6-9]\d{9}\b`,          // Indian mobile with 91 prefix
		`\(\d{3}\)\s*\d{3}-\d{4}`,   // US parenthesized
		`\d{3}-\d{3}-\d{4}`,         // US dashed
		`\d{10}`,                    // generic 10-digit number
	}},
	{EmailAddresses, []string{
		`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
	}},
	{Names, []string{
		`\b(?:Dr\.?|Doctor)\s+[A-Z][a-z]+\s+[A-Z][a-z]+\b`,
		`\b(?:Patient|Pt\.?)\s+[A-Z][a-z]+\s+[A-Z][a-z]+\b`,
		`\b[A-Z][a-z]+\s+[A-Z][a-z]+\s+[A-Z][a-z]+\b`, // bare three-token name
	}},
	{MedicalIDs, []string{
		`\bMRN\s*:?\s*[A-Za-z0-9-]+\b`,
		`\bPatient\s*ID\s*:?\s*[A-Za-z0-9-]+\b`,
		`\bEncounter\s*ID\s*:?\s*[A-Za-z0-9-]+\b`,
		`\bClinic\s*ID\s*:?\s*[A-Za-z0-9-]+\b`,
	}},
	{Addresses, []string{
		`\b\d+\s+[A-Za-z\s]+(?:Street|Road|Avenue|Lane|Colony|Nagar|Pur|Pura)\b`,
		`\b[A-Za-z\s]+,\s*[A-Za-z\s]+,\s*\d{6}\b`, // city, state, 6-digit PIN
	}},
	{MedicalTerms, []string{
		`\b(?:Patient|Pt\.?)\s*:?\s*[A-Za-z0-9\s]+`,
		`\b(?:Diagnosis|Dx\.?)\s*:?\s*[A-Za-z0-9\s]+`,
		`\b(?:Symptoms|Sx\.?)\s*:?\s*[A-Za-z0-9\s]+`,
		`\b(?:Medication|Meds\.?)\s*:?\s*[A-Za-z0-9\s]+`,
	}},
	{DatesWithContext, []string{
		`\b(?:DOB|Birth)\s*:?\s*\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`,
		`\b(?:Admission|Discharge)\s*:?\s*\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`,
	}},
	{SSNPatterns, []string{
		`\b\d{3}-\d{2}-\d{4}\b`,
		`\b\d{9}\b`, // bare 9-digit number
	}},
	{CreditCards, []string{
		`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`,
	}},
	{CommonPHITerms, []string{
		`\b(?:PHI|PII|Personal|Health|Medical)\s*[A-Za-z0-9\s]*\b`,
		`\b(?:Confidential|Sensitive|Private)\s*[A-Za-z0-9\s]*\b`,
	}},
}

var (
	categories []types.Category
	catalog    map[types.Category][]*regexp.Regexp
)

func init() {
	catalog = make(map[types.Category][]*regexp.Regexp, len(sources))
	for _, e := range sources {
		compiled := make([]*regexp.Regexp, 0, len(e.patterns))
		for _, p := range e.patterns {
			// An uncompilable pattern is a construction defect; fail loudly
			// at startup rather than dropping it.
			compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
		}
		categories = append(categories, e.category)
		catalog[e.category] = compiled
	}
}

// Categories returns the catalog's categories in iteration order.
func Categories() []types.Category {
	out := make([]types.Category, len(categories))
	copy(out, categories)
	return out
}

// Rules returns the full category → ordered pattern mapping. The returned
// map is shared and must be treated as read-only.
func Rules() map[types.Category][]*regexp.Regexp {
	return catalog
}

// Sources returns the raw pattern text per category, for the rules listing
// command. Order matches Categories.
func Sources(c types.Category) []string {
	for _, e := range sources {
		if e.category == c {
			out := make([]string, len(e.patterns))
			copy(out, e.patterns)
			return out
		}
	}
	return nil
}

// Valid reports whether name is a known category.
func Valid(name string) bool {
	_, ok := catalog[types.Category(name)]
	return ok
}
