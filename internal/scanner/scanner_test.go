package scanner

import (
	"reflect"
	"testing"

	"github.com/philint/philint/internal/rules"
	"github.com/philint/philint/internal/types"
)

func byCategory(vs []types.Violation, c types.Category) []types.Violation {
	var out []types.Violation
	for _, v := range vs {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

func TestScanMedicalID(t *testing.T) {
	file := types.NewFileIdentity("Controller.kt")
	vs := Scan(file, 7, "Patient ID: 48213")
	ids := byCategory(vs, rules.MedicalIDs)
	if len(ids) != 1 {
		t.Fatalf("expected 1 medical_ids violation, got %d", len(ids))
	}
	v := ids[0]
	if v.Path != "Controller.kt" || v.Line != 7 {
		t.Fatalf("wrong location: %s:%d", v.Path, v.Line)
	}
	if v.Message != "Potential medical_ids: Patient ID: 48213" {
		t.Fatalf("wrong message: %q", v.Message)
	}
}

func TestScanEmail(t *testing.T) {
	file := types.NewFileIdentity("Notes.md")
	vs := Scan(file, 1, "contact: jane.doe@hospital.org")
	emails := byCategory(vs, rules.EmailAddresses)
	if len(emails) != 1 {
		t.Fatalf("expected 1 email violation, got %d (all: %v)", len(emails), vs)
	}
	if emails[0].Match != "jane.doe@hospital.org" {
		t.Fatalf("wrong match: %q", emails[0].Match)
	}
}

func TestScanRuleDefinitionSelfExcluded(t *testing.T) {
	file := types.NewFileIdentity("phi_linter_rules.py")
	vs := Scan(file, 3, `r'\d{3}-\d{2}-\d{4}'`)
	if len(vs) != 0 {
		t.Fatalf("expected 0 violations for a rule definition line, got %v", vs)
	}
}

func TestScanCommentExcluded(t *testing.T) {
	file := types.NewFileIdentity("Service.kt")
	vs := Scan(file, 12, "// Patient John Smith called")
	if len(vs) != 0 {
		t.Fatalf("expected 0 violations for a comment line, got %v", vs)
	}
}

func TestScanTestFixtureExcluded(t *testing.T) {
	file := types.NewFileIdentity("PatientTest.kt")
	vs := Scan(file, 5, "user: test_patient_example")
	if len(vs) != 0 {
		t.Fatalf("expected 0 violations for test fixture line, got %v", vs)
	}
}

// A line matching rules from two categories yields one violation per
// category; no deduplication of the shared substring.
func TestCategoryIndependence(t *testing.T) {
	file := types.NewFileIdentity("Report.txt")
	vs := Scan(file, 1, "Medical history follows")
	if len(byCategory(vs, rules.CommonPHITerms)) == 0 {
		t.Fatal("expected a common_phi_terms violation")
	}
	vs = Scan(file, 1, "Diagnosis: Confidential condition")
	if len(byCategory(vs, rules.MedicalTerms)) == 0 {
		t.Fatal("expected a medical_terms violation")
	}
	if len(byCategory(vs, rules.CommonPHITerms)) == 0 {
		t.Fatal("expected a common_phi_terms violation on the same line")
	}
}

// Scan is a pure function: same inputs, same output, every call.
func TestScanRestartable(t *testing.T) {
	file := types.NewFileIdentity("Visit.kt")
	line := "DOB: 12/04/1987 reached at 555-123-4567"
	a := Scan(file, 2, line)
	b := Scan(file, 2, line)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("scan not deterministic:\n%v\n%v", a, b)
	}
	if len(a) == 0 {
		t.Fatal("expected violations")
	}
}

func TestScanDisabledCategory(t *testing.T) {
	file := types.NewFileIdentity("Visit.kt")
	disabled := map[types.Category]bool{rules.DatesWithContext: true}
	vs := ScanDisabled(file, 2, "DOB: 12/04/1987", disabled)
	if len(byCategory(vs, rules.DatesWithContext)) != 0 {
		t.Fatal("disabled category still produced violations")
	}
}

// Catalog-order emission: violations on one line follow category iteration
// order, giving reproducible reports.
func TestScanOrdering(t *testing.T) {
	file := types.NewFileIdentity("Visit.kt")
	vs := Scan(file, 1, "reach 555-123-4567 or jane.doe@hospital.org")
	var phoneIdx, emailIdx = -1, -1
	for i, v := range vs {
		if v.Category == rules.PhoneNumbers && phoneIdx == -1 {
			phoneIdx = i
		}
		if v.Category == rules.EmailAddresses && emailIdx == -1 {
			emailIdx = i
		}
	}
	if phoneIdx == -1 || emailIdx == -1 {
		t.Fatalf("expected phone and email violations, got %v", vs)
	}
	if phoneIdx > emailIdx {
		t.Fatal("phone_numbers should precede email_addresses in catalog order")
	}
}
