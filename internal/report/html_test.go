package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/philint/philint/internal/types"
)

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<td>a.kt</td>") || !strings.Contains(out, "Total violations: 2") {
		t.Fatalf("html report missing rows:\n%s", out)
	}
}

func TestWriteHTMLEscapesContent(t *testing.T) {
	res := types.ScanResult{
		Violations: []types.Violation{{
			Path: "x.md", Line: 1, Category: "common_phi_terms",
			Match:   "<script>alert(1)</script>",
			Message: "Potential common_phi_terms: <script>alert(1)</script>",
		}},
		Total: 1,
	}
	var buf bytes.Buffer
	if err := WriteHTML(&buf, res); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Fatal("match content was not escaped")
	}
}

func TestWriteHTMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, types.ScanResult{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No PHI violations detected.") {
		t.Fatal("empty report missing no-violations line")
	}
}
