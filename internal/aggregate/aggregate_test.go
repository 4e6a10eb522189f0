package aggregate

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/philint/philint/internal/types"
)

func v(path string, line int) types.Violation {
	return types.Violation{Path: path, Line: line, Category: "medical_ids", Match: "MRN: 1", Message: "Potential medical_ids: MRN: 1"}
}

func TestAddPreservesOrder(t *testing.T) {
	a := New()
	a.Add(v("a.kt", 1))
	a.Add(v("a.kt", 3))
	a.Add(v("b.kt", 2))
	res := a.Finalize()
	if res.Total != 3 {
		t.Fatalf("expected total 3, got %d", res.Total)
	}
	want := []string{"a.kt:1", "a.kt:3", "b.kt:2"}
	for i, vi := range res.Violations {
		got := fmt.Sprintf("%s:%d", vi.Path, vi.Line)
		if got != want[i] {
			t.Fatalf("position %d: got %s want %s", i, got, want[i])
		}
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	a := New()
	a.Add(v("a.kt", 1))
	first := a.Finalize()
	second := a.Finalize()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("Finalize not idempotent")
	}
}

func TestAddAfterFinalizeIgnored(t *testing.T) {
	a := New()
	a.Add(v("a.kt", 1))
	res := a.Finalize()
	a.Add(v("b.kt", 1))
	a.AddAll([]types.Violation{v("c.kt", 1)})
	if again := a.Finalize(); again.Total != res.Total {
		t.Fatalf("mutation after finalize: %d != %d", again.Total, res.Total)
	}
}

// Appending to or rewriting the returned slice must not leak back into the
// aggregator's own result.
func TestFinalizeInsulatedFromCallerAppend(t *testing.T) {
	a := New()
	a.Add(v("a.kt", 1))
	res := a.Finalize()
	res.Violations = append(res.Violations, v("z.kt", 9))

	again := a.Finalize()
	if again.Total != 1 || len(again.Violations) != 1 {
		t.Fatalf("caller append leaked into result: %+v", again)
	}
	if again.Violations[0].Path != "a.kt" {
		t.Fatalf("unexpected violation: %+v", again.Violations[0])
	}
}

func TestEmptyFinalize(t *testing.T) {
	res := New().Finalize()
	if res.Total != 0 {
		t.Fatalf("expected 0, got %d", res.Total)
	}
	if res.Violations == nil {
		t.Fatal("violations should be an empty slice, not nil")
	}
}

func TestConcurrentAdd(t *testing.T) {
	a := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a.Add(v("f.kt", i))
		}(i)
	}
	wg.Wait()
	if got := a.Finalize().Total; got != 50 {
		t.Fatalf("expected 50 violations, got %d", got)
	}
}

func TestLen(t *testing.T) {
	a := New()
	a.AddAll([]types.Violation{v("a.kt", 1), v("a.kt", 2)})
	if a.Len() != 2 {
		t.Fatalf("expected Len 2, got %d", a.Len())
	}
	a.Finalize()
	if a.Len() != 2 {
		t.Fatalf("expected Len 2 after finalize, got %d", a.Len())
	}
}
