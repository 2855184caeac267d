package resolve

import (
	"errors"
	"testing"
)

func TestQueueRunResolvesInDependencyOrder(t *testing.T) {
	done := map[string]bool{}

	q := New()
	q.Push(&Item{
		Kind:  Augment,
		Where: Location{Module: "m", Path: "b"},
		Retry: func() (Resolution, error) {
			if !done["a"] {
				return Blocked, nil
			}
			done["b"] = true
			return Done, nil
		},
	})
	q.Push(&Item{
		Kind:  Augment,
		Where: Location{Module: "m", Path: "a"},
		Retry: func() (Resolution, error) {
			done["a"] = true
			return Done, nil
		},
	})

	if errs := q.Run(); len(errs) != 0 {
		t.Fatalf("Run: got errors %v, want none", errs)
	}
	if !done["a"] || !done["b"] {
		t.Fatalf("Run: done = %v, want both a and b resolved", done)
	}
	if q.Len() != 0 {
		t.Fatalf("Len after Run = %d, want 0", q.Len())
	}
}

func TestQueueRunDetectsCycle(t *testing.T) {
	q := New()
	q.Push(&Item{
		Kind:  TypeLeafref,
		Where: Location{Module: "m", Path: "x"},
		Retry: func() (Resolution, error) { return Blocked, nil },
	})
	q.Push(&Item{
		Kind:  TypeLeafref,
		Where: Location{Module: "m", Path: "y"},
		Retry: func() (Resolution, error) { return Blocked, nil },
	})

	errs := q.Run()
	if len(errs) != 1 {
		t.Fatalf("Run: got %d errors, want 1", len(errs))
	}
	var cycleErr *CycleError
	if !errors.As(errs[0], &cycleErr) {
		t.Fatalf("Run: got %T, want *CycleError", errs[0])
	}
}

func TestQueueRunCollectsFailures(t *testing.T) {
	wantErr := errors.New("boom")
	q := New()
	q.Push(&Item{
		Kind:  Extension,
		Where: Location{Module: "m", Path: "z"},
		Retry: func() (Resolution, error) { return Failed, wantErr },
	})

	errs := q.Run()
	if len(errs) != 1 || errs[0] != wantErr {
		t.Fatalf("Run: got %v, want [%v]", errs, wantErr)
	}
}

func TestKindString(t *testing.T) {
	if got := Feature.String(); got != "Feature" {
		t.Errorf("Feature.String() = %q, want %q", got, "Feature")
	}
	if got := Kind(999).String(); got == "" {
		t.Errorf("Kind(999).String() = %q, want a non-empty fallback", got)
	}
}
