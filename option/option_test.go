package option

import "testing"

func TestSomeAndNone(t *testing.T) {
	some := Some(3.5)
	if !some.IsSome() || some.IsNone() {
		t.Fatalf("Some(3.5) reports IsSome=%v IsNone=%v", some.IsSome(), some.IsNone())
	}
	if some.Get() != 3.5 {
		t.Errorf("Get() = %v, want 3.5", some.Get())
	}

	none := None[float64]()
	if none.IsSome() || !none.IsNone() {
		t.Fatalf("None reports IsSome=%v IsNone=%v", none.IsSome(), none.IsNone())
	}
	if got := none.OrElse(7); got != 7 {
		t.Errorf("OrElse(7) = %v, want 7", got)
	}
}

func TestGetOnNonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on None did not panic")
		}
	}()
	None[int]().Get()
}

func TestLookup(t *testing.T) {
	v, ok := Some("x").Lookup()
	if !ok || v != "x" {
		t.Errorf("Lookup() = %q, %v", v, ok)
	}

	if _, ok := None[string]().Lookup(); ok {
		t.Error("Lookup() on None reports a value")
	}
}
