package factory

import (
	"testing"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/danielpatrickdp/evalfield/internal/field"
	"github.com/danielpatrickdp/evalfield/internal/preference"
)

// #region identity-tests
func TestIntegerCache_Identity(t *testing.T) {
	s := NewSession()
	a, err := s.Integers.Persistent(7, preference.Gain)
	if err != nil {
		t.Fatalf("Persistent: %v", err)
	}
	b, _ := s.Integers.Persistent(7, preference.Gain)
	if a != b {
		t.Fatal("expected identical pointer for equal key")
	}
	c, _ := s.Integers.Persistent(7, preference.Cost)
	if a == c {
		t.Fatal("expected a different pointer for a different preference")
	}
	v, _ := s.Integers.Volatile(7, preference.Gain)
	if v == a {
		t.Fatal("tiers must not share entries")
	}
	if s.Integers.PersistentSize() != 2 || s.Integers.VolatileSize() != 1 {
		t.Errorf("sizes = %d/%d", s.Integers.PersistentSize(), s.Integers.VolatileSize())
	}
}

func TestVolatileClear(t *testing.T) {
	s := NewSession()
	const n = 5
	for i := range n {
		if _, err := s.Reals.Volatile(float64(i)/2, preference.Gain); err != nil {
			t.Fatalf("Volatile: %v", err)
		}
	}
	s.Reals.Volatile(0, preference.Gain) // hit
	s.Reals.Persistent(1, preference.Gain)

	if got := s.Reals.ClearVolatile(); got != n {
		t.Fatalf("ClearVolatile = %d, want %d", got, n)
	}
	if s.Reals.VolatileSize() != 0 {
		t.Errorf("VolatileSize after clear = %d", s.Reals.VolatileSize())
	}
	if s.Reals.PersistentSize() != 1 {
		t.Errorf("persistent store was touched: %d", s.Reals.PersistentSize())
	}
}

func TestRealCache_RejectsNaN(t *testing.T) {
	s := NewSession()
	if _, err := s.Reals.Volatile(nan(), preference.Gain); err == nil {
		t.Fatal("expected error for NaN")
	}
	if s.Reals.VolatileSize() != 0 {
		t.Errorf("failed build was cached")
	}
}

func TestRealCache_NegativeZeroSharesZero(t *testing.T) {
	s := NewSession()
	attr := attribute.Attribute{Name: "weight", ValueKind: attribute.Real, Preference: preference.Gain, Missing: attribute.MV2}
	neg, err := s.Parse("-0", attr, Volatile)
	if err != nil {
		t.Fatalf("Parse(-0): %v", err)
	}
	zero, err := s.Parse("0", attr, Volatile)
	if err != nil {
		t.Fatalf("Parse(0): %v", err)
	}
	if neg != zero {
		t.Error("-0 and 0 built different instances")
	}
	if neg.String() != "0" {
		t.Errorf("-0 renders as %q, want 0", neg.String())
	}
}

func TestEnumerationCache(t *testing.T) {
	s := NewSession()
	x, _ := catalog.New([]string{"a", "b", "c"})
	y, _ := catalog.New([]string{"a", "b", "c"})
	z, _ := catalog.NewWithAlgorithm([]string{"a", "b", "c"}, catalog.SHA256)

	f1, err := s.Enumerations.Persistent(x, 1, preference.Gain)
	if err != nil {
		t.Fatalf("Persistent: %v", err)
	}
	f2, _ := s.Enumerations.Persistent(y, 1, preference.Gain)
	if f1 != f2 {
		t.Error("content-equal catalogs with one digest should share an entry")
	}
	f3, _ := s.Enumerations.Persistent(z, 1, preference.Gain)
	if f3 == f1 {
		t.Error("different digest algorithm is a different key")
	}
	if _, err := s.Enumerations.Persistent(x, 3, preference.Gain); err == nil {
		t.Error("expected out of range error")
	}
	if s.Enumerations.PersistentSize() != 2 {
		t.Errorf("PersistentSize = %d", s.Enumerations.PersistentSize())
	}

	s.Enumerations.Volatile(x, 0, preference.Gain)
	s.Enumerations.Volatile(x, 0, preference.Cost)
	s.Enumerations.Volatile(y, 0, preference.Cost)
	if got := s.Enumerations.ClearVolatile(); got != 2 {
		t.Errorf("ClearVolatile = %d, want 2", got)
	}
}

// #endregion identity-tests

// #region session-tests
func TestSession_Parse(t *testing.T) {
	s := NewSession()
	attr := attribute.Attribute{Name: "rooms", ValueKind: attribute.Integer, Preference: preference.Gain}
	a, err := s.Parse("3", attr, Volatile)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, _ := s.Parse(" 3", attr, Volatile)
	if a != b {
		t.Error("expected identical pointers through the session")
	}
	if f, _ := s.Parse("?", attr, Volatile); f != field.MV2 {
		t.Errorf("expected mv2 for empty Missing, got %T", f)
	}

	pairs := attribute.Attribute{Name: "range", ValueKind: attribute.RealPair, Preference: preference.Gain}
	if _, err := s.Parse("[1.5, 0.5]", pairs, Persistent); err != nil {
		t.Fatalf("Parse pair: %v", err)
	}
	if s.PersistentSize() != 2 {
		t.Errorf("PersistentSize = %d, want 2 pair members", s.PersistentSize())
	}
	if got := s.ClearVolatile(); got != 1 {
		t.Errorf("ClearVolatile = %d, want 1", got)
	}
	if s.VolatileSize() != 0 {
		t.Errorf("VolatileSize = %d", s.VolatileSize())
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	s1, s2 := NewSession(), NewSession()
	a, _ := s1.Integers.Volatile(1, preference.Gain)
	b, _ := s2.Integers.Volatile(1, preference.Gain)
	if a == b {
		t.Fatal("sessions must not share cache entries")
	}
	s1.ClearVolatile()
	if s2.VolatileSize() != 1 {
		t.Errorf("clearing one session affected another")
	}
}

// #endregion session-tests

func nan() float64 {
	zero := 0.0
	return zero / zero
}
