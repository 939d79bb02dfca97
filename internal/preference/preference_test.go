package preference

import "testing"

func TestParse(t *testing.T) {
	cases := map[string]Type{
		"gain": Gain,
		"GAIN": Gain,
		" cost": Cost,
		"none": None,
		"":     None,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("better"); err == nil {
		t.Fatal("expected error for unknown preference")
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, p := range []Type{None, Gain, Cost} {
		b, err := p.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", p, err)
		}
		var back Type
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("unmarshal %q: %v", b, err)
		}
		if back != p {
			t.Errorf("round trip %s -> %s", p, back)
		}
	}
}

func TestMarshalInvalid(t *testing.T) {
	if _, err := Type(7).MarshalText(); err == nil {
		t.Fatal("expected error for invalid type")
	}
}
