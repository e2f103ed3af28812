package phone

import "testing"

func TestNormalize_FormattingVariantsCollapse(t *testing.T) {
	variants := []string{
		"+15550101234",
		"+1 555 010 1234",
		"+1-555-010-1234",
		"+1 (555) 010-1234",
		"+1.555.010.1234",
		" +1 (555) 010.1234 ",
	}
	want := "+15550101234"
	for _, v := range variants {
		if got := Normalize(v); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestNormalize_PreservesLeadingPlusAndDigits(t *testing.T) {
	if got := Normalize("(020) 7946-0958"); got != "02079460958" {
		t.Fatalf("got %q", got)
	}
	if got := Normalize("+44 20 7946 0958"); got != "+442079460958" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalize_NoCountryCodeInference(t *testing.T) {
	// Deliberate: the same number with and without a country code does not match.
	if Same("+15550101234", "5550101234") {
		t.Fatalf("expected +1 and bare forms to stay distinct")
	}
}

func TestSame(t *testing.T) {
	if !Same("+1 (555) 010-1234", "+15550101234") {
		t.Fatalf("expected formatting-only variants to match")
	}
	if Same("+15550101234", "+15550101235") {
		t.Fatalf("different numbers must not match")
	}
}
