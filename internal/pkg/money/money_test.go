package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"empty is zero", "", "0", true},
		{"whitespace only is zero", "   ", "0", true},
		{"plain integer", "1000", "1000", true},
		{"grouped integer", "1.000", "1000", true},
		{"grouped with decimals", "1.234,56", "1234.56", true},
		{"decimal comma", "12,5", "12.5", true},
		{"one decimal digit", "0,5", "0.5", true},
		{"leading comma", ",50", "0.5", true},
		{"trailing comma mid-typing", "1234,", "1234", true},
		{"internal whitespace", "1 234,50", "1234.5", true},
		{"misplaced grouping still parses", "12.34,5", "1234.5", true},
		{"three decimals rejected", "12.345,678", "0", false},
		{"letters rejected", "12a4", "0", false},
		{"double comma rejected", "1,2,3", "0", false},
		{"lone comma rejected", ",", "0", false},
		{"lone dot is blank digits", ".", "0", false},
		{"negative sign rejected", "-5", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, expected %v", tt.raw, ok, tt.ok)
			}
			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("Parse(%q) = %s, expected %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseOrZero(t *testing.T) {
	if got := ParseOrZero("no-numérico"); !got.IsZero() {
		t.Errorf("ParseOrZero on malformed text = %s, expected 0", got)
	}
	if got := ParseOrZero("1.000,25"); !got.Equal(dec(t, "1000.25")) {
		t.Errorf("ParseOrZero(\"1.000,25\") = %s, expected 1000.25", got)
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"strips grouping dots", "1.234,5", "1234,5"},
		{"keeps trailing comma", "1234,", "1234,"},
		{"strips whitespace", " 1 234 ", "1234"},
		{"collapses extra commas", "1,23,45", "1,23"},
		{"truncates to two decimals", "10,999", "10,99"},
		{"plain integer untouched", "500", "500"},
		{"only comma kept", ",", ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeInput(tt.raw); got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, expected %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want string
	}{
		{"integer hides decimals", "1000", "1.000"},
		{"non-integer shows two decimals", "1234.5", "1.234,50"},
		{"zero", "0", "0"},
		{"millions", "1234567.89", "1.234.567,89"},
		{"small fraction", "0.5", "0,50"},
		{"negative", "-1234.5", "-1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(dec(t, tt.val)); got != tt.want {
				t.Errorf("Format(%s) = %q, expected %q", tt.val, got, tt.want)
			}
		})
	}
}

func TestFormatText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"blank stays blank", "", ""},
		{"whitespace stays blank", "  ", ""},
		{"malformed stays blank", "abc", ""},
		{"normalizes grouping", "1234,5", "1.234,50"},
		{"zero renders as zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatText(tt.raw); got != tt.want {
				t.Errorf("FormatText(%q) = %q, expected %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"groups while typing", "1234567", "1.234.567"},
		{"keeps trailing comma", "1234,", "1.234,"},
		{"keeps partial decimals", "1234,5", "1.234,5"},
		{"regroups stale dots", "12.34", "1.234"},
		{"non-numeric returned untouched", "12a", "12a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatInput(tt.raw); got != tt.want {
				t.Errorf("FormatInput(%q) = %q, expected %q", tt.raw, got, tt.want)
			}
		})
	}
}

// Round-trip: para todo texto válido, parse(format(parse(t))) conserva el
// valor canónico.
func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{"0", "1", "999", "1000", "1.234,56", "12,5", "1234567,8", "0,01"}

	for _, raw := range inputs {
		d1, ok := Parse(raw)
		if !ok {
			t.Fatalf("Parse(%q) unexpectedly failed", raw)
		}
		d2, ok := Parse(Format(d1))
		if !ok {
			t.Fatalf("Parse(Format(%q)) unexpectedly failed", raw)
		}
		if !d1.Equal(d2) {
			t.Errorf("round trip of %q: %s != %s", raw, d1, d2)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"within half a cent", "100.00", "100.004", true},
		{"a full cent apart", "100.00", "100.01", false},
		{"identical", "0", "0", true},
		{"exactly at tolerance", "0", "0.005", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(dec(t, tt.a), dec(t, tt.b)); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, expected %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// La ley de redondeo elegida: mitad lejos de cero en aritmética decimal
// exacta, de modo que las fronteras .005 son deterministas.
func TestRound2Boundaries(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.005", "0.01"},
		{"0.015", "0.02"},
		{"2.675", "2.68"},
		{"-0.005", "-0.01"},
		{"1.004", "1"},
	}

	for _, tt := range tests {
		if got := Round2(dec(t, tt.in)); !got.Equal(dec(t, tt.want)) {
			t.Errorf("Round2(%s) = %s, expected %s", tt.in, got, tt.want)
		}
	}
}
