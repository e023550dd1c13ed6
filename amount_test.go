package fintrack

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    Amount
		wantErr bool
	}{
		{input: "500", want: A(500)},
		{input: "42.50", want: A(42.5)},
		{input: "0", want: A(0)},
		{input: "-3.14", want: A(-3.14)},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = nil error, want failure", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	a, b := A(0.1), A(0.2)
	if got := a.Add(b); !got.Equal(A(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want exactly 0.3", got)
	}
	if got := a.Sub(b); !got.Equal(A(-0.1)) {
		t.Errorf("0.1 - 0.2 = %s, want exactly -0.1", got)
	}
	if got := A(5).Neg(); !got.IsNegative() {
		t.Errorf("Neg(5) = %s, want negative", got)
	}
}

func TestAmount_Display(t *testing.T) {
	if got := A(1234.5).Display("EUR"); got == "" || got == "1234.5" {
		t.Errorf("Display(EUR) = %q, want a currency-formatted string", got)
	}
}
