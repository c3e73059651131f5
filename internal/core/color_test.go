package core

import "testing"

func TestColorCode(t *testing.T) {
	tests := []struct {
		color Color
		code  string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightGreen, "10"},
		{ColorGray, "245"},
		{Color(200), ""},
	}
	for _, tt := range tests {
		if got := tt.color.Code(); got != tt.code {
			t.Errorf("Color(%d).Code() = %q, want %q", tt.color, got, tt.code)
		}
	}
}

func TestColorBright(t *testing.T) {
	if ColorGreen.Bright() || ColorGray.Bright() || ColorDefault.Bright() {
		t.Error("plain colors reported bright")
	}
	if !ColorBrightRed.Bright() || !ColorBrightWhite.Bright() {
		t.Error("bright colors not reported bright")
	}
	if got := len(Colors()); got != int(colorCount) {
		t.Errorf("len(Colors()) = %d, want %d", got, colorCount)
	}
}
