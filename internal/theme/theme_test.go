package theme

import "testing"

func TestLerpColor(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		t    float64
		want string
	}{
		{"start", "#000000", "#ffffff", 0.0, "#000000"},
		{"end", "#000000", "#ffffff", 1.0, "#ffffff"},
		{"midpoint", "#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"same color", "#ff0000", "#ff0000", 0.5, "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpColor(tt.from, tt.to, tt.t)
			if got != tt.want {
				t.Errorf("LerpColor(%s, %s, %f) = %s, want %s", tt.from, tt.to, tt.t, got, tt.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	r, g, b := HexToRGB("#ff8040")
	if r != 0xff || g != 0x80 || b != 0x40 {
		t.Errorf("got (%d, %d, %d), want (255, 128, 64)", r, g, b)
	}

	r, g, b = HexToRGB("ff8040")
	if r != 0xff || g != 0x80 || b != 0x40 {
		t.Errorf("without hash: got (%d, %d, %d), want (255, 128, 64)", r, g, b)
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("Hello", "#000000", "#ffffff") == "" {
		t.Error("GradientText returned empty string")
	}
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("GradientText should return empty for empty input")
	}
}

func TestMultiStopGradient(t *testing.T) {
	if got := MultiStopGradient(0, SizeGradient); got != SizeGradient[0] {
		t.Errorf("t=0: got %s, want %s", got, SizeGradient[0])
	}
	if got := MultiStopGradient(1, SizeGradient); got != SizeGradient[len(SizeGradient)-1] {
		t.Errorf("t=1: got %s, want last stop", got)
	}
	if got := MultiStopGradient(0.5, []string{"#000000", "#ffffff"}); got != "#7f7f7f" {
		t.Errorf("t=0.5: got %s, want #7f7f7f", got)
	}
}

func TestTypeColor(t *testing.T) {
	if TypeColor("LORA") != TypeColor("lora") {
		t.Error("TypeColor should ignore case")
	}
	if TypeColor("") != ColorMutedText {
		t.Error("empty type should be muted")
	}
}
