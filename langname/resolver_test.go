package langname

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"ta", "Tamil"},
		{"es", "Spanish"},
		{"hi", "Hindi"},
		{"FR", "French"},
	}
	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := r.Resolve(tt.code); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestResolveFallsBackToCode(t *testing.T) {
	codes := []string{"", "   ", "not a code!", "zz", "12", "en--", "@@@"}
	r := NewResolver()
	for _, code := range codes {
		if got := r.Resolve(code); got != code {
			t.Errorf("Resolve(%q) = %q, want input unchanged", code, got)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"english":          "English",
		"AMERICAN ENGLISH": "American english",
		"é":                "É",
		"":                 "",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
