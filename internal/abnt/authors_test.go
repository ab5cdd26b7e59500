package abnt

import "testing"

func TestSurnameFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Araújo, G.", "ARAÚJO, G."},
		{"Araújo, Gabriel", "ARAÚJO, G."},
		{"del Priori, M.", "PRIORI, M. del"},
		{"Prado{ }Jr., C.", "PRADO JR., C."},
		{"Abreu, J. C. d.", "ABREU, J. C. d."},
		{"Motter, Maria de Lourdes", "MOTTER, M. d. L."},
		{"Gabriel Araújo", "ARAÚJO, G."},
		{"Ludwig van Beethoven", "BEETHOVEN, L. van"},
		{"Heródoto", "HERÓDOTO"},
		{"  Silva, J.  ", "SILVA, J."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SurnameFirst(tt.in); got != tt.want {
				t.Errorf("SurnameFirst(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAuthors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single", "Araújo, G.", "ARAÚJO, G."},
		{"two, uppercase separator", "Araújo, G. AND Oliveira, F. I. D.", "ARAÚJO, G.; OLIVEIRA, F. I. D."},
		{
			"three listed",
			"Fragoso, J. and Bicalho, M. F. and Gouvêa, M. F.",
			"FRAGOSO, J.; BICALHO, M. F.; GOUVÊA, M. F.",
		},
		{
			"four truncated",
			"Araújo, G. AND Oliveira, F. I. D. AND de Tal, F. AND de Tal, S.",
			"ARAÚJO, G.; <em>et al</em>",
		},
		{"braced", "Prado{ }Jr., C.", "PRADO JR., C."},
		{"mononym", "Heródoto", "HERÓDOTO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authors(tt.in); got != tt.want {
				t.Errorf("Authors(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitials(t *testing.T) {
	if got := Initials("Maria de Lourdes"); got != "M. d. L." {
		t.Errorf("Initials() = %q, want %q", got, "M. d. L.")
	}
	if got := Initials("  "); got != "" {
		t.Errorf("Initials(blank) = %q, want empty", got)
	}
}
