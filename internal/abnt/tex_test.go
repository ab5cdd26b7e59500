package abnt

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"en dash", "a--b", "a–b"},
		{"em dash", "a---b", "a—b"},
		{"number range", "23--50", "23–50"},
		{"em dash in prose", "the errors---all 124 of them---were fixed", "the errors—all 124 of them—were fixed"},
		{"mixed dashes", "--- -- -", "— – -"},
		{"trailing hyphen", "Apodi-", "Apodi-"},
		{"trailing en dash", "1760--", "1760–"},
		{"single quotes", "`-'", "‘-’"},
		{"double quotes", "``--''", "“–”"},
		{"quoted word", "O ``show'' de Jacques Fath", "O “show” de Jacques Fath"},
		{"apostrophe", "d'Ávila", "d’Ávila"},
		{"dollar", `\$`, "$"},
		{"ampersand", `\&`, "&"},
		{"dots", `\dots`, "…"},
		{"unknown command", `\invalid`, ""},
		{"unknown command eats space", `\invalid word`, "word"},
		{"commands with spaces", `\$ \& \dots `, "$ & … "},
		{"adjacent commands", `\$\&\\\dots`, `$&\…`},
		{"literal backslash", `a\\b`, `a\b`},
		{"braces kept", "{The troubled} land", "{The troubled} land"},
		{"plain unicode", "Negócios Jesuíticos", "Negócios Jesuíticos"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"Aldeias e aldeamentos",
		"Dinâmicas mercantis coloniais",
		"Modos de produção e realidade brasileira",
		"Dinarte de Medeiros Mariz | CPDOC",
		"Straße (1760)",
	}

	for _, in := range inputs {
		once := Text(in)
		if twice := Text(once); twice != once {
			t.Errorf("Text(Text(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestIndexUnbraced(t *testing.T) {
	s := "Os{ }Multantes da Record"

	before, after, found := cutUnbraced(s, ' ')
	if !found || before != "Os{ }Multantes" || after != "da Record" {
		t.Errorf("cutUnbraced(%q) = (%q, %q, %v)", s, before, after, found)
	}

	if i := lastIndexUnbraced("Caio Prado{ }Jr.", ' '); i != 4 {
		t.Errorf("lastIndexUnbraced() = %d, want 4", i)
	}

	if i := indexUnbraced("{Silva, Souza} e Cia", ','); i != -1 {
		t.Errorf("indexUnbraced() = %d, want -1 for braced comma", i)
	}
}

func TestUppercase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Prado{ }Jr.", "PRADO JR."},
		{"Araújo", "ARAÚJO"},
		{"Congresso Brasileiro de Ciências da Comunicação", "CONGRESSO BRASILEIRO DE CIÊNCIAS DA COMUNICAÇÃO"},
		{"straße", "STRASSE"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Uppercase(tt.in); got != tt.want {
				t.Errorf("Uppercase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
