package abnt

import "testing"

func TestLocationPublisher(t *testing.T) {
	tests := []struct {
		name       string
		locations  string
		publishers string
		want       string
	}{
		{"single pair", "Rio de Janeiro", "Bertrand Brasil", "Rio de Janeiro: Bertrand Brasil"},
		{"paired", "Belo Horizonte AND São Paulo", "Itatiaia AND EDUSP", "Belo Horizonte: Itatiaia; São Paulo: EDUSP"},
		{"both missing", "", "", "[s.l.: s.n.]"},
		{"location missing", "", "Vozes", "[s.l.]: Vozes"},
		{"publisher missing", "Petrópolis", "", "Petrópolis: [s.n.]"},
		{"unequal counts", "Natal and Recife", "EDUFRN", "Natal e Recife: EDUFRN"},
		{"unequal counts, long lists", "Natal and Recife and Mossoró", "EDUFRN and EDUFPE", "Natal, Recife e Mossoró: EDUFRN e EDUFPE"},
		{"escaped publisher", "São Paulo", `Paz \& Terra`, "São Paulo: Paz & Terra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocationPublisher(tt.locations, tt.publishers); got != tt.want {
				t.Errorf("LocationPublisher(%q, %q) = %q, want %q", tt.locations, tt.publishers, got, tt.want)
			}
		})
	}
}
