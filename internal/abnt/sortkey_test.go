package abnt

import (
	"testing"
)

func TestSortKeyOf(t *testing.T) {
	tests := []struct {
		name     string
		kv       []string
		wantKey  string
		wantYear string
	}{
		{"sorttitle wins", []string{"author", "Silva, J.", "sorttitle", "Troubled land, The", "year", "1961"}, "Troubled land, The", "1961"},
		{"author", []string{"title", "T", "author", "Silva, J. and Souza, M."}, "SILVA, J.; SOUZA, M.", ""},
		{"editor", []string{"title", "T", "editor", "Lapa, J. R. A."}, "LAPA, J. R. A.", ""},
		{"organizer", []string{"organizer", "Lapa, J. R. A."}, "LAPA, J. R. A.", ""},
		{"title", []string{"title", "Aldeias", "year", "1959"}, "Aldeias", "1959"},
		{"first occurrence", []string{"year", "1959", "year", "2000"}, "", "1959"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := SortKeyOf(record("misc", "K", tt.kv...))
			if k.Key != tt.wantKey || k.HasKey != (tt.wantKey != "") {
				t.Errorf("Key = %q (%v), want %q", k.Key, k.HasKey, tt.wantKey)
			}
			if k.Year != tt.wantYear || k.HasYear != (tt.wantYear != "") {
				t.Errorf("Year = %q (%v), want %q", k.Year, k.HasYear, tt.wantYear)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	key := func(k, y string) SortKey {
		return SortKey{Key: k, HasKey: k != "", Year: y, HasYear: y != ""}
	}

	tests := []struct {
		name string
		a, b SortKey
		want int
	}{
		{"by key", key("AZEVEDO, A.", "1959"), key("PASSOS, A. B.", "1854"), -1},
		{"same key by year", key("DIAS, P. O.", "2016"), key("DIAS, P. O.", "2015"), 1},
		{"missing key first", key("", "1976"), key("AZEVEDO, A.", "1959"), -1},
		{"missing year first", key("DIAS, P. O.", ""), key("DIAS, P. O.", "2015"), -1},
		{"equal", key("DIAS, P. O.", "2015"), key("DIAS, P. O.", "2015"), 0},
		{"both absent", key("", ""), key("", ""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare() reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}
