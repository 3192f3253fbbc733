package leagues

import (
	"errors"
	"testing"
)

func TestTableHasFiveLeagues(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 leagues, got %d", len(all))
	}
	all[0].Sport = "mutated"
	if l, _ := Lookup(NBA); l.Sport != "basketball" {
		t.Fatalf("expected All to return a copy, table now has %q", l.Sport)
	}
}

func TestOnlyCollegeBasketballCarriesLimit(t *testing.T) {
	for _, l := range All() {
		if l.Key == NCAAM {
			if l.TeamsLimit != 1000 || !l.GroupedTeams {
				t.Fatalf("expected ncaam to carry limit and grouping, got %+v", l)
			}
			if l.League != "mens-college-basketball" {
				t.Fatalf("unexpected ncaam league path %q", l.League)
			}
			continue
		}
		if l.TeamsLimit != 0 || l.GroupedTeams {
			t.Fatalf("expected %s to be flat without limit, got %+v", l.Key, l)
		}
	}
}

func TestParse(t *testing.T) {
	l, err := Parse(" NHL ")
	if err != nil {
		t.Fatalf("expected nhl to parse, got %v", err)
	}
	if l.Sport != "hockey" || l.League != "nhl" {
		t.Fatalf("unexpected league %+v", l)
	}

	if _, err := Parse("cricket"); !errors.Is(err, ErrUnknownLeague) {
		t.Fatalf("expected ErrUnknownLeague, got %v", err)
	}
	if _, err := Parse(""); !errors.Is(err, ErrUnknownLeague) {
		t.Fatalf("expected ErrUnknownLeague for empty key, got %v", err)
	}
}
