package espn

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/news"
	"github.com/preston-bernstein/sports-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/sports-dashboard-service/internal/timeutil"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// flexString accepts a JSON string or number. ESPN ids flip between the two.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n jsoniter.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = flexString(n.String())
	return nil
}

// headshot is delivered either as a bare URL string or as {"href": url}.
type headshot string

func (h *headshot) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*h = ""
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*h = headshot(v)
	case b[0] == '{':
		var v struct {
			Href string `json:"href"`
		}
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*h = headshot(v.Href)
	default:
		return fmt.Errorf("unsupported headshot shape: %s", b)
	}
	return nil
}

// espnTime parses RFC3339 timestamps with or without seconds. Other values
// ("TBD", bare dates) leave the zero time and are kept in Raw.
type espnTime struct {
	time.Time
	Raw string
}

func (t *espnTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := timeutil.ParseTimestamp(s)
	if err != nil {
		t.Raw = s
		return nil
	}
	t.Time = parsed
	return nil
}

type teamsResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams jsoniter.RawMessage `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

type teamEntry struct {
	Team *rawTeam `json:"team"`
}

type conferenceEntry struct {
	Teams []teamEntry `json:"teams"`
}

type rawTeam struct {
	ID           flexString   `json:"id"`
	DisplayName  string       `json:"displayName"`
	Abbreviation string       `json:"abbreviation"`
	Location     string       `json:"location"`
	Logos        []teams.Logo `json:"logos"`
}

type rawPlayer struct {
	ID       flexString `json:"id"`
	FullName string     `json:"fullName"`
	Jersey   flexString `json:"jersey"`
	Position *struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
	Headshot headshot `json:"headshot"`
}

type rosterGroup struct {
	Items []rawPlayer `json:"items"`
}

// groupShape inspects the first roster element for an items array.
type groupShape struct {
	Items jsoniter.RawMessage `json:"items"`
}

type scheduleResponse struct {
	Events []rawEvent `json:"events"`
}

type rawStatus struct {
	Type struct {
		Detail string `json:"detail"`
	} `json:"type"`
}

type rawEvent struct {
	ID           flexString `json:"id"`
	Date         espnTime   `json:"date"`
	Name         string     `json:"name"`
	ShortName    string     `json:"shortName"`
	Status       *rawStatus `json:"status"`
	Competitions []struct {
		Status *rawStatus `json:"status"`
	} `json:"competitions"`
	Links []struct {
		Rel  []string `json:"rel"`
		Href string   `json:"href"`
	} `json:"links"`
}

type newsResponse struct {
	Articles []rawArticle `json:"articles"`
}

type rawArticle struct {
	ID          flexString   `json:"id"`
	Headline    string       `json:"headline"`
	Description string       `json:"description"`
	Images      []news.Image `json:"images"`
	Links       struct {
		Web struct {
			Href string `json:"href"`
		} `json:"web"`
	} `json:"links"`
}
