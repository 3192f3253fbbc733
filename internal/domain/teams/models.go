package teams

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Logo is a team image reference.
type Logo struct {
	Href string `json:"href"`
}

// Team represents the normalized team shape shared by every league.
type Team struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Location     string `json:"location,omitempty"`
	Logos        []Logo `json:"logos"`
}

// PrimaryLogo returns the first logo href, or an empty string.
func (t Team) PrimaryLogo() string {
	for _, l := range t.Logos {
		if l.Href != "" {
			return l.Href
		}
	}
	return ""
}

type teamJSON struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Location     string `json:"location,omitempty"`
	Logos        []Logo `json:"logos"`
	Logo         string `json:"logo,omitempty"`
}

// MarshalJSON adds the primary logo as "logo".
func (t Team) MarshalJSON() ([]byte, error) {
	return json.Marshal(teamJSON{
		ID:           t.ID,
		DisplayName:  t.DisplayName,
		Abbreviation: t.Abbreviation,
		Location:     t.Location,
		Logos:        t.Logos,
		Logo:         t.PrimaryLogo(),
	})
}

// FindByID returns the team with the given id from a list.
func FindByID(list []Team, id string) (Team, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}
