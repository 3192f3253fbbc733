package news

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Image is an article image reference.
type Image struct {
	URL string `json:"url"`
}

// Article is the canonical team news entry shape.
type Article struct {
	ID          string  `json:"id"`
	Headline    string  `json:"headline"`
	Description string  `json:"description,omitempty"`
	Images      []Image `json:"images,omitempty"`
	WebURL      string  `json:"webUrl,omitempty"`
}

// Thumbnail returns the first image URL, or an empty string.
func (a Article) Thumbnail() string {
	if len(a.Images) == 0 {
		return ""
	}
	return a.Images[0].URL
}

type articleJSON struct {
	ID          string  `json:"id"`
	Headline    string  `json:"headline"`
	Description string  `json:"description,omitempty"`
	Images      []Image `json:"images,omitempty"`
	WebURL      string  `json:"webUrl,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

// MarshalJSON adds the first image URL as "thumbnail".
func (a Article) MarshalJSON() ([]byte, error) {
	return json.Marshal(articleJSON{
		ID:          a.ID,
		Headline:    a.Headline,
		Description: a.Description,
		Images:      a.Images,
		WebURL:      a.WebURL,
		Thumbnail:   a.Thumbnail(),
	})
}
