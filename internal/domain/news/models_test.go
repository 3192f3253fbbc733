package news

import (
	"strings"
	"testing"
)

func TestThumbnailUsesFirstImage(t *testing.T) {
	a := Article{Images: []Image{{URL: "https://img/a.jpg"}, {URL: "https://img/b.jpg"}}}
	if got := a.Thumbnail(); got != "https://img/a.jpg" {
		t.Fatalf("expected first image, got %q", got)
	}
	if got := (Article{}).Thumbnail(); got != "" {
		t.Fatalf("expected empty thumbnail, got %q", got)
	}
}

func TestArticleJSONIncludesThumbnail(t *testing.T) {
	a := Article{ID: "1", Headline: "Big win", Images: []Image{{URL: "https://img/a.jpg"}}}
	body, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"thumbnail":"https://img/a.jpg"`) {
		t.Fatalf("expected thumbnail in %s", body)
	}

	body, err = json.Marshal(Article{ID: "2", Headline: "No image"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "thumbnail") {
		t.Fatalf("expected no thumbnail in %s", body)
	}

	var back Article
	if err := json.Unmarshal([]byte(`{"id":"1","headline":"h","thumbnail":"x"}`), &back); err != nil || back.ID != "1" {
		t.Fatalf("expected decode to ignore thumbnail, got %+v %v", back, err)
	}
}
