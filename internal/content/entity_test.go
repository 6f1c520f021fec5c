package content

import "testing"

func TestIdentityKeyPriority(t *testing.T) {
	cases := []struct {
		name                  string
		repository, site, ttl string
		want                  string
	}{
		{"repository wins", " https://GitHub.com/nuwa/x402x/ ", "https://x402x.dev", "x402x", "https://github.com/nuwa/x402x"},
		{"site when no repository", "  ", "https://X402AI.app/", "x402ai", "https://x402ai.app"},
		{"title fallback", "", "", "  Nuwa AI ", "nuwa ai"},
		{"all empty", "", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IdentityKey(tc.repository, tc.site, tc.ttl); got != tc.want {
				t.Fatalf("IdentityKey() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEntityDescriptionAbsentVersusEmpty(t *testing.T) {
	empty := ""
	withEmpty := Entity{Description: &empty}
	absent := Entity{}

	if withEmpty.DescriptionText() != "" || absent.DescriptionText() != "" {
		t.Fatal("expected empty text for both")
	}
	if withEmpty.Description == nil {
		t.Fatal("expected present-but-empty description to stay non-nil")
	}
	if absent.Description != nil {
		t.Fatal("expected absent description to be nil")
	}
}

func TestEntityLookups(t *testing.T) {
	e := Entity{Assets: map[AssetKind]string{AssetCover: "/posts/a/cover-image.png"}}
	if _, ok := e.Asset(AssetLogo); ok {
		t.Fatal("expected missing asset to be absent")
	}
	if got, ok := e.Asset(AssetCover); !ok || got != "/posts/a/cover-image.png" {
		t.Fatalf("unexpected cover %q %v", got, ok)
	}
	if _, ok := e.Link(LinkRepository); ok {
		t.Fatal("expected missing link to be absent")
	}
	if e.HasOrderHint() {
		t.Fatal("expected no order hint")
	}
}
