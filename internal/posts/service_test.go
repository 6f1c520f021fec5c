package posts

import (
	"context"
	"slices"
	"testing"
	"testing/fstest"
	"time"
)

var undatedModTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func postsFS() fstest.MapFS {
	return fstest.MapFS{
		"content/posts/hello-world/index.md": {Data: []byte(`---
title: Hello World
excerpt: First post.
publishDate: 2025-03-01T10:00:00.000Z
category: tech
tags: ["agents"]
---
Hello.
`)},
		"content/posts/hello-world/cover-image.webp": {Data: []byte("webp")},
		"content/posts/launch-day/index.md": {Data: []byte(`---
title: Launch Day
publishDate: "2025-05-10"
category: milestone
---
`)},
		"content/posts/secret-plan/index.md": {Data: []byte(`---
title: Secret Plan
publishDate: 2025-06-01T00:00:00Z
category: tech
draft: true
---
`)},
		"content/posts/undated/index.mdx": {Data: []byte(`---
title: Undated
category: product
---
`), ModTime: undatedModTime},
		"content/posts/bad-category/index.md": {Data: []byte("---\ntitle: Bad\ncategory: widget\n---\n")},
		"content/posts/shouty-tech/index.md":  {Data: []byte("---\ntitle: Shouty\npublishDate: 2025-08-01\ncategory: TECH\n---\n")},
		"content/posts/broken-yaml/index.md":  {Data: []byte("---\ntitle: [\n---\n")},
		"content/posts/empty-dir/notes.txt":   {Data: []byte("no descriptor")},
		"content/posts/_template/index.md":    {Data: []byte("---\ntitle: Template\ncategory: tech\n---\n")},
	}
}

func newPostService(includeDrafts bool) *Service {
	return NewService(postsFS(), Config{
		Root:          "content/posts",
		URLPrefix:     "/posts",
		BaseURL:       "https://nuwa.dev",
		IncludeDrafts: includeDrafts,
	}, nil, nil)
}

func slugs(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func TestListAllMostRecentFirst(t *testing.T) {
	posts, err := newPostService(false).ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if got := slugs(posts); !slices.Equal(got, []string{"launch-day", "hello-world", "undated"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestDraftsInvisibleToEveryListing(t *testing.T) {
	service := newPostService(false)
	ctx := context.Background()

	all, err := service.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	tech, err := service.ListByCategory(ctx, "tech")
	if err != nil {
		t.Fatalf("ListByCategory returned error: %v", err)
	}
	entries, err := service.FeedEntries(ctx)
	if err != nil {
		t.Fatalf("FeedEntries returned error: %v", err)
	}

	if slices.Contains(slugs(all), "secret-plan") || slices.Contains(slugs(tech), "secret-plan") {
		t.Fatal("expected draft to be hidden")
	}
	for _, entry := range entries {
		if entry.URL == "https://nuwa.dev/secret-plan" {
			t.Fatal("expected draft to be absent from feed entries")
		}
	}
}

func TestIncludeDraftsForPreview(t *testing.T) {
	posts, err := newPostService(true).ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(posts) == 0 || posts[0].Slug != "secret-plan" {
		t.Fatalf("expected draft first in preview, got %v", slugs(posts))
	}
}

func TestListByCategory(t *testing.T) {
	posts, err := newPostService(false).ListByCategory(context.Background(), "tech")
	if err != nil {
		t.Fatalf("ListByCategory returned error: %v", err)
	}
	if got := slugs(posts); !slices.Equal(got, []string{"hello-world"}) {
		t.Fatalf("unexpected tech posts %v", got)
	}
	if cover, ok := posts[0].Cover(); !ok || cover != "/posts/hello-world/cover-image.webp" {
		t.Fatalf("unexpected cover %q", cover)
	}
}

func TestListByCategoryMatchesExactly(t *testing.T) {
	service := newPostService(false)
	for _, slug := range []string{"Tech", "TECH", " tech"} {
		posts, err := service.ListByCategory(context.Background(), slug)
		if err != nil || len(posts) != 0 {
			t.Fatalf("ListByCategory(%q): expected empty listing, got %v, %v", slug, slugs(posts), err)
		}
	}
}

func TestListByUnknownCategoryIsEmpty(t *testing.T) {
	posts, err := newPostService(false).ListByCategory(context.Background(), "nonexistent-slug")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty listing, got %v", posts)
	}
}

func TestFeedEntries(t *testing.T) {
	entries, err := newPostService(false).FeedEntries(context.Background())
	if err != nil {
		t.Fatalf("FeedEntries returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].URL != "https://nuwa.dev/launch-day" || !entries[0].LastModified.Equal(time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if last := entries[2]; last.URL != "https://nuwa.dev/undated" || !last.LastModified.Equal(undatedModTime) {
		t.Fatalf("expected mod time fallback, got %+v", last)
	}
}

func TestMissingPostsRoot(t *testing.T) {
	service := NewService(fstest.MapFS{}, Config{Root: "content/posts"}, nil, nil)
	if _, err := service.ListAll(context.Background()); err == nil {
		t.Fatal("expected missing root error")
	}
}
