package projects

import (
	"context"
	"slices"
	"testing"
	"testing/fstest"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"content/projects/a/metadata.json":         {Data: []byte(`{"name":"X","github":"g/x","order":2}`)},
		"content/projects/b/metadata.json":         {Data: []byte(`{"name":"X","github":"g/x","order":1}`)},
		"content/projects/nuwa/metadata.json":      {Data: []byte(`{"name":"Nuwa AI","url":"https://nuwa.dev","tag":"app","order":1}`)},
		"content/projects/nuwa/logo.svg":           {Data: []byte("<svg/>")},
		"content/projects/x402x/metadata.json":     {Data: []byte(`{"name":"x402x.dev","url":"https://x402x.dev","tag":"infra"}`)},
		"content/projects/widget/metadata.json":    {Data: []byte(`{"name":"Widget","tag":"widget"}`)},
		"content/projects/notag/metadata.json":     {Data: []byte(`{"name":"Untagged"}`)},
		"content/projects/broken/metadata.json":    {Data: []byte(`{"name":`)},
		"content/projects/_template/metadata.json": {Data: []byte(`{"name":"Template","tag":"app"}`)},
	}
}

func newTestService(fsys fstest.MapFS, defaultTag Tag) *Service {
	return NewService(fsys, Config{
		Root:           "content/projects",
		DefaultTag:     defaultTag,
		URLPrefix:      "/projects",
		ValidateSchema: true,
	}, nil)
}

func projectDirs(projects []Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Dir
	}
	return out
}

func TestListMergesDuplicateProjects(t *testing.T) {
	projects, err := newTestService(fixtureFS(), TagApp).List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	dirs := projectDirs(projects)
	if slices.Contains(dirs, "a") || !slices.Contains(dirs, "b") {
		t.Fatalf("expected only the order:1 record to survive, got %v", dirs)
	}
}

func TestListGroupedByTag(t *testing.T) {
	groups, err := newTestService(fixtureFS(), TagApp).ListGroupedByTag(context.Background())
	if err != nil {
		t.Fatalf("ListGroupedByTag returned error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected infra and app buckets, got %v", groups)
	}
	if got := projectDirs(groups[TagApp]); !slices.Equal(got, []string{"nuwa", "b", "notag"}) {
		t.Fatalf("unexpected app order %v", got)
	}
	if got := projectDirs(groups[TagInfra]); !slices.Equal(got, []string{"x402x"}) {
		t.Fatalf("unexpected infra order %v", got)
	}
	for _, projects := range groups {
		if slices.Contains(projectDirs(projects), "widget") {
			t.Fatal("expected unrecognised tag to be excluded")
		}
	}
	if logo, ok := groups[TagApp][0].Logo(); !ok || logo != "/projects/nuwa/logo.svg" {
		t.Fatalf("unexpected logo %q %v", logo, ok)
	}
}

func TestStrictTagPolicyDropsUntagged(t *testing.T) {
	groups, err := newTestService(fixtureFS(), "").ListGroupedByTag(context.Background())
	if err != nil {
		t.Fatalf("ListGroupedByTag returned error: %v", err)
	}
	if got := projectDirs(groups[TagApp]); !slices.Equal(got, []string{"nuwa"}) {
		t.Fatalf("expected untagged projects to be dropped, got %v", got)
	}
}

func TestBucketsOmitEmptyTags(t *testing.T) {
	fsys := fstest.MapFS{
		"content/projects/nuwa/metadata.json": {Data: []byte(`{"name":"Nuwa AI","tag":"app"}`)},
	}
	buckets, err := newTestService(fsys, TagApp).Buckets(context.Background())
	if err != nil {
		t.Fatalf("Buckets returned error: %v", err)
	}
	if len(buckets) != 1 || buckets[0].Tag != TagApp || buckets[0].Title != "Applications" {
		t.Fatalf("expected a single app bucket, got %+v", buckets)
	}
}

func TestBucketsFollowTagOrder(t *testing.T) {
	buckets, err := newTestService(fixtureFS(), TagApp).Buckets(context.Background())
	if err != nil {
		t.Fatalf("Buckets returned error: %v", err)
	}
	if len(buckets) != 2 || buckets[0].Tag != TagInfra || buckets[1].Tag != TagApp {
		t.Fatalf("unexpected bucket order %+v", buckets)
	}
}

func TestMissingProjectsRoot(t *testing.T) {
	if _, err := newTestService(fstest.MapFS{}, TagApp).List(context.Background()); err == nil {
		t.Fatal("expected missing root error")
	}
}
