package projects

import (
	"context"
	"io/fs"

	"github.com/nuwa-protocol/nuwa-web/internal/content"
	"github.com/nuwa-protocol/nuwa-web/internal/logging"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

// Config locates project directories and tunes normalisation.
type Config struct {
	// Root is the projects directory inside the filesystem.
	Root            string
	Descriptor      string
	DefaultTag      Tag
	URLPrefix       string
	ImageExtensions []string
	ValidateSchema  bool
}

// Bucket is one non-empty tag group with its display metadata.
type Bucket struct {
	TagMeta
	Projects []Project `json:"projects"`
}

// Service reads projects fresh from the filesystem on every call.
type Service struct {
	pipeline *content.Pipeline[Project]
}

func NewService(fsys fs.FS, cfg Config, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	descriptor := cfg.Descriptor
	if descriptor == "" {
		descriptor = "metadata.json"
	}

	opts := NormalizeOptions{
		DefaultTag: cfg.DefaultTag,
		Assets: content.AssetResolver{
			FS:         fsys,
			Extensions: cfg.ImageExtensions,
			URLPrefix:  cfg.URLPrefix,
		},
	}
	if cfg.ValidateSchema {
		opts.Schema = DescriptorSchema()
	}

	schema := content.Schema[Project]{
		Kind:   content.KindProject,
		Reader: content.JSONReader{Filename: descriptor},
		Normalize: func(record content.Record) (Project, error) {
			return Normalize(record, opts)
		},
		Dedupe: true,
	}
	return &Service{pipeline: content.NewPipeline(fsys, cfg.Root, schema, logger)}
}

// List returns every surviving project in display order.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.pipeline.Sorted(ctx)
}

// ListGroupedByTag returns the sorted projects of each non-empty tag.
func (s *Service) ListGroupedByTag(ctx context.Context) (map[Tag][]Project, error) {
	items, err := s.pipeline.Load(ctx)
	if err != nil {
		return nil, err
	}
	return content.Group(items, func(p Project) Tag { return p.Tag }), nil
}

// Buckets returns the non-empty groups in tag display order.
func (s *Service) Buckets(ctx context.Context) ([]Bucket, error) {
	groups, err := s.ListGroupedByTag(ctx)
	if err != nil {
		return nil, err
	}
	buckets := make([]Bucket, 0, len(groups))
	for _, tag := range tagOrder {
		projects, ok := groups[tag]
		if !ok {
			continue
		}
		meta, _ := TagInfo(tag)
		buckets = append(buckets, Bucket{TagMeta: meta, Projects: projects})
	}
	return buckets, nil
}
