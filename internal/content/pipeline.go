package content

import (
	"context"
	"errors"
	"io/fs"

	"github.com/nuwa-protocol/nuwa-web/internal/logging"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

// Schema parameterises the pipeline for one entity family.
type Schema[T Item] struct {
	Kind   Kind
	Reader Reader
	// Normalize maps a raw record onto T. An error drops the record.
	Normalize func(Record) (T, error)
	// Dedupe collapses records sharing an identity key.
	Dedupe bool
}

// Pipeline runs scan, normalise and optional dedup over one content root.
type Pipeline[T Item] struct {
	fsys   fs.FS
	root   string
	schema Schema[T]
	logger interfaces.Logger
}

var errSchemaIncomplete = errors.New("content: schema requires a reader and a normaliser")

func NewPipeline[T Item](fsys fs.FS, root string, schema Schema[T], logger interfaces.Logger) *Pipeline[T] {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Pipeline[T]{
		fsys:   fsys,
		root:   root,
		schema: schema,
		logger: logger,
	}
}

// Load returns the normalised (and, if configured, deduplicated) items in
// scan order. Only a missing root fails the call.
func (p *Pipeline[T]) Load(ctx context.Context) ([]T, error) {
	if p.schema.Reader == nil || p.schema.Normalize == nil {
		return nil, errSchemaIncomplete
	}
	if ctx == nil {
		ctx = context.Background()
	}

	scanner := NewScanner(p.fsys, p.schema.Reader,
		WithScannerKind(p.schema.Kind),
		WithScannerLogger(p.logger),
	)
	records, err := scanner.Scan(ctx, p.root)
	if err != nil {
		p.logger.Error("content.root.missing", "root", p.root, "kind", p.schema.Kind, "error", err)
		return nil, err
	}

	var items []T
	for record := range records {
		item, err := p.schema.Normalize(record)
		if err != nil {
			logging.WithEntityContext(p.logger, string(p.schema.Kind), record.Dir, record.Path).
				Warn("content.entity.rejected", "error", err)
			continue
		}
		items = append(items, item)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.schema.Dedupe {
		before := len(items)
		items = Deduplicate(items)
		if dropped := before - len(items); dropped > 0 {
			p.logger.Debug("content.entity.merged", "kind", p.schema.Kind, "dropped", dropped)
		}
	}

	p.logger.Debug("content.load.complete", "kind", p.schema.Kind, "root", p.root, "count", len(items))
	return items, nil
}

// Sorted is Load followed by Sort.
func (p *Pipeline[T]) Sorted(ctx context.Context) ([]T, error) {
	items, err := p.Load(ctx)
	if err != nil {
		return nil, err
	}
	Sort(items)
	return items, nil
}
