package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/nuwa-protocol/nuwa-web/internal/logging"
	"github.com/nuwa-protocol/nuwa-web/pkg/interfaces"
)

// TextCodeRootMissing tags the error returned when the content root is absent.
const TextCodeRootMissing = "CONTENT_ROOT_MISSING"

// ErrRootMissing is the sentinel wrapped by root lookup failures.
var ErrRootMissing = errors.New("content: root directory missing")

// Scanner enumerates entity directories below a root and reads each one.
type Scanner struct {
	fsys   fs.FS
	reader Reader
	kind   Kind
	logger interfaces.Logger
}

// ScannerOption customises a Scanner.
type ScannerOption func(*Scanner)

// WithScannerLogger routes skip diagnostics to logger.
func WithScannerLogger(logger interfaces.Logger) ScannerOption {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScannerKind labels log entries with the entity kind.
func WithScannerKind(kind Kind) ScannerOption {
	return func(s *Scanner) {
		s.kind = kind
	}
}

func NewScanner(fsys fs.FS, reader Reader, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		fsys:   fsys,
		reader: reader,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Scan checks that root exists and returns a sequence over the records of its
// immediate subdirectories in lexical order. Directories whose names start
// with "_" or "." are scaffolding and never read. Unreadable descriptors are
// logged and skipped. The sequence stops early when ctx is done.
func (s *Scanner) Scan(ctx context.Context, root string) (iter.Seq[Record], error) {
	root = cleanRoot(root)
	entries, err := s.listRoot(root)
	if err != nil {
		return nil, err
	}

	return func(yield func(Record) bool) {
		for _, entry := range entries {
			if ctx != nil && ctx.Err() != nil {
				s.logger.Debug("content.scan.cancelled", "root", root, "error", ctx.Err())
				return
			}
			if !entry.IsDir() || skipDir(entry.Name()) {
				continue
			}

			dir := path.Join(root, entry.Name())
			record, err := s.reader.Read(s.fsys, dir)
			if err != nil {
				s.logSkip(dir, err)
				continue
			}
			if !yield(record) {
				return
			}
		}
	}, nil
}

func (s *Scanner) listRoot(root string) ([]fs.DirEntry, error) {
	if s.fsys == nil {
		return nil, rootMissing(root, fs.ErrNotExist)
	}
	info, err := fs.Stat(s.fsys, root)
	if err != nil {
		return nil, rootMissing(root, err)
	}
	if !info.IsDir() {
		return nil, rootMissing(root, fmt.Errorf("%s is not a directory", root))
	}
	entries, err := fs.ReadDir(s.fsys, root)
	if err != nil {
		return nil, rootMissing(root, err)
	}
	return entries, nil
}

func (s *Scanner) logSkip(dir string, err error) {
	logger := logging.WithEntityContext(s.logger, string(s.kind), path.Base(dir), entityPath(dir, err))
	if errors.Is(err, ErrDescriptorMissing) {
		logger.Warn("content.entity.descriptor_missing", "error", err)
		return
	}
	logger.Warn("content.entity.skipped", "error", err)
}

func entityPath(dir string, err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Path != "" {
		return parseErr.Path
	}
	return dir
}

func rootMissing(root string, cause error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %s: %w", ErrRootMissing, root, cause), goerrors.CategoryNotFound, "content root not found").
		WithTextCode(TextCodeRootMissing).
		WithMetadata(map[string]any{"root": root})
}

// IsRootMissing reports whether err came from a missing content root.
func IsRootMissing(err error) bool {
	return errors.Is(err, ErrRootMissing)
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

func cleanRoot(root string) string {
	root = strings.TrimSpace(root)
	if root == "" {
		return "."
	}
	return path.Clean(strings.TrimPrefix(root, "/"))
}
