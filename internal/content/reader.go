package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/nuwa-protocol/nuwa-web/internal/markdown"
)

// ErrDescriptorMissing reports an entity directory without a descriptor file.
var ErrDescriptorMissing = errors.New("content: descriptor missing")

// ParseError reports a descriptor that exists but cannot be used.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "content: parse " + e.Path
	}
	return fmt.Sprintf("content: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Record is the loosely typed result of reading one entity directory.
type Record struct {
	// Dir is the entity directory name relative to the scanned root.
	Dir string
	// Path is the descriptor path within the scanned filesystem.
	Path    string
	Fields  map[string]any
	Body    []byte
	ModTime time.Time
}

// Reader loads the descriptor of a single entity directory. dir is a path
// within fsys.
type Reader interface {
	Read(fsys fs.FS, dir string) (Record, error)
}

// JSONReader reads a JSON object descriptor such as metadata.json.
type JSONReader struct {
	Filename string
}

var _ Reader = JSONReader{}

func (r JSONReader) Read(fsys fs.FS, dir string) (Record, error) {
	descriptor := path.Join(dir, r.Filename)
	data, err := fs.ReadFile(fsys, descriptor)
	if err != nil {
		return Record{}, missingOrParse(descriptor, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return Record{}, &ParseError{Path: descriptor, Err: err}
	}
	if decoder.More() {
		return Record{}, &ParseError{Path: descriptor, Err: errors.New("trailing data after JSON object")}
	}
	fields, ok := decoded.(map[string]any)
	if !ok {
		return Record{}, &ParseError{Path: descriptor, Err: fmt.Errorf("descriptor must be a JSON object, got %T", decoded)}
	}

	return Record{
		Dir:     path.Base(dir),
		Path:    descriptor,
		Fields:  fields,
		ModTime: modTime(fsys, descriptor),
	}, nil
}

// FrontMatterReader reads a Markdown descriptor with a YAML header. The first
// existing filename wins.
type FrontMatterReader struct {
	Filenames []string
}

var _ Reader = FrontMatterReader{}

func (r FrontMatterReader) Read(fsys fs.FS, dir string) (Record, error) {
	for _, name := range r.Filenames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		descriptor := path.Join(dir, name)
		data, err := fs.ReadFile(fsys, descriptor)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Record{}, &ParseError{Path: descriptor, Err: err}
		}

		fields, body, err := markdown.ParseFrontMatter(data)
		if err != nil {
			return Record{}, &ParseError{Path: descriptor, Err: err}
		}
		return Record{
			Dir:     path.Base(dir),
			Path:    descriptor,
			Fields:  fields,
			Body:    body,
			ModTime: modTime(fsys, descriptor),
		}, nil
	}
	return Record{}, fmt.Errorf("%w: %s/{%s}", ErrDescriptorMissing, dir, strings.Join(r.Filenames, ","))
}

func missingOrParse(descriptor string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrDescriptorMissing, descriptor)
	}
	return &ParseError{Path: descriptor, Err: err}
}

func modTime(fsys fs.FS, name string) time.Time {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
