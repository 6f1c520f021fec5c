package content

import (
	"io/fs"
	"path"
	"strings"
)

// ImageExtensions is the default probe order for co-located images.
var ImageExtensions = []string{"png", "svg", "jpg", "jpeg", "webp"}

// AssetResolver maps logical asset names in an entity directory to public
// URLs.
type AssetResolver struct {
	FS fs.FS
	// Extensions are probed in order; the first existing file wins.
	Extensions []string
	// URLPrefix is prepended to "<dir>/<file>".
	URLPrefix string
}

// Resolve returns the public URL of dir/name.<ext> for the first extension
// that exists as a regular file.
func (r AssetResolver) Resolve(dir, name string) (string, bool) {
	return ResolveAsset(r.FS, dir, name, r.extensions(), r.URLPrefix)
}

func (r AssetResolver) extensions() []string {
	if len(r.Extensions) == 0 {
		return ImageExtensions
	}
	return r.Extensions
}

// ResolveAsset probes dir/name.<ext> for each extension in order. dir is a
// path inside fsys; the returned URL uses only its base name.
func ResolveAsset(fsys fs.FS, dir, name string, exts []string, urlPrefix string) (string, bool) {
	name = strings.TrimSpace(name)
	if fsys == nil || name == "" {
		return "", false
	}
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		file := name + "." + ext
		info, err := fs.Stat(fsys, path.Join(dir, file))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return publicURL(urlPrefix, path.Base(dir), file), true
	}
	return "", false
}

func publicURL(prefix, dir, file string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return prefix + "/" + dir + "/" + file
}
