package content

import "strings"

// Kind names the entity family a pipeline produces.
type Kind string

const (
	KindProject Kind = "project"
	KindPost    Kind = "post"
)

// AssetKind identifies a co-located image.
type AssetKind string

const (
	AssetLogo         AssetKind = "logo"
	AssetIllustration AssetKind = "illustration"
	AssetCover        AssetKind = "cover"
)

// LinkKind identifies an external reference.
type LinkKind string

const (
	LinkSite       LinkKind = "site"
	LinkRepository LinkKind = "repository"
)

// Entity holds the fields shared by every aggregated record. Pointer fields
// distinguish absent from zero; missing map keys mean absent.
type Entity struct {
	Dir   string `json:"dir"`
	Title string `json:"title"`
	// IdentityKey is only used for merge detection and is never rendered.
	IdentityKey string               `json:"-"`
	Description *string              `json:"description,omitempty"`
	OrderHint   *float64             `json:"order,omitempty"`
	Assets      map[AssetKind]string `json:"assets,omitempty"`
	Links       map[LinkKind]string  `json:"links,omitempty"`
}

// Item is anything that exposes its shared entity fields.
type Item interface {
	Meta() Entity
}

// Meta lets types embedding Entity satisfy Item.
func (e Entity) Meta() Entity {
	return e
}

// DescriptionText returns the description or "" when absent.
func (e Entity) DescriptionText() string {
	if e.Description == nil {
		return ""
	}
	return *e.Description
}

func (e Entity) HasOrderHint() bool {
	return e.OrderHint != nil
}

func (e Entity) Asset(kind AssetKind) (string, bool) {
	value, ok := e.Assets[kind]
	return value, ok
}

func (e Entity) Link(kind LinkKind) (string, bool) {
	value, ok := e.Links[kind]
	return value, ok
}

// IdentityKey derives the merge key: the repository reference, else the site
// reference, else the lower-cased trimmed title.
func IdentityKey(repository, site, title string) string {
	if ref := normalizeRef(repository); ref != "" {
		return ref
	}
	if ref := normalizeRef(site); ref != "" {
		return ref
	}
	return strings.ToLower(strings.TrimSpace(title))
}

func normalizeRef(ref string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(ref), "/"))
}
