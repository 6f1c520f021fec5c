package projects

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/nuwa-protocol/nuwa-web/internal/content"
	"github.com/nuwa-protocol/nuwa-web/internal/identity"
	cmsvalidation "github.com/nuwa-protocol/nuwa-web/internal/validation"
)

// Descriptor field names in metadata.json.
const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldURL         = "url"
	fieldGithub      = "github"
	fieldTag         = "tag"
	fieldOrder       = "order"
)

// Asset base names probed next to the descriptor.
const (
	assetLogo         = "logo"
	assetIllustration = "illustration"
)

var ErrTagMissing = errors.New("projects: tag missing and no default configured")

// Project is a normalised project directory.
type Project struct {
	content.Entity
	ID  uuid.UUID `json:"id"`
	Tag Tag       `json:"tag"`
}

// Logo returns the resolved logo URL, if any.
func (p Project) Logo() (string, bool) {
	return p.Asset(content.AssetLogo)
}

// Illustration returns the resolved illustration URL, if any.
func (p Project) Illustration() (string, bool) {
	return p.Asset(content.AssetIllustration)
}

// Initials is the placeholder shown when no logo resolves.
func (p Project) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(p.Title) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

// NormalizeOptions configures Normalize.
type NormalizeOptions struct {
	// DefaultTag applies when the descriptor has no tag. Empty means such
	// descriptors are rejected.
	DefaultTag Tag
	Assets     content.AssetResolver
	// Schema, when set, validates the raw descriptor first.
	Schema *cmsvalidation.Schema
}

// Normalize maps a metadata.json record onto a Project.
func Normalize(record content.Record, opts NormalizeOptions) (Project, error) {
	if opts.Schema != nil {
		if err := opts.Schema.Validate(record.Fields); err != nil {
			return Project{}, fmt.Errorf("projects: %s: %w", record.Path, err)
		}
	}

	title, ok := content.String(record.Fields, fieldName)
	if !ok {
		title = record.Dir
	}

	tag, err := resolveTag(record.Fields, opts.DefaultTag)
	if err != nil {
		return Project{}, err
	}

	site, _ := content.String(record.Fields, fieldURL)
	repository, _ := content.String(record.Fields, fieldGithub)

	project := Project{
		Entity: content.Entity{
			Dir:         record.Dir,
			Title:       title,
			IdentityKey: content.IdentityKey(repository, site, title),
			Description: content.OptionalString(record.Fields, fieldDescription),
			Assets:      map[content.AssetKind]string{},
			Links:       map[content.LinkKind]string{},
		},
		Tag: tag,
	}
	if order, ok := content.Number(record.Fields, fieldOrder); ok {
		project.OrderHint = &order
	}
	if site != "" {
		project.Links[content.LinkSite] = withScheme(site)
	}
	if repository != "" {
		project.Links[content.LinkRepository] = repositoryURL(repository)
	}

	dir := path.Dir(record.Path)
	if logo, ok := opts.Assets.Resolve(dir, assetLogo); ok {
		project.Assets[content.AssetLogo] = logo
	}
	if illustration, ok := opts.Assets.Resolve(dir, assetIllustration); ok {
		project.Assets[content.AssetIllustration] = illustration
	}

	project.ID = identity.ProjectUUID(project.IdentityKey)

	if err := project.validate(); err != nil {
		return Project{}, fmt.Errorf("projects: %s: %w", record.Path, err)
	}
	return project, nil
}

func (p *Project) validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Tag, validation.Required, tagRule()),
		validation.Field(&p.Links, validation.By(absoluteLinks)),
	)
}

func absoluteLinks(value any) error {
	links, _ := value.(map[content.LinkKind]string)
	for kind, link := range links {
		parsed, err := url.Parse(link)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return validation.NewError("validation_link_invalid", fmt.Sprintf("%s link %q is not an absolute http(s) url", kind, link))
		}
	}
	return nil
}

func resolveTag(fields map[string]any, fallback Tag) (Tag, error) {
	raw, present := fields[fieldTag]
	if !present || raw == nil {
		if fallback == "" {
			return "", ErrTagMissing
		}
		return ParseTag(string(fallback))
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrTagInvalid, raw)
	}
	return ParseTag(value)
}

func withScheme(ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	return "https://" + strings.TrimLeft(ref, "/")
}

// repositoryURL expands "owner/repo" shorthands into a GitHub URL. Refs
// whose first segment looks like a host only gain a scheme.
func repositoryURL(ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	trimmed := strings.Trim(ref, "/")
	host, _, _ := strings.Cut(trimmed, "/")
	if strings.Contains(host, ".") {
		return "https://" + trimmed
	}
	return "https://github.com/" + trimmed
}
