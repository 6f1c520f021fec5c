package posts

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/nuwa-protocol/nuwa-web/internal/identity"
)

// Category is the closed set of post categories.
type Category string

const (
	CategoryTech      Category = "tech"
	CategoryProduct   Category = "product"
	CategoryInsights  Category = "insights"
	CategoryBranding  Category = "branding"
	CategoryMilestone Category = "milestone"
)

var ErrCategoryInvalid = errors.New("posts: category invalid")

var categoryOrder = [...]Category{
	CategoryTech,
	CategoryProduct,
	CategoryInsights,
	CategoryBranding,
	CategoryMilestone,
}

// Categories returns every category in display order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder[:]...)
}

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	return validation.Validate(c, validation.Required, categoryRule()) == nil
}

// ParseCategory accepts only the exact lower-case slugs of the closed set;
// other spellings are rejected rather than folded.
func ParseCategory(value string) (Category, error) {
	category := Category(value)
	if err := validation.Validate(category, validation.Required, categoryRule()); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrCategoryInvalid, value, err)
	}
	return category, nil
}

func categoryRule() validation.Rule {
	values := make([]any, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		values = append(values, category)
	}
	return validation.In(values...).Error("must be a known category")
}

// CategoryMeta is the display metadata of a category page.
type CategoryMeta struct {
	ID          uuid.UUID `json:"id"`
	Category    Category  `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryTech: {
		Category:    CategoryTech,
		Title:       "Tech",
		Description: "Protocol design, agent infrastructure and engineering notes.",
		Color:       "blue",
	},
	CategoryProduct: {
		Category:    CategoryProduct,
		Title:       "Product",
		Description: "Launches, releases and walkthroughs of what we ship.",
		Color:       "green",
	},
	CategoryInsights: {
		Category:    CategoryInsights,
		Title:       "Insights",
		Description: "Research and opinion on the agent economy.",
		Color:       "orange",
	},
	CategoryBranding: {
		Category:    CategoryBranding,
		Title:       "Branding",
		Description: "Identity, design language and community stories.",
		Color:       "purple",
	},
	CategoryMilestone: {
		Category:    CategoryMilestone,
		Title:       "Milestone",
		Description: "Roadmap checkpoints and ecosystem announcements.",
		Color:       "pink",
	},
}

func init() {
	if err := checkCategoryTable(); err != nil {
		panic(err)
	}
	for category, meta := range categoryMeta {
		meta.ID = identity.CategoryUUID(string(category))
		categoryMeta[category] = meta
	}
}

func checkCategoryTable() error {
	if len(categoryMeta) != len(categoryOrder) {
		return fmt.Errorf("posts: %d categories but %d metadata entries", len(categoryOrder), len(categoryMeta))
	}
	for _, category := range categoryOrder {
		meta, ok := categoryMeta[category]
		if !ok {
			return fmt.Errorf("posts: category %q has no display metadata", category)
		}
		if meta.Category != category || strings.TrimSpace(meta.Title) == "" {
			return fmt.Errorf("posts: category %q has inconsistent display metadata", category)
		}
	}
	return nil
}

// CategoryInfo looks up the display metadata of c.
func CategoryInfo(c Category) (CategoryMeta, bool) {
	meta, ok := categoryMeta[c]
	return meta, ok
}

// AllCategoryMeta returns the metadata of every category in display order.
func AllCategoryMeta() []CategoryMeta {
	out := make([]CategoryMeta, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		out = append(out, categoryMeta[category])
	}
	return out
}
