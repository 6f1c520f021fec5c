package projects

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Tag is the closed set of project buckets.
type Tag string

const (
	TagInfra Tag = "infra"
	TagApp   Tag = "app"
)

// ErrTagInvalid reports a tag outside the closed set.
var ErrTagInvalid = errors.New("projects: tag invalid")

// tagOrder is also the bucket display order.
var tagOrder = [...]Tag{TagInfra, TagApp}

// Tags returns every tag in display order.
func Tags() []Tag {
	return append([]Tag(nil), tagOrder[:]...)
}

func (t Tag) String() string {
	return string(t)
}

// Valid reports whether t belongs to the closed set.
func (t Tag) Valid() bool {
	return validation.Validate(t, validation.Required, tagRule()) == nil
}

// ParseTag accepts only the exact values of the closed set.
func ParseTag(value string) (Tag, error) {
	tag := Tag(value)
	if err := validation.Validate(tag, validation.Required, tagRule()); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrTagInvalid, value, err)
	}
	return tag, nil
}

func tagRule() validation.Rule {
	values := make([]any, 0, len(tagOrder))
	for _, tag := range tagOrder {
		values = append(values, tag)
	}
	return validation.In(values...).Error("must be one of infra, app")
}

// TagMeta is the display metadata of a bucket.
type TagMeta struct {
	Tag         Tag    `json:"tag"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Accent      string `json:"accent"`
}

var tagMeta = map[Tag]TagMeta{
	TagInfra: {
		Tag:         TagInfra,
		Title:       "Infrastructure",
		Description: "Protocols, payment channels and SDKs the rest of the stack builds on.",
		Accent:      "purple",
	},
	TagApp: {
		Tag:         TagApp,
		Title:       "Applications",
		Description: "Products people and agents use today, powered by Nuwa payments.",
		Accent:      "blue",
	},
}

func init() {
	if err := checkTagTable(); err != nil {
		panic(err)
	}
}

func checkTagTable() error {
	if len(tagMeta) != len(tagOrder) {
		return fmt.Errorf("projects: tag metadata has %d entries for %d tags", len(tagMeta), len(tagOrder))
	}
	for _, tag := range tagOrder {
		meta, ok := tagMeta[tag]
		if !ok || meta.Tag != tag || strings.TrimSpace(meta.Title) == "" {
			return fmt.Errorf("projects: tag %q has no display metadata", tag)
		}
	}
	return nil
}

// TagInfo returns the display metadata of tag.
func TagInfo(tag Tag) (TagMeta, bool) {
	meta, ok := tagMeta[tag]
	return meta, ok
}

// AllTagMeta returns the metadata of every tag in display order.
func AllTagMeta() []TagMeta {
	out := make([]TagMeta, 0, len(tagOrder))
	for _, tag := range tagOrder {
		out = append(out, tagMeta[tag])
	}
	return out
}
