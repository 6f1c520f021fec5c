// Package posts lists long-form posts stored as one directory per slug with a
// front matter descriptor. Listings are recomputed from the filesystem on
// every call; drafts stay hidden unless previews are enabled.
package posts
