package sitecmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nuwa-protocol/nuwa-web/internal/content"
	"github.com/nuwa-protocol/nuwa-web/internal/posts"
	"github.com/nuwa-protocol/nuwa-web/internal/projects"
)

const dateLayout = "2006-01-02"

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// writePosts prints one row per post: date, category, slug and title.
func writePosts(out io.Writer, items []posts.Post) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, post := range items {
		date := "-"
		if !post.PublishDate.IsZero() {
			date = post.PublishDate.Format(dateLayout)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", date, post.Category, post.Slug, post.Title); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// writeBuckets prints each bucket title followed by its projects.
func writeBuckets(out io.Writer, buckets []projects.Bucket) error {
	for i, bucket := range buckets {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(out, "%s (%d)\n", bucket.Title, len(bucket.Projects)); err != nil {
			return err
		}
		for _, project := range bucket.Projects {
			line := "  " + project.Title
			if site, ok := project.Link(content.LinkSite); ok {
				line += "  " + site
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
	}
	return nil
}
