// Package markdown splits post descriptors into front matter and body and
// renders bodies to HTML with goldmark.
package markdown
