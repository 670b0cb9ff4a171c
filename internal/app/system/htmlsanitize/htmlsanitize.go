// Package htmlsanitize strips dangerous markup from user- and admin-supplied
// content before it is stored. Review comments come from arbitrary users and
// are reduced to plain text; tutorial content is written by admins and may
// keep a safe subset of HTML.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Sanitize keeps a safe subset of HTML (formatting, links) and removes
// scripts, event handlers, and javascript: URLs.
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// PlainText strips all HTML tags, leaving only text content.
func PlainText(s string) string {
	return strictPolicy.Sanitize(s)
}
