package folio

import "strings"

// Filter returns the posts whose title or content contains query, compared
// after lowercasing both sides. The query is used literally: no trimming and
// no splitting into words. An empty query returns every post. Order is kept
// and the input slice is never modified.
func Filter(posts []BlogPost, query string) []BlogPost {
	out := make([]BlogPost, 0, len(posts))
	if query == "" {
		return append(out, posts...)
	}
	q := strings.ToLower(query)
	for _, p := range posts {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether post would be kept by Filter for query.
func Matches(post BlogPost, query string) bool {
	return matches(post, strings.ToLower(query))
}

func matches(p BlogPost, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Title), lowered) ||
		strings.Contains(strings.ToLower(p.Content), lowered)
}

// ListingMessage returns the notice shown under the post list, or "" when the
// list speaks for itself. total is the size of the whole repository.
func ListingMessage(query string, matched, total int) string {
	switch {
	case matched == 0 && query != "":
		return `No blogs found matching "` + query + `"`
	case total == 0:
		return "No posts yet."
	}
	return ""
}
