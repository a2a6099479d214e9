package folio

import (
	"net/url"
	"path"
	"strconv"
	"strings"
)

// PostPath returns the site-relative detail page path for id.
func PostPath(id int) string {
	return "/blog/" + strconv.Itoa(id) + "/"
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PostURL returns the absolute URL of a post's detail page.
func PostURL(base string, p BlogPost) string {
	return BuildURL(base, "blog", strconv.Itoa(p.ID))
}

// Excerpt returns content cut to at most n runes on a word boundary, with an
// ellipsis when anything was dropped.
func Excerpt(content string, n int) string {
	content = strings.Join(strings.Fields(content), " ")
	r := []rune(content)
	if len(r) <= n {
		return content
	}
	cut := string(r[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
