package folio

// BlogPost is the single canonical post record served by the blog.
// Image is optional; an empty value means the post has no display image.
type BlogPost struct {
	ID      int    `yaml:"id"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Date    string `yaml:"date"`
	Author  string `yaml:"author"`
	Image   string `yaml:"image,omitempty"`
}

// Path returns the site-relative detail page path for the post.
func (p BlogPost) Path() string {
	return PostPath(p.ID)
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}
