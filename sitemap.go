package folio

import (
	"encoding/xml"

	"github.com/labstack/echo/v4"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

// buildSitemap lists the home page followed by every post in repository
// order. The home page carries the newest post date as its lastmod.
func buildSitemap(base string, posts []BlogPost) sitemapURLSet {
	home := sitemapURL{Loc: BuildURL(base), ChangeFreq: "weekly"}
	entries := make([]sitemapURL, 0, len(posts))
	for _, p := range posts {
		mod := isoDate(p.Date)
		if mod > home.LastMod {
			home.LastMod = mod
		}
		entries = append(entries, sitemapURL{
			Loc:        PostURL(base, p),
			LastMod:    mod,
			ChangeFreq: "monthly",
		})
	}
	return sitemapURLSet{
		XMLNS: sitemapNS,
		URLs:  append([]sitemapURL{home}, entries...),
	}
}

func (a *App) renderSitemap(c echo.Context, posts []BlogPost) error {
	return writeXML(c, "application/xml; charset=utf-8", buildSitemap(a.Config.URL, posts))
}
