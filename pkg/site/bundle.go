package site

import (
	"sort"
)

// Bundle file names.
const (
	IndexFile   = "index.html"
	StylesFile  = "styles.css"
	SitemapFile = "sitemap.xml"
	RobotsFile  = "robots.txt"
)

// Bundle maps a relative file name to its full text content.
type Bundle map[string]string

// Names returns the file names in sorted order.
func (b Bundle) Names() (names []string) {
	names = make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the content of a file and whether it exists.
func (b Bundle) Get(name string) (content string, ok bool) {
	content, ok = b[name]
	return content, ok
}

// Size returns the total number of content bytes.
func (b Bundle) Size() (size int) {
	for _, content := range b {
		size += len(content)
	}
	return size
}
