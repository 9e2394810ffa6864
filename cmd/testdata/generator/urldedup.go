package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// URLDedupGenerator generates URLs with heavy duplication across a small
// set of domains, paths, and query strings.
type URLDedupGenerator struct {
	rand *rand.Rand
}

var domains = []string{
	"google.com",
	"facebook.com",
	"twitter.com",
	"github.com",
	"stackoverflow.com",
	"reddit.com",
	"youtube.com",
	"linkedin.com",
	"amazon.com",
	"wikipedia.org",
}

var urlPaths = []string{
	"",
	"/home",
	"/about",
	"/contact",
	"/products",
	"/api/v1",
	"/api/v2",
	"/docs",
	"/blog",
	"/search",
	"/user/profile",
	"/settings",
	"/help",
}

var urlParams = []string{
	"",
	"?page=1",
	"?id=123",
	"?ref=homepage",
	"?utm_source=test",
	"?sort=desc",
}

func (g *URLDedupGenerator) Init(r *rand.Rand) {
	g.rand = r
}

func (g *URLDedupGenerator) WriteLine(w io.Writer) error {
	domain := domains[g.rand.IntN(len(domains))]
	path := urlPaths[g.rand.IntN(len(urlPaths))]
	param := urlParams[g.rand.IntN(len(urlParams))]

	_, err := fmt.Fprintf(w, "https://%s%s%s\n", domain, path, param)
	return err
}

func (g *URLDedupGenerator) Description() string {
	return "URLs for deduplication: https://domain.com/path?params"
}

func (g *URLDedupGenerator) DefaultCount() int64 {
	return 5e4 // 50,000 lines with lots of duplicates
}
