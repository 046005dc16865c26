package resources

import (
	"context"
	"net/url"
	"strings"

	"skill-gap/internal/domain/learning"
	"skill-gap/internal/domain/skill"
)

var officialDocs = map[string]string{
	"react":         "https://react.dev/learn",
	"vue":           "https://vuejs.org/guide/introduction.html",
	"angular":       "https://angular.dev/overview",
	"javascript":    "https://developer.mozilla.org/en-US/docs/Web/JavaScript",
	"typescript":    "https://www.typescriptlang.org/docs/",
	"node.js":       "https://nodejs.org/en/learn",
	"python":        "https://docs.python.org/3/tutorial/",
	"golang":        "https://go.dev/doc/",
	"java":          "https://dev.java/learn/",
	"docker":        "https://docs.docker.com/get-started/",
	"kubernetes":    "https://kubernetes.io/docs/tutorials/",
	"aws":           "https://docs.aws.amazon.com/",
	"postgresql":    "https://www.postgresql.org/docs/current/tutorial.html",
	"mongodb":       "https://www.mongodb.com/docs/manual/tutorial/",
	"redis":         "https://redis.io/docs/latest/",
	"elasticsearch": "https://www.elastic.co/guide/index.html",
}

// StaticProvider returns documentation, video and course links for a skill
// without any network access.
type StaticProvider struct{}

func (StaticProvider) FetchResources(_ context.Context, skillName string) ([]learning.Resource, error) {
	name := strings.TrimSpace(skillName)
	if name == "" {
		return []learning.Resource{}, nil
	}
	q := url.QueryEscape(name)
	paid := "paid"

	docs := officialDocs[skill.Normalize(name)]
	if docs == "" {
		docs = "https://devdocs.io/#q=" + q
	}

	return []learning.Resource{
		{
			Title:    name + " documentation",
			URL:      docs,
			Type:     "documentation",
			Platform: "Official docs",
		},
		{
			Title:    name + " crash course",
			URL:      "https://www.youtube.com/results?search_query=" + url.QueryEscape(name+" crash course"),
			Type:     "video",
			Duration: "1-3 hours",
			Platform: "YouTube",
		},
		{
			Title:    name + " courses",
			URL:      "https://www.coursera.org/search?query=" + q,
			Type:     "course",
			Duration: "2-6 weeks",
			Platform: "Coursera",
			Price:    &paid,
		},
	}, nil
}
