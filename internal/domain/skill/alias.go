package skill

// commonVariants maps spellings that the substring rule cannot bridge onto a
// canonical taxonomy name.
var commonVariants = map[string]string{
	"nodejs":              "Node.js",
	"node":                "Node.js",
	"reactjs":             "React",
	"react.js":            "React",
	"vuejs":               "Vue",
	"vue.js":              "Vue",
	"js":                  "JavaScript",
	"ts":                  "TypeScript",
	"go":                  "Golang",
	"postgres":            "PostgreSQL",
	"mongo":               "MongoDB",
	"k8s":                 "Kubernetes",
	"amazon web services": "AWS",
	"google cloud":        "GCP",
	"nextjs":              "Next.js",
	"expressjs":           "Express",
	"express.js":          "Express",
	"ci cd":               "CI/CD",
	"cicd":                "CI/CD",
	"sklearn":             "Scikit-learn",
	"ml":                  "Machine Learning",
}

// AliasTable resolves normalized spellings to a normalized canonical name.
type AliasTable map[string]string

// NewAliasTable indexes every taxonomy term plus the common variants. Extra
// entries override both.
func NewAliasTable(t *Taxonomy, extra map[string]string) AliasTable {
	out := AliasTable{}
	if t != nil {
		for _, c := range t.categories {
			for _, e := range c.Entries {
				canonical := Normalize(e.Name)
				if canonical == "" {
					continue
				}
				for _, term := range e.Terms() {
					if n := Normalize(term); n != "" {
						if _, ok := out[n]; !ok {
							out[n] = canonical
						}
					}
				}
			}
		}
	}
	for k, v := range commonVariants {
		out[Normalize(k)] = Normalize(v)
	}
	for k, v := range extra {
		if nk, nv := Normalize(k), Normalize(v); nk != "" && nv != "" {
			out[nk] = nv
		}
	}
	return out
}

// Resolve returns the canonical normalized form, or the normalized input when unknown.
func (a AliasTable) Resolve(name string) string {
	n := Normalize(name)
	if c, ok := a[n]; ok {
		return c
	}
	return n
}
