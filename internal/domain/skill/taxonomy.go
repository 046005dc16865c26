package skill

const CategoryOther = "Other"

type Entry struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

// Terms returns the canonical name followed by the extra aliases.
func (e Entry) Terms() []string {
	out := make([]string, 0, 1+len(e.Aliases))
	out = append(out, e.Name)
	out = append(out, e.Aliases...)
	return out
}

type Category struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Taxonomy is an ordered, immutable skill dictionary. Category order decides
// which category owns a skill listed in more than one of them.
type Taxonomy struct {
	categories []Category
}

func NewTaxonomy(categories ...Category) *Taxonomy {
	return &Taxonomy{categories: copyCategories(categories)}
}

func (t *Taxonomy) Categories() []Category {
	if t == nil {
		return []Category{}
	}
	return copyCategories(t.categories)
}

func (t *Taxonomy) CategoryOf(name string) (string, bool) {
	if t == nil {
		return CategoryOther, false
	}
	n := Normalize(name)
	if n == "" {
		return CategoryOther, false
	}
	for _, c := range t.categories {
		for _, e := range c.Entries {
			for _, term := range e.Terms() {
				if Normalize(term) == n {
					return c.Name, true
				}
			}
		}
	}
	return CategoryOther, false
}

func (t *Taxonomy) Size() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, c := range t.categories {
		n += len(c.Entries)
	}
	return n
}

func copyCategories(in []Category) []Category {
	out := make([]Category, 0, len(in))
	for _, c := range in {
		entries := make([]Entry, 0, len(c.Entries))
		for _, e := range c.Entries {
			aliases := make([]string, len(e.Aliases))
			copy(aliases, e.Aliases)
			entries = append(entries, Entry{Name: e.Name, Aliases: aliases})
		}
		out = append(out, Category{Name: c.Name, Entries: entries})
	}
	return out
}
