package skill

import "sync"

var (
	defaultOnce     sync.Once
	defaultTaxonomy *Taxonomy
)

// DefaultTaxonomy returns the built-in dictionary used when no other taxonomy is configured.
func DefaultTaxonomy() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTaxonomy = NewTaxonomy(defaultCategories...)
	})
	return defaultTaxonomy
}

func names(items ...string) []Entry {
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		out = append(out, Entry{Name: it})
	}
	return out
}

var defaultCategories = []Category{
	{
		Name: "Frontend",
		Entries: append(names("React", "Vue", "Angular", "JavaScript", "TypeScript", "HTML", "CSS", "Redux", "Next.js", "Tailwind", "Sass", "Webpack"),
			Entry{Name: "Svelte", Aliases: []string{"sveltekit"}},
		),
	},
	{
		Name: "Backend",
		Entries: append(names("Python", "Java", "Django", "Flask", "Spring", "Ruby", "PHP", "Laravel", "C#", "Rust", "GraphQL", "Express"),
			Entry{Name: "Node.js", Aliases: []string{"node js"}},
			Entry{Name: "Golang"},
			Entry{Name: "TypeScript"},
			Entry{Name: "REST API", Aliases: []string{"restful"}},
		),
	},
	{
		Name:    "Database",
		Entries: append(names("PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Cassandra", "DynamoDB"), Entry{Name: "Elasticsearch", Aliases: []string{"elastic search"}}),
	},
	{
		Name: "DevOps",
		Entries: append(names("AWS", "Azure", "GCP", "Docker", "Terraform", "Jenkins", "Ansible", "Linux", "Nginx", "CI/CD", "GitHub Actions"),
			Entry{Name: "Kubernetes", Aliases: []string{"k8s"}},
		),
	},
	{
		Name:    "Mobile",
		Entries: names("React Native", "Flutter", "Swift", "Kotlin", "Android", "Dart"),
	},
	{
		Name:    "Data & AI",
		Entries: names("Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Pandas", "NumPy", "Scikit-learn", "Spark", "Kafka", "Airflow"),
	},
	{
		Name:    "Tools",
		Entries: names("Git", "Jira", "Figma", "Jest", "Cypress", "Postman"),
	},
}
