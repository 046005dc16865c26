package learning

type Resource struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Type     string  `json:"type"`
	Duration string  `json:"duration"`
	Platform string  `json:"platform"`
	Price    *string `json:"price,omitempty"`
}
