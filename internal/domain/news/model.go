package news

// Article is one news headline.
type Article struct {
	ID           string  `json:"id"`
	Headline     string  `json:"headline"`
	Description  string  `json:"description"`
	Published    string  `json:"published"`
	LastModified string  `json:"lastModified"`
	Author       string  `json:"author,omitempty"`
	Premium      bool    `json:"premium"`
	Image        *string `json:"image"`
	URL          *string `json:"url"`
}
