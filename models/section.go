package models

// SectionReport holds the per-section counts printed by the section analyzer.
type SectionReport struct {
	Name       string `yaml:"section" json:"section"`
	Paragraphs int    `yaml:"paragraphs" json:"paragraphs"`
	Hyperlinks int    `yaml:"hyperlinks" json:"hyperlinks"`
	Pictures   int    `yaml:"pictures" json:"pictures"`
	Words      int    `yaml:"words" json:"words"`
	// NoContent marks a heading with no following content block; counts
	// are zero and were never computed.
	NoContent bool `yaml:"no_content,omitempty" json:"no_content,omitempty"`
}

// PageAnalysis is the full result of analyzing one page.
type PageAnalysis struct {
	URL      string          `yaml:"url" json:"url"`
	Language string          `yaml:"language,omitempty" json:"language,omitempty"`
	Sections []SectionReport `yaml:"sections" json:"sections"`
	Keywords []string        `yaml:"top_keywords,omitempty" json:"top_keywords,omitempty"`
}
