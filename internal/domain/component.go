package domain

// ComponentDefinition is a named, reusable fragment of contract source text.
// Definitions are loaded once at start-up and shared by reference; callers
// must not modify them.
type ComponentDefinition struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Template    string `yaml:"template" json:"template"`
}

// ComponentQuery filters the catalog listing
type ComponentQuery struct {
	// Search is matched fuzzily against id, name and description. Empty matches everything.
	Search string
}
