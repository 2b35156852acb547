package entity

// Column is one displayed table column, identified by field id.
type Column struct {
	Field  string `yaml:"field"`
	Width  int    `yaml:"width"`
	Hidden bool   `yaml:"hidden,omitempty"`
}
