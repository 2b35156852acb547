package okizeme

import (
	"os"

	"okizeme/entity"
	"okizeme/registry"
	"okizeme/util"
)

// Layout is the yaml-configured shape of the session: game, data location,
// visible columns, initial sort.
type Layout struct {
	Game    string          `yaml:"game"`
	DataDir string          `yaml:"data_dir"`
	Columns []entity.Column `yaml:"columns,omitempty"`
	Sort    entity.Sort     `yaml:"sort,omitempty"`
}

// LoadLayout reads the layout file, defaulting when absent.
func LoadLayout(path string) (layout Layout, err error) {

	layout = Layout{
		Game:    string(entity.SoulCalibur6),
		DataDir: "data",
	}

	_, statErr := os.Stat(path)
	if statErr != nil {
		return
	}

	err = util.LoadConfig(&layout, path)
	return
}

// ColumnsFor returns the layout's columns, generated off the registry when
// the file declares none.
func (layout Layout) ColumnsFor(reg *registry.Registry) []entity.Column {

	if len(layout.Columns) > 0 {
		return layout.Columns
	}
	return DefaultColumns(reg)
}

// DefaultColumns shows every field except the combined-input synthetic,
// sized by type.
func DefaultColumns(reg *registry.Registry) (columns []entity.Column) {

	for _, f := range reg.Fields() {
		if f.ID == registry.CombinedInputField {
			continue
		}

		width := 16
		if f.Type == entity.Number {
			width = 7
		}
		columns = append(columns, entity.Column{Field: f.ID, Width: width})
	}
	return
}
