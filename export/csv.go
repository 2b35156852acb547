// Package export serializes the displayed move set. Column order and labels
// follow what is currently visible, not a fixed schema.
package export

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"okizeme/entity"
	"okizeme/filter"
)

// WriteCSV writes the moves with one column per visible layout column,
// headed by the registry labels. Notated fields come out translated, same
// as the table shows them.
func WriteCSV(w io.Writer, moves []entity.Move, columns []entity.Column, rs filter.Resolver) (err error) {

	cw := csv.NewWriter(w)

	var visible []entity.Column
	var header []string
	for _, col := range columns {
		if col.Hidden {
			continue
		}
		visible = append(visible, col)

		label := col.Field
		if f, ok := rs.Reg.Field(col.Field); ok {
			label = f.Label
		}
		header = append(header, label)
	}

	err = cw.Write(header)
	if err != nil {
		err = errors.Wrapf(err, "failed to write csv header")
		return
	}

	row := make([]string, len(visible))
	for _, m := range moves {
		for i, col := range visible {
			row[i] = ""
			if fv, ok := rs.Resolve(m, col.Field); ok {
				row[i] = fv.Str
			}
		}
		err = cw.Write(row)
		if err != nil {
			err = errors.Wrapf(err, "failed to write csv row")
			return
		}
	}

	cw.Flush()
	err = errors.Wrapf(cw.Error(), "failed to flush csv")
	return
}
