// Package tablepanel renders the move table and owns its scroll and row
// selection. The full displayed slice lives here; the panel windows it to
// the viewport on render, so a recompute is one message, not a page walk.
package tablepanel

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"

	"okizeme/entity"
	"okizeme/filter"
	"okizeme/style"
)

const (
	// header row + separator line
	headerHeight = 2
)

type TablePanel struct {
	selected int // absolute position in moves
	offset   int // first visible row

	width  int
	height int

	columns []entity.Column
	moves   []entity.Move
	rs      filter.Resolver

	ctx    context.Context
	logger entity.Logger
}

// MovesMsg replaces the displayed moves wholesale.
type MovesMsg struct {
	Moves []entity.Move
}

// ColumnsMsg replaces the visible column set.
type ColumnsMsg struct {
	Columns []entity.Column
	Rs      filter.Resolver
}

// SizeMsg is the panel's share of the window.
type SizeMsg struct {
	Width  int
	Height int
}

func New(ctx context.Context, columns []entity.Column, rs filter.Resolver, lgr entity.Logger) TablePanel {
	return TablePanel{
		columns: columns,
		rs:      rs,
		ctx:     ctx,
		logger:  lgr,
	}
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case ColumnsMsg:
		pnl.columns = msg.Columns
		pnl.rs = msg.Rs

	case MovesMsg:
		pnl.moves = msg.Moves
		if pnl.selected >= len(pnl.moves) {
			pnl.selected = len(pnl.moves) - 1
		}
		if pnl.selected < 0 {
			pnl.selected = 0
		}

	case tea.KeyPressMsg:
		pnl = pnl.handleKey(msg)
	}

	pnl = pnl.clampScroll()
	return pnl, nil
}

func (pnl TablePanel) handleKey(msg tea.KeyPressMsg) TablePanel {

	pageSize := pnl.PageSize()

	switch msg.String() {
	case "up", "k":
		if pnl.selected > 0 {
			pnl.selected--
		}

	case "down", "j":
		if pnl.selected < len(pnl.moves)-1 {
			pnl.selected++
		}

	case "pgup", "ctrl+u":
		pnl.selected -= pageSize
		if pnl.selected < 0 {
			pnl.selected = 0
		}

	case "pgdown", "ctrl+d":
		pnl.selected += pageSize
		if pnl.selected >= len(pnl.moves) {
			pnl.selected = len(pnl.moves) - 1
		}

	case "g":
		pnl.selected = 0

	case "G":
		pnl.selected = len(pnl.moves) - 1
	}

	if pnl.selected < 0 {
		pnl.selected = 0
	}
	return pnl
}

// clampScroll keeps the selected row on screen.
func (pnl TablePanel) clampScroll() TablePanel {

	pageSize := pnl.PageSize()
	if pageSize < 1 {
		return pnl
	}

	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pnl.selected >= pnl.offset+pageSize {
		pnl.offset = pnl.selected - pageSize + 1
	}
	if pnl.offset < 0 {
		pnl.offset = 0
	}
	return pnl
}

// PageSize is the number of data rows the viewport fits.
func (pnl TablePanel) PageSize() int {
	return pnl.height - headerHeight
}

// Selected returns the position of the selected move, 1-indexed for display.
func (pnl TablePanel) Selected() int {
	if len(pnl.moves) == 0 {
		return 0
	}
	return pnl.selected + 1
}

// Total is the displayed move count.
func (pnl TablePanel) Total() int {
	return len(pnl.moves)
}

// SelectedMove returns the move under the cursor.
func (pnl TablePanel) SelectedMove() (m entity.Move, ok bool) {

	if pnl.selected < 0 || pnl.selected >= len(pnl.moves) {
		return
	}
	return pnl.moves[pnl.selected], true
}

// VisibleFields lists the visible column field ids in display order.
func (pnl TablePanel) VisibleFields() (fields []string) {

	for _, col := range pnl.columns {
		if col.Hidden {
			continue
		}
		fields = append(fields, col.Field)
	}
	return
}

// Render draws the viewport's window of the move table.
func (pnl TablePanel) Render() string {

	if pnl.width == 0 {
		return "Loading..."
	}
	if len(pnl.moves) == 0 {
		return style.MutedStyle.Render("no moves match")
	}

	tbl := table.New()
	style.StyleTable(tbl)

	var headers []string
	for _, col := range pnl.columns {
		if col.Hidden {
			continue
		}
		label := col.Field
		if f, ok := pnl.rs.Reg.Field(col.Field); ok {
			label = f.Label
		}
		headers = append(headers, label)
	}
	tbl.Headers(headers...)

	end := pnl.offset + pnl.PageSize()
	if end > len(pnl.moves) {
		end = len(pnl.moves)
	}

	for _, m := range pnl.moves[pnl.offset:end] {
		var row []string
		for _, col := range pnl.columns {
			if col.Hidden {
				continue
			}

			val := ""
			if fv, ok := pnl.rs.Resolve(m, col.Field); ok {
				val = fv.Str
			}
			row = append(row, fmt.Sprintf("%-*.*s", col.Width, col.Width, val))
		}
		tbl.Row(row...)
	}

	tbl.StyleFunc(style.RowStyler(pnl.selected - pnl.offset))

	return tbl.Render()
}
