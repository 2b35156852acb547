// Package detail renders one move's full record, one field per line.
package detail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"okizeme/entity"
	"okizeme/filter"
	"okizeme/style"
)

type DetailPanel struct {
	move entity.Move
	has  bool
	rs   filter.Resolver

	width  int
	height int

	ctx    context.Context
	logger entity.Logger
}

// MoveMsg selects the move to show. Invoked, not routed.
type MoveMsg struct {
	Move entity.Move
	Rs   filter.Resolver
}

// SizeMsg is the panel's share of the window.
type SizeMsg struct {
	Width  int
	Height int
}

func New(ctx context.Context, lgr entity.Logger) DetailPanel {
	return DetailPanel{
		ctx:    ctx,
		logger: lgr,
	}
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case MoveMsg:
		pnl.move = msg.Move
		pnl.rs = msg.Rs
		pnl.has = true

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
	}

	return pnl, nil
}

func (pnl DetailPanel) Render() string {

	if !pnl.has {
		return style.MutedStyle.Render("no move selected")
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("move %d\n\n", pnl.move.ID))

	labelWidth := 0
	for _, f := range pnl.rs.Reg.Fields() {
		if len(f.Label) > labelWidth {
			labelWidth = len(f.Label)
		}
	}

	for _, f := range pnl.rs.Reg.Fields() {
		fv, ok := pnl.rs.Resolve(pnl.move, f.ID)
		if !ok {
			continue
		}

		label := fmt.Sprintf("%-*s", labelWidth, f.Label)
		content.WriteString(style.MutedStyle.Render(label) + "  " + fv.Str + "\n")
	}

	return content.String()
}
