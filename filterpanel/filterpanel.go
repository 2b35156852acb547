// Package filterpanel is the modal dialog for editing the filter expression
// tree. Every edit runs one of the pure tree rewrites and rebuilds the row
// list; the working tree only reaches the engine on apply.
package filterpanel

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"okizeme/edible"
	"okizeme/entity"
	"okizeme/filter"
	"okizeme/message"
	"okizeme/registry"
	"okizeme/style"
)

type FilterPanel struct {
	nodes  []entity.Node
	rootOp entity.GroupOp
	reg    *registry.Registry
	table  edible.EditTable

	width  int
	height int

	ctx    context.Context
	logger entity.Logger
}

// OpenMsg seeds the dialog with the applied tree. Invoked, not routed.
type OpenMsg struct {
	Nodes  []entity.Node
	RootOp entity.GroupOp
	Reg    *registry.Registry
}

// SizeMsg is the panel's share of the window.
type SizeMsg struct {
	Width  int
	Height int
}

func New(ctx context.Context, lgr entity.Logger) FilterPanel {
	return FilterPanel{
		rootOp: entity.And,
		ctx:    ctx,
		logger: lgr,
	}
}

func (pnl FilterPanel) Update(msg tea.Msg) (FilterPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case OpenMsg:
		pnl.reg = msg.Reg
		pnl.rootOp = msg.RootOp
		pnl.nodes = msg.Nodes
		if len(pnl.nodes) == 0 {
			pnl.nodes = []entity.Node{filter.NewCondition(pnl.reg)}
		}
		pnl.table = edible.NewEditTable(flatten(pnl.nodes, pnl.reg))

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height

	case tea.KeyPressMsg:
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

func (pnl FilterPanel) handleKey(msg tea.KeyPressMsg) (FilterPanel, tea.Cmd) {

	switch msg.String() {

	case "enter":
		nodes := pnl.nodes
		rootOp := pnl.rootOp
		return pnl, tea.Batch(
			func() tea.Msg { return message.ApplyFilterMsg{Nodes: nodes, RootOp: rootOp} },
			func() tea.Msg { return message.CloseDialogMsg{} },
		)

	case "esc":
		return pnl, func() tea.Msg { return message.CloseDialogMsg{} }

	case "up":
		pnl.table = pnl.table.MoveUp()
	case "down":
		pnl.table = pnl.table.MoveDown()
	case "tab":
		pnl.table = pnl.table.NextField()
	case "shift+tab":
		pnl.table = pnl.table.PrevField()

	case "left":
		pnl = pnl.cycle(-1)
	case "right":
		pnl = pnl.cycle(1)

	default:
		pnl = pnl.handleEdit(msg)
	}

	return pnl, nil
}

// handleEdit routes remaining keys: structural single-letter commands away
// from value cells, text entry on them.
func (pnl FilterPanel) handleEdit(msg tea.KeyPressMsg) FilterPanel {

	row, col, ok := pnl.table.SelectedCell()
	cr, isCond := row.(conditionRow)
	onValue := ok && isCond && (col == cellValue || col == cellValue2)

	if !onValue {
		switch msg.String() {
		case "a":
			return pnl.rebuild(filter.AddCondition(pnl.nodes, pnl.selectedGroupID(), pnl.reg))
		case "A":
			return pnl.rebuild(filter.AddGroup(pnl.nodes, pnl.selectedGroupID(), pnl.reg))
		case "d":
			return pnl.rebuild(filter.Remove(pnl.nodes, pnl.selectedID(), pnl.reg))
		case "i":
			return pnl.rebuild(filter.Indent(pnl.nodes, pnl.selectedID()))
		case "o":
			return pnl.rebuild(filter.Outdent(pnl.nodes, pnl.selectedID()))
		case "r":
			pnl.rootOp = toggleOp(pnl.rootOp)
			return pnl
		}
		return pnl
	}

	switch msg.String() {
	case "backspace":
		val := cr.GetCell(col)
		if val == "" {
			return pnl
		}
		return pnl.setValueCell(cr, col, val[:len(val)-1])

	case "space":
		return pnl.setValueCell(cr, col, cr.GetCell(col)+" ")
	}

	text := msg.String()
	if len(text) == 1 && text[0] >= ' ' && text[0] <= '~' {
		return pnl.setValueCell(cr, col, cr.GetCell(col)+text)
	}
	return pnl
}

func (pnl FilterPanel) setValueCell(cr conditionRow, col int, val string) FilterPanel {

	if col == cellValue2 {
		return pnl.rebuild(filter.SetValue2(pnl.nodes, cr.cond.ID, val))
	}
	return pnl.rebuild(filter.SetValue(pnl.nodes, cr.cond.ID, val))
}

// cycle advances the selected field, operator, or group op.
func (pnl FilterPanel) cycle(dir int) FilterPanel {

	row, col, ok := pnl.table.SelectedCell()
	if !ok {
		return pnl
	}

	switch row := row.(type) {

	case groupRow:
		return pnl.rebuild(filter.SetGroupOp(pnl.nodes, row.group.ID, toggleOp(row.group.Op)))

	case conditionRow:
		switch col {
		case cellField:
			fields := pnl.reg.Fields()
			idx := 0
			for i, f := range fields {
				if f.ID == row.cond.Field {
					idx = i
					break
				}
			}
			next := fields[(idx+dir+len(fields))%len(fields)]
			return pnl.rebuild(filter.SetField(pnl.nodes, row.cond.ID, next.ID, pnl.reg))

		case cellOperator:
			ops, err := pnl.reg.AvailableConditions(row.cond.Field)
			if err != nil || len(ops) == 0 {
				return pnl
			}
			idx := 0
			for i, op := range ops {
				if op.ID == row.cond.Operator {
					idx = i
					break
				}
			}
			next := ops[(idx+dir+len(ops))%len(ops)]
			return pnl.rebuild(filter.SetOperator(pnl.nodes, row.cond.ID, next.ID, pnl.reg))
		}
	}
	return pnl
}

// rebuild installs an edited tree and refreshes the rows.
func (pnl FilterPanel) rebuild(nodes []entity.Node) FilterPanel {
	pnl.nodes = nodes
	pnl.table = pnl.table.SetRows(flatten(nodes, pnl.reg))
	return pnl
}

// selectedID returns the id of the node under the cursor.
func (pnl FilterPanel) selectedID() string {

	row, _, ok := pnl.table.SelectedCell()
	if !ok {
		return ""
	}
	switch row := row.(type) {
	case conditionRow:
		return row.cond.ID
	case groupRow:
		return row.group.ID
	}
	return ""
}

// selectedGroupID returns the group to add into: the selected group, or
// root when a condition is selected.
func (pnl FilterPanel) selectedGroupID() string {

	row, _, ok := pnl.table.SelectedCell()
	if !ok {
		return ""
	}
	if gr, isGroup := row.(groupRow); isGroup {
		return gr.group.ID
	}
	return ""
}

// flatten lists the tree depth first, groups before their children.
func flatten(nodes []entity.Node, reg *registry.Registry) []edible.EditableRow {
	return flattenDepth(nodes, reg, 0)
}

func flattenDepth(nodes []entity.Node, reg *registry.Registry, depth int) (rows []edible.EditableRow) {

	for _, n := range nodes {
		switch n := n.(type) {
		case entity.Condition:
			rows = append(rows, conditionRow{cond: n, depth: depth, reg: reg})
		case entity.Group:
			rows = append(rows, groupRow{group: n, depth: depth})
			rows = append(rows, flattenDepth(n.Children, reg, depth+1)...)
		}
	}
	return
}

func toggleOp(op entity.GroupOp) entity.GroupOp {
	if op == entity.And {
		return entity.Or
	}
	return entity.And
}

func (pnl FilterPanel) Render() string {

	var content strings.Builder

	content.WriteString("Filters (root " + strings.ToUpper(string(pnl.rootOp)) + "):\n")

	for i := 0; i < pnl.table.NumRows(); i++ {
		row := pnl.table.GetRow(i)

		selectedCol := -1
		prefix := "  "
		if i == pnl.table.SelectedRow() {
			selectedCol = pnl.table.SelectedCol()
			prefix = "> "
		}
		content.WriteString(prefix + row.Render(selectedCol) + "\n")
	}

	helpText := "a: +cond  A: +group  d: del  i/o: indent/outdent  r: root op\n" +
		"←→: change  Tab: next  Enter: apply  Esc: cancel"
	content.WriteString("\n" + style.MutedStyle.Render(helpText))

	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Width(70)

	return dialogStyle.Render(content.String())
}

// Layer centers the dialog on the screen.
func (pnl FilterPanel) Layer() *lipgloss.Layer {

	dialog := pnl.Render()

	dialogHeight := strings.Count(dialog, "\n") + 1
	dialogWidth := 74

	vPad := (pnl.height - dialogHeight) / 2
	hPad := (pnl.width - dialogWidth) / 2
	if vPad < 0 {
		vPad = 0
	}
	if hPad < 0 {
		hPad = 0
	}

	return lipgloss.NewLayer("filter", dialog).X(hPad).Y(vPad)
}
