package okizeme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"okizeme/filter"
)

// renderFooter shows position, filter and sort state on the left, game and
// scope on the right.
func (m Model) renderFooter() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	left := fmt.Sprintf("%d/%d", m.TablePanel.Selected(), m.TablePanel.Total())

	if count := filter.Count(filter.Active(m.nodes, m.reg)); count > 0 {
		left += fmt.Sprintf("  filters:%d", count)
	}

	if m.sortSpec.Field != "" {
		arrow := "↑"
		if m.sortSpec.Desc {
			arrow = "↓"
		}
		left += fmt.Sprintf("  sort:%s%s", sortLabel(m), arrow)
	}

	if m.searchFocus || filter.QuickSearchValue(m.nodes) != "" {
		cursor := ""
		if m.searchFocus {
			cursor = "_"
		}
		left += fmt.Sprintf("  /%s%s", filter.QuickSearchValue(m.nodes), cursor)
	}

	if m.stale {
		left += "  (stale)"
	}

	if m.exported != "" {
		left += "  exported " + m.exported
	}

	right := fmt.Sprintf("%s  %s", m.game, m.scopeName())

	padding := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}

func sortLabel(m Model) string {

	if f, ok := m.reg.Field(m.sortSpec.Field); ok {
		return f.Label
	}
	return m.sortSpec.Field
}
