package okizeme

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"okizeme/detail"
	"okizeme/engine"
	"okizeme/entity"
	"okizeme/filter"
	"okizeme/filterpanel"
	"okizeme/message"
	"okizeme/notation"
	"okizeme/prefs"
	"okizeme/registry"
	"okizeme/store/movedata"
	"okizeme/tablepanel"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the frame-data explorer.
type Model struct {
	store     MoveStore
	prefs     prefs.Prefs
	prefsPath string
	layout    Layout
	logger    entity.Logger
	ctx       context.Context

	game     entity.GameID
	roster   []movedata.CharacterRef
	scopeIdx int // -1 is the whole roster

	reg        *registry.Registry
	translator *notation.Translator
	pipeline   *engine.Pipeline
	scheduler  *engine.Scheduler

	// applied filter state
	nodes    []entity.Node
	rootOp   entity.GroupOp
	sortSpec entity.Sort

	columns     []entity.Column
	displayed   []entity.Move
	lastSeq     uint64
	stale       bool
	searchFocus bool

	CurrentScreen Screen
	TablePanel    tablepanel.TablePanel
	FilterPanel   filterpanel.FilterPanel
	DetailPanel   detail.DetailPanel

	Width  int
	Height int

	errorString string
	exported    string
}

// NewModel builds the session for the layout's game.
func NewModel(ctx context.Context, store MoveStore, layout Layout, pf prefs.Prefs, prefsPath string, lgr entity.Logger) (model Model, err error) {

	game := entity.GameID(layout.Game)

	reg, err := registry.ForGame(game)
	if err != nil {
		return
	}

	translator := notation.NewTranslator(game, pf.EnabledMaps(game))
	rs := filter.Resolver{Reg: reg, Translator: translator}

	roster, err := store.Characters(game)
	if err != nil {
		return
	}

	pipeline := engine.New(rs)

	columns := layout.ColumnsFor(reg)
	if cols, ok := pf.ColumnsFor(game); ok {
		columns = cols
	}

	model = Model{
		store:         store,
		prefs:         pf,
		prefsPath:     prefsPath,
		layout:        layout,
		logger:        lgr,
		ctx:           ctx,
		game:          game,
		roster:        roster,
		scopeIdx:      -1,
		reg:           reg,
		translator:    translator,
		pipeline:      pipeline,
		scheduler:     engine.NewScheduler(),
		nodes:         []entity.Node{filter.NewCondition(reg)},
		rootOp:        entity.And,
		sortSpec:      layout.Sort,
		columns:       columns,
		CurrentScreen: TableScreen,
		TablePanel:    tablepanel.New(ctx, columns, rs, lgr),
		FilterPanel:   filterpanel.New(ctx, lgr),
		DetailPanel:   detail.New(ctx, lgr),
	}

	return
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadMoves(), m.awaitResult())
}

// rs is the current resolver, rebuilt on game or notation change.
func (m Model) rs() filter.Resolver {
	return filter.Resolver{Reg: m.reg, Translator: m.translator}
}

// scope is the character selection under scopeIdx.
func (m Model) scope() entity.CharacterScope {
	if m.scopeIdx < 0 || m.scopeIdx >= len(m.roster) {
		return entity.AllCharacters()
	}
	return entity.Character(m.roster[m.scopeIdx].ID)
}

func (m Model) scopeName() string {
	if m.scopeIdx < 0 || m.scopeIdx >= len(m.roster) {
		return "All"
	}
	return m.roster[m.scopeIdx].Name
}

// submit schedules a deferred recompute of the displayed set; the previous
// result keeps showing, marked stale, until the matching ResultMsg lands.
func (m Model) submit() Model {

	pipeline := m.pipeline
	nodes := m.nodes
	rootOp := m.rootOp
	spec := m.sortSpec

	m.stale = true
	m.lastSeq = m.scheduler.Submit(func() []entity.Move {
		return pipeline.Compute(nodes, rootOp, spec)
	})
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.MovesLoadedMsg:
		m.pipeline.SetRecords(msg.Moves)
		m = m.submit()
		return m, nil

	case message.ResultMsg:
		// a stale seq means a newer submit superseded this result
		if msg.Seq == m.lastSeq {
			m.stale = false
			m.displayed = msg.Moves
			var cmd tea.Cmd
			m.TablePanel, cmd = m.TablePanel.Update(tablepanel.MovesMsg{Moves: msg.Moves})
			return m, tea.Batch(cmd, m.awaitResult())
		}
		return m, m.awaitResult()

	case message.ApplyFilterMsg:
		m.nodes = msg.Nodes
		m.rootOp = msg.RootOp
		m = m.submit()
		return m, nil

	case message.CloseDialogMsg:
		m.CurrentScreen = TableScreen
		return m, nil

	case message.ExportedMsg:
		m.exported = msg.Path
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd1, cmd2, cmd3 tea.Cmd
		m.TablePanel, cmd1 = m.TablePanel.Update(tablepanel.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		m.FilterPanel, cmd2 = m.FilterPanel.Update(filterpanel.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		m.DetailPanel, cmd3 = m.DetailPanel.Update(detail.SizeMsg{Width: msg.Width, Height: msg.Height - footerHeight})
		return m, tea.Sequence(cmd1, cmd2, cmd3)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	if m.errorString != "" {
		m.errorString = ""
	}

	// dialog owns the keyboard while open
	if m.CurrentScreen == FilterScreen {
		var cmd tea.Cmd
		m.FilterPanel, cmd = m.FilterPanel.Update(msg)
		return m, cmd
	}

	if m.searchFocus {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {

	case "ctrl+c", "q":
		m.scheduler.Close()
		return m, tea.Quit

	case "esc":
		if m.CurrentScreen != TableScreen {
			m.CurrentScreen = TableScreen
			return m, nil
		}
		m.scheduler.Close()
		return m, tea.Quit

	case "/":
		m.searchFocus = true
		return m, nil

	case "f":
		m.CurrentScreen = FilterScreen
		var cmd tea.Cmd
		m.FilterPanel, cmd = m.FilterPanel.Update(filterpanel.OpenMsg{
			Nodes:  m.nodes,
			RootOp: m.rootOp,
			Reg:    m.reg,
		})
		return m, cmd

	case "v", "right", "l":
		move, ok := m.TablePanel.SelectedMove()
		if !ok {
			return m, nil
		}
		m.CurrentScreen = DetailScreen
		var cmd tea.Cmd
		m.DetailPanel, cmd = m.DetailPanel.Update(detail.MoveMsg{Move: move, Rs: m.rs()})
		return m, cmd

	case "left", "h":
		if m.CurrentScreen == DetailScreen {
			m.CurrentScreen = TableScreen
		}
		return m, nil

	case "e":
		return m, m.export()

	case "m":
		return m.toggleNotation()

	case "c":
		return m.cycleScope()

	case "ctrl+g":
		return m.cycleGame()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		fields := m.TablePanel.VisibleFields()
		if idx >= len(fields) {
			return m, nil
		}
		m.sortSpec = engine.SelectSort(m.sortSpec, fields[idx])
		m = m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.TablePanel, cmd = m.TablePanel.Update(msg)
	return m, cmd
}

// handleSearchKey edits quick search; every keystroke reshapes the tree and
// schedules a recompute.
func (m Model) handleSearchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	text := filter.QuickSearchValue(m.nodes)

	switch msg.String() {

	case "esc", "enter":
		m.searchFocus = false
		return m, nil

	case "backspace":
		if text == "" {
			return m, nil
		}
		text = text[:len(text)-1]

	case "space":
		text += " "

	default:
		key := msg.String()
		if len(key) != 1 || key[0] < ' ' || key[0] > '~' {
			return m, nil
		}
		text += key
	}

	m.nodes = filter.SetQuickSearch(m.nodes, text, m.reg)
	m = m.submit()
	return m, nil
}

// cycleScope advances All -> each character -> All, reloading records.
func (m Model) cycleScope() (tea.Model, tea.Cmd) {

	m.scopeIdx++
	if m.scopeIdx >= len(m.roster) {
		m.scopeIdx = -1
	}
	return m, m.loadMoves()
}

// cycleGame swaps to the next configured game: new registry, revalidated
// tree, fresh translator and pipeline, reloaded roster and records.
func (m Model) cycleGame() (tea.Model, tea.Cmd) {

	games := registry.Games()
	next := games[0]
	for i, g := range games {
		if g == m.game {
			next = games[(i+1)%len(games)]
			break
		}
	}

	reg, err := registry.ForGame(next)
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	roster, err := m.store.Characters(next)
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	m.nodes = filter.Revalidate(m.nodes, m.reg, reg)
	m.game = next
	m.reg = reg
	m.roster = roster
	m.scopeIdx = -1
	m.translator = notation.NewTranslator(next, m.prefs.EnabledMaps(next))
	m.pipeline = engine.New(m.rs())
	m.sortSpec = entity.Sort{}

	if cols, ok := m.prefs.ColumnsFor(next); ok {
		m.columns = cols
	} else if string(next) == m.layout.Game {
		m.columns = m.layout.ColumnsFor(reg)
	} else {
		m.columns = DefaultColumns(reg)
	}

	var cmd tea.Cmd
	m.TablePanel, cmd = m.TablePanel.Update(tablepanel.ColumnsMsg{Columns: m.columns, Rs: m.rs()})
	return m, tea.Batch(cmd, m.loadMoves())
}

// toggleNotation flips the arrows map on or off for the current game. The
// translator and its caches rebuild off the new fingerprint.
func (m Model) toggleNotation() (tea.Model, tea.Cmd) {

	enabled := m.prefs.EnabledMaps(m.game)

	var next []string
	found := false
	for _, name := range enabled {
		if name == "arrows" {
			found = true
			continue
		}
		next = append(next, name)
	}
	if !found {
		next = append(next, "arrows")
	}

	m.prefs.SetEnabledMaps(m.game, next)
	m.translator = notation.NewTranslator(m.game, next)

	records := m.pipeline.Records()
	m.pipeline = engine.New(m.rs())
	m.pipeline.SetRecords(records)

	var cmd tea.Cmd
	m.TablePanel, cmd = m.TablePanel.Update(tablepanel.ColumnsMsg{Columns: m.columns, Rs: m.rs()})
	m = m.submit()

	if err := m.prefs.Save(m.prefsPath); err != nil {
		return m, tea.Batch(cmd, message.ErrorCmd(err))
	}
	return m, cmd
}

func (m Model) View() tea.View {

	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case DetailScreen:
		screenContent = m.DetailPanel.Render()
	default:
		screenContent = m.TablePanel.Render()
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)

	footerContent := m.renderFooter()
	if m.errorString != "" {
		footerContent = m.errorString
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	if m.CurrentScreen == FilterScreen {
		canvas.Compose(m.FilterPanel.Layer())
	}

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}
