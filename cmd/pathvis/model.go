package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aneeshsunganahalli/PathVisualiser/compare"
	"github.com/aneeshsunganahalli/PathVisualiser/grid"
	"github.com/aneeshsunganahalli/PathVisualiser/mazegen"
	"github.com/aneeshsunganahalli/PathVisualiser/replay"
	"github.com/aneeshsunganahalli/PathVisualiser/search"
	"github.com/aneeshsunganahalli/PathVisualiser/vizconfig"
)

// editMode selects what a cursor "apply" does to the maze.
type editMode int

const (
	editToggleWall editMode = iota
	editSetStart
	editSetGoal
	numEditModes
)

func (m editMode) String() string {
	switch m {
	case editSetStart:
		return "set-start"
	case editSetGoal:
		return "set-goal"
	default:
		return "toggle-wall"
	}
}

// keyMap declares every binding once, for both dispatch and help.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	RunSingle  key.Binding
	RunCompare key.Binding
	Regenerate key.Binding
	Clear      key.Binding
	NextAlgo   key.Binding
	EditMode   key.Binding
	Apply      key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		RunSingle:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run selected")),
		RunCompare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "run comparison")),
		Regenerate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "new maze")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear maze")),
		NextAlgo:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next algorithm")),
		EditMode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "edit mode")),
		Apply:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "apply edit")),
		SpeedUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		SpeedDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "slower")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "cursor up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "cursor down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "cursor left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "cursor right")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RunSingle, k.RunCompare, k.Regenerate, k.EditMode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RunSingle, k.RunCompare, k.Regenerate, k.Clear},
		{k.NextAlgo, k.EditMode, k.Apply, k.SpeedUp, k.SpeedDown},
		{k.Up, k.Down, k.Left, k.Right, k.Help, k.Quit},
	}
}

// frameMsg carries one replay frame into the bubbletea loop;
// framesDoneMsg signals the channel closed. Both carry their source
// channel so messages from a superseded replay can be discarded.
type (
	frameMsg struct {
		frame replay.Frame
		src   <-chan replay.Frame
	}
	framesDoneMsg struct {
		src <-chan replay.Frame
	}
)

// model is the bubbletea state for the whole front end.
type model struct {
	cfg  *vizconfig.Config
	keys keyMap
	help help.Model

	g      *grid.Grid
	cursor grid.Position
	mode   editMode

	selected search.Algorithm
	lineup   []search.Algorithm
	speed    int

	driver *replay.Driver
	frames <-chan replay.Frame

	// replay-visualization state, rebuilt per run
	owners  map[grid.Position]compare.OwnerSet
	overlay map[grid.Position]bool
	results []*search.Result

	status string
}

func newModel(cfg *vizconfig.Config) (*model, error) {
	lineup, err := cfg.Lineup()
	if err != nil {
		return nil, err
	}
	g, err := generateMaze(cfg)
	if err != nil {
		return nil, err
	}

	return &model{
		cfg:      cfg,
		keys:     defaultKeyMap(),
		help:     help.New(),
		g:        g,
		cursor:   grid.Position{Row: 1, Col: 1},
		selected: lineup[0],
		lineup:   lineup,
		speed:    cfg.Speed,
		driver:   &replay.Driver{},
		status:   "ready",
	}, nil
}

func generateMaze(cfg *vizconfig.Config) (*grid.Grid, error) {
	if cfg.Seed != 0 {
		return mazegen.Generate(cfg.Rows, cfg.Cols, mazegen.WithSeed(cfg.Seed))
	}

	return mazegen.Generate(cfg.Rows, cfg.Cols)
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// waitForFrame adapts the driver's channel to the bubbletea loop.
func waitForFrame(frames <-chan replay.Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return framesDoneMsg{src: frames}
		}

		return frameMsg{frame: f, src: frames}
	}
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case frameMsg:
		if msg.src != m.frames {
			// stale frame from a superseded replay
			return m, nil
		}
		m.applyFrame(msg.frame)

		return m, waitForFrame(msg.src)

	case framesDoneMsg:
		if msg.src == m.frames {
			m.frames = nil
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applyFrame folds one replay frame into the visualization state.
// The deltas of a tick arrive merged, so the view never shows a
// partially applied tick.
func (m *model) applyFrame(f replay.Frame) {
	if f.Done {
		for _, p := range f.Overlay {
			m.overlay[p] = true
		}
		m.status = m.summarize()

		return
	}
	for _, d := range f.Tick.Deltas {
		m.owners[d.Pos] = d.Owners
	}
}

// summarize renders the per-algorithm metrics line shown after a run.
func (m *model) summarize() string {
	s := "done:"
	for _, r := range m.results {
		if !r.Found {
			s += fmt.Sprintf(" %s: no path (%d expanded);", r.Algorithm, r.NodesExpanded)

			continue
		}
		s += fmt.Sprintf(" %s: len=%d expanded=%d steps=%d (%s);",
			r.Algorithm, r.PathLength, r.NodesExpanded, r.StepsToGoal, r.TimeTaken.Round(time.Microsecond))
	}

	return s
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.driver.Stop()

		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, k.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, k.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, k.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, k.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, k.SpeedUp):
		if m.speed < replay.MaxSpeed {
			m.speed++
		}
	case key.Matches(msg, k.SpeedDown):
		if m.speed > replay.MinSpeed {
			m.speed--
		}

	case key.Matches(msg, k.NextAlgo):
		m.selected = search.Algorithm((int(m.selected) + 1) % search.NumAlgorithms)

	case key.Matches(msg, k.EditMode):
		m.mode = (m.mode + 1) % numEditModes

	case key.Matches(msg, k.Apply):
		m.applyEdit()

	case key.Matches(msg, k.Regenerate):
		m.rebuildMaze(false)

	case key.Matches(msg, k.Clear):
		m.rebuildMaze(true)

	case key.Matches(msg, k.RunSingle):
		return m, m.startRun([]search.Algorithm{m.selected})

	case key.Matches(msg, k.RunCompare):
		return m, m.startRun(m.lineup)
	}

	return m, nil
}

func (m *model) moveCursor(dr, dc int) {
	next := m.cursor.Add(dr, dc)
	if m.g.InBounds(next) {
		m.cursor = next
	}
}

// applyEdit performs the active edit at the cursor, unless a replay is
// running — mid-run edits are rejected, not queued.
func (m *model) applyEdit() {
	if err := m.driver.Gate(); err != nil {
		m.status = err.Error()

		return
	}
	var err error
	switch m.mode {
	case editSetStart:
		err = m.g.SetStart(m.cursor)
	case editSetGoal:
		err = m.g.SetGoal(m.cursor)
	default:
		err = m.g.ToggleWall(m.cursor)
	}
	if err != nil {
		m.status = err.Error()

		return
	}
	m.status = fmt.Sprintf("%s at (%d,%d)", m.mode, m.cursor.Row, m.cursor.Col)
}

// rebuildMaze swaps in a fresh maze (or blank canvas), gated like edits.
func (m *model) rebuildMaze(blank bool) {
	if err := m.driver.Gate(); err != nil {
		m.status = err.Error()

		return
	}
	var (
		g   *grid.Grid
		err error
	)
	if blank {
		g, err = mazegen.Empty(m.cfg.Rows, m.cfg.Cols)
	} else {
		g, err = generateMaze(m.cfg)
	}
	if err != nil {
		m.status = err.Error()

		return
	}
	m.g = g
	m.owners = nil
	m.overlay = nil
	m.results = nil
	m.status = "ready"
}

// startRun executes the engines synchronously (whole run completes
// before any animation), then starts the replay driver over the merged
// traces. The driver stops any in-flight replay first.
func (m *model) startRun(algos []search.Algorithm) tea.Cmd {
	if err := m.g.Validate(); err != nil {
		m.status = err.Error()

		return nil
	}
	results, err := search.RunAll(m.g, algos)
	if err != nil {
		m.status = err.Error()

		return nil
	}
	goal, _ := m.g.Goal()
	agg, err := compare.New(results, goal)
	if err != nil {
		m.status = err.Error()

		return nil
	}
	frames, err := m.driver.Start(context.Background(), agg, m.speed)
	if err != nil {
		m.status = err.Error()

		return nil
	}

	m.results = results
	m.owners = make(map[grid.Position]compare.OwnerSet)
	m.overlay = make(map[grid.Position]bool)
	m.frames = frames
	m.status = "running " + runLabel(algos)

	return waitForFrame(frames)
}

func runLabel(algos []search.Algorithm) string {
	if len(algos) == 1 {
		return algos[0].String()
	}

	return fmt.Sprintf("comparison of %d algorithms", len(algos))
}
