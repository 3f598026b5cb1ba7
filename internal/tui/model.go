package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mazeview/mazeview/internal/client"
	"github.com/mazeview/mazeview/internal/clipboard"
	"github.com/mazeview/mazeview/internal/dataset"
	"github.com/mazeview/mazeview/internal/playback"
	"github.com/mazeview/mazeview/internal/trajectory"
)

// ────────────────────────────────────────────────────────────
// Screens and small state enums
// ────────────────────────────────────────────────────────────

// Screen identifies which top-level view is active.
type Screen int

const (
	ScreenTasks Screen = iota
	ScreenGallery
)

// copyState tracks the transient citation-copy indicator.
type copyState int

const (
	copyIdle copyState = iota
	copyCopied
	copyFailed
)

// copyRevertAfter is how long the copied/failed badge stays visible.
const copyRevertAfter = 2 * time.Second

// imageState tracks per-image probe results in the gallery.
type imageState int

const (
	imagePending imageState = iota
	imageOK
	imageMissing
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Options configures the root model.
type Options struct {
	Fetcher  client.Fetcher
	Copier   clipboard.Copier
	Logger   *zap.Logger
	Citation string
	// PlaybackInterval overrides the default 2s autoplay period.
	PlaybackInterval time.Duration
}

// Model is the root BubbleTea model for mazeview. It hosts the three
// viewer surfaces: the trajectory playback screen, the layout gallery,
// and the citation copy action available from both.
type Model struct {
	fetcher client.Fetcher
	copier  clipboard.Copier
	log     *zap.Logger

	citation string
	pc       *playback.Controller

	screen Screen

	// Gallery
	catalog     *dataset.Catalog
	galleryErr  string
	imageStates map[string]imageState

	// Tasks
	index        *trajectory.TaskIndex
	indexErr     string
	taskErr      string
	selectedTask int
	showTaskList bool
	taskData     *trajectory.TaskData
	taskID       string
	trajIdx      int
	// fetchSeq stamps task-data requests; responses carrying an older
	// stamp lost the race to a newer selection and are dropped.
	fetchSeq int

	// Search (task list only; while active, arrows type, not navigate)
	searchMode  bool
	searchQuery string

	// Citation copy indicator
	copyState copyState
	copySeq   int

	// Chrome
	width, height int
	spin          spinner.Model
	loading       bool
	statusMsg     string
}

// NewModel creates the root model.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	pc := playback.NewController()
	pc.SetInterval(opts.PlaybackInterval)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorBlue)

	return Model{
		fetcher:      opts.Fetcher,
		copier:       opts.Copier,
		log:          log,
		citation:     opts.Citation,
		pc:           pc,
		showTaskList: true,
		imageStates:  make(map[string]imageState),
		spin:         sp,
		loading:      true,
		statusMsg:    "Loading...",
	}
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type datasetLoadedMsg struct {
	samples []dataset.LayoutSample
	skipped int
}

type indexLoadedMsg struct{ index *trajectory.TaskIndex }

type taskDataLoadedMsg struct {
	seq  int
	id   string
	data *trajectory.TaskData
}

type imageProbedMsg struct {
	path string
	ok   bool
}

type playTickMsg struct{ gen int }

type copyDoneMsg struct {
	seq int
	err error
}

type copyRevertMsg struct{ seq int }

type errMsg struct {
	scope string
	err   error
}

const (
	scopeGallery = "gallery"
	scopeIndex   = "index"
	scopeTask    = "task"
)

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init and commands
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadDataset(), m.loadIndex(), m.spin.Tick)
}

func (m Model) loadDataset() tea.Cmd {
	f := m.fetcher
	return func() tea.Msg {
		samples, warnings, err := f.FetchDataset(context.Background())
		if err != nil {
			return errMsg{scope: scopeGallery, err: err}
		}
		return datasetLoadedMsg{samples: samples, skipped: len(warnings)}
	}
}

func (m Model) loadIndex() tea.Cmd {
	f := m.fetcher
	return func() tea.Msg {
		idx, err := f.FetchIndex(context.Background())
		if err != nil {
			return errMsg{scope: scopeIndex, err: err}
		}
		return indexLoadedMsg{index: idx}
	}
}

func (m Model) loadTaskData(entry trajectory.TaskIndexEntry, seq int) tea.Cmd {
	f := m.fetcher
	return func() tea.Msg {
		data, err := f.FetchTaskData(context.Background(), entry)
		if err != nil {
			return errMsg{scope: scopeTask, err: err}
		}
		return taskDataLoadedMsg{seq: seq, id: entry.ID, data: data}
	}
}

// probeImages checks availability of any not-yet-probed image in the
// sample. Each probe resolves independently so one slow or missing image
// never blocks the rest of the grid.
func (m Model) probeImages(sample dataset.LayoutSample) tea.Cmd {
	f := m.fetcher
	var cmds []tea.Cmd
	for _, img := range sample.Images {
		if _, done := m.imageStates[img]; done {
			continue
		}
		path := img
		cmds = append(cmds, func() tea.Msg {
			return imageProbedMsg{path: path, ok: f.ProbeImage(context.Background(), path)}
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) scheduleTick() tea.Cmd {
	gen := m.pc.TickGeneration()
	return tea.Tick(m.pc.Interval(), func(time.Time) tea.Msg {
		return playTickMsg{gen: gen}
	})
}

func scheduleCopyRevert(seq int) tea.Cmd {
	return tea.Tick(copyRevertAfter, func(time.Time) tea.Msg {
		return copyRevertMsg{seq: seq}
	})
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case datasetLoadedMsg:
		m.catalog = dataset.NewCatalog(msg.samples)
		m.galleryErr = ""
		if msg.skipped > 0 {
			m.statusMsg = fmt.Sprintf("Dataset loaded, %d bad lines skipped", msg.skipped)
		}
		if sample, ok := m.catalog.Current(); ok {
			return m, m.probeImages(sample)
		}
		return m, nil

	case indexLoadedMsg:
		m.index = msg.index
		m.indexErr = ""
		m.loading = false
		if len(m.index.Tasks) == 0 {
			m.statusMsg = "No tasks"
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("%d tasks", len(m.index.Tasks))
		// Auto-select the first task.
		m.selectedTask = 0
		cmd := m.selectTask(m.index.Tasks[0])
		return m, cmd

	case taskDataLoadedMsg:
		if msg.seq != m.fetchSeq {
			// A newer selection superseded this response.
			m.log.Debug("stale task response dropped", zap.String("task", msg.id))
			return m, nil
		}
		m.loading = false
		m.taskErr = ""
		m.taskData = msg.data
		m.taskID = msg.id
		m.trajIdx = 0
		m.showTaskList = false
		if _, traj, ok := msg.data.Trajectories.First(); ok {
			m.pc.SetTrajectory(traj)
			m.statusMsg = fmt.Sprintf("%s  %d trajectories",
				msg.data.TaskName, msg.data.Trajectories.Len())
		} else {
			m.pc.SetTrajectory(nil)
			m.statusMsg = "No trajectories in this task"
		}
		return m, nil

	case imageProbedMsg:
		if msg.ok {
			m.imageStates[msg.path] = imageOK
		} else {
			m.imageStates[msg.path] = imageMissing
		}
		return m, nil

	case playTickMsg:
		if !m.pc.Advance(msg.gen) {
			return m, nil
		}
		if m.pc.Playing() {
			return m, m.scheduleTick()
		}
		return m, nil

	case copyDoneMsg:
		if msg.seq != m.copySeq {
			return m, nil
		}
		if msg.err != nil {
			m.copyState = copyFailed
			m.log.Warn("citation copy failed", zap.Error(msg.err))
		} else {
			m.copyState = copyCopied
		}
		return m, scheduleCopyRevert(msg.seq)

	case copyRevertMsg:
		// A newer copy restarted the timer; only the latest revert lands.
		if msg.seq == m.copySeq {
			m.copyState = copyIdle
		}
		return m, nil

	case errMsg:
		m.loading = false
		switch msg.scope {
		case scopeGallery:
			m.galleryErr = msg.err.Error()
		case scopeIndex:
			m.indexErr = msg.err.Error()
		case scopeTask:
			m.taskErr = msg.err.Error()
		}
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		m.log.Error("load failed", zap.String("scope", msg.scope), zap.Error(msg.err))
		return m, nil
	}

	return m, nil
}

// selectTask starts a task-data load. Playback stops immediately so no
// tick from the previous trajectory can land on the incoming data.
func (m *Model) selectTask(entry trajectory.TaskIndexEntry) tea.Cmd {
	m.pc.Stop()
	m.fetchSeq++
	m.loading = true
	m.taskErr = ""
	return tea.Batch(m.loadTaskData(entry, m.fetchSeq), m.spin.Tick)
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// ── Global ──

	switch key {
	case "q", "ctrl+c":
		if !m.searchMode {
			return m, tea.Quit
		}

	case "tab":
		if !m.searchMode {
			if m.screen == ScreenTasks {
				m.screen = ScreenGallery
			} else {
				m.screen = ScreenTasks
			}
			return m, nil
		}

	case "c":
		if !m.searchMode {
			return m.startCopy()
		}

	case "/":
		if m.screen == ScreenTasks && m.showTaskList && !m.searchMode {
			m.searchMode = true
			m.searchQuery = ""
			return m, nil
		}

	case "esc":
		if m.searchMode {
			m.searchMode = false
			m.searchQuery = ""
			m.selectedTask = 0
			return m, nil
		}
		if m.screen == ScreenTasks && !m.showTaskList {
			m.pc.Stop()
			m.showTaskList = true
			return m, nil
		}
		return m, nil
	}

	// ── Search mode: arrows and letters edit the query, nothing else ──

	if m.searchMode {
		switch key {
		case "enter":
			m.searchMode = false
			return m, nil
		case "backspace":
			if len(m.searchQuery) > 0 {
				m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
				m.selectedTask = 0
			}
			return m, nil
		default:
			if len(key) == 1 {
				m.searchQuery += key
				m.selectedTask = 0
			}
			return m, nil
		}
	}

	if m.screen == ScreenGallery {
		return m.handleGalleryKey(key)
	}
	return m.handleTasksKey(key)
}

func (m Model) handleGalleryKey(key string) (tea.Model, tea.Cmd) {
	if m.catalog == nil {
		return m, nil
	}
	switch key {
	case "left", "h":
		m.catalog.Navigate(-1)
	case "right", "l":
		m.catalog.Navigate(1)
	default:
		return m, nil
	}
	if sample, ok := m.catalog.Current(); ok {
		return m, m.probeImages(sample)
	}
	return m, nil
}

func (m Model) handleTasksKey(key string) (tea.Model, tea.Cmd) {
	// ── Task list mode ──

	if m.showTaskList {
		tasks := m.filteredTasks()
		switch key {
		case "j", "down":
			if m.selectedTask < len(tasks)-1 {
				m.selectedTask++
			}
		case "k", "up":
			if m.selectedTask > 0 {
				m.selectedTask--
			}
		case "enter":
			if m.selectedTask < len(tasks) {
				cmd := m.selectTask(tasks[m.selectedTask])
				return m, cmd
			}
		}
		return m, nil
	}

	// ── Playback mode ──

	switch key {
	case "left", "h":
		if !m.pc.AtStart() {
			m.pc.NavigateToStep(m.pc.Step() - 1)
		}
	case "right", "l":
		if !m.pc.AtEnd() {
			m.pc.NavigateToStep(m.pc.Step() + 1)
		}
	case "home", "g":
		m.pc.NavigateToStep(0)
	case "end", "G":
		m.pc.NavigateToStep(m.pc.StepCount() - 1)
	case " ":
		if m.pc.Toggle() {
			return m, m.scheduleTick()
		}
	case "up", "k":
		return m.switchTrajectory(-1), nil
	case "down", "j":
		return m.switchTrajectory(1), nil
	}
	return m, nil
}

// switchTrajectory moves the trajectory selection by delta, clamped.
// Switching always stops playback (SetTrajectory stops and resets).
func (m Model) switchTrajectory(delta int) Model {
	if m.taskData == nil {
		return m
	}
	ids := m.taskData.Trajectories.IDs()
	next := clamp(m.trajIdx+delta, 0, len(ids)-1)
	if next == m.trajIdx || len(ids) == 0 {
		return m
	}
	m.trajIdx = next
	if traj, ok := m.taskData.Trajectories.Get(ids[next]); ok {
		m.pc.SetTrajectory(traj)
	}
	return m
}

// startCopy kicks off a citation copy. Bumping copySeq both invalidates a
// pending revert (restarting the 2s window) and ties the result to this
// attempt.
func (m Model) startCopy() (tea.Model, tea.Cmd) {
	if m.copier == nil {
		return m, nil
	}
	m.copySeq++
	seq := m.copySeq
	copier := m.copier
	text := m.citation
	return m, func() tea.Msg {
		return copyDoneMsg{seq: seq, err: copier.Copy(text)}
	}
}

// filteredTasks returns the index entries matching the search query.
func (m Model) filteredTasks() []trajectory.TaskIndexEntry {
	if m.index == nil {
		return nil
	}
	if m.searchQuery == "" {
		return m.index.Tasks
	}
	q := strings.ToLower(m.searchQuery)
	var out []trajectory.TaskIndexEntry
	for _, t := range m.index.Tasks {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.ID), q) {
			out = append(out, t)
		}
	}
	return out
}

// currentTrajectory returns the selected trajectory id, or "".
func (m Model) currentTrajectoryID() string {
	if m.taskData == nil {
		return ""
	}
	ids := m.taskData.Trajectories.IDs()
	if m.trajIdx >= len(ids) {
		return ""
	}
	return ids[m.trajIdx]
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - 2 // header + footer

	var body string
	switch m.screen {
	case ScreenGallery:
		body = renderGallery(&m, m.width, bodyHeight)
	default:
		body = renderTasks(&m, m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderTasks assembles the trajectory screen: task list, or the
// timeline + step detail stack.
func renderTasks(m *Model, width, height int) string {
	if m.indexErr != "" {
		return emptyStateStyle.Render(
			"Could not load the task index.\n\n" + m.indexErr)
	}
	if m.index == nil {
		return emptyStateStyle.Render(m.spin.View() + " Loading task index...")
	}
	if m.showTaskList {
		return renderTaskList(m)
	}
	if m.taskErr != "" {
		return emptyStateStyle.Render(
			"Could not load this task.\n\n" + m.taskErr)
	}
	if m.loading {
		return emptyStateStyle.Render(m.spin.View() + " Loading task...")
	}

	timelineHeight := 5
	stepHeight := height - timelineHeight
	timeline := renderTimelinePanel(m, width, timelineHeight)
	step := renderStepPanel(m, width, stepHeight)
	return lipgloss.JoinVertical(lipgloss.Left, timeline, step)
}
