package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fsprobe/fsprobe/internal/probe"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for the watched path header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	// borderStyle defines the style for the record panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// errStyle defines the style for a failed probe's error line.
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	// infoStyle defines the style for the probe timestamp line.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// helpStyle defines the style for the help line.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// ProbeResultMsg is a [tea.Msg] carrying the outcome of one scheduled probe.
type ProbeResultMsg struct {
	t   time.Time
	md  *probe.Metadata
	err error
}

type probeProvider interface {
	Metadata(path string) (*probe.Metadata, error)
}

// TeaModel is the principal [tea.Model] for the watch view. It re-probes the
// watched path on a fixed interval; every refresh is a fresh stat and a
// failing probe keeps the view ticking.
type TeaModel struct {
	width  int
	height int

	path     string
	interval time.Duration

	probeHandler probeProvider

	recordTable table.Model
	lastProbe   time.Time
	lastErr     string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(path string, interval time.Duration, probeHandler probeProvider) TeaModel {
	recordTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Field", Width: 16},
			{Title: "Value", Width: 48},
		}),
		table.WithHeight(16),
	)

	return TeaModel{
		path:         path,
		interval:     interval,
		probeHandler: probeHandler,
		recordTable:  recordTable,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		probePath(m.probeHandler, m.path),
	)
}

// probePath produces a [tea.Cmd] that probes the path once and reports the
// outcome as a [ProbeResultMsg].
func probePath(p probeProvider, path string) tea.Cmd {
	return func() tea.Msg {
		md, err := p.Metadata(path)

		return ProbeResultMsg{t: time.Now(), md: md, err: err}
	}
}

// scheduleProbe produces a [tea.Cmd] that waits the refresh interval and then
// probes the path again.
func scheduleProbe(p probeProvider, path string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		md, err := p.Metadata(path)

		return ProbeResultMsg{t: time.Now(), md: md, err: err}
	})
}

// Update is the principal message handling method of the model.
//
//nolint:ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.recordTable.SetWidth(m.width - 2)   //nolint:mnd
		m.recordTable.SetHeight(m.height - 6) //nolint:mnd
		m.ready = true

	case ProbeResultMsg:
		m.lastProbe = msg.t

		if msg.err != nil {
			m.lastErr = msg.err.Error()
			m.recordTable.SetRows(nil)
		} else {
			m.lastErr = ""
			m.recordTable.SetRows(metadataRows(msg.md))
		}

		// Queue the next probe.
		cmds = append(cmds, scheduleProbe(m.probeHandler, m.path, m.interval))
	}

	m.recordTable, cmd = m.recordTable.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the watch view..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render(m.path))
	s.WriteString("\n")

	if !m.lastProbe.IsZero() {
		s.WriteString(infoStyle.Render(fmt.Sprintf("last probe: %s", m.lastProbe.Format(time.Kitchen))))
		s.WriteString("\n")
	}

	if m.lastErr != "" {
		s.WriteString(errStyle.Render(m.lastErr))
		s.WriteString("\n")
	} else {
		s.WriteString(borderStyle.Render(m.recordTable.View()))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("q: quit"))

	return s.String()
}

// metadataRows flattens a record into sorted field/value table rows, the way
// it serializes on the wire, plus a humanized size row.
func metadataRows(md *probe.Metadata) []table.Row {
	data, err := json.Marshal(md)
	if err != nil {
		return []table.Row{{"error", err.Error()}}
	}

	var flat map[string]any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&flat); err != nil {
		return []table.Row{{"error", err.Error()}}
	}

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]table.Row, 0, len(keys)+1)
	for _, key := range keys {
		rows = append(rows, table.Row{key, formatValue(flat[key])})
	}

	rows = append(rows, table.Row{"size (human)", humanize.IBytes(md.Size)})

	return rows
}

func formatValue(value any) string {
	switch v := value.(type) {
	case json.Number:
		return v.String()
	case string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(data)
	}
}
