package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/dualmorse/internal/clipboard"
	"github.com/f3rmion/dualmorse/internal/morse"
	"github.com/mattn/go-runewidth"
)

const (
	copiedFor        = 2 * time.Second
	awaitingSignal   = "Awaiting signal..."
	inputPlaceholder = "Enter Morse code here (e.g. ... --- ...)"

	// Below this width the output panes are stacked instead of side by side.
	splitWidth = 72
)

// Pane identifies one of the two output regions.
type Pane int

const (
	PaneNone Pane = iota
	PaneLatin
	PaneArabic
)

type clearCopiedMsg struct {
	seq int
}

func clearCopiedAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{seq: seq}
	})
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithClipboard replaces the clipboard writer.
func WithClipboard(w clipboard.Writer) Option {
	return func(m *AppModel) {
		m.copy = w
	}
}

// WithDecoder replaces the reference decoder.
func WithDecoder(d *morse.Decoder) Option {
	return func(m *AppModel) {
		m.decoder = d
	}
}

// AppModel is the decoder view: one Morse input and two decoded panes.
type AppModel struct {
	input   textarea.Model
	decoder *morse.Decoder
	result  morse.Result

	copy      clipboard.Writer
	copied    Pane
	copiedSeq int
	err       error

	keys KeyMap
	help help.Model

	width  int
	height int
	ready  bool
}

// NewApp creates the decoder application.
func NewApp(opts ...Option) AppModel {
	ta := textarea.New()
	ta.Placeholder = inputPlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(4)
	ta.Focus()

	h := help.New()
	h.Styles.ShortDesc = HelpStyle
	h.Styles.ShortSeparator = HelpStyle
	h.Styles.FullDesc = HelpStyle
	h.Styles.FullSeparator = HelpStyle

	m := AppModel{
		input:   ta,
		decoder: morse.New(),
		copy:    clipboard.Write,
		keys:    DefaultKeyMap(),
		help:    h,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textarea.Blink
}

// Result returns the current decoded output.
func (m AppModel) Result() morse.Result {
	return m.result
}

// Input returns the current Morse input.
func (m AppModel) Input() string {
	return m.input.Value()
}

// Copied returns the pane showing the copied marker.
func (m AppModel) Copied() Pane {
	return m.copied
}

// Err returns the last clipboard error.
func (m AppModel) Err() error {
	return m.err
}

// SetInput replaces the input and decodes it.
func (m *AppModel) SetInput(s string) {
	m.input.SetValue(s)
	m.decode()
}

func (m *AppModel) decode() {
	m.result = m.decoder.DecodeDual(m.input.Value())
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.SetInput("")
			m.err = nil
			return m, nil
		case key.Matches(msg, m.keys.CopyLatin):
			return m.copyPane(PaneLatin, m.result.Primary)
		case key.Matches(msg, m.keys.CopyArabic):
			return m.copyPane(PaneArabic, m.result.Secondary)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.SetWidth(max(m.width-6, 10))
		m.help.Width = m.width
		return m, nil

	case clearCopiedMsg:
		if msg.seq == m.copiedSeq {
			m.copied = PaneNone
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.decode()
	}

	return m, cmd
}

func (m AppModel) copyPane(p Pane, text string) (tea.Model, tea.Cmd) {
	if text == "" {
		return m, nil
	}
	if err := m.copy(text); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.copied = p
	m.copiedSeq++
	return m, clearCopiedAfter(copiedFor, m.copiedSeq)
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderOutputs())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m AppModel) renderHeader() string {
	title := TitleStyle.Render("DARK" + TitleAccentStyle.Render("CODE"))
	status := StatusStyle.Render("● online")

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + status
}

func (m AppModel) renderInput() string {
	label := InputLabelStyle.Render("Input signal (Morse)")

	legend := lipgloss.JoinHorizontal(lipgloss.Top,
		LegendStyle.Render("dot: ."),
		LegendStyle.Render("dash: -"),
		LegendStyle.Render("space: /"),
	)
	count := CountStyle.Render(fmt.Sprintf("%d chars", len([]rune(m.input.Value()))))

	footerGap := m.width - 6 - lipgloss.Width(legend) - lipgloss.Width(count)
	if footerGap < 1 {
		footerGap = 1
	}
	footer := legend + strings.Repeat(" ", footerGap) + count

	body := lipgloss.JoinVertical(lipgloss.Left, label, m.input.View(), footer)
	return InputBoxStyle.Width(max(m.width-2, 10)).Render(body)
}

func (m AppModel) renderOutputs() string {
	split := m.width >= splitWidth

	paneWidth := m.width - 2
	if split {
		paneWidth = m.width/2 - 2
	}
	paneWidth = max(paneWidth, 10)

	latin := m.renderPane(LatinLabelStyle.Render("Latin output"), m.result.Primary, m.copied == PaneLatin, paneWidth, lipgloss.Left)
	arabic := m.renderPane(ArabicLabelStyle.Render("Arabic output"), m.result.Secondary, m.copied == PaneArabic, paneWidth, lipgloss.Right)

	if split {
		return lipgloss.JoinHorizontal(lipgloss.Top, latin, " ", arabic)
	}
	return lipgloss.JoinVertical(lipgloss.Left, latin, arabic)
}

// renderPane draws one output region. The body is aligned to align so the
// Arabic reading sits on the right like right-to-left text.
func (m AppModel) renderPane(label, text string, copied bool, width int, align lipgloss.Position) string {
	header := label
	if copied {
		header += "  " + CopiedStyle.Render("✓ Copied")
	}

	// border and padding
	inner := width - 4

	var body string
	if text == "" {
		body = PlaceholderStyle.Width(inner).Align(align).Render(awaitingSignal)
	} else {
		body = OutputStyle.Width(inner).Align(align).Render(wrap(text, inner))
	}

	return PaneStyle.Width(width).Render(header + "\n\n" + body)
}

// wrap breaks s into lines no wider than width display cells, preferring
// to break at spaces. A space that falls on a line break is dropped.
func wrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		if l := strings.TrimRight(line.String(), " "); l != "" {
			lines = append(lines, l)
		}
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.SplitAfter(s, " ") {
		core := strings.TrimRight(word, " ")
		spaces := len(word) - len(core)

		if lineWidth+runewidth.StringWidth(core) > width && lineWidth > 0 {
			flush()
		}
		for _, r := range core {
			rw := runewidth.RuneWidth(r)
			if lineWidth+rw > width && lineWidth > 0 {
				flush()
			}
			line.WriteRune(r)
			lineWidth += rw
		}
		for i := 0; i < spaces; i++ {
			if lineWidth+1 > width {
				flush()
				continue
			}
			line.WriteByte(' ')
			lineWidth++
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
