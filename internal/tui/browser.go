package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/marsquake/pkg/catalog"
)

// Browser is an interactive catalog viewer with a filterable event list
// and a per-event detail page.
type Browser struct {
	events   []*catalog.Event
	filtered []int
	cursor   int
	filter   textinput.Model
	detail   *catalog.Event
	width    int
	keyMap   browserKeyMap
	styles   browserStyles
}

type browserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

type browserStyles struct {
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
}

func defaultBrowserStyles() browserStyles {
	return browserStyles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

func defaultBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewBrowser creates a browser over the catalog's events.
func NewBrowser(cat *catalog.Catalog) Browser {
	filter := textinput.New()
	filter.Placeholder = "event name"
	filter.Prompt = "/ "
	filter.CharLimit = 32

	b := Browser{
		events: cat.Events(),
		filter: filter,
		width:  80,
		keyMap: defaultBrowserKeyMap(),
		styles: defaultBrowserStyles(),
	}
	b.applyFilter()
	return b
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.filter.Focused() {
			return b.updateFilter(msg)
		}
		if b.detail != nil {
			return b.updateDetail(msg)
		}
		return b.updateList(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
	}
	return b, nil
}

func (b Browser) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		b.filter.Blur()
		if msg.Type == tea.KeyEsc {
			b.filter.SetValue("")
			b.applyFilter()
		}
		return b, nil
	case tea.KeyCtrlC:
		return b, tea.Quit
	}
	var cmd tea.Cmd
	b.filter, cmd = b.filter.Update(msg)
	b.applyFilter()
	return b, cmd
}

func (b Browser) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keyMap.Back):
		b.detail = nil
	case key.Matches(msg, b.keyMap.Quit):
		return b, tea.Quit
	}
	return b, nil
}

func (b Browser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keyMap.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msg, b.keyMap.Down):
		if b.cursor < len(b.filtered)-1 {
			b.cursor++
		}
	case key.Matches(msg, b.keyMap.Select):
		if b.cursor < len(b.filtered) {
			b.detail = b.events[b.filtered[b.cursor]]
		}
	case key.Matches(msg, b.keyMap.Filter):
		b.filter.Focus()
		return b, textinput.Blink
	case key.Matches(msg, b.keyMap.Back):
		if b.filter.Value() != "" {
			b.filter.SetValue("")
			b.applyFilter()
		} else {
			return b, tea.Quit
		}
	case key.Matches(msg, b.keyMap.Quit):
		return b, tea.Quit
	}
	return b, nil
}

func (b *Browser) applyFilter() {
	needle := strings.ToLower(b.filter.Value())
	filtered := make([]int, 0, len(b.events))
	for i, ev := range b.events {
		if needle == "" || strings.Contains(strings.ToLower(ev.Name()), needle) {
			filtered = append(filtered, i)
		}
	}
	b.filtered = filtered
	if b.cursor >= len(b.filtered) {
		b.cursor = 0
	}
}

// View implements tea.Model.
func (b Browser) View() string {
	if b.detail != nil {
		return b.detailView()
	}
	return b.listView()
}

func (b Browser) listView() string {
	var sb strings.Builder

	sb.WriteString(b.styles.Title.Render(fmt.Sprintf("Catalog [%d events]", len(b.events))))
	sb.WriteString("\n\n")

	if b.filter.Focused() || b.filter.Value() != "" {
		sb.WriteString(b.filter.View())
		sb.WriteString("\n\n")
	}

	if len(b.filtered) == 0 {
		sb.WriteString(b.styles.Description.Render("no matching events"))
		sb.WriteString("\n")
	}

	for pos, idx := range b.filtered {
		ev := b.events[idx]
		style := b.styles.Unselected
		symbol := "○"
		if pos == b.cursor {
			style = b.styles.Selected
			symbol = "●"
		}
		line := fmt.Sprintf("%s %-8s %-16s Q%s", symbol, ev.Name(), ev.MarsType(), ev.Quality())
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString(b.styles.Help.Render("\n↑/↓ navigate • enter open • / filter • q quit"))
	return sb.String()
}

func (b Browser) detailView() string {
	ev := b.detail
	var sb strings.Builder

	sb.WriteString(b.styles.Title.Render("Event " + ev.Name()))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Mars type:       %s\n", ev.MarsType()))
	sb.WriteString(fmt.Sprintf("Interpretation:  %s\n", ev.Interpretation()))
	sb.WriteString(fmt.Sprintf("Earth type:      %s\n", ev.EarthType()))
	sb.WriteString(fmt.Sprintf("Quality:         %s\n", ev.Quality()))

	if o := ev.PreferredOrigin(); o != nil {
		sb.WriteString("\nPreferred origin:\n")
		sb.WriteString("  " + o.String() + "\n")
	}
	if m := ev.PreferredMagnitude(); m != nil {
		sb.WriteString("\nPreferred magnitude:\n")
		sb.WriteString("  " + m.String() + "\n")
	}
	if picks := ev.Picks(); len(picks) > 0 {
		sb.WriteString("\nPicks:\n")
		for _, p := range picks {
			sb.WriteString("  " + p.String() + "\n")
		}
	}

	sb.WriteString(b.styles.Help.Render("\nesc back • q quit"))
	return sb.String()
}

// Run starts the interactive browser. It returns an error when the
// program cannot run, for example without a terminal.
func Run(cat *catalog.Catalog) error {
	program := tea.NewProgram(NewBrowser(cat), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
