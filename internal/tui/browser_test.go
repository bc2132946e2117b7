package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/marsquake/pkg/catalog"
)

func browserFixture() *catalog.Catalog {
	names := []string{"S0105a", "S0128a", "S0173a"}
	events := make([]*catalog.Event, 0, len(names))
	for _, name := range names {
		ev := catalog.NewEvent("smi:insight.mqs/Event/"+name, name)
		ev.SetMarsType("LF")
		origin := catalog.NewOrigin("smi:insight.mqs/Origin/"+name,
			time.Date(2019, 5, 23, 2, 19, 33, 0, time.UTC), 11.28, 163.18,
			catalog.DefaultDepthMeters)
		origin.SetQuality("B")
		ev.AppendOrigin(origin)
		ev.SetPreferredOriginID(origin.PublicID())
		events = append(events, ev)
	}
	return catalog.New(events, "events_mqs.xml")
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) Browser {
	t.Helper()

	next, _ := m.Update(msg)
	b, ok := next.(Browser)
	if !ok {
		t.Fatalf("Update returned %T, want Browser", next)
	}
	return b
}

func TestBrowser_ListShowsAllEvents(t *testing.T) {
	b := NewBrowser(browserFixture())
	view := b.View()

	for _, name := range []string{"S0105a", "S0128a", "S0173a"} {
		if !strings.Contains(view, name) {
			t.Errorf("List view missing %s:\n%s", name, view)
		}
	}
	if !strings.Contains(view, "Catalog [3 events]") {
		t.Errorf("Expected catalog title:\n%s", view)
	}
}

func TestBrowser_CursorNavigation(t *testing.T) {
	b := NewBrowser(browserFixture())

	b = update(t, b, tea.KeyMsg{Type: tea.KeyDown})
	if b.cursor != 1 {
		t.Errorf("Expected cursor 1 after down, got %d", b.cursor)
	}

	b = update(t, b, tea.KeyMsg{Type: tea.KeyDown})
	b = update(t, b, tea.KeyMsg{Type: tea.KeyDown})
	if b.cursor != 2 {
		t.Errorf("Cursor should stop at last entry, got %d", b.cursor)
	}

	b = update(t, b, tea.KeyMsg{Type: tea.KeyUp})
	if b.cursor != 1 {
		t.Errorf("Expected cursor 1 after up, got %d", b.cursor)
	}
}

func TestBrowser_EnterOpensDetail(t *testing.T) {
	b := NewBrowser(browserFixture())

	b = update(t, b, tea.KeyMsg{Type: tea.KeyDown})
	b = update(t, b, tea.KeyMsg{Type: tea.KeyEnter})

	if b.detail == nil {
		t.Fatal("Expected detail view after enter")
	}
	if b.detail.Name() != "S0128a" {
		t.Errorf("Expected detail for S0128a, got %s", b.detail.Name())
	}
	if !strings.Contains(b.View(), "Event S0128a") {
		t.Errorf("Detail view missing event header:\n%s", b.View())
	}

	b = update(t, b, tea.KeyMsg{Type: tea.KeyEsc})
	if b.detail != nil {
		t.Error("Expected esc to return to the list")
	}
}

func TestBrowser_FilterNarrowsList(t *testing.T) {
	b := NewBrowser(browserFixture())

	b = update(t, b, keyPress('/'))
	if !b.filter.Focused() {
		t.Fatal("Expected filter focus after /")
	}

	for _, r := range "128" {
		b = update(t, b, keyPress(r))
	}
	if len(b.filtered) != 1 {
		t.Fatalf("Expected 1 filtered event, got %d", len(b.filtered))
	}

	b = update(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	if b.filter.Focused() {
		t.Error("Expected enter to blur the filter")
	}

	b = update(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	if b.detail == nil || b.detail.Name() != "S0128a" {
		t.Error("Expected filtered selection to open S0128a")
	}
}

func TestBrowser_EscClearsFilter(t *testing.T) {
	b := NewBrowser(browserFixture())

	b = update(t, b, keyPress('/'))
	for _, r := range "173" {
		b = update(t, b, keyPress(r))
	}
	b = update(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	if len(b.filtered) != 1 {
		t.Fatalf("Expected narrowed list, got %d entries", len(b.filtered))
	}

	b = update(t, b, tea.KeyMsg{Type: tea.KeyEsc})
	if len(b.filtered) != 3 {
		t.Errorf("Expected esc to restore all events, got %d", len(b.filtered))
	}
}

func TestBrowser_QuitFromList(t *testing.T) {
	b := NewBrowser(browserFixture())

	_, cmd := b.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
}

func TestBrowser_FilterNoMatches(t *testing.T) {
	b := NewBrowser(browserFixture())

	b = update(t, b, keyPress('/'))
	for _, r := range "zzz" {
		b = update(t, b, keyPress(r))
	}

	if len(b.filtered) != 0 {
		t.Fatalf("Expected no matches, got %d", len(b.filtered))
	}
	if !strings.Contains(b.View(), "no matching events") {
		t.Errorf("Expected empty-list notice:\n%s", b.View())
	}
}
