package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/smorinlabs/worktreeflow/internal/ui/styles"
)

// Item is a single selectable entry. The label is what fuzzy filtering
// matches against; the description is shown dimmed next to it.
type Item struct {
	Label       string
	Description string
}

// itemSource implements fuzzy.Source over the item labels.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Label }
func (s itemSource) Len() int            { return len(s) }

// selectorModel is the bubbletea model behind Select.
type selectorModel struct {
	title     string
	items     []Item
	matches   []fuzzy.Match
	textInput textinput.Model
	cursor    int
	choice    int // index into items, -1 until chosen
	cancelled bool
	maxHeight int
}

func newSelectorModel(title string, items []Item) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	m := selectorModel{
		title:     title,
		items:     items,
		textInput: ti,
		choice:    -1,
		maxHeight: 10,
	}
	m.matches = filterItems("", items)
	return m
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.matches) > 0 && m.cursor < len(m.matches) {
				m.choice = m.matches[m.cursor].Index
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.matches = filterItems(m.textInput.Value(), m.items)
	if m.cursor >= len(m.matches) {
		m.cursor = max(0, len(m.matches)-1)
	}

	return m, cmd
}

// filterItems returns all items in order for an empty query, otherwise
// the fuzzy matches ranked best first.
func filterItems(query string, items []Item) []fuzzy.Match {
	if query == "" {
		matches := make([]fuzzy.Match, len(items))
		for i := range items {
			matches[i] = fuzzy.Match{Str: items[i].Label, Index: i}
		}
		return matches
	}
	return fuzzy.FindFrom(query, itemSource(items))
}

func (m selectorModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.title + "\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	selected := styles.SuccessStyle.Bold(true)

	if len(m.matches) == 0 {
		sb.WriteString(styles.MutedStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		// Keep the cursor centered in the visible window.
		start := 0
		end := len(m.matches)
		if end > m.maxHeight {
			start = m.cursor - m.maxHeight/2
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.matches) {
				end = len(m.matches)
				start = max(0, end-m.maxHeight)
			}
		}

		filtering := m.textInput.Value() != ""
		for i := start; i < end; i++ {
			match := m.matches[i]
			item := m.items[match.Index]

			label := item.Label
			if filtering && len(match.MatchedIndexes) > 0 {
				label = highlightMatches(item.Label, match.MatchedIndexes, i == m.cursor)
			} else if i == m.cursor {
				label = selected.Render(label)
			} else {
				label = styles.NormalStyle.Render(label)
			}

			if i == m.cursor {
				sb.WriteString(styles.SuccessStyle.Render("> "))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(label)
			if item.Description != "" {
				sb.WriteString(styles.MutedStyle.Render(" (" + item.Description + ")"))
			}
			sb.WriteString("\n")
		}

		if len(m.matches) > m.maxHeight {
			sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.matches))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.MutedStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return sb.String()
}

// highlightMatches renders the label with the fuzzy-matched characters
// accented.
func highlightMatches(label string, matchedIndexes []int, isCursor bool) string {
	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	base := styles.NormalStyle
	if isCursor {
		base = styles.SuccessStyle.Bold(true)
	}

	var result strings.Builder
	for i, r := range []rune(label) {
		if matchSet[i] {
			result.WriteString(styles.AccentStyle.Render(string(r)))
		} else {
			result.WriteString(base.Render(string(r)))
		}
	}
	return result.String()
}

// Select shows an interactive fuzzy-filtered picker on stderr and returns
// the index of the chosen item, or -1 if the user cancelled or no items
// were given.
func Select(title string, items []Item) (int, error) {
	if len(items) == 0 {
		return -1, nil
	}

	p := tea.NewProgram(newSelectorModel(title, items), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return -1, err
	}

	m := final.(selectorModel)
	if m.cancelled {
		return -1, nil
	}
	return m.choice, nil
}
