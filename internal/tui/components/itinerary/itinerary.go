package itinerary

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			MarginTop(1)

	emptyDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			PaddingLeft(2)

	placeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			PaddingLeft(4)

	explainCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("99")).
				Padding(0, 1).
				MarginTop(1)

	explainMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Italic(true)

	badgeBase = lipgloss.NewStyle().
			Padding(0, 1).
			MarginLeft(1)

	// badge colours keyed by view.PlaceCard.StyleKey
	badgeColors = map[string]lipgloss.Color{
		"museum":       lipgloss.Color("33"),
		"artmuseum":    lipgloss.Color("33"),
		"park":         lipgloss.Color("34"),
		"landmark":     lipgloss.Color("214"),
		"historicsite": lipgloss.Color("172"),
		"restaurant":   lipgloss.Color("203"),
		"food":         lipgloss.Color("203"),
		"cafe":         lipgloss.Color("137"),
		"shopping":     lipgloss.Color("170"),
		"nightlife":    lipgloss.Color("129"),
		"viewpoint":    lipgloss.Color("45"),
	}
	defaultBadgeColor = lipgloss.Color("241")
)

// BadgeStyle returns the style for a category style key.
func BadgeStyle(key string) lipgloss.Style {
	color, ok := badgeColors[key]
	if !ok {
		color = defaultBadgeColor
	}
	return badgeBase.Foreground(lipgloss.Color("0")).Background(color)
}

// Render draws the itinerary as a block of styled text. width <= 0 means unbounded.
func Render(it view.Itinerary, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(it.Title))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(it.Summary()))
	b.WriteString("\n")

	for _, day := range it.Days {
		b.WriteString(dayStyle.Render(day.Heading))
		b.WriteString("\n")
		if day.Empty {
			b.WriteString(emptyDayStyle.Render(constants.MsgNoPlacesForDay))
			b.WriteString("\n")
			continue
		}
		for _, p := range day.Places {
			line := "  • " + placeStyle.Render(p.Name)
			if p.Category != "" {
				line += BadgeStyle(p.StyleKey).Render(p.Category)
			}
			b.WriteString(line)
			b.WriteString("\n")
			if p.HasDescription {
				desc := descStyle
				if width > 0 {
					desc = desc.Width(width)
				}
				b.WriteString(desc.Render(p.Description))
				b.WriteString("\n")
			}
		}
	}

	if it.HasExplanation() {
		card := explainCardStyle
		if width > 4 {
			card = card.Width(width - 4)
		}
		parts := []string{placeStyle.Render(constants.MsgExplanationHead), ""}
		parts = append(parts, strings.Join(it.Explanation, "\n\n"), "", explainMetaStyle.Render(constants.MsgExplanationMeta))
		b.WriteString(card.Render(strings.Join(parts, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

// Model is a scrollable itinerary pane.
type Model struct {
	viewport  viewport.Model
	Itinerary *view.Itinerary
	width     int
	height    int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Itinerary == nil {
		return constants.MsgEmptyItinerary
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetItinerary(it view.Itinerary) {
	m.Itinerary = &it
	m.viewport.GotoTop()
	m.render()
}

func (m *Model) render() {
	if m.Itinerary == nil {
		m.viewport.SetContent(constants.MsgEmptyItinerary)
		return
	}
	m.viewport.SetContent(Render(*m.Itinerary, m.width))
}
