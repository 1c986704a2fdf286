package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config         *ConsoleConfig
	client         *http.Client
	sourceViewport viewport.Model
	metaViewport   viewport.Model
	ready          bool
	width          int
	height         int
	err            error
	loading        bool

	// Blueprint picker state
	showPickerModal   bool
	kind              string
	blueprints        []string
	selectedBlueprint int
	loadingBlueprints bool

	// Currently previewed blueprint
	blueprintID    string
	blueprintTitle string
	source         string
	generatedAt    time.Time
	statusMessage  string

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type blueprintsLoadedMsg struct {
	kind       string
	blueprints []string
	err        error
}

type sourceGeneratedMsg struct {
	result *GenerateResult
	title  string
	err    error
}

type progressTickMsg struct{}

var (
	sourcePanelStyle = lipgloss.NewStyle().
				PaddingTop(2).
				PaddingBottom(1).
				PaddingLeft(3).
				PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	sourceVp := viewport.New(50, 20)
	sourceVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:            cfg,
		client:            client,
		sourceViewport:    sourceVp,
		metaViewport:      metaVp,
		ready:             false,
		showPickerModal:   true,
		loadingBlueprints: true,
		kind:              "quest",
		selectedBlueprint: 0,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return m.loadBlueprints(m.kind)
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle picker modal first
	if m.showPickerModal {
		return m.updatePickerModal(msg)
	}

	// Handle quit modal second
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.sourceViewport, vpCmd = m.sourceViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanels()
		m.writeSourceContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		default:
			switch msg.String() {
			case "b":
				// Back to the blueprint picker
				m.showPickerModal = true
				m.loadingBlueprints = true
				m.statusMessage = ""
				return m, m.loadBlueprints(m.kind)
			case "c":
				if m.source != "" {
					if err := clipboard.WriteAll(m.source); err != nil {
						m.statusMessage = errorStyle.Render("Copy failed: " + err.Error())
					} else {
						m.statusMessage = statusStyle.Render("Source copied to clipboard")
					}
					m.metaViewport.SetContent(m.writeMetadata())
				}
				return m, nil
			case "r":
				if !m.loading && m.blueprintID != "" {
					m.loading = true
					m.progressTick = 0
					m.writeSourceContent()
					return m, tea.Batch(m.generateBlueprint(m.kind, m.blueprintID), progressTick())
				}
				return m, nil
			}
		}

	case sourceGeneratedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.statusMessage = errorStyle.Render("Error: " + msg.err.Error())
		} else {
			m.err = nil
			m.source = msg.result.Source
			m.blueprintTitle = msg.title
			m.generatedAt = time.Now()
			m.statusMessage = ""
		}
		m.writeSourceContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.sourceViewport.GotoTop()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeSourceContent()
			return m, progressTick()
		}
	}

	m.sourceViewport, vpCmd = m.sourceViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(vpCmd, mvCmd)
}

func (m *ConsoleUI) resizePanels() {
	sourceWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - sourceWidth - 6

	m.sourceViewport.Width = sourceWidth - 2
	m.sourceViewport.Height = m.height - 5
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
}

// writeSourceContent renders the generated source into the viewport.
func (m *ConsoleUI) writeSourceContent() {
	sourceWidth := m.sourceViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render("MODCREATOR CONSOLE") + "\n\n")

	if m.blueprintID != "" {
		header := fmt.Sprintf("%s / %s", m.kind, m.blueprintID)
		content.WriteString(wordwrap.String(header, sourceWidth) + "\n\n")
	}
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(sourceWidth-6, 10))) + "\n\n")

	switch {
	case m.loading:
		content.WriteString(loadingStyle.Render("Generating source...") + "\n\n")
		content.WriteString(m.renderProgressBar())
	case m.err != nil:
		content.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	case m.source == "":
		content.WriteString("No source generated yet. Press 'b' to pick a blueprint.\n")
	default:
		content.WriteString(codeStyle.Render(m.source))
	}

	m.sourceViewport.SetContent(content.String())
}

func (m *ConsoleUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("BLUEPRINT") + "\n\n")

	content.WriteString("Kind:\n")
	content.WriteString(m.kind + "\n\n")

	if m.blueprintID != "" {
		content.WriteString("ID:\n")
		content.WriteString(m.blueprintID + "\n\n")
	}

	if m.blueprintTitle != "" {
		content.WriteString("Title:\n")
		content.WriteString(wordwrap.String(m.blueprintTitle, m.metaViewport.Width-2) + "\n\n")
	}

	if m.source != "" {
		content.WriteString("Source:\n")
		content.WriteString(fmt.Sprintf("%d lines, %d bytes\n\n",
			strings.Count(m.source, "\n")+1, len(m.source)))
	}

	if !m.generatedAt.IsZero() {
		content.WriteString("Generated:\n")
		content.WriteString(m.generatedAt.Format("15:04:05") + "\n\n")
	}

	if m.statusMessage != "" {
		content.WriteString(m.statusMessage + "\n\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• b: Pick blueprint\n")
	content.WriteString("• c: Copy source\n")
	content.WriteString("• r: Regenerate\n")
	content.WriteString("• ↑/↓: Scroll\n")
	content.WriteString("• Ctrl+C: Quit\n")

	return content.String()
}

func (m ConsoleUI) loadBlueprints(kind string) tea.Cmd {
	return func() tea.Msg {
		ids, err := listBlueprints(m.client, m.config.APIBaseURL, kind)
		return blueprintsLoadedMsg{kind, ids, err}
	}
}

func (m ConsoleUI) generateBlueprint(kind, blueprintID string) tea.Cmd {
	return func() tea.Msg {
		result, err := generateSource(m.client, m.config.APIBaseURL, kind, blueprintID)
		if err != nil {
			return sourceGeneratedMsg{nil, "", err}
		}
		// Title is informational only, a failed lookup is not fatal
		title, _ := getBlueprintTitle(m.client, m.config.APIBaseURL, kind, blueprintID)
		return sourceGeneratedMsg{result, title, nil}
	}
}

func (m ConsoleUI) updatePickerModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanels()

	case blueprintsLoadedMsg:
		m.loadingBlueprints = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.kind = msg.kind
			m.blueprints = msg.blueprints
			if m.selectedBlueprint >= len(m.blueprints) {
				m.selectedBlueprint = 0
			}
		}

	case sourceGeneratedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.source = msg.result.Source
		m.blueprintTitle = msg.title
		m.generatedAt = time.Now()
		m.showPickerModal = false
		m.writeSourceContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.sourceViewport.GotoTop()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.loadingBlueprints || m.loading {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyTab:
			// Toggle between quest and NPC listings
			next := "npc"
			if m.kind == "npc" {
				next = "quest"
			}
			m.loadingBlueprints = true
			m.selectedBlueprint = 0
			return m, m.loadBlueprints(next)
		case tea.KeyUp:
			if m.selectedBlueprint > 0 {
				m.selectedBlueprint--
			}
		case tea.KeyDown:
			if m.selectedBlueprint < len(m.blueprints)-1 {
				m.selectedBlueprint++
			}
		case tea.KeyEnter:
			if len(m.blueprints) > 0 {
				m.blueprintID = m.blueprints[m.selectedBlueprint]
				m.loading = true
				m.progressTick = 0
				return m, tea.Batch(m.generateBlueprint(m.kind, m.blueprintID), progressTick())
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				return m, nil
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Console?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderPickerModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	if m.loadingBlueprints {
		content.WriteString(modalTitleStyle.Render("Loading Blueprints..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Please wait while we fetch available blueprints..."))
	} else if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load blueprints: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else if m.loading {
		content.WriteString(modalTitleStyle.Render("Generating..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Generating C# source for " + m.blueprintID + "..."))
	} else {
		content.WriteString(modalTitleStyle.Render(fmt.Sprintf("Select a %s blueprint", strings.ToUpper(m.kind))))
		content.WriteString("\n\n")

		if len(m.blueprints) == 0 {
			content.WriteString("No blueprints found. Create one through the API first.\n")
		}

		for i, id := range m.blueprints {
			if i == m.selectedBlueprint {
				content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", id)))
			} else {
				content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", id)))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("↑/↓ navigate, Tab switch kind, Enter select, Ctrl+C exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showPickerModal {
		return m.renderPickerModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	sourceWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - sourceWidth - 6

	sourcePanel := sourcePanelStyle.Width(sourceWidth).Height(m.height - 3).Render(
		m.sourceViewport.View(),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, sourcePanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.sourceViewport.Width - 6
	if usable <= 0 {
		usable = 30 // fallback before sizing
	}

	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
