package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daylist/internal/engine"
)

// daylist theme (CLI + board): reusable styles and a few emojis.

const (
	IconList    = "📝"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconPending = "⏳"
	IconTrash   = "🗑️"
	IconBroom   = "🧹"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconChart   = "📊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cInfo    = lipgloss.Color("38")  // teal
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Info  = lipgloss.NewStyle().Bold(true).Foreground(cInfo)
	Done  = lipgloss.NewStyle().Foreground(cMuted).Strikethrough(true)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(cPrimary).Padding(0, 1)
	Tab         = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 1)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Checkbox renders the completion toggle of a row.
func Checkbox(completed bool) string {
	if completed {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}

// TaskText renders a row's text, struck through once completed.
func TaskText(t engine.Task) string {
	if t.Completed {
		return Done.Render(t.Text)
	}
	return t.Text
}

// Notice renders a transient message in the color of its kind.
func Notice(n engine.Notice) string {
	switch n.Kind {
	case engine.NoticeSuccess:
		return Good.Render(IconDone + " " + n.Message)
	case engine.NoticeError:
		return Bad.Render(IconError + " " + n.Message)
	default:
		return Info.Render(IconInfo + " " + n.Message)
	}
}

// FilterTabs renders the three filter controls with active highlighted.
func FilterTabs(active engine.Filter) string {
	parts := make([]string, 0, len(engine.Filters))
	for i, f := range engine.Filters {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == active {
			parts = append(parts, ActiveTab.Render(label))
			continue
		}
		parts = append(parts, Tab.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Counters renders the live total/completed indicator.
func Counters(st engine.Stats) string {
	return fmt.Sprintf("%s  %s  %s",
		LabelValue("Total", st.Total),
		LabelValue("Completed", st.Completed),
		LabelValue("Pending", st.Pending))
}
