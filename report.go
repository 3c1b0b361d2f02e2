package aoc

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

func dayHeader(day int) string {
	return headerStyle.Render(fmt.Sprintf("Running day %d", day))
}

func samplePass(part string, got any, took time.Duration) string {
	return fmt.Sprintf("part %s sample: %v %s %s", part, got, passStyle.Render("✅"), faintStyle.Render(fmt.Sprintf("(%v)", took)))
}

func sampleFail(part string, got, want any) string {
	return fmt.Sprintf("part %s: %v %s; want %v", part, got, failStyle.Render("❌"), want)
}

func answer(part string, got any, took time.Duration) string {
	return fmt.Sprintf("part %s: %s %s", part, answerStyle.Render(fmt.Sprint(got)), faintStyle.Render(fmt.Sprintf("(took %v)", took)))
}
