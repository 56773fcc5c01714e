package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/miaudev/miaumon/internal/monitor"
	"github.com/miaudev/miaumon/internal/stats"
)

const minPanelWidth = 40

// Renderer composes the dashboard frame: header, services table, log tail,
// and footer. It holds only static display configuration; all dynamic data
// arrives through the State snapshot each tick.
type Renderer struct {
	devURL   string
	interval time.Duration
}

// NewRenderer creates the dashboard renderer.
func NewRenderer(devURL string, interval time.Duration) *Renderer {
	return &Renderer{devURL: devURL, interval: interval}
}

// Render implements monitor.Renderer.
func (r *Renderer) Render(s *monitor.State, width int, now time.Time) string {
	if width < minPanelWidth {
		width = minPanelWidth
	}
	inner := width - 4 // border + padding

	var b strings.Builder
	b.WriteString(r.renderHeader(inner))
	b.WriteString("\n")
	b.WriteString(r.renderServices(s, inner))
	b.WriteString("\n")
	b.WriteString(r.renderLogs(s, inner))
	b.WriteString("\n")
	b.WriteString(r.renderFooter(s, inner, now))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderHeader(inner int) string {
	sep := MutedStyle.Render("  │  ")
	line := TitleStyle.Render("miau ") +
		StatusMsgStyle.Render("DEV MONITOR") + sep +
		URLStyle.Render(r.devURL) + sep +
		MutedStyle.Render("Ctrl+C to quit")
	return HeaderPanelStyle.Width(inner + 2).Render(line)
}

func (r *Renderer) renderServices(s *monitor.State, inner int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Services"))
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(
		fmt.Sprintf("%-16s %8s %8s %10s  %s", "SERVICE", "CPU%", "MEM%", "RAM", "STATUS")))

	for _, svc := range s.Services {
		b.WriteString("\n")
		b.WriteString(renderServiceRow(svc))
	}

	b.WriteString("\n")
	b.WriteString(renderDBRow(s.DB))

	return PanelStyle.Width(inner + 2).Render(b.String())
}

func renderServiceRow(svc stats.ServiceStatus) string {
	if !svc.Running {
		return ServiceDownStyle.Render(
			fmt.Sprintf("%-16s %8s %8s %10s  %s", svc.Name, "-", "-", "-", "○"))
	}
	return ServiceUpStyle.Render(
		fmt.Sprintf("%-16s %7.1f%% %7.1f%% %8.0fMB  %s",
			svc.Name,
			svc.Sample.CPUPercent,
			svc.Sample.MemPercent,
			svc.Sample.ResidentMB,
			"●"))
}

func renderDBRow(db stats.DBStats) string {
	if !db.Exists {
		return ServiceDownStyle.Render(
			fmt.Sprintf("%-16s %8s %8s %10s  %s", "sqlite db", "-", "-", "-", "○"))
	}
	return ServiceUpStyle.Render(
		fmt.Sprintf("%-16s %8s %8s %10s  %s",
			"sqlite db", "-", "-", humanize.IBytes(uint64(db.SizeBytes)), "●"))
}

func (r *Renderer) renderLogs(s *monitor.State, inner int) string {
	title := TitleStyle.Render("Logs (Wails)")
	if s.HasError {
		title += "  " + HintStyle.Render("[e] copy error")
	}

	if len(s.LogLines) == 0 {
		content := title + "\n" + MutedStyle.Render("waiting for logs...")
		return DimPanelStyle.Width(inner + 2).Render(content)
	}

	var b strings.Builder
	b.WriteString(title)
	for _, line := range s.LogLines {
		b.WriteString("\n")
		line = strings.TrimRight(line, "\r\n")
		// Truncate by runes so the cut never lands inside a multi-byte
		// character.
		if runes := []rune(line); len(runes) > inner {
			line = string(runes[:inner])
		}
		b.WriteString(styleFor(ClassifyLine(line)).Render(line))
	}

	style := OKPanelStyle
	if s.HasError {
		style = ErrorPanelStyle
	}
	return style.Width(inner + 2).Render(b.String())
}

func (r *Renderer) renderFooter(s *monitor.State, inner int, now time.Time) string {
	sep := MutedStyle.Render("  │  ")
	var parts []string

	if s.Status.Visible(now) {
		parts = append(parts, StatusMsgStyle.Render(s.Status.Text))
	}

	if s.System.Known() {
		parts = append(parts,
			SystemStyle.Render(fmt.Sprintf("CPU %.1f%%", s.System.CPUPercent)),
			SystemStyle.Render(fmt.Sprintf("RAM %dMB / %dMB (%.1f%%)",
				s.System.MemUsedMB, s.System.MemTotalMB, s.System.MemPercent())))
	} else {
		parts = append(parts, MutedStyle.Render("CPU --"), MutedStyle.Render("RAM --"))
	}

	parts = append(parts, MutedStyle.Render(fmt.Sprintf("refresh: %s", r.interval)))

	return FooterPanelStyle.Width(inner + 2).Render(strings.Join(parts, sep))
}
