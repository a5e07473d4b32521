package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pipegrid/pkg/flow"
	"github.com/matzehuels/pipegrid/pkg/grid"
	"github.com/matzehuels/pipegrid/pkg/parts"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleSource = lipgloss.NewStyle().Padding(0, 1).Foreground(colorGreen)
	styleNoFlow = lipgloss.NewStyle().Padding(0, 1).Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints flow statistics on a single line.
func printStats(w io.Writer, s flow.Stats, faults int, total float64) {
	items := []string{
		fmt.Sprintf("%d parts", s.Parts),
		fmt.Sprintf("%d sources", s.Sources),
		fmt.Sprintf("%d visits", s.Visits),
		fmt.Sprintf("depth %d", s.MaxDepth),
		fmt.Sprintf("total %s", formatFlow(total)),
	}
	if faults > 0 {
		items = append(items, StyleWarning.Render(fmt.Sprintf("%d faults", faults)))
	}
	fmt.Fprintln(w, "  "+strings.Join(items, StyleDim.Render(" · ")))
}

// =============================================================================
// Tables
// =============================================================================

// flowTable renders one row per part with its flow at every recorded exit.
func flowTable(res *flow.Result, reg parts.Registry) string {
	rows := make([][]string, len(res.Parts))
	sources := make(map[int]bool)
	for i, p := range res.Parts {
		if t, ok := reg.Lookup(p.Type); ok && t.IsSource {
			sources[i] = true
		}
		rows[i] = []string{
			p.Type,
			p.Point().String(),
			strconv.Itoa(p.Rotation),
			formatFlows(p.Flow),
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("PART", "AT", "ROT", "FLOW").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 0 && sources[row]:
				return styleSource
			case col == 3 && len(res.Parts[row].Flow) == 0:
				return styleNoFlow
			}
			return styleCell
		}).
		String()
}

// catalogTable renders one row per type with its entries and exits.
func catalogTable(c *parts.Catalog) string {
	var rows [][]string
	for _, name := range c.Names() {
		t, _ := c.Lookup(name)
		kind := "part"
		if t.IsSource {
			kind = "source"
		}
		rows = append(rows, []string{name, kind, formatRoutes(t.Routes)})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("TYPE", "KIND", "ROUTES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		String()
}

// =============================================================================
// Formatting
// =============================================================================

// directionName names a cardinal angle, falling back to its degrees.
func directionName(angle int) string {
	switch angle {
	case grid.Up:
		return "up"
	case grid.Right:
		return "right"
	case grid.Down:
		return "down"
	case grid.Left:
		return "left"
	}
	return strconv.Itoa(angle) + "°"
}

func formatFlow(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatFlows lists flows in angle order, e.g. "right 5  down 2.5".
func formatFlows(f flow.Flows) string {
	if len(f) == 0 {
		return "-"
	}
	items := make([]string, 0, len(f))
	for _, angle := range f.Angles() {
		items = append(items, directionName(angle)+" "+formatFlow(f.At(angle)))
	}
	return strings.Join(items, "  ")
}

// formatRoutes lists routes in entry order, e.g. "left→right(1)".
// Fixed-pressure exits show their pressure as "@p".
func formatRoutes(t grid.RoutingTable) string {
	if len(t) == 0 {
		return "-"
	}
	var items []string
	for _, in := range t.Entries() {
		for _, e := range t.Exits(in) {
			item := fmt.Sprintf("%s→%s(%s)", directionName(in), directionName(e.Out), formatFlow(e.Friction))
			if p, ok := e.Bounded(); ok {
				item += "@" + formatFlow(p)
			}
			items = append(items, item)
		}
	}
	return strings.Join(items, " ")
}
