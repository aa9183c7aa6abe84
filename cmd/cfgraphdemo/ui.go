package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleLabel = lipgloss.NewStyle().Foreground(colorGray).Width(8)
	styleValue = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

// printStats renders a fixture's layout statistics as a small aligned
// table, following the retrieval pack's CLI key/value output style.
func printStats(fixture string, nodes, edges, width, height int) {
	fmt.Println(styleLabel.Render("fixture") + " " + styleValue.Render(fixture))
	fmt.Println(styleLabel.Render("nodes") + " " + styleValue.Render(fmt.Sprintf("%d", nodes)))
	fmt.Println(styleLabel.Render("edges") + " " + styleValue.Render(fmt.Sprintf("%d", edges)))
	fmt.Println(styleLabel.Render("size") + " " + styleValue.Render(fmt.Sprintf("%dx%d", width, height)))
}

// printWrote reports a saved SVG path in the pack's dim arrow style.
func printWrote(path string) {
	fmt.Println(styleDim.Render("→") + " " + styleValue.Render(path))
}
