// Package viz renders correlation functions and solver progress in the
// terminal: static asciigraph panels for saved results and a bubbletea
// monitor for live convergence.
package viz

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ozsim/internal/solver"
)

const (
	plotWidth  = 72
	plotHeight = 14
)

var (
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// PairCorrelation renders g_ij(r) up to maxR (0 means the full grid).
func PairCorrelation(result *solver.Result, i, j int, maxR float64) string {
	series, span := clipSeries(result.Grid.R, result.G.Pair(i, j), maxR)
	title := fmt.Sprintf("g_%d%d(r)  r in [%.2f, %.2f]", i, j, result.Grid.R[0], span)
	return panel(title, series)
}

// StructureFactor renders S_ij(k) up to maxK (0 means the full grid).
func StructureFactor(result *solver.Result, i, j int, maxK float64) string {
	series, span := clipSeries(result.Grid.K, result.S.Pair(i, j), maxK)
	title := fmt.Sprintf("S_%d%d(k)  k in [%.2f, %.2f]", i, j, result.Grid.K[0], span)
	return panel(title, series)
}

// DirectCorrelation renders c_ij(r) up to maxR (0 means the full grid).
func DirectCorrelation(result *solver.Result, i, j int, maxR float64) string {
	series, span := clipSeries(result.Grid.R, result.C.Pair(i, j), maxR)
	title := fmt.Sprintf("c_%d%d(r)  r in [%.2f, %.2f]", i, j, result.Grid.R[0], span)
	return panel(title, series)
}

// Summary formats the solve outcome as a short panel.
func Summary(result *solver.Result) string {
	status := "converged"
	if !result.Converged {
		status = "NOT converged"
	}
	body := fmt.Sprintf("%s in %d iterations\nfinal rms %.3g, %s",
		status, result.Iterations, result.FinalRMS, result.Elapsed.Round(result.Elapsed/100))
	return panelStyle.Render(titleStyle.Render("result") + "\n" + labelStyle.Render(body))
}

func panel(title string, series []float64) string {
	chart := asciigraph.Plot(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth))
	return panelStyle.Render(titleStyle.Render(title) + "\n" + graphStyle.Render(chart))
}

// clipSeries cuts the curve at the abscissa bound and downsamples it to
// the plot width so asciigraph gets one value per column.
func clipSeries(axis, values []float64, bound float64) ([]float64, float64) {
	n := len(values)
	if bound > 0 {
		for k, x := range axis {
			if x > bound {
				n = k
				break
			}
		}
	}
	if n < 1 {
		n = 1
	}

	if n <= plotWidth {
		out := make([]float64, n)
		copy(out, values[:n])
		return out, axis[n-1]
	}

	out := make([]float64, plotWidth)
	for col := 0; col < plotWidth; col++ {
		idx := col * (n - 1) / (plotWidth - 1)
		out[col] = values[idx]
	}
	return out, axis[n-1]
}

// logRMS maps an rms history onto log10 for plotting; non-positive or
// non-finite entries clamp to the current floor.
func logRMS(history []float64) []float64 {
	out := make([]float64, len(history))
	floor := -16.0
	for i, v := range history {
		if v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
			out[i] = math.Log10(v)
		} else {
			out[i] = floor
		}
	}
	return out
}
