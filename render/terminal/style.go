package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Scalar colors by kind: emerald strings, amber numbers, purple bools.
	colorString = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorNumber = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}
	colorBool   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}

	// UI colors.
	colorKey    = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleKey   = lipgloss.NewStyle().Foreground(colorKey)
	styleIndex = lipgloss.NewStyle().Foreground(colorDim)

	styleString  = lipgloss.NewStyle().Foreground(colorString)
	styleNumber  = lipgloss.NewStyle().Foreground(colorNumber)
	styleBool    = lipgloss.NewStyle().Foreground(colorBool).Bold(true)
	styleNull    = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	styleForeign = lipgloss.NewStyle().Foreground(colorDim)

	styleTitle = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta  = lipgloss.NewStyle().Foreground(colorDim)
)
