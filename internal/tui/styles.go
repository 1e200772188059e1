package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPink      = lipgloss.Color("#d670d6")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	youStyle = lipgloss.NewStyle().
			Foreground(colorPink).
			Bold(true)

	stylistStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	outfitStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	inputBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorDarkGray).
				Padding(0, 1)
)

const logo = `
  ███████╗████████╗██╗   ██╗██╗     ██╗███████╗████████╗
  ██╔════╝╚══██╔══╝╚██╗ ██╔╝██║     ██║██╔════╝╚══██╔══╝
  ███████╗   ██║    ╚████╔╝ ██║     ██║███████╗   ██║
  ╚════██║   ██║     ╚██╔╝  ██║     ██║╚════██║   ██║
  ███████║   ██║      ██║   ███████╗██║███████║   ██║
  ╚══════╝   ╚═╝      ╚═╝   ╚══════╝╚═╝╚══════╝   ╚═╝
`
