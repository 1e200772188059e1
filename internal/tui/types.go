package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents a chat message in the conversation
type MessageModel struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// one outfit returned by the stylist
type OutfitModel struct {
	Name     string   `json:"name"`
	ItemIDs  []string `json:"item_ids"`
	Occasion string   `json:"occasion"`
	Notes    string   `json:"notes,omitempty"`
}

// main TUI application model: a single chat screen against the stylist
// endpoint
type Model struct {
	input           textinput.Model
	viewport        viewport.Model
	spinner         spinner.Model
	glamourRenderer *glamour.TermRenderer
	client          *StylistClient

	width      int
	height     int
	ready      bool
	isFetching bool

	history    []MessageModel
	transcript string
}

// sent when the stylist answers
type ChatResponseMsg struct {
	userQuery string
	reply     string
	outfits   []OutfitModel
}

// sent when the chat request fails
type ChatErrorMsg struct {
	userQuery string
	err       error
}
