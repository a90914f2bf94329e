package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cellStyle    = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Border(lipgloss.NormalBorder())
	focusedStyle = cellStyle.BorderForeground(lipgloss.Color("#E87A41")).Bold(true)
	markXStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E87A41"))
	markOStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#007bff"))
	statusStyle  = lipgloss.NewStyle().MarginTop(1)
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

var keyDirections = map[string]entity.Direction{
	"left":  entity.DirectionLeft,
	"right": entity.DirectionRight,
	"up":    entity.DirectionUp,
	"down":  entity.DirectionDown,
	"h":     entity.DirectionLeft,
	"l":     entity.DirectionRight,
	"k":     entity.DirectionUp,
	"j":     entity.DirectionDown,
}

// Model is a hot-seat game in the terminal: arrows move the focus, space or
// enter plays the focused cell.
type Model struct {
	controller *tictactoe.GameController
	game       entity.Game
	notice     string
}

func New() Model {
	controller := tictactoe.NewGameController()

	return Model{
		controller: controller,
		game:       controller.Snapshot(),
	}
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return that, nil
	}

	that.notice = ""

	key := keyMsg.String()
	if direction, ok := keyDirections[key]; ok {
		that.game, _ = that.controller.Navigate(direction)
		return that, nil
	}

	switch key {
	case "q", "ctrl+c", "esc":
		return that, tea.Quit
	case " ", "enter":
		game, err := that.controller.Move(that.game.FocusedIndex)
		that.game = game
		if errors.Is(err, apperror.ErrCellOccupied) {
			that.notice = "That cell is taken."
		}
	case "r":
		that.game = that.controller.Reset()
	default:
		if cell, ok := digitCell(key); ok {
			that.game, _ = that.controller.Focus(cell)
		}
	}

	return that, nil
}

func (that Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic Tac Toe"))
	b.WriteString("\n")

	for row := 0; row < entity.RowSize; row++ {
		cells := make([]string, 0, entity.RowSize)
		for col := 0; col < entity.RowSize; col++ {
			cells = append(cells, that.renderCell(row*entity.RowSize+col))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(StatusText(that.game)))
	b.WriteString("\n")
	b.WriteString(CellLabel(that.game, that.game.FocusedIndex))
	b.WriteString("\n")

	if that.notice != "" {
		b.WriteString(that.notice)
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("arrows/hjkl move, 1-9 jump, space/enter play, r reset, q quit"))
	b.WriteString("\n")

	return b.String()
}

// Game returns the snapshot currently shown.
func (that Model) Game() entity.Game {
	return that.game
}

func (that Model) renderCell(index int) string {
	style := cellStyle
	if index == that.game.FocusedIndex {
		style = focusedStyle
	}

	mark := " "
	switch that.game.Board[index] {
	case entity.PlayerX:
		mark = markXStyle.Render(string(entity.PlayerX))
	case entity.PlayerO:
		mark = markOStyle.Render(string(entity.PlayerO))
	}

	return style.Render(mark)
}

// StatusText is the one-line game status shown under the board.
func StatusText(game entity.Game) string {
	switch game.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Winner: %s", game.Winner)
	case entity.StatusDraw:
		return "Draw! Nobody wins."
	default:
		return fmt.Sprintf("Current turn: %s", game.Turn)
	}
}

// CellLabel describes a cell for screen readers, e.g. "Row 1 column 3, X".
func CellLabel(game entity.Game, index int) string {
	value := "empty"
	if cell := game.Board[index]; cell.IsMark() {
		value = string(cell)
	}

	return fmt.Sprintf("Row %d column %d, %s", index/entity.RowSize+1, index%entity.RowSize+1, value)
}

func digitCell(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}

	return int(key[0] - '1'), true
}
