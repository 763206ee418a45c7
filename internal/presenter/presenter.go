package presenter

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
)

const (
	rowSeparator = "---+---+---"
	cellJoin     = "|"
)

// View - read-only part of a game needed to draw it.
type View interface {
	Board() *entity.Board
	Outcome() entity.Outcome
	Current() entity.Token
	Tokens() []entity.Token
}

// Presenter - turns a game into a human readable snapshot.
type Presenter interface {
	Present(view View) string
}

// palette - colours assigned to tokens in turn order.
var palette = []lipgloss.AdaptiveColor{
	{Light: "#007e50", Dark: "#6afd76"},
	{Light: "#0003ad", Dark: "#5f61fc"},
	{Light: "#8a880f", Dark: "#ddda1d"},
	{Light: "#960000", Dark: "#fc7e7e"},
}

// Text - draws the board as a 3x3 grid. Empty spaces show their number.
type Text struct {
	styles []lipgloss.Style
}

func NewText() *Text {
	return &Text{}
}

// NewStyledText - like NewText, but every token gets its own colour, picked
// by its position in the turn order.
func NewStyledText(renderer *lipgloss.Renderer) *Text {
	styles := make([]lipgloss.Style, 0, len(palette))
	for _, color := range palette {
		styles = append(styles, renderer.NewStyle().Bold(true).Foreground(color))
	}

	return &Text{styles: styles}
}

// NewRenderer - lipgloss renderer writing to w with a fixed colour profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)
	renderer.SetHasDarkBackground(true)

	return renderer
}

func (that *Text) Present(view View) string {
	board := view.Board()
	order := view.Tokens()

	var builder strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			builder.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 0, 3)
		for col := 1; col <= 3; col++ {
			space := entity.Space(row*3 + col)
			cells = append(cells, " "+that.cell(board, order, space)+" ")
		}

		builder.WriteString(strings.Join(cells, cellJoin) + "\n")
	}

	builder.WriteString(Status(view))

	return builder.String()
}

func (that *Text) cell(board *entity.Board, order []entity.Token, space entity.Space) string {
	token, ok := board.Get(space)
	if !ok {
		return fmt.Sprint(int(space))
	}

	if len(that.styles) == 0 {
		return token.String()
	}

	index := slices.Index(order, token)
	if index < 0 {
		return token.String()
	}

	return that.styles[index%len(that.styles)].Render(token.String())
}

// Status - one line describing whose turn it is or how the game ended.
func Status(view View) string {
	outcome := view.Outcome()

	if winner, ok := outcome.Winner(); ok {
		return "Winner: " + winner.String()
	}

	if outcome.IsDraw() {
		return "Draw"
	}

	return view.Current().String() + " to move"
}
