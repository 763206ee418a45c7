package presenter

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/tictactoe"
)

var (
	tokenX = entity.MustToken("X")
	tokenO = entity.MustToken("O")
)

func newGame(t *testing.T, moves map[entity.Space]entity.Token) *tictactoe.Game {
	t.Helper()

	board := entity.NewBoard()
	for space, token := range moves {
		require.NoError(t, board.Put(space, token))
	}

	game, err := tictactoe.NewGameWithBoard(board, nil, tokenX, tokenO)
	require.NoError(t, err)

	return game
}

func TestText_Present(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		game := newGame(t, nil)

		snapshot := NewText().Present(game)

		assert.Equal(t, ""+
			" 1 | 2 | 3 \n"+
			"---+---+---\n"+
			" 4 | 5 | 6 \n"+
			"---+---+---\n"+
			" 7 | 8 | 9 \n"+
			"X to move", snapshot)
	})

	t.Run("Game in progress", func(t *testing.T) {
		// Given: X on 1 and O on 5
		game := newGame(t, map[entity.Space]entity.Token{1: tokenX, 5: tokenO})

		// When: the game is presented
		snapshot := NewText().Present(game)

		// Then: occupied spaces show their token
		assert.Equal(t, ""+
			" X | 2 | 3 \n"+
			"---+---+---\n"+
			" 4 | O | 6 \n"+
			"---+---+---\n"+
			" 7 | 8 | 9 \n"+
			"X to move", snapshot)
	})

	t.Run("Winner", func(t *testing.T) {
		game := newGame(t, map[entity.Space]entity.Token{
			1: tokenX, 5: tokenX, 9: tokenX, 2: tokenO, 3: tokenO,
		})

		assert.Contains(t, NewText().Present(game), "\nWinner: X")
	})

	t.Run("Draw", func(t *testing.T) {
		game := newGame(t, map[entity.Space]entity.Token{
			1: tokenX, 3: tokenX, 4: tokenX, 6: tokenX, 8: tokenX,
			2: tokenO, 5: tokenO, 7: tokenO, 9: tokenO,
		})

		assert.Contains(t, NewText().Present(game), "\nDraw")
	})

	t.Run("Styled tokens", func(t *testing.T) {
		// Given: a renderer forced to true colour
		var buf bytes.Buffer
		text := NewStyledText(NewRenderer(&buf, termenv.TrueColor))
		game := newGame(t, map[entity.Space]entity.Token{1: tokenX})

		// When: the game is presented
		snapshot := text.Present(game)

		// Then: the token is wrapped in escape codes while empty spaces are not
		assert.Contains(t, snapshot, "\x1b[")
		assert.Contains(t, snapshot, "X")
		assert.Contains(t, snapshot, " 2 | 3 \n")
	})

	t.Run("Ascii profile stays plain", func(t *testing.T) {
		var buf bytes.Buffer
		text := NewStyledText(NewRenderer(&buf, termenv.Ascii))
		game := newGame(t, map[entity.Space]entity.Token{1: tokenX})

		assert.Equal(t, NewText().Present(game), text.Present(game))
	})
}

func TestWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	output := NewWriterOutput(&buf)

	output.Print("board")
	output.Notify("Draw")

	assert.Equal(t, "board\n\nDraw\n", buf.String())
}
