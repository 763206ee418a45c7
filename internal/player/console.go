package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-kata/internal/entity"
	"github.com/rocketscienceinc/tictactoe-kata/internal/tictactoe"
)

var _ tictactoe.MoveSource = (*Console)(nil)

const quitCommand = "q"

// Console - reads one space per line from a human. It runs dry on EOF or "q".
type Console struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

func NewConsole(in io.Reader, prompt io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		prompt:  prompt,
	}
}

func (that *Console) Next(view *entity.Board, turn entity.Token) (entity.Space, bool) {
	for {
		fmt.Fprintf(that.prompt, "%s, choose a space (1-9, q to quit): ", turn)

		if !that.scanner.Scan() {
			return 0, false
		}

		line := strings.TrimSpace(that.scanner.Text())
		if strings.EqualFold(line, quitCommand) {
			return 0, false
		}

		number, err := strconv.Atoi(line)
		space := entity.Space(number)
		if err != nil || !space.Valid() {
			fmt.Fprintf(that.prompt, "%q is not a space between 1 and 9\n", line)
			continue
		}

		if occupant, taken := view.Get(space); taken {
			fmt.Fprintf(that.prompt, "space %d is taken by %s\n", space, occupant)
			continue
		}

		return space, true
	}
}
