package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-kata/internal/apperror"
)

// Token - a player's mark. Tokens compare with == and can be used as map keys.
type Token struct {
	label string
}

func NewToken(label string) (Token, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Token{}, fmt.Errorf("%w: empty label", apperror.ErrInvalidToken)
	}

	return Token{label: label}, nil
}

// MustToken - same as NewToken but panics, for package-level values and tests.
func MustToken(label string) Token {
	token, err := NewToken(label)
	if err != nil {
		panic(err)
	}

	return token
}

func (that Token) String() string {
	return that.label
}

func (that Token) IsZero() bool {
	return that.label == ""
}

func (that Token) MarshalText() ([]byte, error) {
	return []byte(that.label), nil
}

func (that *Token) UnmarshalText(text []byte) error {
	token, err := NewToken(string(text))
	if err != nil {
		return err
	}

	*that = token
	return nil
}
