// Package deck describes the fixed 52-card French deck: four suits, thirteen
// ranks, and the asset file names derived from them.
package deck

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	ErrUnknownSuit = errors.New("unknown suit")
	ErrUnknownRank = errors.New("unknown rank")
)

// Suit is one of the four card suits.
type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
)

// Rank is the name of a card rank as it appears in file names.
type Rank string

const (
	Ace   Rank = "ace"
	Jack  Rank = "jack"
	Queen Rank = "queen"
	King  Rank = "king"
)

// Ink colours used for rank labels.
var (
	Black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Red   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

var suits = []Suit{Spades, Hearts, Clubs, Diamonds}

var ranks = []Rank{Ace, "2", "3", "4", "5", "6", "7", "8", "9", "10", Jack, Queen, King}

// Suits returns the suits in deck order.
func Suits() []Suit {
	out := make([]Suit, len(suits))
	copy(out, suits)
	return out
}

// Ranks returns all thirteen ranks, ace first.
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks)
	return out
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Color returns the label ink for the suit: black for spades and clubs,
// red for hearts and diamonds.
func (s Suit) Color() color.NRGBA {
	if s.Red() {
		return Red
	}
	return Black
}

// ColorName returns "red" or "black".
func (s Suit) ColorName() string {
	if s.Red() {
		return "red"
	}
	return "black"
}

// Symbol returns the single-rune suit mark.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♡"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	}
	return "?"
}

// Short returns the one or two character rank name, e.g. "Q" or "10".
func (r Rank) Short() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return string(r)
}

// ParseSuit accepts a suit name in any case.
func ParseSuit(s string) (Suit, error) {
	want := Suit(strings.ToLower(strings.TrimSpace(s)))
	for _, su := range suits {
		if su == want {
			return su, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSuit, s)
}

// ParseRank accepts a rank name or its short form (a, j, q, k) in any case.
func ParseRank(s string) (Rank, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, r := range ranks {
		if string(r) == want || strings.ToLower(r.Short()) == want {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRank, s)
}

// Card is a single (suit, rank) pair.
type Card struct {
	Suit Suit
	Rank Rank
}

// IsBase reports whether the card is the pre-existing ace template of its suit.
func (c Card) IsBase() bool { return c.Rank == Ace }

// Key is the asset id, card_<rank>_<suit>.
func (c Card) Key() string {
	return fmt.Sprintf("card_%s_%s", c.Rank, c.Suit)
}

// FileName is the PNG file holding the card image.
func (c Card) FileName() string { return c.Key() + ".png" }

// Label is the text drawn onto the card.
func (c Card) Label() string { return string(c.Rank) }

func (c Card) String() string { return c.Suit.Symbol() + c.Rank.Short() }

// BaseFileName returns the ace template file name for a suit.
func BaseFileName(s Suit) string {
	return Card{Suit: s, Rank: Ace}.FileName()
}

// Full returns all 52 cards, suit-major.
func Full() []Card {
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return cards
}

// Rendered returns the 48 cards drawn from an ace template.
func Rendered() []Card {
	var cards []Card
	for _, c := range Full() {
		if !c.IsBase() {
			cards = append(cards, c)
		}
	}
	return cards
}
