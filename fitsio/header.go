package fitsio

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	blockSize = 2880
	cardSize  = 80
)

// Header is the primary-HDU header as an ordered list of raw 80-character
// cards. The raw cards are kept verbatim so a read/denoise/write cycle
// preserves every keyword a telescope pipeline put there; only the
// structural cards describing the data array are rewritten on output.
type Header struct {
	cards []string
}

func NewHeader() *Header {
	return &Header{}
}

// Cards returns the raw cards in file order, END excluded.
func (h *Header) Cards() []string {
	return h.cards
}

func (h *Header) appendRaw(card string) {
	h.cards = append(h.cards, card)
}

func keyOf(card string) string {
	if len(card) < 8 {
		return strings.TrimRight(card, " ")
	}
	return strings.TrimRight(card[:8], " ")
}

// valueOf extracts the fixed-format value field, stripping any comment.
func valueOf(card string) string {
	if len(card) < 10 || card[8] != '=' {
		return ""
	}
	v := card[10:]
	if i := strings.IndexByte(v, '/'); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// GetInt returns the integer value of the given keyword.
func (h *Header) GetInt(key string) (int, error) {
	for _, card := range h.cards {
		if keyOf(card) == key {
			return strconv.Atoi(valueOf(card))
		}
	}
	return 0, fmt.Errorf("%w: missing keyword %s", ErrMalformedHeader, key)
}

// GetFloat returns the floating value of the given keyword, or def when the
// keyword is absent.
func (h *Header) GetFloat(key string, def float64) (float64, error) {
	for _, card := range h.cards {
		if keyOf(card) == key {
			v, err := strconv.ParseFloat(strings.Replace(valueOf(card), "D", "E", 1), 64)
			if err != nil {
				return 0, fmt.Errorf("%w: bad value for %s: %v", ErrMalformedHeader, key, err)
			}
			return v, nil
		}
	}
	return def, nil
}

// SetInt replaces the keyword's card in place, or appends a new card.
func (h *Header) SetInt(key string, value int, comment string) {
	card := formatCard(key, strconv.Itoa(value), comment)
	for i, c := range h.cards {
		if keyOf(c) == key {
			h.cards[i] = card
			return
		}
	}
	h.cards = append(h.cards, card)
}

func (h *Header) SetBool(key string, value bool, comment string) {
	v := "F"
	if value {
		v = "T"
	}
	card := formatCard(key, v, comment)
	for i, c := range h.cards {
		if keyOf(c) == key {
			h.cards[i] = card
			return
		}
	}
	h.cards = append(h.cards, card)
}

// Remove drops every card carrying the keyword.
func (h *Header) Remove(key string) {
	kept := h.cards[:0]
	for _, c := range h.cards {
		if keyOf(c) != key {
			kept = append(kept, c)
		}
	}
	h.cards = kept
}

// formatCard builds a fixed-format card: keyword padded to 8, "= ", value
// right-justified to column 30.
func formatCard(key string, value string, comment string) string {
	card := fmt.Sprintf("%-8s= %20s", key, value)
	if comment != "" {
		card += " / " + comment
	}
	if len(card) > cardSize {
		card = card[:cardSize]
	}
	return card + strings.Repeat(" ", cardSize-len(card))
}
