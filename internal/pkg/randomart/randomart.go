// Package randomart renders deterministic ASCII-art identity cards.
//
// The algorithm is the drunken-bishop walk used by OpenSSH key
// fingerprints, so the cards read the same way the art people already
// recognize from ssh-keygen does.
package randomart

import (
	"crypto/sha256"
	"strings"
)

const (
	fieldWidth  = 17
	fieldHeight = 9

	// Symbols indexed by visit count; the last two mark start and end.
	symbols = " .o+=*BOX@%&#/^SE"
)

// Generate renders the art card for the given seed.
//
// The seed is hashed with SHA-256 and the digest drives the walk: every
// byte encodes four 2-bit moves starting from the board center. S marks
// the start cell, E the cell the walk ends on.
func Generate(seed string) string {
	digest := sha256.Sum256([]byte(seed))

	return render(walk(digest[:]))
}

func walk(digest []byte) [fieldHeight][fieldWidth]int {
	var field [fieldHeight][fieldWidth]int

	x, y := fieldWidth/2, fieldHeight/2
	maxVisits := len(symbols) - 3

	for _, b := range digest {
		input := int(b)
		for range 4 {
			if input&0x1 != 0 {
				x++
			} else {
				x--
			}
			if input&0x2 != 0 {
				y++
			} else {
				y--
			}

			x = min(max(x, 0), fieldWidth-1)
			y = min(max(y, 0), fieldHeight-1)

			if field[y][x] < maxVisits {
				field[y][x]++
			}

			input >>= 2
		}
	}

	field[fieldHeight/2][fieldWidth/2] = len(symbols) - 2 // S
	field[y][x] = len(symbols) - 1                        // E

	return field
}

func render(field [fieldHeight][fieldWidth]int) string {
	var sb strings.Builder

	sb.WriteString("+----[account]----+\n")
	for y := range fieldHeight {
		sb.WriteByte('|')
		for x := range fieldWidth {
			sb.WriteByte(symbols[field[y][x]])
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+----[SHA256]-----+")

	return sb.String()
}
