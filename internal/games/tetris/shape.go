// Package tetris implements the falling-block puzzle engine and its
// registry adapter.
//
// The Engine is a synchronous state machine: the host feeds it commands
// and elapsed time, then reads a Snapshot. It never blocks, never touches
// the terminal and holds no globals.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/neontris/internal/core"
)

// Shape identifies a piece kind. The zero value marks an empty board cell,
// so a filled cell stores the Shape of the piece that produced it.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
	ShapeU
	ShapeX
)

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	case ShapeU:
		return "U"
	case ShapeX:
		return "X"
	default:
		return "."
	}
}

// Color returns the display color of cells tagged with this shape.
func (s Shape) Color() core.Color {
	if def, ok := shapeTable[s]; ok {
		return def.color
	}
	return core.ColorDefault
}

type shapeDef struct {
	matrix [][]bool
	color  core.Color
}

// shapeTable maps every known shape to its spawn matrix. Built once.
var shapeTable = map[Shape]shapeDef{
	ShapeI: {grid("....", "####", "....", "...."), core.ColorCyan},
	ShapeJ: {grid("#..", "###", "..."), core.ColorBlue},
	ShapeL: {grid("..#", "###", "..."), core.ColorOrange},
	ShapeO: {grid("##", "##"), core.ColorYellow},
	ShapeS: {grid(".##", "##.", "..."), core.ColorGreen},
	ShapeT: {grid(".#.", "###", "..."), core.ColorPurple},
	ShapeZ: {grid("##.", ".##", "..."), core.ColorPink},
	ShapeU: {grid("#.#", "###", "..."), core.ColorBrightRed},
	ShapeX: {grid(".#.", "###", ".#."), core.ColorBrightWhite},
}

// grid builds an occupancy matrix from rows where '#' is filled.
func grid(rows ...string) [][]bool {
	m := make([][]bool, len(rows))
	for y, row := range rows {
		m[y] = make([]bool, len(row))
		for x, ch := range row {
			m[y][x] = ch == '#'
		}
	}
	return m
}

// Variant selects the shape alphabet used for spawning.
type Variant string

const (
	VariantClassic  Variant = "classic"
	VariantExtended Variant = "extended"
)

var (
	classicAlphabet  = []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
	extendedAlphabet = []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ, ShapeU, ShapeX}
)

// Alphabet returns the shapes a session of this variant spawns from.
// Unknown variants return nil.
func (v Variant) Alphabet() []Shape {
	switch v {
	case VariantClassic:
		return classicAlphabet
	case VariantExtended:
		return extendedAlphabet
	default:
		return nil
	}
}

// ParseVariant converts a config or CLI value to a Variant.
// The empty string selects the classic alphabet.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case "":
		return VariantClassic, nil
	case VariantClassic, VariantExtended:
		return v, nil
	default:
		return "", fmt.Errorf("tetris: unknown variant %q", s)
	}
}
