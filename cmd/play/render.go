package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/akoreshkov/minehint-server/internal/mines"
)

const (
	iconHidden = "·"
	iconMine   = "X"
)

var (
	colorHidden  = color.Style{color.FgGray}
	colorZero    = color.Style{color.FgDarkGray}
	colorMine    = color.Style{color.FgRed, color.OpBold}
	colorHint    = color.Style{color.FgGreen, color.OpBold}
	colorOutcome = color.Style{color.FgCyan, color.OpBold}

	// classic minesweeper digit palette
	colorDigits = map[mines.CellState]color.Style{
		1: {color.FgBlue},
		2: {color.FgGreen},
		3: {color.FgRed},
		4: {color.FgMagenta},
		5: {color.FgYellow},
		6: {color.FgCyan},
		7: {color.FgWhite},
		8: {color.FgDarkGray},
	}
)

func renderCell(s mines.CellState) string {
	switch {
	case s == mines.Hidden:
		return colorHidden.Sprint(iconHidden)
	case s == mines.ExplodedMine:
		return colorMine.Sprint(iconMine)
	case s == 0:
		return colorZero.Sprint("0")
	default:
		return colorDigits[s].Sprint(strconv.Itoa(int(s)))
	}
}

func printGrid(b *mines.Board) {
	var sb strings.Builder
	for i, s := range b.Render() {
		sb.WriteString(renderCell(s))
		if (i+1)%b.Width == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	fmt.Print(sb.String())
}

func printHint(hint *mines.Coordinate) {
	if hint == nil {
		fmt.Println("No safe cells available for a hint!")
		return
	}
	fmt.Printf(
		"Hint: try opening the cell at row %s, column %s\n",
		colorHint.Sprint(hint.Row), colorHint.Sprint(hint.Col),
	)
}

func printOutcome(status mines.GameStatus) {
	switch status {
	case mines.StatusWon:
		fmt.Println(colorOutcome.Sprint("Congratulations, you won!"))
	case mines.StatusLost:
		fmt.Println(colorMine.Sprint("You guessed a mine. Game over :("))
	}
}
