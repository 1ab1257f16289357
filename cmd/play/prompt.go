package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/akoreshkov/minehint-server/internal/mines"
)

func readLine(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		fmt.Println()
		log.Fatal("input closed")
	}
	return strings.TrimSpace(in.Text())
}

func promptInt(in *bufio.Scanner, prompt string, min, max int) int {
	for {
		n, err := strconv.Atoi(readLine(in, prompt))
		if err != nil {
			fmt.Println("Invalid input. Please enter a valid number.")
			continue
		}
		if n < min || n > max {
			fmt.Printf("Invalid input. Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n
	}
}

func promptParams(in *bufio.Scanner) mines.GameParams {
	const maxDimension = 99
	params := mines.GameParams{
		Width:      promptInt(in, "Enter the width of the grid: ", 2, maxDimension),
		Height:     promptInt(in, "Enter the height of the grid: ", 2, maxDimension),
		Difficulty: promptInt(in, "Choose your difficulty Easy:1, Medium:2, Hard:3 : ", 1, 3),
	}
	return params
}

func promptAction(in *bufio.Scanner) string {
	for {
		action := strings.ToLower(readLine(
			in, "Enter 'play' to make a move, 'hint' to get a hint or 'quit' to give up: ",
		))
		switch action {
		case "play", "hint", "quit":
			return action
		}
		fmt.Println("Invalid option. Please choose 'play', 'hint' or 'quit'.")
	}
}

func promptCoordinate(in *bufio.Scanner, b *mines.Board) mines.Coordinate {
	for {
		c := mines.Coordinate{
			Col: promptInt(in, fmt.Sprintf("Enter column coordinate between 0 and %d: ", b.Width-1), 0, b.Width-1),
			Row: promptInt(in, fmt.Sprintf("Enter row coordinate between 0 and %d: ", b.Height-1), 0, b.Height-1),
		}
		if b.At(c).Open {
			fmt.Println("The cell is already opened. Please choose another cell.")
			continue
		}
		return c
	}
}
