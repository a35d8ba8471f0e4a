package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction.
var Directions = [...]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name, its initial, or the matching
// WASD key.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "a":
		return Left, nil
	case "right", "r", "d":
		return Right, nil
	case "up", "u", "w":
		return Up, nil
	case "down", "s":
		return Down, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// ParseDirections parses every element of args.
func ParseDirections(args []string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(args))
	for _, a := range args {
		d, err := ParseDirection(a)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
