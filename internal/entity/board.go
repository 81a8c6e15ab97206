package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// Cell addresses a single board square.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is an n×n grid of marks stored row-major. Size never changes after
// construction.
type Board struct {
	Size  int      `json:"size"`
	Cells []string `json:"cells"`
}

func NewBoard(size int) *Board {
	return &Board{
		Size:  size,
		Cells: make([]string, size*size),
	}
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

// At returns the mark at (row, col).
func (that *Board) At(row, col int) (string, error) {
	if !that.inBounds(row, col) {
		return EmptyCell, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.Cells[row*that.Size+col], nil
}

// Set overwrites the cell at (row, col) unconditionally.
func (that *Board) Set(row, col int, mark string) error {
	if !that.inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	that.Cells[row*that.Size+col] = mark

	return nil
}

// Clone returns a fully independent copy: mutating the clone never affects
// the original.
func (that *Board) Clone() *Board {
	cells := make([]string, len(that.Cells))
	copy(cells, that.Cells)

	return &Board{
		Size:  that.Size,
		Cells: cells,
	}
}

// EmptyCells lists the unoccupied cells in row-major, ascending order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, len(that.Cells))
	for i, mark := range that.Cells {
		if mark == EmptyCell {
			cells = append(cells, Cell{Row: i / that.Size, Col: i % that.Size})
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for _, mark := range that.Cells {
		if mark == EmptyCell {
			return false
		}
	}

	return true
}

// Reset clears every cell.
func (that *Board) Reset() {
	for i := range that.Cells {
		that.Cells[i] = EmptyCell
	}
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
