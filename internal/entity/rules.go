package entity

// Winner classifies a board: it returns the mark owning a run of at least
// winLength consecutive identical cells in any row, column, or diagonal of
// either direction; PlayerTie when the board is full without such a run;
// EmptyCell while the game is still ongoing. The win check always precedes
// the fullness check, so a board that fills up on a winning move reports the
// win, never a tie.
func Winner(board *Board, winLength int) string {
	n := board.Size

	for row := 0; row < n; row++ {
		if mark := lineWinner(rowLine(board, row), winLength); mark != EmptyCell {
			return mark
		}
	}

	for col := 0; col < n; col++ {
		if mark := lineWinner(colLine(board, col), winLength); mark != EmptyCell {
			return mark
		}
	}

	// Every diagonal long enough to hold a run, not just the two through the
	// corners: offsets winLength-n .. n-winLength in both families.
	for offset := winLength - n; offset <= n-winLength; offset++ {
		if mark := lineWinner(diagonalLine(board, offset, false), winLength); mark != EmptyCell {
			return mark
		}

		if mark := lineWinner(diagonalLine(board, offset, true), winLength); mark != EmptyCell {
			return mark
		}
	}

	if board.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// lineWinner scans the maximal runs of consecutive identical non-empty marks
// in a line and returns the mark of the first run reaching winLength.
func lineWinner(line []string, winLength int) string {
	run := 0
	prev := EmptyCell

	for _, mark := range line {
		if mark == prev {
			run++
		} else {
			prev = mark
			run = 1
		}

		if mark != EmptyCell && run >= winLength {
			return mark
		}
	}

	return EmptyCell
}

func rowLine(board *Board, row int) []string {
	return board.Cells[row*board.Size : (row+1)*board.Size]
}

func colLine(board *Board, col int) []string {
	line := make([]string, 0, board.Size)
	for row := 0; row < board.Size; row++ {
		line = append(line, board.Cells[row*board.Size+col])
	}

	return line
}

// diagonalLine collects the diagonal at the given offset from the main
// diagonal. With mirrored set, rows are read bottom-up, which yields the
// anti-diagonal family.
func diagonalLine(board *Board, offset int, mirrored bool) []string {
	n := board.Size
	line := make([]string, 0, n)

	for row := 0; row < n; row++ {
		col := row + offset
		if col < 0 || col >= n {
			continue
		}

		readRow := row
		if mirrored {
			readRow = n - 1 - row
		}

		line = append(line, board.Cells[readRow*n+col])
	}

	return line
}
