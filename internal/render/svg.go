// Package render draws positions as SVG board diagrams.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/ludus-go/internal/chess"
)

const (
	lightSquare  = "#f0d9b5"
	darkSquare   = "#b58863"
	markedSquare = "#cdd26a"
)

// Options controls diagram layout.
type Options struct {
	SquareSize  int
	Coordinates bool
	// Marked squares are tinted, typically the last move's endpoints.
	Marked []chess.Square
}

// DefaultOptions returns 45px squares with coordinates.
func DefaultOptions() Options {
	return Options{SquareSize: 45, Coordinates: true}
}

var glyphs = map[chess.Piece]string{
	chess.King:   "♚",
	chess.Queen:  "♛",
	chess.Rook:   "♜",
	chess.Bishop: "♝",
	chess.Knight: "♞",
	chess.Pawn:   "♟",
}

// Size returns the width (and height) of a diagram drawn with opts.
func Size(opts Options) int {
	size := opts.SquareSize * chess.BoardSize
	if opts.Coordinates {
		size += 2 * margin(opts)
	}
	return size
}

func margin(opts Options) int {
	if !opts.Coordinates {
		return 0
	}
	return opts.SquareSize / 2
}

// WriteSVG draws board to w, White at the bottom.
func WriteSVG(w io.Writer, board *chess.Board, opts Options) error {
	if opts.SquareSize <= 0 {
		return fmt.Errorf("render: square size %d", opts.SquareSize)
	}
	marked := make(map[chess.Square]bool, len(opts.Marked))
	for _, sq := range opts.Marked {
		marked[sq] = true
	}

	size := Size(opts)
	off := margin(opts)
	side := opts.SquareSize

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:white")

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		x := off + sq.File()*side
		y := off + sq.Row()*side

		fill := lightSquare
		if (sq.Row()+sq.File())%2 == 1 {
			fill = darkSquare
		}
		if marked[sq] {
			fill = markedSquare
		}
		canvas.Rect(x, y, side, side, "fill:"+fill)

		cp := board.Get(sq)
		if cp == chess.Empty {
			continue
		}
		colour := "black"
		stroke := "white"
		if chess.ExtractColour(cp) == chess.White {
			colour, stroke = "white", "black"
		}
		canvas.Text(x+side/2, y+side*4/5, glyphs[chess.ExtractPiece(cp)],
			fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:%s;stroke:%s;stroke-width:1", side*4/5, colour, stroke))
	}

	if opts.Coordinates {
		style := fmt.Sprintf("text-anchor:middle;font-size:%dpx;font-family:sans-serif;fill:#333", side/3)
		for i := 0; i < chess.BoardSize; i++ {
			file := string(rune('a' + i))
			rank := fmt.Sprint(chess.BoardSize - i)
			canvas.Text(off+i*side+side/2, size-off/4, file, style)
			canvas.Text(off/2, off+i*side+side/2+side/8, rank, style)
		}
	}

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
