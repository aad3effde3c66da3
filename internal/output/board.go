package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/game"
)

// BoardOptions controls RenderBoard.
type BoardOptions struct {
	// Colour draws squares and pieces with ANSI colours. When false the
	// diagram is plain text with '.' for empty squares.
	Colour bool

	// Coordinates adds rank numbers and file letters.
	Coordinates bool

	// Flip draws rank 1 at the top.
	Flip bool

	// Highlight marks squares such as the last move's origin and destination.
	Highlight []chess.Square

	// Checked marks a king in check.
	Checked []chess.Square
}

var (
	lightSquare     = color.BgHiWhite
	darkSquare      = color.BgHiBlack
	highlightSquare = color.BgGreen
	checkedSquare   = color.BgRed
	whitePiece      = []color.Attribute{color.FgHiYellow, color.Bold}
	blackPiece      = []color.Attribute{color.FgBlack, color.Bold}
)

// RenderBoard draws the board with rank 8 at the top and file a on the left.
func RenderBoard(w io.Writer, board *chess.Board, opts BoardOptions) error {
	var sb strings.Builder

	ranks := []int{7, 6, 5, 4, 3, 2, 1, 0}
	files := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if opts.Flip {
		ranks, files = files, ranks
	}

	for _, rank := range ranks {
		if opts.Coordinates {
			fmt.Fprintf(&sb, "%d ", rank+1)
		}
		for i, file := range files {
			sq := chess.ToSquare(file, rank)
			piece, occupied := board.PieceAt(sq)
			if opts.Colour {
				sb.WriteString(colourSquare(sq, piece, occupied, opts))
				continue
			}
			if i > 0 {
				sb.WriteByte(' ')
			}
			if occupied {
				sb.WriteByte(piece.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	if opts.Coordinates {
		sb.WriteString("  ")
		for i, file := range files {
			letter := string(rune(chess.ColBase + file))
			switch {
			case opts.Colour:
				sb.WriteString(" " + letter + " ")
			case i > 0:
				sb.WriteString(" " + letter)
			default:
				sb.WriteString(letter)
			}
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// colourSquare returns one three-character cell.
func colourSquare(sq chess.Square, piece chess.Piece, occupied bool, opts BoardOptions) string {
	bg := darkSquare
	if sq.IsLight() {
		bg = lightSquare
	}
	if containsSquare(opts.Highlight, sq) {
		bg = highlightSquare
	}
	if containsSquare(opts.Checked, sq) {
		bg = checkedSquare
	}

	attrs := []color.Attribute{bg}
	text := "   "
	if occupied {
		text = " " + string(piece.Letter()) + " "
		if piece.Colour == chess.White {
			attrs = append(attrs, whitePiece...)
		} else {
			attrs = append(attrs, blackPiece...)
		}
	}
	cell := color.New(attrs...)
	cell.EnableColor()
	return cell.Sprint(text)
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// SessionBoardOptions derives board options from the output settings and
// the session: the last move is highlighted and a checked king is marked.
// Colour is also dropped when fatih/color has detected a non-terminal.
func SessionBoardOptions(s *game.Session, cfg config.OutputConfig) BoardOptions {
	opts := BoardOptions{
		Colour:      cfg.Colour && !color.NoColor,
		Coordinates: cfg.Coordinates,
		Flip:        cfg.Flip,
	}
	if m, ok := s.LastMove(); ok {
		opts.Highlight = []chess.Square{m.From, m.To}
	}
	pos := s.Position()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if !pos.InCheck[colour] {
			continue
		}
		if king, ok := pos.Board.FindKing(colour); ok {
			opts.Checked = append(opts.Checked, king)
		}
	}
	return opts
}

// RenderSession draws the session's board.
func RenderSession(w io.Writer, s *game.Session, cfg config.OutputConfig) error {
	pos := s.Position()
	return RenderBoard(w, &pos.Board, SessionBoardOptions(s, cfg))
}
