package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/output"
)

const lineLength = 72

const helpText = `Commands:
  <move>        play a move, e.g. e2e4, or e7e8q to promote
  moves [sq]    list legal moves, or the destinations from one square
                (x marks a capture, * a promotion)
  undo          take back the last move
  fen [FEN]     show the position, or load a new one
  status        show whose turn it is, or the result
  log           show the moves played so far
  board         draw the board
  json          print the position as JSON, as the server sends it
  help          show this text
  quit          leave
`

// REPL reads commands line by line and plays them on a session.
type REPL struct {
	session *game.Session
	display config.OutputConfig
	in      *bufio.Scanner
	out     io.Writer
}

// NewREPL creates a REPL reading from in and writing to out.
func NewREPL(session *game.Session, display config.OutputConfig, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		session: session,
		display: display,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run draws the board and processes commands until quit or end of input.
// Rejected moves and commands are reported and do not end the loop.
func (r *REPL) Run() error {
	if err := r.showBoard(); err != nil {
		return err
	}
	for {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		quit, err := r.execute(strings.TrimSpace(r.in.Text()))
		if err != nil {
			if !errors.IsRejection(err) {
				return err
			}
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// execute runs one command line.
func (r *REPL) execute(line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help", "?":
		_, err = io.WriteString(r.out, helpText)
	case "board":
		err = r.showBoard()
	case "json":
		err = r.showJSON()
	case "moves":
		err = r.showMoves(arg)
	case "undo":
		if err = r.session.Undo(); err == nil {
			err = r.showBoard()
		}
	case "fen":
		if arg == "" {
			_, err = fmt.Fprintln(r.out, r.session.FEN())
			break
		}
		if err = r.session.Load(arg); err == nil {
			err = r.showBoard()
		}
	case "status":
		err = r.showStatus()
	case "log":
		err = output.WriteMoveLog(r.out, r.session.MoveLog(), lineLength)
	default:
		if arg != "" {
			return false, errors.Wrapf(errors.ErrMalformedInput, "unknown command %q", cmd)
		}
		if _, err = r.session.Submit(cmd); err == nil {
			err = r.showBoard()
		}
	}
	return false, err
}

func (r *REPL) showBoard() error {
	if err := output.RenderSession(r.out, r.session, r.display); err != nil {
		return err
	}
	return r.showStatus()
}

func (r *REPL) showJSON() error {
	view, err := output.NewPositionView(r.session)
	if err != nil {
		return err
	}
	return output.WriteJSON(r.out, view)
}

func (r *REPL) showStatus() error {
	text, err := r.session.StatusText()
	if err != nil {
		return err
	}
	if text == "Checkmate" {
		text = fmt.Sprintf("Checkmate, %s wins", r.session.ToMove().Opposite())
	} else if r.session.InCheck(r.session.ToMove()) {
		text += ", check"
	}
	_, err = fmt.Fprintln(r.out, text)
	return err
}

func (r *REPL) showMoves(arg string) error {
	if arg == "" {
		moves, err := r.session.LegalMoves()
		if err != nil {
			return err
		}
		if len(moves) == 0 {
			_, err = fmt.Fprintln(r.out, "no legal moves")
			return err
		}
		return output.WriteTokens(r.out, output.MoveTexts(moves), lineLength)
	}

	from, ok := chess.ParseSquare(arg)
	if !ok {
		return errors.Wrapf(errors.ErrMalformedInput, "bad square %q", arg)
	}
	targets, err := r.session.Targets(from)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		_, err = fmt.Fprintf(r.out, "no legal moves from %s\n", from)
		return err
	}
	tokens := make([]string, 0, len(targets))
	for _, t := range targets {
		token := t.Square.String()
		if t.Capture {
			token = "x" + token
		}
		if t.Promotion {
			token += "*"
		}
		tokens = append(tokens, token)
	}
	return output.WriteTokens(r.out, tokens, lineLength)
}
