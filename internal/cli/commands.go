package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
)

// ErrQuit is returned by Execute when the user wants to leave.
var ErrQuit = errors.New("quit")

// Session is the state of the terminal client.
type Session struct {
	Controller *game.Controller
	ShowHints  bool
	Out        io.Writer
}

// NewSession starts a game with the given policy, writing all output to out.
func NewSession(policy game.TurnPolicy, out io.Writer) *Session {
	return &Session{
		Controller: game.NewController(policy),
		Out:        out,
	}
}

// Command defines a client command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(*Session, []string) error
}

type Registry struct {
	session  *Session
	commands map[string]*Command

	// ordered lists every command once, in registration order
	ordered []*Command
}

// NewRegistry registers all commands for a session.
func NewRegistry(session *Session) *Registry {
	r := &Registry{
		session:  session,
		commands: make(map[string]*Command),
	}

	r.Register(&Command{
		Name:        "show",
		ShortName:   "s",
		Description: "Show the board",
		Usage:       "show",
		Handler:     showHandler,
	})

	r.Register(&Command{
		Name:        "hints",
		ShortName:   "h",
		Description: "Toggle marking the legal moves on the board",
		Usage:       "hints",
		Handler:     hintsHandler,
	})

	r.Register(&Command{
		Name:        "reset",
		ShortName:   "r",
		Description: "Start a new game",
		Usage:       "reset",
		Handler:     resetHandler,
	})

	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     r.helpHandler,
	})

	r.Register(&Command{
		Name:        "quit",
		ShortName:   "q",
		Description: "Exit the client",
		Usage:       "quit",
		Handler:     quitHandler,
	})

	return r
}

func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
	r.ordered = append(r.ordered, cmd)
}

// Execute runs one line of input. Input that names a square plays a move.
// Errors are printed, except ErrQuit which is returned.
func (r *Registry) Execute(input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	var err error
	if square, ok := parseMove(parts); ok {
		err = moveHandler(r.session, square)
	} else if cmd, exists := r.commands[strings.ToLower(parts[0])]; exists {
		err = cmd.Handler(r.session, parts[1:])
	} else {
		fmt.Fprintf(r.session.Out, "%sUnknown command: %s%s\n", Red, parts[0], Reset)
		fmt.Fprintf(r.session.Out, "Type 'help' for available commands\n")
		return nil
	}

	if errors.Is(err, ErrQuit) {
		return err
	}

	if err != nil {
		fmt.Fprintf(r.session.Out, "%sError: %s%s\n", Red, err.Error(), Reset)
	}

	return nil
}

// parseMove recognizes a field name such as "d3" or a row and column such as "2 3".
// Squares outside the board are returned as well, so they can be reported.
func parseMove(parts []string) (models.Square, bool) {
	switch len(parts) {
	case 1:
		square, err := models.ParseSquare(parts[0])
		return square, err == nil
	case 2:
		row, err := strconv.Atoi(parts[0])
		if err != nil {
			return models.Square{}, false
		}
		col, err := strconv.Atoi(parts[1])
		if err != nil {
			return models.Square{}, false
		}
		return models.Square{Row: row, Col: col}, true
	default:
		return models.Square{}, false
	}
}

func moveHandler(s *Session, square models.Square) error {
	if !square.InBounds() {
		return fmt.Errorf("square %s is not on the board", square)
	}

	s.Controller.OnCellChosen(square.Row, square.Col)
	fmt.Fprint(s.Out, RenderGame(s.Controller, s.ShowHints))
	return nil
}

func showHandler(s *Session, _ []string) error {
	fmt.Fprint(s.Out, RenderGame(s.Controller, s.ShowHints))
	return nil
}

func hintsHandler(s *Session, _ []string) error {
	s.ShowHints = !s.ShowHints
	if s.ShowHints {
		fmt.Fprintln(s.Out, "Hints on")
	} else {
		fmt.Fprintln(s.Out, "Hints off")
	}
	fmt.Fprint(s.Out, RenderGame(s.Controller, s.ShowHints))
	return nil
}

func resetHandler(s *Session, _ []string) error {
	s.Controller.Reset()
	fmt.Fprint(s.Out, RenderGame(s.Controller, s.ShowHints))
	return nil
}

func quitHandler(*Session, []string) error {
	return ErrQuit
}

func (r *Registry) helpHandler(s *Session, args []string) error {
	if len(args) > 0 {
		cmd, exists := r.commands[args[0]]
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Fprintf(s.Out, "%s%s%s - %s\n", Cyan, cmd.Name, Reset, cmd.Description)
		fmt.Fprintf(s.Out, "Short form: %s%s%s\n", Cyan, cmd.ShortName, Reset)
		fmt.Fprintf(s.Out, "Usage: %s\n", cmd.Usage)
		return nil
	}

	fmt.Fprintf(s.Out, "%sAvailable Commands:%s\n", Cyan, Reset)
	for _, cmd := range r.ordered {
		fmt.Fprintf(s.Out, "  %-6s %-2s %s\n", cmd.Name, cmd.ShortName, cmd.Description)
	}
	fmt.Fprintf(s.Out, "Play a move by typing a field such as %sd3%s or a row and column such as %s2 3%s.\n",
		Cyan, Reset, Cyan, Reset)
	return nil
}
