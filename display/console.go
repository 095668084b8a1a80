package display

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/succtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Role is the part a piece of console output plays, used to select a color.
type Role int

// Roles of console output.
const (
	KeyRole   Role = iota // a key of the tree
	ArrowRole             // a successor link between keys
	EndRole               // end of the chain
)

// Config holds parameters for console output.
type Config struct {
	LineWidth int            // target line length in console cells
	Context   *uax11.Context // context for measuring string widths
}

// Console outputs the successor chain of a tree to a console with a fixed
// width font.
type Console struct {
	Arrow  string // separator between keys
	End    string // marker after the maximum key
	Empty  string // output for an empty tree
	colors map[Role]*color.Color
}

// NewConsole creates a new console printer. colors is a map from roles to
// colors, used for display. It may contain just a subset of the roles; nil
// selects a default palette.
func NewConsole(colors map[Role]*color.Color) *Console {
	grapheme.SetupGraphemeClasses()
	c := &Console{
		Arrow: " → ",
		End:   " ⊣",
		Empty: "∅",
	}
	if colors == nil {
		c.colors = makeDefaultPalette()
	} else {
		c.colors = colors
	}
	return c
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		KeyRole:   color.New(color.FgBlue, color.Bold),
		ArrowRole: color.New(color.FgHiBlack),
		EndRole:   color.New(color.FgRed),
	}
	return palette
}

// Print outputs the successor chain of tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func (c *Console) Print(tree *succtree.Tree, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return c.Fprint(os.Stdout, tree, config)
}

// Fprint outputs the successor chain of tree to w, wrapping lines at
// config.LineWidth. Continuation lines start with the arrow separator.
func (c *Console) Fprint(w io.Writer, tree *succtree.Tree, config *Config) error {
	cfg := Config{LineWidth: defaultLineWidth}
	if config != nil {
		cfg = *config
	}
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	if tree.IsEmpty() {
		return c.styled(w, c.Empty+"\n", EndRole)
	}
	first := tree.First()
	wa := columns(c.Arrow, cfg.Context)
	col := 0
	for n := first; n != nil; n = n.Next() {
		key := strconv.Itoa(n.Key())
		wk := columns(key, cfg.Context)
		if n != first {
			if col+wa+wk > cfg.LineWidth && col > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				col = 0
			}
			if err := c.styled(w, c.Arrow, ArrowRole); err != nil {
				return err
			}
			col += wa
		}
		if err := c.styled(w, key, KeyRole); err != nil {
			return err
		}
		col += wk
	}
	return c.styled(w, c.End+"\n", EndRole)
}

// styled writes s to w, colored as configured for role.
func (c *Console) styled(w io.Writer, s string, role Role) error {
	if col, ok := c.colors[role]; ok {
		_, err := col.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// columns is the number of console cells s occupies. uax11 classes the ASCII
// digits as emoji (keycap bases) and reports them as wide, so single-byte
// graphemes are counted as one cell without asking uax11.
func columns(s string, context *uax11.Context) int {
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 {
			w++
			continue
		}
		w += uax11.Width([]byte(g), context)
	}
	return w
}

// --- Config for terminals --------------------------------------------------

const defaultLineWidth = 65

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = defaultLineWidth
		} else if w > 30 {
			config.LineWidth = w - 5
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = defaultLineWidth
	}
	tracer().Infof("setting line length to %d cells", config.LineWidth)
	return config
}
