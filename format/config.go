package format

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.birchlake.dev/xjs/writer"
)

// Flags holds CLI flag names for writer configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Indent         string
	Separator      string
	MinSpacing     string
	MaxSpacing     string
	OmitQuotes     string
	OmitRootBraces string
	Comments       string
}

// Config holds CLI flag values that configure [writer.Options].
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Options] to build the resulting
// [writer.Options].
type Config struct {
	Flags          Flags
	Indent         int
	Separator      string
	MinSpacing     int
	MaxSpacing     int
	OmitQuotes     bool
	OmitRootBraces bool
	Comments       bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Indent:         "indent",
			Separator:      "separator",
			MinSpacing:     "min-spacing",
			MaxSpacing:     "max-spacing",
			OmitQuotes:     "omit-quotes",
			OmitRootBraces: "omit-root-braces",
			Comments:       "comments",
		},
	}
}

// RegisterFlags adds writer formatting flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVar(&c.Indent, c.Flags.Indent, 2,
		"number of spaces per indent level")
	flags.StringVar(&c.Separator, c.Flags.Separator, " ",
		"text written after a delimiting comma and a member's ':'")
	flags.IntVar(&c.MinSpacing, c.Flags.MinSpacing, 0,
		"minimum line breaks allowed between siblings")
	flags.IntVar(&c.MaxSpacing, c.Flags.MaxSpacing, 2,
		"maximum line breaks allowed between siblings")
	flags.BoolVar(&c.OmitQuotes, c.Flags.OmitQuotes, true,
		"prefer unquoted implicit strings where eligible")
	flags.BoolVar(&c.OmitRootBraces, c.Flags.OmitRootBraces, true,
		"write a non-empty object root without its enclosing braces")
	flags.BoolVar(&c.Comments, c.Flags.Comments, true,
		"emit comment trivia")
}

// RegisterCompletions registers shell completions for writer flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{
		c.Flags.Indent, c.Flags.Separator, c.Flags.MinSpacing,
		c.Flags.MaxSpacing, c.Flags.OmitQuotes, c.Flags.OmitRootBraces, c.Flags.Comments,
	} {
		if err := cmd.RegisterFlagCompletionFunc(flag, noFileComp); err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// Options builds the [writer.Options] described by c, starting from
// [writer.NewOptions] for every field c does not expose as a flag.
func (c *Config) Options() writer.Options {
	o := writer.NewOptions()

	o.Indent = spaces(c.Indent)
	o.Separator = c.Separator
	o.MinSpacing = c.MinSpacing
	o.MaxSpacing = c.MaxSpacing
	o.OmitQuotes = c.OmitQuotes
	o.OmitRootBraces = c.OmitRootBraces
	o.OutputComments = c.Comments

	return o
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}

	return string(b)
}
