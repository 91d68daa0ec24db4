package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava12/ngroup/internal/config"
	"github.com/ava12/ngroup/internal/host"
)

type options struct {
	cfgFile  string
	htmlFile string
	selector string
	join     string
	unique   bool
	maxTerms int
	table    bool
	copy     bool
	verbose  bool
}

// clipboardSink receives text copied with --copy.
var clipboardSink host.Clipboard = host.SystemClipboard{}

// Execute runs the command line utility.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "ngroup [text...]",
		Short: "Expand group expressions into search terms",
		Long: `ngroup expands group expressions into lists of search terms.

Omissible groups use brackets like （…） or (…): their content may be dropped.
Alternative groups use brackets like ｛…｝, {…} or 〈…〉: exactly one of their
delimiter-separated choices is used. Delimiters are ／ / ， , 、 。 ； ; and space.

  ngroup 'A(B)〈C／D〉'    prints AC；AD；ABC；ABD

Texts without groups are printed unchanged.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, opts, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml, or .yml)")
	pf.StringVar(&opts.htmlFile, "html", "", "read text from an input element of this HTML page")
	pf.StringVar(&opts.selector, "selector", "", `CSS selector of the input element (default "input")`)
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	f := root.Flags()
	f.StringVar(&opts.join, "join", "", `term separator (default "；")`)
	f.BoolVar(&opts.unique, "unique", false, "remove duplicate terms")
	f.IntVar(&opts.maxTerms, "max-terms", 0, "maximum number of terms per text, 0 for no limit (default 10000)")
	f.BoolVar(&opts.table, "table", false, "print a table of normalized texts and term counts")
	f.BoolVar(&opts.copy, "copy", false, "copy the last normalized text to the clipboard")

	root.AddCommand(newNormalizeCmd(opts), newCheckCmd(opts), newVersionCmd())
	return root
}

// loadConfig applies config file and explicitly set flags over defaults.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Defaults()
	if opts.cfgFile != "" {
		var e error
		cfg, e = config.Load(opts.cfgFile)
		if e != nil {
			return cfg, e
		}
	}

	flags := cmd.Flags()
	if flags.Changed("selector") {
		cfg.Selector = opts.selector
	}
	if flags.Changed("join") {
		cfg.Join = opts.join
	}
	if flags.Changed("unique") {
		cfg.Unique = opts.unique
	}
	if flags.Changed("max-terms") {
		cfg.MaxTerms = opts.maxTerms
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func newHost(cmd *cobra.Command, opts *options) (*host.Host, error) {
	cfg, e := loadConfig(cmd, opts)
	if e != nil {
		return nil, e
	}
	return host.New(cfg, host.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel))
}

// inputs returns texts from arguments, HTML page, or standard input, in this order of preference.
func inputs(cmd *cobra.Command, opts *options, cfg config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if opts.htmlFile != "" {
		f, e := os.Open(opts.htmlFile)
		if e != nil {
			return nil, fmt.Errorf("opening page: %w", e)
		}
		defer f.Close()

		v, e := host.InputValue(f, cfg.Selector)
		if e != nil {
			return nil, fmt.Errorf("%s: %w", opts.htmlFile, e)
		}
		return []string{v}, nil
	}

	return readLines(cmd.InOrStdin())
}

func readLines(r io.Reader) ([]string, error) {
	var res []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			res = append(res, line)
		}
	}
	return res, sc.Err()
}

func process(cmd *cobra.Command, opts *options, args []string) (*host.Host, []host.Row, error) {
	h, e := newHost(cmd, opts)
	if e != nil {
		return nil, nil, e
	}
	ins, e := inputs(cmd, opts, h.Config(), args)
	if e != nil {
		return nil, nil, e
	}
	return h, h.ProcessAll(ins), nil
}

func runExpand(cmd *cobra.Command, opts *options, args []string) error {
	h, rows, e := process(cmd, opts, args)
	if e != nil {
		return e
	}

	out := cmd.OutOrStdout()
	for _, r := range rows {
		fmt.Fprintln(out, r.Joined(h.Config().Join))
	}

	if opts.table {
		if t := host.RenderTable(rows); t != "" {
			fmt.Fprintln(out, t)
		}
	}

	if opts.copy {
		if !clipboardSink.Available() {
			fmt.Fprintln(cmd.ErrOrStderr(), "clipboard unsupported")
			return nil
		}
		last, found := host.LastGrouped(rows)
		if !found {
			fmt.Fprintln(cmd.ErrOrStderr(), "nothing to copy")
			return nil
		}
		if e = clipboardSink.WriteAll(last.Normalized); e != nil {
			return fmt.Errorf("copying to clipboard: %w", e)
		}
	}
	return nil
}
