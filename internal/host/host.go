// Package host connects group expression parsing to the console utility:
// it processes input lines, renders results, reads HTML pages, and copies text.
package host

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ava12/ngroup"
	"github.com/ava12/ngroup/expand"
	"github.com/ava12/ngroup/internal/config"
	"github.com/ava12/ngroup/normalize"
	"github.com/ava12/ngroup/parser"
	"github.com/ava12/ngroup/tree"
)

// ErrTooManyTerms is reported when an expression expands to more terms than allowed.
var ErrTooManyTerms = errors.New("too many terms")

// Row is the result of processing a single input.
type Row struct {
	Input string
	// Grouped is true if Input was parsed successfully.
	Grouped    bool
	Normalized string
	Terms      []string
	Stats      tree.Stats
	// Err is the parse error or ErrTooManyTerms, nil if Grouped.
	Err error
}

// Joined returns terms joined with sep, or unchanged input if it has no valid grouping.
func (r Row) Joined(sep string) string {
	if !r.Grouped {
		return r.Input
	}
	return strings.Join(r.Terms, sep)
}

// Malformed reports whether input contains brackets that do not balance.
func (r Row) Malformed() bool {
	return r.Err != nil && !ngroup.HasCode(r.Err, parser.NoGroupsError) && !errors.Is(r.Err, ErrTooManyTerms)
}

// Host processes inputs according to configuration.
type Host struct {
	cfg        config.Config
	parser     *parser.Parser
	normalizer *normalize.Normalizer
	log        *log.Logger
}

// New creates new Host. cfg must be valid.
func New(cfg config.Config, logger *log.Logger) (*Host, error) {
	a, e := cfg.BuildAlphabet()
	if e != nil {
		return nil, fmt.Errorf("building alphabet: %w", e)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Host{cfg, parser.New(a), normalize.New(a), logger}, nil
}

// Config returns host configuration.
func (h *Host) Config() config.Config {
	return h.cfg
}

// Process parses, normalizes, and expands a single input.
// Inputs without valid grouping produce rows with Grouped == false and non-nil Err.
func (h *Host) Process(input string) Row {
	row := Row{Input: input}
	t, e := h.parser.Parse("", input)
	if e != nil {
		row.Err = e
		if ngroup.HasCode(e, parser.NoGroupsError) {
			h.log.Debug("no grouping found", "input", input)
		} else {
			h.log.Warn("malformed group expression", "input", input, "err", e)
		}
		return row
	}

	if h.cfg.MaxTerms > 0 {
		if n := expand.Count(t); n > h.cfg.MaxTerms {
			row.Err = fmt.Errorf("%w: %d terms, limit is %d", ErrTooManyTerms, n, h.cfg.MaxTerms)
			h.log.Warn("expansion refused", "input", input, "terms", n, "limit", h.cfg.MaxTerms)
			return row
		}
	}

	terms := expand.NonEmpty(expand.Terms(t))
	if h.cfg.Unique {
		terms = expand.Unique(terms)
	}

	row.Grouped = true
	row.Normalized = h.normalizer.String(t)
	row.Terms = terms
	row.Stats = tree.Stat(t)
	h.log.Debug("expanded", "input", input, "normalized", row.Normalized, "terms", len(terms), "groups", row.Stats.Groups)
	return row
}

// ProcessAll processes every input in order.
func (h *Host) ProcessAll(inputs []string) []Row {
	rows := make([]Row, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, h.Process(in))
	}
	return rows
}

// LastGrouped returns the last successfully parsed row.
func LastGrouped(rows []Row) (Row, bool) {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Grouped {
			return rows[i], true
		}
	}
	return Row{}, false
}
