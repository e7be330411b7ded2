// Package pipeline wires the normalization stages into one run:
//
//	text → nodetop → decode (Roles) → reify → collapse → conceptualize → encode
//
// Every stage but decoding and encoding is optional and selected by Config.
// Tables are loaded once in New; an integrity error there is fatal. During
// Run each graph is handled atomically: it is written in full or dropped.
// Malformed units and graphs that cannot be encoded are counted in the
// Summary and logged, never returned as errors. A collapse *MismatchError
// aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/norman/collapse"
	"github.com/katalvlaran/norman/conceptualize"
	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/mapping"
	"github.com/katalvlaran/norman/nodetop"
	"github.com/katalvlaran/norman/penman"
	"github.com/katalvlaran/norman/reify"
)

// Summary aggregates the diagnostics of one Run.
type Summary struct {
	// Graphs is the number of graphs written.
	Graphs int

	// DroppedUnits counts malformed units skipped by the decoder.
	DroppedUnits int

	// DroppedEncodings counts decoded graphs that could not be encoded.
	DroppedEncodings int

	// NodeTops counts inserted ":TOP" markers.
	NodeTops int

	// Reified counts reifications per relation.
	Reified map[string]int

	// Collapsed counts dereifications per concept.
	Collapsed map[string]int

	// Conceptualized counts conceptualization repairs per kind.
	Conceptualized map[string]int

	// RoleCounts counts surface roles as read.
	RoleCounts map[string]int
}

func newSummary() Summary {
	return Summary{
		Reified:        map[string]int{},
		Collapsed:      map[string]int{},
		Conceptualized: map[string]int{},
		RoleCounts:     map[string]int{},
	}
}

func merge(dst, src map[string]int) {
	for k, n := range src {
		dst[k] += n
	}
}

// Pipeline runs a configured sequence of stages. It holds no per-run state
// and may be reused.
type Pipeline struct {
	cfg     Config
	log     *zap.Logger
	roles   *penman.Roles
	enc     *penman.Encoder
	reTable mapping.Reifications
	coTable mapping.Dereifications
}

// New validates cfg, loads its tables and builds the codec.
// A nil logger discards all output.
func New(cfg Config, logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{cfg: cfg, log: logger, roles: penman.DefaultRoles()}
	if cfg.CanonicalRoles {
		p.roles = penman.CanonicalRoles()
	}
	p.enc = penman.NewEncoder(
		penman.WithEncoderRoles(p.roles),
		penman.WithIndent(cfg.Indent),
		penman.WithMissingConcept(cfg.MissingConcept),
	)

	var err error
	switch cfg.Reify {
	case "":
	case BuiltinTable:
		p.reTable = mapping.DefaultReifications()
	default:
		if p.reTable, err = mapping.LoadReificationsFile(cfg.Reify); err != nil {
			return nil, err
		}
	}
	if p.reTable != nil {
		logger.Info("reification table loaded", zap.String("source", cfg.Reify), zap.Int("relations", len(p.reTable)))
	}

	switch cfg.Collapse {
	case "":
	case BuiltinTable:
		p.coTable = mapping.DefaultDereifications()
	default:
		if p.coTable, err = mapping.LoadDereificationsFile(cfg.Collapse); err != nil {
			return nil, err
		}
	}
	if p.coTable != nil {
		logger.Info("dereification table loaded", zap.String("source", cfg.Collapse), zap.Int("concepts", len(p.coTable)))
	}

	return p, nil
}

// Roles returns the canonicalizer used for decoding and encoding.
func (p *Pipeline) Roles() *penman.Roles { return p.roles }

// Encoder returns the configured encoder.
func (p *Pipeline) Encoder() *penman.Encoder { return p.enc }

// Transform applies the enabled graph stages to g and adds their counts to sum.
func (p *Pipeline) Transform(g *core.Graph, sum *Summary) (*core.Graph, error) {
	if p.reTable != nil {
		res, err := reify.Reify(g, p.reTable, reify.WithPrefix(p.cfg.Prefix))
		if err != nil {
			return nil, err
		}
		g = res.Graph
		merge(sum.Reified, res.Counts)
	}
	if p.coTable != nil {
		res, err := collapse.Collapse(g, p.coTable)
		if err != nil {
			return nil, err
		}
		g = res.Graph
		merge(sum.Collapsed, res.Counts)
	}
	if p.cfg.Conceptualize {
		res, err := conceptualize.Conceptualize(g, conceptualize.WithMissingConcept(p.cfg.MissingConcept))
		if err != nil {
			return nil, err
		}
		g = res.Graph
		merge(sum.Conceptualized, res.Counts)
	}

	return g, nil
}

// Run normalizes every graph of text and writes the results to w, each
// followed by a blank line. Cancellation is checked between graphs.
func (p *Pipeline) Run(ctx context.Context, text string, w io.Writer) (Summary, error) {
	sum := newSummary()
	if p.cfg.NodeTops {
		text, sum.NodeTops = nodetop.Mark(text)
		p.log.Debug("node tops marked", zap.Int("markers", sum.NodeTops))
	}

	d := penman.NewDecoder(text, penman.WithRoles(p.roles))
	for res := range d.All() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		merge(sum.RoleCounts, res.RoleCounts)

		g, err := p.Transform(res.Graph, &sum)
		if err != nil {
			return sum, fmt.Errorf("pipeline: graph at offset %d: %w", res.Start, err)
		}

		out, err := p.encode(g)
		if err != nil {
			sum.DroppedEncodings++
			p.log.Warn("graph dropped", zap.Int("offset", res.Start), zap.String("top", g.Top()), zap.Error(err))
			continue
		}

		var sb strings.Builder
		if p.cfg.KeepComments {
			for _, c := range res.Comments {
				sb.WriteString(c)
				sb.WriteByte('\n')
			}
		}
		sb.WriteString(out)
		sb.WriteString("\n\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return sum, fmt.Errorf("pipeline: write: %w", err)
		}
		sum.Graphs++
	}

	dropped := d.Dropped()
	sum.DroppedUnits = len(dropped)
	for _, derr := range dropped {
		p.log.Debug("malformed unit skipped", zap.Int("offset", derr.Offset), zap.String("reason", derr.Msg))
	}
	p.log.Info("run complete",
		zap.Int("graphs", sum.Graphs),
		zap.Int("dropped_units", sum.DroppedUnits),
		zap.Int("dropped_encodings", sum.DroppedEncodings))

	return sum, nil
}

func (p *Pipeline) encode(g *core.Graph) (string, error) {
	if p.cfg.Triples {
		return p.enc.EncodeTriples(g)
	}

	return p.enc.Encode(g)
}
