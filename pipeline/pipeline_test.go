package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/norman/collapse"
	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/mapping"
	"github.com/katalvlaran/norman/pipeline"
)

func compact() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.Indent = -1

	return cfg
}

func run(t *testing.T, cfg pipeline.Config, text string) (string, pipeline.Summary) {
	t.Helper()
	p, err := pipeline.New(cfg, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	sum, err := p.Run(context.Background(), text, &buf)
	require.NoError(t, err)

	return buf.String(), sum
}

func TestRun_Defaults(t *testing.T) {
	out, sum := run(t, pipeline.DefaultConfig(), `(a / alpha) GARBAGE (x :ARG0 ) (b / beta :ARG0 (c / gamma))`)

	assert.Equal(t, "(a / alpha)\n\n(b / beta\n      :ARG0 (c / gamma))\n\n", out)
	assert.Equal(t, 2, sum.Graphs)
	assert.Equal(t, 1, sum.DroppedUnits)
	assert.Equal(t, 0, sum.DroppedEncodings)
	assert.Equal(t, map[string]int{":ARG0": 1}, sum.RoleCounts)
}

func TestRun_Stages(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*pipeline.Config)
		in   string
		want string
	}{
		{
			name: "canonical roles",
			mod:  func(c *pipeline.Config) { c.CanonicalRoles = true },
			in:   `(d / dog :mod-of (b / big))`,
			want: "(d / dog :domain (b / big))\n\n",
		},
		{
			name: "reify with prefix",
			mod:  func(c *pipeline.Config) { c.Reify = pipeline.BuiltinTable; c.Prefix = "r" },
			in:   `(s / sleep-01 :location (m / mat))`,
			want: "(s / sleep-01 :ARG1-of (r / be-located-at-91 :ARG2 (m / mat)))\n\n",
		},
		{
			name: "reify then collapse",
			mod:  func(c *pipeline.Config) { c.Reify = pipeline.BuiltinTable; c.Collapse = pipeline.BuiltinTable },
			in:   `(s / sleep-01 :ARG0 (c / cat) :location (m / mat))`,
			want: "(s / sleep-01 :ARG0 (c / cat) :location (m / mat))\n\n",
		},
		{
			name: "triples",
			mod:  func(c *pipeline.Config) { c.Triples = true },
			in:   `(b / boy :ARG0-of (w / want-01))`,
			want: "top(b) ^\ninstance(b, boy) ^\nARG0(w, b) ^\ninstance(w, want-01)\n\n",
		},
		{
			name: "node tops",
			mod:  func(c *pipeline.Config) { c.NodeTops = true },
			in:   `(w / want-01 :ARG0 (b / boy))`,
			want: "(w / want-01 :TOP (b / boy) :ARG0 b)\n\n",
		},
		{
			name: "conceptualize",
			mod:  func(c *pipeline.Config) { c.Conceptualize = true },
			in:   `(g / go-02 :polarity -)`,
			want: "(g / go-02 :polarity (_ / -))\n\n",
		},
		{
			name: "missing concept",
			mod:  func(*pipeline.Config) {},
			in:   `(a :ARG0 (b / x))`,
			want: "(a / amr-missing :ARG0 (b / x))\n\n",
		},
		{
			name: "keep comments",
			mod:  func(c *pipeline.Config) { c.KeepComments = true },
			in:   "# ::id 1\n(a / alpha)\n",
			want: "# ::id 1\n(a / alpha)\n\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := compact()
			tc.mod(&cfg)
			out, _ := run(t, cfg, tc.in)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRun_Counts(t *testing.T) {
	cfg := compact()
	cfg.Reify = pipeline.BuiltinTable
	cfg.Collapse = pipeline.BuiltinTable
	cfg.Conceptualize = true
	cfg.NodeTops = true

	_, sum := run(t, cfg, `(s / sleep-01 :location (m / mat) :polarity -)`)
	assert.Equal(t, map[string]int{"location": 1, "polarity": 1}, sum.Reified)
	assert.Equal(t, map[string]int{"be-located-at-91": 1, "have-polarity-91": 1}, sum.Collapsed)
	assert.Equal(t, map[string]int{"promoted": 1}, sum.Conceptualized)
	assert.Equal(t, 1, sum.NodeTops)
}

func TestRun_DroppedEncodingIsLogged(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	cfg := compact()
	cfg.Collapse = pipeline.BuiltinTable

	p, err := pipeline.New(cfg, zap.New(obs))
	require.NoError(t, err)

	var buf bytes.Buffer
	sum, err := p.Run(context.Background(), `(p / person :ARG1-of (h / have-mod-91 :ARG2 (b / big) :ARG2 (s / small)))`, &buf)
	require.NoError(t, err)

	assert.Empty(t, buf.String())
	assert.Equal(t, 0, sum.Graphs)
	assert.Equal(t, 1, sum.DroppedEncodings)
	assert.Equal(t, 1, logs.FilterMessage("graph dropped").FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterMessage("dereification table loaded").Len())
	assert.Equal(t, 1, logs.FilterMessage("run complete").Len())
}

func TestRun_Canceled(t *testing.T) {
	p, err := pipeline.New(pipeline.DefaultConfig(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err = p.Run(ctx, `(a / alpha) (b / beta)`, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestTransform_Mismatch(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.Collapse = pipeline.BuiltinTable
	p, err := pipeline.New(cfg, nil)
	require.NoError(t, err)

	g := core.NewBuilder("p").
		Instance("p", "person").
		Instance("h", "have-mod-91").
		Add("h", "ARG1", "p").
		Add("h", "ARG2", "b").
		Instance("b", "big").
		Graph()

	sum := pipeline.Summary{Collapsed: map[string]int{}}
	_, err = p.Transform(g, &sum)
	assert.True(t, errors.Is(err, collapse.ErrNoIncomingTriple))
}

func TestNew_TableErrors(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.Reify = "/nonexistent/re.tsv"
	_, err := pipeline.New(cfg, nil)
	assert.Error(t, err)

	cfg = pipeline.DefaultConfig()
	cfg.Collapse = writeFile(t, "co.tsv", "mod\thave-mod-91\n")
	_, err = pipeline.New(cfg, nil)
	assert.ErrorIs(t, err, mapping.ErrMappingIntegrity)

	cfg = pipeline.DefaultConfig()
	cfg.Indent = -3
	_, err = pipeline.New(cfg, nil)
	assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)

	cfg = pipeline.DefaultConfig()
	cfg.Conceptualize, cfg.MissingConcept = true, ""
	_, err = pipeline.New(cfg, nil)
	assert.ErrorIs(t, err, pipeline.ErrInvalidConfig)
}
