package rfcio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rainflow/rfc"
	"github.com/katalvlaran/rainflow/rfcio"
)

const validYAML = `
class_count: 8
class_width: 1.0
class_offset: -4.0
hysteresis: 0.5
counting_method: hcm
woehler:
  sd: 100
  nd: 1000000
  k: -4.5
`

func TestDecode_ParsesValidDocument(t *testing.T) {
	cfg, err := rfcio.Decode(strings.NewReader(validYAML))
	require.NoError(t, err)
	require.Equal(t, 8, cfg.ClassCount)
	require.Equal(t, "hcm", cfg.CountingMethod)
	require.NotNil(t, cfg.Woehler)
	require.Equal(t, 100.0, cfg.Woehler.SD)
}

func TestDecode_RejectsMissingClassCount(t *testing.T) {
	_, err := rfcio.Decode(strings.NewReader("hysteresis: 0.5\n"))
	require.ErrorIs(t, err, rfcio.ErrEmptyConfig)
}

func TestDecode_RejectsMalformedYAML(t *testing.T) {
	_, err := rfcio.Decode(strings.NewReader("class_count: [not, a, scalar\n"))
	require.Error(t, err)
}

func TestNewContext_BuildsWorkingEngine(t *testing.T) {
	cfg, err := rfcio.Decode(strings.NewReader(validYAML))
	require.NoError(t, err)

	ctx, err := rfcio.NewContext(cfg)
	require.NoError(t, err)
	defer ctx.Close()

	require.NoError(t, ctx.Feed([]float64{1, 3, 2, 4}))
	require.NoError(t, ctx.Finalize(rfc.ResNone))
}

func TestNewContext_RejectsInvalidClassParams(t *testing.T) {
	cfg := rfcio.Config{ClassCount: 1, ClassWidth: 1}
	_, err := rfcio.NewContext(cfg)
	require.ErrorIs(t, err, rfcio.ErrBadConfig)
	require.ErrorIs(t, err, rfc.ErrBadClassCount)
}

func TestLoadContext_DecodesAndBuildsInOneStep(t *testing.T) {
	ctx, err := rfcio.LoadContext(strings.NewReader(validYAML))
	require.NoError(t, err)
	defer ctx.Close()

	require.NoError(t, ctx.Feed([]float64{1, 3, 2, 4}))
}

func TestNewContext_CallerOptsAppendAfterConfigOpts(t *testing.T) {
	cfg, err := rfcio.Decode(strings.NewReader(validYAML))
	require.NoError(t, err)

	ctx, err := rfcio.NewContext(cfg, rfc.WithCountingMethod(rfc.Counting4PTM))
	require.NoError(t, err)
	defer ctx.Close()
}
