package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/calcli/pkg/commands"
	"github.com/aretw0/calcli/pkg/domain"
	"github.com/aretw0/calcli/pkg/evaluator"
	"github.com/aretw0/calcli/pkg/observability"
	"github.com/aretw0/calcli/pkg/parser"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptReader replays lines and then returns end.
type scriptReader struct {
	lines []string
	end   error
	reads int
}

func (s *scriptReader) ReadLine(ctx context.Context) (string, error) {
	if s.reads >= len(s.lines) {
		return "", s.end
	}
	line := s.lines[s.reads]
	s.reads++
	return line, nil
}

func newTestRunner(reader LineReader, opts ...Option) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	p := parser.New(evaluator.New())
	h := commands.NewHandler()
	opts = append([]Option{WithReader(reader), WithOutput(out, errOut)}, opts...)
	return NewRunner(p, h, opts...), out, errOut
}

func TestRunner_Session(t *testing.T) {
	reader := &scriptReader{lines: []string{
		"1 + 2",
		"+3",
		"",
		":d2",
		"ans / 4",
		"x = 2,5",
		"=y",
		":s1",
		"x * 1000",
		"max(x;y;1)",
	}, end: io.EOF}

	r, out, errOut := newTestRunner(reader)
	require.NoError(t, r.Run(context.Background()))

	want := strings.Join([]string{
		"= 3.000",
		"= 6.000",
		"Set to normal notation with 2 decimal places",
		"= 1.50",
		"x = 2.50",
		"saved y = 2.50",
		"Set to scientific notation with 1 decimal places",
		"= 2.5e+03",
		"= 2.5e+00",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Empty(t, errOut.String())
}

func TestRunner_ErrorsDoNotStopLoop(t *testing.T) {
	reader := &scriptReader{lines: []string{
		"ans",
		"=x",
		":z",
		":d9999999999999999999",
		"1 +",
		"bad name = 1",
		"2 * 2",
	}, end: io.EOF}

	r, out, errOut := newTestRunner(reader)
	require.NoError(t, r.Run(context.Background()))

	errLines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.GreaterOrEqual(t, len(errLines), 6)
	assert.Equal(t, domain.ErrNoPreviousAnswer.Error(), errLines[0])
	assert.Equal(t, domain.ErrNothingToSave.Error(), errLines[1])
	assert.Equal(t, "unknown command: ':z'", errLines[2])
	assert.Equal(t, "invalid decimal count: '9999999999999999999'", errLines[3])

	assert.Equal(t, "= 4.000\n", out.String(), "format state untouched by the failed command")
}

func TestRunner_QuitStopsReading(t *testing.T) {
	reader := &scriptReader{lines: []string{"1", ":Q", "2"}, end: io.EOF}

	r, out, _ := newTestRunner(reader, WithInteractive(true))
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, 2, reader.reads)
	assert.Equal(t, "= 1.000\nExiting ...\n", out.String())
}

func TestRunner_ExitNotices(t *testing.T) {
	tests := []struct {
		name        string
		end         error
		interactive bool
		want        string
	}{
		{"Interrupt", ErrInterrupted, true, "(CTRL-C) Exiting...\n"},
		{"End Of Input", io.EOF, true, "\n(CTRL-D) Exiting...\n"},
		{"Quiet Pipe", io.EOF, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, _ := newTestRunner(&scriptReader{end: tt.end}, WithInteractive(tt.interactive))
			require.NoError(t, r.Run(context.Background()))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunner_ReadErrors(t *testing.T) {
	r, _, _ := newTestRunner(&scriptReader{end: context.Canceled})
	assert.ErrorIs(t, r.Run(context.Background()), context.Canceled)

	boom := errors.New("device gone")
	r, _, _ = newTestRunner(&scriptReader{end: boom})
	err := r.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "input error")
}

func TestRunner_CancelledBeforeRead(t *testing.T) {
	reader := &scriptReader{lines: []string{"1"}, end: io.EOF}
	r, _, _ := newTestRunner(reader)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
	assert.Equal(t, 0, reader.reads)
}

func TestRunner_Help(t *testing.T) {
	r, out, _ := newTestRunner(
		&scriptReader{lines: []string{":h"}, end: io.EOF},
		WithHelpText("# Help"),
		WithRenderer(func(s string) (string, error) { return "Rendered: " + s + "\n\n", nil }),
	)
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, "Rendered: # Help\n", out.String())
}

func TestRunner_HelpRendererFailureFallsBack(t *testing.T) {
	r, out, _ := newTestRunner(
		&scriptReader{lines: []string{":h"}, end: io.EOF},
		WithHelpText("# Help"),
		WithRenderer(func(string) (string, error) { return "", errors.New("no tty") }),
	)
	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, "# Help\n", out.String())
}

func TestRunner_SanitizesInput(t *testing.T) {
	reader := &scriptReader{lines: []string{"1\x00+1", strings.Repeat("1", 20)}, end: io.EOF}
	r, out, errOut := newTestRunner(reader, WithMaxInputSize(10))
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, "= 2.000\n", out.String())
	assert.Contains(t, errOut.String(), ErrInputTooLarge.Error())
}

type markStyler struct{}

func (markStyler) Success(s string) string { return "+" + s }
func (markStyler) Failure(s string) string { return "!" + s }

func TestRunner_Styler(t *testing.T) {
	reader := &scriptReader{lines: []string{"1", "ans(", ":d1"}, end: io.EOF}
	r, out, errOut := newTestRunner(reader, WithStyler(markStyler{}))
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, "+= 1.000\n+Set to normal notation with 1 decimal places\n", out.String())
	assert.True(t, strings.HasPrefix(errOut.String(), "!"))
}

func TestRunner_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	reader := &scriptReader{lines: []string{"1", "x = 2", "=y", ":d", ":z", "ans + nope"}, end: io.EOF}
	r, _, _ := newTestRunner(reader, WithMetrics(m))
	require.NoError(t, r.Run(context.Background()))

	lines, err := testutil.GatherAndCount(reg, "calcli_lines_total")
	require.NoError(t, err)
	assert.Equal(t, 4, lines)

	errs, err := testutil.GatherAndCount(reg, "calcli_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 2, errs)

	expected := `
# HELP calcli_variables Number of variables defined in the session
# TYPE calcli_variables gauge
calcli_variables 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "calcli_variables"))
}

func TestDispatch(t *testing.T) {
	r, _, _ := newTestRunner(&scriptReader{end: io.EOF})

	out, err := r.Dispatch("6 * 7")
	require.NoError(t, err)
	assert.Equal(t, Outcome{Text: "= 42.000"}, out)

	out, err = r.Dispatch(":q")
	require.NoError(t, err)
	assert.True(t, out.Quit)

	_, err = r.Dispatch(":x")
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
}

func TestExec(t *testing.T) {
	r, out, _ := newTestRunner(&scriptReader{end: io.EOF})

	err := r.Exec(context.Background(), []string{":d1", "r = 2", "pi * r^2", "", ":q", "1/0"})
	require.NoError(t, err)
	assert.Equal(t, "Set to normal notation with 1 decimal places\nr = 2.0\n= 12.6\n", out.String())
}

func TestExec_StopsAtFirstError(t *testing.T) {
	r, out, _ := newTestRunner(&scriptReader{end: io.EOF})

	err := r.Exec(context.Background(), []string{"1", "ans +", "2"})
	require.Error(t, err)
	assert.Equal(t, domain.ClassEvaluation, domain.Classify(err))
	assert.Equal(t, "= 1.000\n", out.String())
}
