package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const elementSrc = `class MyElement extends LitElement {
  @property()
  myField: string;
}
`

const elementOut = `class MyElement extends LitElement {
  @property({ type: String, attribute: 'my-field', reflect: true })
  myField: string;
}
`

const brokenSrc = `class Broken extends LitElement {
  @property()
  untyped;
}
`

type harness struct {
	stdin  *strings.Reader
	stdout bytes.Buffer
	stderr bytes.Buffer
	hook   *test.Hook
	runner Runner
}

func newHarness(stdin string) *harness {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := &harness{stdin: strings.NewReader(stdin), hook: hook}
	h.runner = NewRunner(h.stdin, &h.stdout, &h.stderr, logger)

	return h
}

func (h *harness) run(t *testing.T, args ...string) *Report {
	t.Helper()

	opts, err := ParseArgs(args)
	require.NoError(t, err)

	report, err := h.runner.Run(context.Background(), opts)
	require.NoError(t, err)

	return report
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func readSource(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestRunner_Stdout(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "el.ts", elementSrc)

	h := newHarness("")
	report := h.run(t, path)

	assert.False(t, report.HasErrors())
	assert.Equal(t, 1, report.Changed())
	assert.Equal(t, elementOut, h.stdout.String())
	assert.Equal(t, elementSrc, readSource(t, path), "stdout mode must not write files")
}

func TestRunner_Stdin(t *testing.T) {
	h := newHarness(elementSrc)
	report := h.run(t, "-")

	assert.False(t, report.HasErrors())
	assert.Equal(t, elementOut, h.stdout.String())
}

func TestRunner_Write(t *testing.T) {
	dir := t.TempDir()
	changed := writeSource(t, dir, "a/el.ts", elementSrc)
	same := writeSource(t, dir, "b/plain.tsx", "class Plain {}\n")
	ignored := writeSource(t, dir, "c/skip.js", elementSrc)

	h := newHarness("")
	report := h.run(t, "-w", "-j", "2", dir)

	require.Len(t, report.Files, 2)
	assert.Equal(t, 1, report.Changed())
	assert.Equal(t, elementOut, readSource(t, changed))
	assert.Equal(t, "class Plain {}\n", readSource(t, same))
	assert.Equal(t, elementSrc, readSource(t, ignored))
	assert.Empty(t, h.stdout.String())

	var rewrote bool
	for _, e := range h.hook.AllEntries() {
		if e.Message == "rewrote" && e.Data["file"] == changed {
			rewrote = true
		}
	}

	assert.True(t, rewrote, "expected a log entry for the rewritten file")

	require.Len(t, report.Diagnostics.Infos, 1)
	assert.Equal(t, changed, report.Diagnostics.Infos[0].Unit)
	assert.Equal(t, "enriched 1 decorator call(s)", report.Diagnostics.Infos[0].Message)
}

func TestRunner_List(t *testing.T) {
	dir := t.TempDir()
	changed := writeSource(t, dir, "el.ts", elementSrc)
	writeSource(t, dir, "plain.ts", "class Plain {}\n")

	h := newHarness("")
	h.run(t, "--list", dir)

	assert.Equal(t, changed+"\n", h.stdout.String())
}

func TestRunner_FailureDoesNotStopOtherFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "a.ts", elementSrc)
	bad := writeSource(t, dir, "b.ts", brokenSrc)

	h := newHarness("")
	report := h.run(t, "-w", dir)

	assert.True(t, report.HasErrors())
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 1, report.Changed())
	assert.Equal(t, elementOut, readSource(t, good))
	assert.Equal(t, brokenSrc, readSource(t, bad), "a failed unit is never written")

	require.Len(t, report.Diagnostics.Errors, 1)
	diag := report.Diagnostics.Errors[0]
	assert.Equal(t, "TypeInferenceError", diag.Code)
	assert.Equal(t, "untyped", diag.Member)

	stderr := h.stderr.String()
	assert.Contains(t, stderr, bad+":3:3 (untyped): [TypeInferenceError] Could not determine the type")
	assert.Contains(t, stderr, "> 3 |   untyped;")
}

func TestRunner_TypoWarnings(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "el.ts", `class El {
  @property({ atribute: false })
  name: string;
}
`)

	h := newHarness("")
	report := h.run(t, path)

	assert.False(t, report.HasErrors())
	require.Len(t, report.Diagnostics.Warnings, 1)
	assert.Equal(t, "PossibleTypo", report.Diagnostics.Warnings[0].Code)
	assert.Contains(t, h.stderr.String(),
		"warning: "+path+`:2:3 (name): [PossibleTypo] option "atribute" looks like a misspelling of "attribute"`)
}

func TestRunner_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.ts", "class Bad {\n")

	h := newHarness("")
	report := h.run(t, path)

	require.True(t, report.HasErrors())
	assert.Equal(t, "ParseError", report.Diagnostics.Errors[0].Code)
	assert.Contains(t, h.stderr.String(), "unterminated class body")
}

func TestRunner_Dump(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "el.ts", elementSrc)

	h := newHarness("")
	h.run(t, "--dump", path)

	out := h.stdout.String()
	assert.Contains(t, out, "// "+path)
	assert.Contains(t, out, `Name: (string) (len=9) "MyElement"`)
	assert.Contains(t, out, `Key: (string) (len=9) "attribute"`)
}

func TestRunner_SetupErrors(t *testing.T) {
	h := newHarness("")

	opts, err := ParseArgs([]string{filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)

	_, err = h.runner.Run(context.Background(), opts)
	require.Error(t, err)

	opts, err = ParseArgs([]string{"--decorator", "not-valid", "a.ts"})
	require.NoError(t, err)

	_, err = h.runner.Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRunner_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "el.ts", elementSrc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts, err := ParseArgs([]string{dir})
	require.NoError(t, err)

	_, err = newHarness("").runner.Run(ctx, opts)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_ConfigWarnings(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "el.ts", elementSrc)

	h := newHarness("")
	report := h.run(t, "--infer-type=false", "--omit-default-string-type", path)

	require.Len(t, report.Diagnostics.Warnings, 1)
	assert.Equal(t, "omit_without_type", report.Diagnostics.Warnings[0].Code)
	assert.Contains(t, h.stdout.String(), "@property({ attribute: 'my-field' })")

	var warned bool
	for _, e := range h.hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["code"] == "omit_without_type" {
			warned = true
		}
	}

	assert.True(t, warned)
}

func TestRunner_PrintConfig(t *testing.T) {
	h := newHarness("")
	report := h.run(t, "--print-config", "--decorator", "prop", "--infer-reflect=false")

	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Files)
	assert.Equal(t, "decorator: prop\npreset: full\nrules:\n    inferReflect: false\nextensions:\n    - .ts\n    - .tsx\n", h.stdout.String())
}

func TestRunner_InitConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "property-sugar.yaml")

	h := newHarness("")
	h.run(t, "--init-config", cfgPath, "--preset", "minimal", "--infer-attribute")
	assert.Empty(t, h.stdout.String())

	src := writeSource(t, dir, "el.ts", elementSrc)

	h = newHarness("")
	h.run(t, "-c", cfgPath, src)
	assert.Contains(t, h.stdout.String(), "@property({ attribute: 'my-field' })")
}
