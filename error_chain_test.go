package logsink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildErrorChain_WithDetailedAndStd(t *testing.T) {
	inner := smerrors.New("os.OpenFile").Msg("open /root/app.log: permission denied")
	middle := smerrors.New("logsink.openFile").Err(inner).Msg("log file unavailable")
	outer := smerrors.New("cli.run").Err(middle).Msg("demo setup failed")

	chain, ops, root, rootOp := buildErrorChain(outer)
	assert.Equal(t, []string{
		"demo setup failed",
		"log file unavailable",
		"open /root/app.log: permission denied",
	}, chain)
	assert.Equal(t, []string{"cli.run", "logsink.openFile", "os.OpenFile"}, ops)
	assert.Equal(t, "open /root/app.log: permission denied", root)
	assert.Equal(t, "os.OpenFile", rootOp)

	wrapped := smerrors.New("wrap.Std").Errorf("wrap: %w", outer)
	chain2, _, root2, _ := buildErrorChain(wrapped)
	assert.True(t, strings.HasPrefix(chain2[0], "wrap:"))
	assert.Equal(t, root, root2)
}

func TestBuildErrorChain_Nil(t *testing.T) {
	chain, ops, root, rootOp := buildErrorChain(nil)
	assert.Empty(t, chain)
	assert.Empty(t, ops)
	assert.Empty(t, root)
	assert.Empty(t, rootOp)
	assert.Empty(t, joinChain(nil))
}

func TestWithErrorChain_EmitsChainFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	inner := smerrors.New("db.Connect").Msg("connection refused")
	outer := smerrors.New("server.Start").Err(inner).Msg("startup failed")

	WithErrorChain(logger.Error(), outer).Msg("boom")

	var entry map[string]any
	require.NoError(t, json.NewDecoder(&buf).Decode(&entry))

	assert.NotEmpty(t, entry[zerolog.ErrorFieldName])
	assert.Equal(t, "startup failed -> connection refused", entry["error_history"])
	assert.Equal(t, "connection refused", entry["error_root"])
	assert.Equal(t, "db.Connect", entry["error_root_op"])
}

func TestWithErrorChain_NilSafe(t *testing.T) {
	assert.Nil(t, WithErrorChain(nil, assert.AnError))

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	WithErrorChain(logger.Info(), nil).Msg("fine")
	assert.NotContains(t, buf.String(), "error")
}

func TestNewDiagnostics_PlainText(t *testing.T) {
	var buf bytes.Buffer
	diag := NewDiagnostics(&buf)
	WithErrorChain(diag.Error(), assert.AnError).Str("path", "x.log").Msg(diagMsgFileOpenError)

	out := buf.String()
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, diagMsgFileOpenError)
	assert.Contains(t, out, "path=x.log")
	assert.NotContains(t, out, "\x1b[", "non-file writers get no colour codes")
}
