package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mockgen/pkg/infrastructure/config"
)

func TestServeCommand_StopsOnCancel(t *testing.T) {
	settings := &config.Config{
		DataDir:    t.TempDir(),
		OutputFile: "data/demo_mock_data.json",
		Format:     config.FormatXLSX,
		HTTPServer: config.HTTPServer{Address: "127.0.0.1:0", Timeout: time.Second, IdleTimeout: time.Second},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewServeCommand(ServeConfig{Settings: settings}, discardLogger()).Execute(ctx)
	assert.NoError(t, err)
	assert.Equal(t, config.FormatXLSX, settings.Format, "caller settings are not modified")
}

func TestServeCommand_Help(t *testing.T) {
	var out bytes.Buffer
	cmd := NewServeCommand(ServeConfig{Settings: &config.Config{}, Help: true, Out: &out}, discardLogger())

	require.NoError(t, cmd.Execute(context.Background()))
	assert.Contains(t, out.String(), "GET /api/demo-data/{collection}")
}
