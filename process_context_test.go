package naiad

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	naiadtest "github.com/sherryshare/Naiad/testing"
	"github.com/sherryshare/Naiad/types"
)

func TestNewProcessContext(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.WorkerCount = 4
		cfg.Endpoints = []types.Endpoint{
			{Host: "localhost", Addr: netip.MustParseAddr("127.0.0.1"), Port: 2101},
		}

		return &cfg
	}

	t.Run("rejects nil config", func(t *testing.T) {
		_, err := NewProcessContext(nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := valid()
		cfg.WorkerCount = 0
		_, err := NewProcessContext(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("exposes its dependencies", func(t *testing.T) {
		cfg := valid()
		logger := naiadtest.NewCaptureLogger()
		pctx, err := NewProcessContext(cfg, WithLogger(logger))
		require.NoError(t, err)

		require.Same(t, cfg, pctx.Config())
		require.Same(t, logger, pctx.Logger())
		require.NotNil(t, pctx.Metrics())
	})

	t.Run("creates worker groups sized to the config", func(t *testing.T) {
		pctx, err := NewProcessContext(valid())
		require.NoError(t, err)

		group, err := pctx.NewWorkerGroup()
		require.NoError(t, err)
		defer group.Close()
		require.Equal(t, 4, group.Workers())
	})
}
