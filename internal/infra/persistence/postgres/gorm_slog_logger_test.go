package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"travelhub/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(t *testing.T, cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
		wantNot string
	}{
		{name: "query failure", err: errors.New("boom"), want: "GORM query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, wantNot: "GORM"},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query without debug", wantNot: "GORM"},
		{name: "fast query with debug", debug: true, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l, buf := newBufferedGormLogger(t, cfg)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn(`SELECT * FROM "hotels"`, 1), tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_ConfiguredSlowThreshold(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 5 * time.Second}}

	l, buf := newBufferedGormLogger(t, cfg)
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT 1", 1), nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf := newBufferedGormLogger(t, nil)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), errors.New("boom"))
	l.Info(context.Background(), "hidden %d", 1)

	assert.Empty(t, buf.String())
}
