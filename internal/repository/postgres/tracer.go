package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/rewards-server/internal/logger"
)

type queryTracer struct {
	log *logger.Logger
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	// Args are left out: they carry user ids next to hashed ids.
	t.log.LogAttrs(ctx, slog.LevelDebug, "running query", slog.String("query", data.SQL))
	return ctx
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	if data.Err != nil {
		t.log.LogAttrs(ctx, slog.LevelDebug, "query failed", slog.String("error", data.Err.Error()))
	}
}
