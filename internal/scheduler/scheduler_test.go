package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/rewards-server/internal/model"
	"github.com/dtroode/rewards-server/internal/testutil"
)

type fakeExporter struct {
	calls int
	err   error
}

func (f *fakeExporter) ExportPreviousMonth(ctx context.Context) (model.MarketReport, error) {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return model.MarketReport{}, errors.New("missing deadline")
	}
	return model.MarketReport{Month: "2026-01"}, f.err
}

func TestScheduler_RunExport(t *testing.T) {
	exp := &fakeExporter{}
	s := New(exp, testutil.MakeNoopLogger(), "", time.Second)
	assert.Equal(t, DefaultSchedule, s.schedule)

	s.runExport()
	assert.Equal(t, 1, exp.calls)

	exp.err = errors.New("upload failed")
	s.runExport()
	assert.Equal(t, 2, exp.calls)
}

func TestScheduler_StartStop(t *testing.T) {
	s := New(&fakeExporter{}, testutil.MakeNoopLogger(), "@every 1h", 0)
	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	s := New(&fakeExporter{}, testutil.MakeNoopLogger(), "not a cron", 0)
	assert.Error(t, s.Start())
}
