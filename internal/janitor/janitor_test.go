package janitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/personnel-oauth/internal/config"
	"github.com/pribylovaa/personnel-oauth/internal/metrics"
	"github.com/pribylovaa/personnel-oauth/mocks"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newJanitor(t *testing.T, cfg config.JanitorConfig) (*Janitor, *mocks.MockOAuthStorage, *prometheus.Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockOAuthStorage(ctrl)
	reg := prometheus.NewRegistry()

	j := New(st, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.New(reg))
	j.now = func() time.Time { return fixedNow }

	return j, st, reg
}

func TestSweep_CodesOnlyWithoutRetention(t *testing.T) {
	j, st, _ := newJanitor(t, config.JanitorConfig{Period: time.Minute})

	st.EXPECT().DeleteExpiredCodes(gomock.Any(), fixedNow).Return(int64(3), nil)

	j.Sweep(context.Background())
}

func TestSweep_TokensWithRetention(t *testing.T) {
	j, st, reg := newJanitor(t, config.JanitorConfig{Period: time.Minute, TokenRetention: 24 * time.Hour})

	st.EXPECT().DeleteExpiredCodes(gomock.Any(), fixedNow).Return(int64(2), nil)
	st.EXPECT().DeleteStaleTokens(gomock.Any(), fixedNow.Add(-24*time.Hour)).Return(int64(5), nil)

	j.Sweep(context.Background())

	n, err := testutil.GatherAndCount(reg, "personnel_oauth_janitor_deleted_rows_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestSweep_CodeErrorDoesNotStopTokens(t *testing.T) {
	j, st, _ := newJanitor(t, config.JanitorConfig{Period: time.Minute, TokenRetention: time.Hour})

	st.EXPECT().DeleteExpiredCodes(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
	st.EXPECT().DeleteStaleTokens(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	j.Sweep(context.Background())
}

func TestStart_DisabledPeriod(t *testing.T) {
	j, _, _ := newJanitor(t, config.JanitorConfig{Period: 0})

	// Ни одного вызова хранилища: мок упадёт на неожиданном вызове.
	j.Start(context.Background())
}

func TestStart_TicksUntilCanceled(t *testing.T) {
	j, st, _ := newJanitor(t, config.JanitorConfig{Period: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	called := make(chan struct{}, 1)
	st.EXPECT().DeleteExpiredCodes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case called <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(1)

	j.Start(ctx)

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not tick")
	}
	cancel()
}
