// janitor периодически удаляет из хранилища строки, которые уже не могут
// пройти проверку: просроченные коды авторизации и (опционально) давно
// истёкшие пары токенов. Срок действия проверяется и при чтении, поэтому
// очистка не меняет наблюдаемого поведения сервиса.
package janitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/pribylovaa/personnel-oauth/internal/config"
	"github.com/pribylovaa/personnel-oauth/internal/metrics"
)

// Sweeper — операции хранилища, нужные для очистки.
type Sweeper interface {
	DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error)
	DeleteStaleTokens(ctx context.Context, before time.Time) (int64, error)
}

// Janitor — фоновая очистка.
type Janitor struct {
	st      Sweeper
	cfg     config.JanitorConfig
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// New создаёт очистку. m может быть nil.
func New(st Sweeper, cfg config.JanitorConfig, log *slog.Logger, m *metrics.Metrics) *Janitor {
	return &Janitor{
		st:      st,
		cfg:     cfg,
		log:     log,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Start запускает очистку в отдельной горутине до отмены ctx.
// Period <= 0 отключает очистку.
func (j *Janitor) Start(ctx context.Context) {
	if j.cfg.Period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(j.cfg.Period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				j.Sweep(ctx)
			}
		}
	}()
}

// Sweep выполняет один проход очистки.
func (j *Janitor) Sweep(ctx context.Context) {
	now := j.now()

	n, err := j.st.DeleteExpiredCodes(ctx, now)
	if err != nil {
		j.log.Error("code_janitor_failed", slog.String("err", err.Error()))
	} else {
		j.metrics.ObserveSweep("codes", n)
		if n > 0 {
			j.log.Info("codes_swept", slog.Int64("count", n))
		}
	}

	if j.cfg.TokenRetention <= 0 {
		return
	}

	n, err = j.st.DeleteStaleTokens(ctx, now.Add(-j.cfg.TokenRetention))
	if err != nil {
		j.log.Error("token_janitor_failed", slog.String("err", err.Error()))
		return
	}

	j.metrics.ObserveSweep("tokens", n)
	if n > 0 {
		j.log.Info("tokens_swept", slog.Int64("count", n))
	}
}
