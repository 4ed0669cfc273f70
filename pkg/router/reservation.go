package router

import (
	"context"
	"log/slog"
	"time"
)

// Announce reserves a GPU for the orchestrator session and loads the given
// model onto it. Returns whether the model ended up resident. Announcing
// while another session holds the reservation transfers it (the previous
// session's traffic degrades to CPU).
func (r *Router) Announce(ctx context.Context, sessionID, model string) (bool, error) {
	if model == "" {
		model = r.cfg.OrchestratorModel
	}

	r.mu.Lock()

	if r.bgLoadTimer != nil {
		r.bgLoadTimer.Stop()
		r.bgLoadTimer = nil
	}

	target := r.reservedBackendLocked()
	if target != nil && target.ReservedBy == sessionID {
		target.LastCriticalActivity = time.Now()
		resident := target.hasModel(model)
		r.mu.Unlock()
		if !resident {
			if err := r.EnsureModelLoaded(ctx, target, model); err != nil {
				return false, nil
			}
		}
		return true, nil
	}
	if target == nil {
		target = r.pickCriticalGPULocked(model)
	}
	if target == nil {
		r.mu.Unlock()
		return false, ErrNoBackendAvailable
	}

	previous := target.ReservedBy
	target.ReservedBy = sessionID
	target.ReservedAt = time.Now()
	target.LastCriticalActivity = time.Now()
	preempted := r.preemptNormalLocked(target)
	needsLoad := !target.hasModel(model)
	r.mu.Unlock()

	reservationActive.Set(1)
	if previous != "" {
		slog.Info("Reservation transferred", "backend", target.Name,
			"previous_session", previous, "session", sessionID)
	} else {
		slog.Info("Reservation announced", "backend", target.Name,
			"session", sessionID, "model", model)
	}

	if preempted > 0 {
		r.sleepGrace(ctx)
	}
	if needsLoad {
		if err := r.EnsureModelLoaded(ctx, target, model); err != nil {
			slog.Warn("Orchestrator model load failed, reservation held anyway",
				"backend", target.Name, "model", model, "error", err)
			return false, nil
		}
	}
	return true, nil
}

// Release clears the reservation held by sessionID. A release from a session
// that does not hold it is logged and ignored. After the delay, the
// background model set is loaded back unless a new reservation arrived.
func (r *Router) Release(sessionID string) {
	r.mu.Lock()
	target := r.reservedBackendLocked()
	if target == nil {
		r.mu.Unlock()
		return
	}
	if target.ReservedBy != sessionID {
		r.mu.Unlock()
		slog.Warn("Release from non-owning session ignored",
			"holder", target.ReservedBy, "session", sessionID)
		return
	}
	r.clearReservationLocked(target, "released")
	r.mu.Unlock()
}

// clearReservationLocked drops the reservation and schedules the delayed
// background-set reload. Caller holds r.mu.
func (r *Router) clearReservationLocked(target *Backend, reason string) {
	target.ReservedBy = ""
	target.ReservedAt = time.Time{}
	reservationActive.Set(0)
	slog.Info("Reservation cleared", "backend", target.Name, "reason", reason)

	if len(r.cfg.BackgroundModels) == 0 {
		return
	}
	if r.bgLoadTimer != nil {
		r.bgLoadTimer.Stop()
	}
	r.bgLoadTimer = time.AfterFunc(r.cfg.BackgroundLoadDelay, func() {
		r.loadBackgroundSet(target)
	})
}

// loadBackgroundSet restores the configured background models on a freed GPU.
// Aborts if the backend was re-reserved while waiting.
func (r *Router) loadBackgroundSet(target *Backend) {
	r.mu.Lock()
	if target.ReservedBy != "" || !target.Healthy {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(len(r.cfg.BackgroundModels))*r.cfg.ModelLoadTimeout)
	defer cancel()

	slog.Info("Loading background model set", "backend", target.Name,
		"models", r.cfg.BackgroundModels)
	for _, m := range r.cfg.BackgroundModels {
		r.mu.Lock()
		reserved := target.ReservedBy != ""
		r.mu.Unlock()
		if reserved {
			slog.Info("Background load aborted, backend re-reserved", "backend", target.Name)
			return
		}
		if err := r.EnsureModelLoaded(ctx, target, m); err != nil {
			slog.Warn("Background model load failed", "backend", target.Name,
				"model", m, "error", err)
		}
	}
}

// runWatchdog enforces the absolute and idle reservation timeouts.
func (r *Router) runWatchdog(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.WatchdogInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.enforceReservationTimeouts()
		}
	}
}

func (r *Router) enforceReservationTimeouts() {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	target := r.reservedBackendLocked()
	if target == nil {
		return
	}
	if now.Sub(target.ReservedAt) > r.cfg.OrchestratorReservationTimeout {
		slog.Warn("Reservation exceeded absolute timeout, force-releasing",
			"backend", target.Name, "session", target.ReservedBy,
			"held_for", now.Sub(target.ReservedAt).String())
		r.clearReservationLocked(target, "absolute_timeout")
		return
	}
	if now.Sub(target.LastCriticalActivity) > r.cfg.OrchestratorIdleTimeout {
		slog.Warn("Reservation idle, force-releasing",
			"backend", target.Name, "session", target.ReservedBy,
			"idle_for", now.Sub(target.LastCriticalActivity).String())
		r.clearReservationLocked(target, "idle_timeout")
	}
}
