package service

import (
	"errors"

	"github.com/familyalbum/album-backend/internal/common"
	pkglogger "github.com/familyalbum/album-backend/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "family_fetch_failures_total",
			Help: "Number of failed reads against the data layer",
		},
		[]string{"entity"},
	)

	uploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "family_uploads_total",
			Help: "Upload attempts by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)

// upload outcome labels
const (
	outcomeOK            = "ok"
	outcomeStorageFailed = "storage_failed"
	outcomeMetaFailed    = "metadata_failed"
	outcomeRejected      = "rejected"
)

// isNotFound reports whether err is one of the not-found sentinels
func isNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound) ||
		errors.Is(err, common.ErrMemberNotFound) ||
		errors.Is(err, common.ErrEventNotFound) ||
		errors.Is(err, common.ErrPhotoNotFound) ||
		errors.Is(err, common.ErrMemoryNotFound)
}

// recordFetchFailure logs and counts a failed read. Not-found is not a failure.
func recordFetchFailure(entity, op string, err error) {
	if err == nil || isNotFound(err) {
		return
	}
	fetchFailuresTotal.WithLabelValues(entity).Inc()
	pkglogger.GetLogger().Error().
		Err(err).
		Str("entity", entity).
		Str("op", op).
		Msg("fetch failed")
}

// recordWriteFailure logs a failed write
func recordWriteFailure(entity, op string, err error) {
	pkglogger.GetLogger().Error().
		Err(err).
		Str("entity", entity).
		Str("op", op).
		Msg("write failed")
}
