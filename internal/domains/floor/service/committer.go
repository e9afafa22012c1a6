package service

import (
	"context"
	"errors"

	"floorplan/infras/otel"
	"floorplan/internal/domains/floor/backend"
	"floorplan/internal/domains/floor/canvas"
	"floorplan/internal/domains/floor/model/dto"
	"floorplan/shared/constant"
	"floorplan/shared/failure"

	"github.com/rs/zerolog/log"
)

type SaveResult struct {
	Status     string
	BusinessID string
	FloorID    string
	Delta      canvas.Delta
	CreatedIDs []string
}

// Committer submits the pending delta of a session as one batch.
type Committer interface {
	Commit(ctx context.Context, sess *Session) (SaveResult, error)
}

type committerImpl struct {
	backend backend.Backend
	otel    otel.Otel
}

func NewCommitter(backend backend.Backend, otel otel.Otel) Committer {
	return &committerImpl{
		backend: backend,
		otel:    otel,
	}
}

// Commit snapshots the canvas under the session lock and releases it for the
// network call, so edits made meanwhile stay pending. A second call while one
// is in flight fails with ErrSaveInProgress without reaching the backend.
// On any failure the canvas is left exactly as it was.
func (c *committerImpl) Commit(ctx context.Context, sess *Session) (res SaveResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Commit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess.mu.Lock()

	if sess.saving {
		sess.mu.Unlock()

		return res, ErrSaveInProgress
	}

	cv := sess.selector.Canvas()
	snapshot := cv.Snapshot()

	res.BusinessID = sess.selector.BusinessID()
	res.FloorID = cv.FloorID()
	res.Delta = snapshot.Delta

	if snapshot.Delta.IsEmpty() {
		cv.MarkSynced()
		sess.mu.Unlock()

		res.Status = dto.SaveStatusNothingToSave

		return res, nil
	}

	sess.saving = true
	sess.mu.Unlock()

	scope.SetAttributes(map[string]any{
		"floor.id":      res.FloorID,
		"tables.create": len(snapshot.Delta.Creates),
		"tables.update": len(snapshot.Delta.Updates),
		"tables.delete": len(snapshot.Delta.Deletes),
	})

	result, err := c.backend.ManageFloorTables(ctx, snapshot.Delta.Input())

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.saving = false

	if err != nil {
		log.Error().Err(err).Str("floorID", res.FloorID).Msg("failed to sync floor tables")

		return res, err
	}

	createdIDs := result.CreatedIDs()

	if err = cv.Promote(snapshot, createdIDs); err != nil {
		log.Error().Err(err).Str("floorID", res.FloorID).
			Int("submitted", len(snapshot.Delta.Creates)).Int("returned", len(createdIDs)).
			Msg("failed to reconcile synced tables")

		if errors.Is(err, canvas.ErrStaleSnapshot) {
			return res, failure.Conflict(err.Error())
		}

		return res, failure.BadGateway(err)
	}

	sess.selector.SetTables(res.FloorID, cv.Baseline())

	res.Status = dto.SaveStatusSaved
	res.CreatedIDs = createdIDs

	log.Info().Str("floorID", res.FloorID).
		Int("created", len(snapshot.Delta.Creates)).
		Int("updated", len(snapshot.Delta.Updates)).
		Int("deleted", len(snapshot.Delta.Deletes)).
		Msg("floor tables synced")

	return res, nil
}
