package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"floorplan/config"
	"floorplan/infras/kafka"
	"floorplan/infras/otel"
	"floorplan/infras/s3"
	"floorplan/internal/domains/floor/backend"
	"floorplan/internal/domains/floor/canvas"
	"floorplan/internal/domains/floor/model"
	"floorplan/internal/domains/floor/model/dto"
	"floorplan/internal/domains/floor/repository"
	"floorplan/internal/domains/floor/selector"
	"floorplan/shared"
	"floorplan/shared/cache"
	"floorplan/shared/constant"
	gDto "floorplan/shared/dto"
	"floorplan/shared/failure"
	gModel "floorplan/shared/model"
	"floorplan/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBusiness   = "business:get"
	cacheGetAllSyncLog = "sync_log:gets"

	exportExtension = ".json"
)

var ErrNoActiveFloor = failure.BadRequestFromString("no floor selected")

type Floor interface {
	OpenSession(ctx context.Context, req dto.OpenSessionRequest) (dto.SessionResponse, error)
	GetSession(ctx context.Context, id string) (dto.SessionResponse, error)
	CloseSession(ctx context.Context, id string) error
	SelectFloor(ctx context.Context, id string, req dto.SelectFloorRequest) (dto.SessionResponse, error)
	CreateTable(ctx context.Context, id string, req dto.CreateTableRequest) (dto.TableResponse, error)
	MoveTable(ctx context.Context, id, key string, req dto.MoveTableRequest) (dto.TableResponse, error)
	RenameTable(ctx context.Context, id, key string, req dto.RenameTableRequest) (dto.TableResponse, error)
	RemoveTable(ctx context.Context, id, key string) error
	Discard(ctx context.Context, id string) (dto.SessionResponse, error)
	Delta(ctx context.Context, id string) (dto.DeltaResponse, error)
	Save(ctx context.Context, id string) (dto.SaveResponse, error)
	CreateFloor(ctx context.Context, id string, req dto.CreateFloorRequest) (dto.SessionResponse, error)
	DeleteFloor(ctx context.Context, id, floorID string) (dto.SessionResponse, error)
	Export(ctx context.Context, id string) (dto.ExportResponse, error)
	GetSyncLogs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSyncLogsResponse, error)
	SweepSessions(ctx context.Context) int
}

type serviceImpl struct {
	sessions  *Sessions
	committer Committer
	backend   backend.Backend
	repo      repository.SyncLog
	publisher kafka.Publisher
	cache     cache.RedisCache
	s3        s3.S3
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	sessions *Sessions,
	committer Committer,
	backend backend.Backend,
	repo repository.SyncLog,
	publisher kafka.Publisher,
	cache cache.RedisCache,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Floor {
	return &serviceImpl{
		sessions:  sessions,
		committer: committer,
		backend:   backend,
		repo:      repo,
		publisher: publisher,
		cache:     cache,
		s3:        s3,
		cfg:       cfg,
		otel:      otel,
	}
}

func actor(ctx context.Context) string {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return userID
}

// edit runs fn with the session locked. Exclusive operations are refused
// while a save is in flight.
func (s *serviceImpl) edit(ctx context.Context, id string, exclusive bool, fn func(sess *Session) error) error {
	sess, err := s.sessions.Get(id, actor(ctx))
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.sessions.touch(sess)

	if exclusive && sess.saving {
		return ErrSaveInProgress
	}

	return fn(sess)
}

// view renders the session. The caller holds sess.mu.
func view(sess *Session) dto.SessionResponse {
	sel := sess.selector
	cv := sel.Canvas()

	res := dto.SessionResponse{
		ID:              sess.id,
		BusinessID:      sel.BusinessID(),
		BusinessName:    sel.BusinessName(),
		Floors:          dto.FloorsFromModels(sel.ListFloors()),
		NeedsFirstFloor: sel.NeedsFirstFloor(),
		Tables:          dto.TablesFromModels(cv.Current()),
		HasChanges:      cv.HasChanges(),
		Saving:          sess.saving,
	}

	if floor, ok := sel.Active(); ok {
		res.ActiveFloorID = floor.ID
	}

	return res
}

func (s *serviceImpl) OpenSession(ctx context.Context, req dto.OpenSessionRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	business, err := s.loadBusiness(ctx, req.BusinessID)
	if err != nil {
		return res, err
	}

	sess := s.sessions.Open(actor(ctx), selector.New(business))

	sess.mu.Lock()
	defer sess.mu.Unlock()

	log.Info().Str("sessionID", sess.id).Str("businessID", business.ID).Int("floors", len(business.Floors)).Msg("editor session opened")

	return view(sess), nil
}

func (s *serviceImpl) loadBusiness(ctx context.Context, id string) (model.Business, error) {
	cacheKey := shared.BuildCacheKey(cacheGetBusiness, id, actor(ctx))

	var payload dto.BusinessPayload

	if err := s.cache.Get(ctx, cacheKey, &payload); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for business")

		return payload.ToModel(), nil
	}

	business, err := s.backend.GetBusiness(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("businessID", id).Msg("failed to get business")

		return model.Business{}, err
	}

	payload.FromModel(business)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, payload, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business to cache")
		}
	}()

	return business, nil
}

func (s *serviceImpl) GetSession(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.edit(ctx, id, false, func(sess *Session) error {
		res = view(sess)

		return nil
	})

	return res, err
}

func (s *serviceImpl) CloseSession(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CloseSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.sessions.Close(id, actor(ctx))
}

func (s *serviceImpl) SelectFloor(ctx context.Context, id string, req dto.SelectFloorRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SelectFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.edit(ctx, id, true, func(sess *Session) error {
		changed, err := sess.selector.SelectFloor(req.FloorID)
		if err != nil {
			return err
		}

		if changed {
			log.Debug().Str("sessionID", id).Str("floorID", req.FloorID).Msg("floor selected")
		}

		res = view(sess)

		return nil
	})

	return res, err
}

func (s *serviceImpl) CreateTable(ctx context.Context, id string, req dto.CreateTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.edit(ctx, id, false, func(sess *Session) error {
		if _, ok := sess.selector.Active(); !ok {
			return ErrNoActiveFloor
		}

		table, err := sess.selector.Canvas().Create(req.ToSpec())
		if err != nil {
			return err
		}

		res.FromModel(table)

		return nil
	})

	return res, err
}

func (s *serviceImpl) MoveTable(ctx context.Context, id, key string, req dto.MoveTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MoveTable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.CoordX == nil || req.CoordY == nil {
		return res, failure.BadRequestFromString("coordinates are required")
	}

	err = s.edit(ctx, id, false, func(sess *Session) error {
		cv := sess.selector.Canvas()

		if !cv.Move(key, *req.CoordX, *req.CoordY) {
			return canvas.ErrTableNotFound
		}

		return s.findTable(cv, key, &res)
	})

	return res, err
}

func (s *serviceImpl) RenameTable(ctx context.Context, id, key string, req dto.RenameTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RenameTable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.edit(ctx, id, false, func(sess *Session) error {
		cv := sess.selector.Canvas()

		if err := cv.Rename(key, req.Name); err != nil {
			return err
		}

		return s.findTable(cv, key, &res)
	})

	return res, err
}

func (s *serviceImpl) findTable(cv *canvas.Canvas, key string, res *dto.TableResponse) error {
	for _, table := range cv.Current() {
		if table.Key() == key {
			res.FromModel(table)

			return nil
		}
	}

	return canvas.ErrTableNotFound
}

func (s *serviceImpl) RemoveTable(ctx context.Context, id, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveTable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.edit(ctx, id, false, func(sess *Session) error {
		if !sess.selector.Canvas().Remove(key) {
			return canvas.ErrTableNotFound
		}

		return nil
	})
}

func (s *serviceImpl) Discard(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Discard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.edit(ctx, id, true, func(sess *Session) error {
		sess.selector.Canvas().Discard()
		res = view(sess)

		return nil
	})

	return res, err
}

func (s *serviceImpl) Delta(ctx context.Context, id string) (res dto.DeltaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delta")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.edit(ctx, id, false, func(sess *Session) error {
		delta := sess.selector.Canvas().Delta()

		res.TableBatchUpdateInput = delta.Input()
		res.IsEmpty = delta.IsEmpty()

		return nil
	})

	return res, err
}

func (s *serviceImpl) Save(ctx context.Context, id string) (res dto.SaveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := s.sessions.Get(id, actor(ctx))
	if err != nil {
		return res, err
	}

	result, err := s.committer.Commit(ctx, sess)
	if err != nil {
		return res, err
	}

	res.Status = result.Status

	if result.Status == dto.SaveStatusSaved {
		res.Created = len(result.Delta.Creates)
		res.Updated = len(result.Delta.Updates)
		res.Deleted = len(result.Delta.Deletes)

		s.recordSync(ctx, result)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.sessions.touch(sess)
	res.Session = view(sess)

	return res, nil
}

// recordSync runs the side effects of a successful commit. Failures are
// logged and never change the result of the save.
func (s *serviceImpl) recordSync(ctx context.Context, result SaveResult) {
	s.record(ctx, model.SyncLog{
		FloorID:      result.FloorID,
		BusinessID:   result.BusinessID,
		Operation:    model.OperationSyncTables,
		CreatedCount: len(result.Delta.Creates),
		UpdatedCount: len(result.Delta.Updates),
		DeletedCount: len(result.Delta.Deletes),
	}, result.Delta.Input())

	s.publish(ctx, dto.FloorEvent{
		Type:       dto.EventTablesSynced,
		BusinessID: result.BusinessID,
		FloorID:    result.FloorID,
		Created:    len(result.Delta.Creates),
		Updated:    len(result.Delta.Updates),
		Deleted:    len(result.Delta.Deletes),
		CreatedIDs: result.CreatedIDs,
	})

	s.invalidateBusiness(ctx, result.BusinessID)
}

func (s *serviceImpl) CreateFloor(ctx context.Context, id string, req dto.CreateFloorRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var floor model.Floor

	input := dto.CreateFloorInput{Name: req.Name}

	err = s.edit(ctx, id, true, func(sess *Session) error {
		input.BusinessID = sess.selector.BusinessID()

		floor, err = s.backend.CreateFloor(ctx, input)
		if err != nil {
			log.Error().Err(err).Str("businessID", input.BusinessID).Msg("failed to create floor")

			return err
		}

		sess.selector.AddFloor(floor)
		res = view(sess)

		return nil
	})
	if err != nil {
		return res, err
	}

	s.record(ctx, model.SyncLog{
		FloorID:    floor.ID,
		BusinessID: input.BusinessID,
		Operation:  model.OperationCreateFloor,
	}, input)

	s.publish(ctx, dto.FloorEvent{
		Type:       dto.EventFloorCreated,
		BusinessID: input.BusinessID,
		FloorID:    floor.ID,
		FloorName:  floor.Name,
	})

	s.invalidateBusiness(ctx, input.BusinessID)

	return res, nil
}

func (s *serviceImpl) DeleteFloor(ctx context.Context, id, floorID string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteFloor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		businessID string
		floorName  string
		tables     int
	)

	err = s.edit(ctx, id, true, func(sess *Session) error {
		businessID = sess.selector.BusinessID()

		floor, ok := findFloor(sess.selector.ListFloors(), floorID)
		if !ok {
			return selector.ErrFloorNotFound
		}

		floorName = floor.Name
		tables = len(floor.Tables)

		if err := s.backend.DeleteFloor(ctx, floorID); err != nil {
			log.Error().Err(err).Str("floorID", floorID).Msg("failed to delete floor")

			return err
		}

		if err := sess.selector.RemoveFloor(floorID); err != nil {
			return err
		}

		res = view(sess)

		return nil
	})
	if err != nil {
		return res, err
	}

	s.record(ctx, model.SyncLog{
		FloorID:      floorID,
		BusinessID:   businessID,
		Operation:    model.OperationDeleteFloor,
		DeletedCount: tables,
	}, dto.DeleteFloorInput{ID: floorID})

	s.publish(ctx, dto.FloorEvent{
		Type:       dto.EventFloorDeleted,
		BusinessID: businessID,
		FloorID:    floorID,
		FloorName:  floorName,
		Deleted:    tables,
	})

	s.invalidateBusiness(ctx, businessID)

	if err := s.s3.DeleteFile(ctx, s.exportDirectory(businessID), floorID+exportExtension); err != nil {
		log.Warn().Err(err).Str("floorID", floorID).Msg("failed to delete layout export")
	}

	return res, nil
}

func findFloor(floors []model.Floor, id string) (model.Floor, bool) {
	for _, floor := range floors {
		if floor.ID == id {
			return floor, true
		}
	}

	return model.Floor{}, false
}

func (s *serviceImpl) Export(ctx context.Context, id string) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var doc dto.LayoutExport

	err = s.edit(ctx, id, false, func(sess *Session) error {
		floor, ok := sess.selector.Active()
		if !ok {
			return ErrNoActiveFloor
		}

		doc = dto.LayoutExport{
			BusinessID: sess.selector.BusinessID(),
			FloorID:    floor.ID,
			FloorName:  floor.Name,
			Tables:     dto.TablesFromModels(sess.selector.Canvas().Baseline()),
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	doc.ExportedAt = timezone.Now().Format(constant.DateFormat)
	doc.ExportedBy = actor(ctx)

	data, err := json.Marshal(doc)
	if err != nil {
		return res, failure.InternalError(fmt.Errorf("failed to encode layout: %w", err))
	}

	res.URL, err = s.s3.UploadFileBytes(ctx, s.exportDirectory(doc.BusinessID), doc.FloorID+exportExtension, constant.ContentTypeJSON, data)
	if err != nil {
		log.Error().Err(err).Str("floorID", doc.FloorID).Msg("failed to export layout")

		return res, failure.BadGateway(err)
	}

	return res, nil
}

func (s *serviceImpl) exportDirectory(businessID string) string {
	return path.Join(s.cfg.App.Editor.ExportDirectory, businessID)
}

func (s *serviceImpl) GetSyncLogs(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSyncLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSyncLogs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSortBy(model.FieldCreatedAt, model.FieldOperation)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSyncLog, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sync logs")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sync logs")

		return res, fmt.Errorf("failed to count sync logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sync logs")

		return res, fmt.Errorf("failed to get sync logs: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sync logs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) SweepSessions(ctx context.Context) int {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepSessions")
	defer scope.End()

	removed := s.sessions.Sweep()
	if removed > 0 {
		log.Info().Int("removed", removed).Int("open", s.sessions.Len()).Msg("idle editor sessions closed")
	}

	return removed
}

func (s *serviceImpl) record(ctx context.Context, entry model.SyncLog, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode sync log payload")
	}

	entry.ID = uuid.NewString()
	entry.Payload = string(data)
	entry.Metadata = gModel.Metadata{
		CreatedAt: timezone.Now(),
		CreatedBy: actor(ctx),
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("floorID", entry.FloorID).Str("operation", string(entry.Operation)).Msg("failed to insert sync log")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSyncLog)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, event dto.FloorEvent) {
	event.Actor = actor(ctx)
	event.OccurredAt = timezone.Now()

	err := s.publisher.Publish(ctx, s.cfg.Kafka.Topics.FloorEvents, kafka.Message{Key: event.FloorID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("floorID", event.FloorID).Msg("failed to publish floor event")
	}
}

// invalidateBusiness drops the cached business of every user.
func (s *serviceImpl) invalidateBusiness(ctx context.Context, businessID string) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheGetBusiness, businessID))
}
