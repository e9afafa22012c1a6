package floor

import (
	"net/http"

	"floorplan/infras/otel"
	"floorplan/internal/domains/floor/model"
	"floorplan/internal/domains/floor/model/dto"
	"floorplan/internal/domains/floor/service"
	"floorplan/shared/constant"
	gDto "floorplan/shared/dto"
	"floorplan/shared/validator"
	"floorplan/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Floor
	otel    otel.Otel
}

func New(service service.Floor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenSession)

		routerGroup.Route("/{id}", func(session chi.Router) {
			session.Get("/", handler.GetSession)
			session.Delete("/", handler.CloseSession)
			session.Put("/floor", handler.SelectFloor)
			session.Post("/tables", handler.CreateTable)
			session.Patch("/tables/{key}/position", handler.MoveTable)
			session.Patch("/tables/{key}/name", handler.RenameTable)
			session.Delete("/tables/{key}", handler.RemoveTable)
			session.Get("/delta", handler.Delta)
			session.Post("/save", handler.Save)
			session.Post("/discard", handler.Discard)
			session.Post("/export", handler.Export)
			session.Post("/floors", handler.CreateFloor)
			session.Delete("/floors/{floorID}", handler.DeleteFloor)
		})
	})

	router.Get("/floors/{floorID}/sync-logs", handler.GetSyncLogs)
}

// OpenSession loads a business and opens an editing session on its first floor.
// @Summary Open an editing session
// @Description Load the business floors and tables and open a session on the first floor.
// @Tags Floor
// @Accept json
// @Produce json
// @Param request body dto.OpenSessionRequest true "Business to edit"
// @Success 201 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sessions [post]
// @Security BearerAuth
func (handler *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenSession")
	defer scope.End()

	var req dto.OpenSessionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.OpenSession(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("businessID", req.BusinessID).Msg("failed to open session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session opened for business " + req.BusinessID)

	response.WithJSON(w, http.StatusCreated, session)
}

// GetSession returns the current state of a session.
// @Summary Get a session
// @Description Retrieve floors, active floor and canvas tables of a session.
// @Tags Floor
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.GetSession(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", id).Msg("failed to get session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// CloseSession drops a session and its pending edits.
// @Summary Close a session
// @Tags Floor
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CloseSession(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", id).Msg("failed to close session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session closed")

	response.WithMessage(w, http.StatusOK, "Session closed successfully")
}

// SelectFloor switches the active floor and reloads the canvas.
// @Summary Select the active floor
// @Description Switching floors discards pending edits of the previous floor.
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectFloorRequest true "Floor to select"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/floor [put]
// @Security BearerAuth
func (handler *Handler) SelectFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectFloor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.SelectFloorRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.SelectFloor(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("floorID", req.FloorID).Msg("failed to select floor")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// CreateTable places a new pending table on the canvas.
// @Summary Create a table
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.CreateTableRequest true "Table details"
// @Success 201 {object} response.Data[dto.TableResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/tables [post]
// @Security BearerAuth
func (handler *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.CreateTableRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	table, err := handler.service.CreateTable(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table created with temporary id " + table.ID)

	response.WithJSON(w, http.StatusCreated, table)
}

// MoveTable sets the position of a table.
// @Summary Move a table
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param key path string true "Table ID or temporary ID"
// @Param request body dto.MoveTableRequest true "New coordinates"
// @Success 200 {object} response.Data[dto.TableResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/tables/{key}/position [patch]
// @Security BearerAuth
func (handler *Handler) MoveTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MoveTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	key := chi.URLParam(r, constant.RequestParamTableKey)

	var req dto.MoveTableRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	table, err := handler.service.MoveTable(ctx, id, key, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table", key).Msg("failed to move table")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, table)
}

// RenameTable sets the name of a table.
// @Summary Rename a table
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param key path string true "Table ID or temporary ID"
// @Param request body dto.RenameTableRequest true "New name"
// @Success 200 {object} response.Data[dto.TableResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/tables/{key}/name [patch]
// @Security BearerAuth
func (handler *Handler) RenameTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RenameTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	key := chi.URLParam(r, constant.RequestParamTableKey)

	var req dto.RenameTableRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	table, err := handler.service.RenameTable(ctx, id, key, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table", key).Msg("failed to rename table")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, table)
}

// RemoveTable deletes a table from the canvas.
// @Summary Remove a table
// @Tags Floor
// @Produce json
// @Param id path string true "Session ID"
// @Param key path string true "Table ID or temporary ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/tables/{key} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	key := chi.URLParam(r, constant.RequestParamTableKey)

	if err := handler.service.RemoveTable(ctx, id, key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table", key).Msg("failed to remove table")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Table removed successfully")
}

// Delta returns the batch a save would submit right now.
// @Summary Preview pending changes
// @Tags Floor
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.DeltaResponse]
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/delta [get]
// @Security BearerAuth
func (handler *Handler) Delta(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delta")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	delta, err := handler.service.Delta(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", id).Msg("failed to compute delta")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, delta)
}

// Save submits pending changes of the active floor as one batch.
// @Summary Save the active floor
// @Description Creates, updates and deletes are sent in a single request. On failure the canvas keeps every pending edit.
// @Tags Floor
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SaveResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sessions/{id}/save [post]
// @Security BearerAuth
func (handler *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Save")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	result, err := handler.service.Save(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", id).Msg("failed to save floor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Floor saved with status " + result.Status)

	response.WithJSON(w, http.StatusOK, result)
}

// Discard drops pending edits of the active floor.
// @Summary Discard pending changes
// @Tags Floor
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/discard [post]
// @Security BearerAuth
func (handler *Handler) Discard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Discard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	session, err := handler.service.Discard(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", id).Msg("failed to discard changes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Export uploads the saved layout of the active floor.
// @Summary Export the active floor layout
// @Tags Floor
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.ExportResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sessions/{id}/export [post]
// @Security BearerAuth
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	export, err := handler.service.Export(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", id).Msg("failed to export layout")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, export)
}

// CreateFloor adds a floor to the business of the session.
// @Summary Create a floor
// @Tags Floor
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.CreateFloorRequest true "Floor details"
// @Success 201 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sessions/{id}/floors [post]
// @Security BearerAuth
func (handler *Handler) CreateFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFloor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.CreateFloorRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.CreateFloor(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create floor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Floor created " + req.Name)

	response.WithJSON(w, http.StatusCreated, session)
}

// DeleteFloor removes a floor and all of its tables.
// @Summary Delete a floor
// @Tags Floor
// @Produce json
// @Param id path string true "Session ID"
// @Param floorID path string true "Floor ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sessions/{id}/floors/{floorID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFloor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFloor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	floorID := chi.URLParam(r, constant.RequestParamFloorID)

	session, err := handler.service.DeleteFloor(ctx, id, floorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("floorID", floorID).Msg("failed to delete floor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Floor deleted " + floorID)

	response.WithJSON(w, http.StatusOK, session)
}

// GetSyncLogs lists the saves recorded for a floor.
// @Summary Get floor sync logs
// @Tags Floor
// @Produce json
// @Param floorID path string true "Floor ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param operation query string false "Filter by operation"
// @Success 200 {object} response.Data[dto.GetSyncLogsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floors/{floorID}/sync-logs [get]
// @Security BearerAuth
func (handler *Handler) GetSyncLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSyncLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFloorID,
				Operator: gDto.FilterOperatorEq,
				Value:    chi.URLParam(r, constant.RequestParamFloorID),
				Table:    model.TableNameSyncLog,
			},
		},
	}

	if operation := r.URL.Query().Get(constant.RequestParamOperation); operation != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOperation,
			Operator: gDto.FilterOperatorEq,
			Value:    operation,
			Table:    model.TableNameSyncLog,
		})
	}

	logs, err := handler.service.GetSyncLogs(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sync logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}
