package record

import (
	"context"
	"net/http"

	"datakeeper/internal/app/server/api/http/apierr"
	"datakeeper/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "record_api"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	schemas := api.OpenAPI().Components.Schemas
	huma.Register(api, h.findOp(schemas), h.find)
	huma.Register(api, h.createOp(schemas), h.create)
	huma.Register(api, h.updateOp(schemas), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	records, err := h.service.FindAll(ctx)
	if err != nil {
		_, herr := h.classify(err)
		return nil, herr
	}

	return &listOutput{Body: records}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*recordOutput, error) {
	rec, found, err := h.service.FindByID(ctx, input.ID)
	if err != nil {
		return h.fail(err)
	}
	if !found {
		return h.fail(record.ErrNotFound)
	}

	return &recordOutput{Status: http.StatusOK, Body: rec}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*recordOutput, error) {
	rec := record.New(input.Body.Name)

	saved, err := h.service.Save(ctx, rec)
	if err != nil {
		return h.fail(err)
	}

	return &recordOutput{Status: http.StatusCreated, Body: saved}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*recordOutput, error) {
	rec := input.Body.toRecord()
	if !rec.HasID() || rec.IDValue() != input.ID {
		h.log.Debug("update rejected: id mismatch", "path_id", input.ID)
		return h.fail(record.ErrIDMismatch)
	}

	_, found, err := h.service.FindByID(ctx, input.ID)
	if err != nil {
		return h.fail(err)
	}
	if !found {
		return h.fail(record.ErrNotFound)
	}

	saved, err := h.service.Save(ctx, rec)
	if err != nil {
		return h.fail(err)
	}

	return &recordOutput{Status: http.StatusOK, Body: saved}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	_, found, err := h.service.FindByID(ctx, input.ID)
	if err != nil {
		return h.failDelete(err)
	}
	if !found {
		return h.failDelete(record.ErrNotFound)
	}

	if err := h.service.DeleteByID(ctx, input.ID); err != nil {
		return h.failDelete(err)
	}

	return &deleteOutput{Status: http.StatusNoContent}, nil
}

// classify is the single exit for API failures: a bare status, or an error
// for huma to render.
func (h *Handler) classify(err error) (int, error) {
	return apierr.Classify(err, h.log)
}

func (h *Handler) fail(err error) (*recordOutput, error) {
	status, herr := h.classify(err)
	if herr != nil {
		return nil, herr
	}
	return &recordOutput{Status: status, Body: noBody}, nil
}

func (h *Handler) failDelete(err error) (*deleteOutput, error) {
	status, herr := h.classify(err)
	if herr != nil {
		return nil, herr
	}
	return &deleteOutput{Status: status}, nil
}
