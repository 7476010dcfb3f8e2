package client

import (
	"context"
	"fmt"

	"datakeeper/internal/app/client/config"
	"datakeeper/internal/domain/record"

	"golang.org/x/exp/slog"
)

// App - клиентское приложение поверх JSON API сервера
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{
		config:     cfg,
		log:        log.With("component", "client"),
		httpClient: NewHTTPClient(cfg, log),
	}
}

// CheckConnection проверяет доступность сервера
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) ListRecords(ctx context.Context) ([]record.Record, error) {
	records, err := a.httpClient.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка записей: %w", err)
	}
	return records, nil
}

func (a *App) GetRecord(ctx context.Context, id int64) (record.Record, error) {
	rec, err := a.httpClient.GetRecord(ctx, id)
	if err != nil {
		return record.Record{}, fmt.Errorf("ошибка получения записи %d: %w", id, err)
	}
	return rec, nil
}

// CreateRecord проверяет имя локально и создает запись на сервере
func (a *App) CreateRecord(ctx context.Context, name string) (record.Record, error) {
	if err := record.New(name).Validate(); err != nil {
		return record.Record{}, err
	}

	rec, err := a.httpClient.CreateRecord(ctx, name)
	if err != nil {
		return record.Record{}, fmt.Errorf("ошибка создания записи: %w", err)
	}

	a.log.Debug("Запись создана", "record_id", rec.IDValue())
	return rec, nil
}

// UpdateRecord проверяет имя локально и обновляет запись на сервере
func (a *App) UpdateRecord(ctx context.Context, id int64, name string) (record.Record, error) {
	if err := record.New(name).Validate(); err != nil {
		return record.Record{}, err
	}

	rec, err := a.httpClient.UpdateRecord(ctx, id, name)
	if err != nil {
		return record.Record{}, fmt.Errorf("ошибка обновления записи %d: %w", id, err)
	}
	return rec, nil
}

func (a *App) DeleteRecord(ctx context.Context, id int64) error {
	if err := a.httpClient.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("ошибка удаления записи %d: %w", id, err)
	}

	a.log.Debug("Запись удалена", "record_id", id)
	return nil
}
