package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"datakeeper/internal/app/client/config"
	"datakeeper/internal/domain/record"

	"golang.org/x/exp/slog"
)

const recordsPath = "/api/test-data"

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "Datakeeper-Client/1.0",
	}
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListRecords(ctx context.Context) ([]record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, recordsPath, nil)
	if err != nil {
		return nil, err
	}

	var records []record.Record
	if err := h.parseResponse(resp, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (h *httpClient) GetRecord(ctx context.Context, id int64) (record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, recordPath(id), nil)
	if err != nil {
		return record.Record{}, err
	}

	var rec record.Record
	if err := h.parseResponse(resp, &rec); err != nil {
		return record.Record{}, err
	}
	return rec, nil
}

func (h *httpClient) CreateRecord(ctx context.Context, name string) (record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, recordsPath, record.New(name))
	if err != nil {
		return record.Record{}, err
	}

	var rec record.Record
	if err := h.parseResponse(resp, &rec); err != nil {
		return record.Record{}, err
	}
	return rec, nil
}

func (h *httpClient) UpdateRecord(ctx context.Context, id int64, name string) (record.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, recordPath(id), record.New(name).WithID(id))
	if err != nil {
		return record.Record{}, err
	}

	var rec record.Record
	if err := h.parseResponse(resp, &rec); err != nil {
		return record.Record{}, err
	}
	return rec, nil
}

func (h *httpClient) DeleteRecord(ctx context.Context, id int64) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, recordPath(id), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func recordPath(id int64) string {
	return recordsPath + "/" + strconv.FormatInt(id, 10)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		return responseError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// responseError переводит статус и тело ответа в ошибку клиента
func responseError(status int, body []byte) error {
	empty := len(bytes.TrimSpace(body)) == 0

	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusBadRequest && empty:
		return ErrIDMismatch
	}

	apiErr := &APIError{Status: status}
	var fields map[string]string
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}
