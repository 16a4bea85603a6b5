package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"notes-client/internal/converter"
	"notes-client/internal/model"
	"notes-client/internal/repository"

	"github.com/google/uuid"
)

// StatusError возвращается, когда удаленное хранилище ответило статусом
// вне диапазона 200-299
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Options параметры REST репозитория
type Options struct {
	BaseURL        string        // Базовый адрес REST API
	Collection     string        // Имя ресурса коллекции заметок
	APIKey         string        // API ключ (заголовок apikey)
	Secret         string        // Секрет (заголовок Authorization: Bearer)
	RequestTimeout time.Duration // Таймаут одного запроса
	RateLimitRPS   int           // Лимит исходящих запросов в секунду
	RateLimitBurst int           // Разрешенный всплеск запросов
}

var _ repository.NoteRepository = (*repo)(nil)

type repo struct {
	client    *http.Client
	endpoint  string // <base>/<collection>
	nowFunc   func() time.Time
	newIDFunc func() string
}

// NewRepository создает репозиторий заметок поверх REST коллекции
// в стиле PostgREST (фильтр id=eq.<id>, заголовки apikey + Bearer)
func NewRepository(opts Options) repository.NoteRepository {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &repo{
		client: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(opts.APIKey, opts.Secret, opts.RateLimitRPS, opts.RateLimitBurst),
		},
		endpoint:  strings.TrimRight(opts.BaseURL, "/") + "/" + opts.Collection,
		nowFunc:   time.Now,
		newIDFunc: func() string { return uuid.New().String() },
	}
}

// List возвращает список всех заметок коллекции
func (r *repo) List(ctx context.Context) ([]model.Note, error) {
	body, err := r.do(ctx, http.MethodGet, "select=*", nil)
	if err != nil {
		return nil, err
	}

	var records []converter.NoteRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	// Пустая коллекция — валидный результат, не ошибка
	return converter.RecordsToModels(records), nil
}

// Create создает новую заметку: генерирует UUID, проставляет текущую
// временную метку и отправляет полную запись
func (r *repo) Create(ctx context.Context, title, content string) (model.Note, error) {
	note := model.Note{
		ID:        r.newIDFunc(),
		Title:     title,
		Content:   content,
		UpdatedAt: r.nowFunc().UTC(),
	}

	payload, err := json.Marshal(converter.ModelToRecord(note))
	if err != nil {
		return model.Note{}, fmt.Errorf("encode note: %w", err)
	}

	if _, err := r.do(ctx, http.MethodPost, "", payload); err != nil {
		return model.Note{}, err
	}

	return note, nil
}

// Update обновляет title, content и временную метку записи с указанным ID
func (r *repo) Update(ctx context.Context, id, title, content string) (model.Note, error) {
	note := model.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		UpdatedAt: r.nowFunc().UTC(),
	}

	// Частичное обновление: id в фильтре, не в теле
	record := converter.ModelToRecord(note)
	record.ID = ""
	payload, err := json.Marshal(record)
	if err != nil {
		return model.Note{}, fmt.Errorf("encode note: %w", err)
	}

	if _, err := r.do(ctx, http.MethodPatch, "id=eq."+url.QueryEscape(id), payload); err != nil {
		return model.Note{}, err
	}

	return note, nil
}

// Delete удаляет запись с указанным ID
func (r *repo) Delete(ctx context.Context, id string) error {
	_, err := r.do(ctx, http.MethodDelete, "id=eq."+url.QueryEscape(id), nil)
	return err
}

// do выполняет один HTTP запрос к коллекции и возвращает тело ответа.
// Статус вне диапазона 200-299 превращается в StatusError.
func (r *repo) do(ctx context.Context, method, rawQuery string, payload []byte) ([]byte, error) {
	target := r.endpoint
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		// Тело ответа на мутацию нам не нужно
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, r.endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return body, nil
}
