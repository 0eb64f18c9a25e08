package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/offlinesync/internal/client/request"
	"github.com/iudanet/offlinesync/internal/models"
	"github.com/iudanet/offlinesync/pkg/api"
)

const requestIDHeader = "X-Request-ID"

// Client представляет HTTP клиент для взаимодействия с сервером CRM.
// Реализует request.Session.
type Client struct {
	httpClient   *http.Client
	logger       *slog.Logger
	baseURL      string
	deviceID     string
	token        string
	counter      int64                // последний номер запроса, известный серверу
	reachability request.Reachability // класс сети, задается приложением
	mu           sync.Mutex
}

var _ request.Session = (*Client)(nil)

// NewClient создает новый API клиент; пустой deviceID заменяется случайным
func NewClient(baseURL, deviceID string, logger *slog.Logger) *Client {
	if deviceID == "" {
		deviceID = uuid.NewString()
	}
	return &Client{
		baseURL:      baseURL,
		deviceID:     deviceID,
		logger:       logger,
		reachability: request.ReachabilityWiFi,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken задает bearer-токен для запросов к серверу
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
}

// SetReachability задает класс доступной сети
func (c *Client) SetReachability(r request.Reachability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reachability = r
}

// ReachabilityClass returns the network class set by the application
func (c *Client) ReachabilityClass() request.Reachability {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reachability
}

// CurrentServerSequenceCounter returns the last request number the server acknowledged
func (c *Client) CurrentServerSequenceCounter() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counter
}

// DeviceID returns the id the client reports to the server
func (c *Client) DeviceID() string {
	return c.deviceID
}

// Status получает состояние сервера и обновляет счетчик запросов
func (c *Client) Status(ctx context.Context) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/status", nil, &resp); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	c.observe(resp.SequenceCounter)
	return &resp, nil
}

// ExecuteChangeRequest отправляет изменения на сервер и вызывает callback ровно один раз.
// Ошибки сети и недоступность сервера возвращаются как models.ErrOffline,
// отказ сервера - как *models.RequestError.
func (c *Client) ExecuteChangeRequest(ctx context.Context, cs *request.ChangeSet, callback func(*request.Result, error)) {
	var resp api.ChangeResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/requests", c.changeRequest(cs), &resp)
	if err != nil {
		c.logger.Debug("Change request failed", "request_nr", cs.RequestNr, "error", err)
		callback(nil, err)
		return
	}

	c.observe(resp.SequenceCounter)
	c.observe(resp.ServerRequestNr)

	callback(&request.Result{
		RecordIDs:       resp.RecordIDs,
		ServerRequestNr: resp.ServerRequestNr,
	}, nil)
}

func (c *Client) observe(counter int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter > c.counter {
		c.counter = counter
	}
}

func (c *Client) changeRequest(cs *request.ChangeSet) api.ChangeRequest {
	req := api.ChangeRequest{
		RequestNr:       cs.RequestNr,
		ServerRequestNr: cs.ServerRequestNr,
		RequestType:     string(cs.Kind.RequestType),
		ProcessType:     string(cs.Kind.ProcessType),
		AppVersion:      cs.AppVersion,
		DeviceID:        c.deviceID,
		Parameters:      cs.Parameters,
	}

	for _, rec := range cs.Records {
		wire := api.Record{
			InfoArea: rec.InfoArea,
			RecordID: rec.RecordID,
			Mode:     string(rec.Mode),
			Options:  rec.Options,
		}
		for _, f := range rec.Fields {
			wire.Fields = append(wire.Fields, api.FieldChange{FieldID: f.FieldID, OldValue: f.OldValue, NewValue: f.NewValue})
		}
		for _, l := range rec.Links {
			wire.Links = append(wire.Links, api.LinkChange{InfoArea: l.InfoArea, RecordID: l.RecordID, LinkID: l.LinkID})
		}
		req.Records = append(req.Records, wire)
	}

	if doc := cs.Document; doc != nil {
		req.Document = &api.Document{
			InfoArea: doc.InfoArea,
			RecordID: doc.RecordID,
			FileName: doc.FileName,
			MimeType: doc.MimeType,
			FieldID:  doc.FieldID,
			Data:     doc.Data,
		}
	}

	return req
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// сервер не достигнут: запрос остается в очереди
		return fmt.Errorf("%w: %w", models.ErrOffline, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", models.ErrOffline, err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// responseError переводит ответ с ошибкой в ошибку запроса
func responseError(status int, body []byte) error {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: server unavailable (%d)", models.ErrOffline, status)
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || (errResp.Error == "" && errResp.Message == "") {
		return &models.RequestError{
			Message: fmt.Sprintf("request failed with status %d: %s", status, string(body)),
			Code:    status,
		}
	}

	message := errResp.Message
	if message == "" {
		message = errResp.Error
	}
	code := errResp.Code
	if code == 0 {
		code = status
	}

	return &models.RequestError{
		Message:  fmt.Sprintf("server error (%d): %s", status, message),
		Stack:    errResp.Stack,
		Code:     code,
		BaseCode: errResp.BaseCode,
	}
}
