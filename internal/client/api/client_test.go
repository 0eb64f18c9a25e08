package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/offlinesync/internal/client/request"
	"github.com/iudanet/offlinesync/internal/models"
	"github.com/iudanet/offlinesync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// execute вызывает ExecuteChangeRequest и возвращает результат callback
func execute(t *testing.T, client *Client, cs *request.ChangeSet) (*request.Result, error) {
	t.Helper()

	calls := 0
	var (
		result *request.Result
		err    error
	)
	client.ExecuteChangeRequest(context.Background(), cs, func(r *request.Result, e error) {
		calls++
		result, err = r, e
	})
	require.Equal(t, 1, calls, "callback must be called exactly once")
	return result, err
}

func companyChangeSet() *request.ChangeSet {
	return &request.ChangeSet{
		RequestNr:       7,
		ServerRequestNr: 42,
		AppVersion:      "2.4.0",
		Kind:            models.Kind{RequestType: models.RequestTypeRecords, ProcessType: models.ProcessEditRecord},
		Records: []*models.Record{{
			InfoArea: "FI",
			RecordID: "new000000070001",
			Mode:     models.RecordModeNew,
			Fields:   []models.FieldChange{{FieldID: 2, NewValue: "Acme"}},
			Links:    []models.LinkChange{{InfoArea: "KP", RecordID: "KP1", LinkID: 1}},
		}},
	}
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL, "", testLogger())

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotEmpty(t, client.DeviceID())
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.Equal(t, request.ReachabilityWiFi, client.ReachabilityClass())
	assert.Equal(t, int64(0), client.CurrentServerSequenceCounter())

	client.SetReachability(request.ReachabilityCellular)
	assert.Equal(t, request.ReachabilityCellular, client.ReachabilityClass())
}

// TestClient_ExecuteChangeRequest проверяет успешную отправку изменений
func TestClient_ExecuteChangeRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/requests", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))

		var req api.ChangeRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, int64(7), req.RequestNr)
		assert.Equal(t, int64(42), req.ServerRequestNr)
		assert.Equal(t, "device-1", req.DeviceID)
		assert.Equal(t, "Records", req.RequestType)
		assert.Equal(t, "EditRecord", req.ProcessType)
		require.Len(t, req.Records, 1)
		assert.Equal(t, "new000000070001", req.Records[0].RecordID)
		assert.Equal(t, "New", req.Records[0].Mode)
		assert.Equal(t, "Acme", req.Records[0].Fields[0].NewValue)
		assert.Equal(t, "KP1", req.Records[0].Links[0].RecordID)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.ChangeResponse{
			RecordIDs:       map[string]string{"new000000070001": "FI12345"},
			ServerRequestNr: 42,
			SequenceCounter: 42,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1", testLogger())
	client.SetToken("test_token")

	result, err := execute(t, client, companyChangeSet())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "FI12345", result.RecordIDs["new000000070001"])
	assert.Equal(t, int64(42), result.ServerRequestNr)
	assert.Equal(t, int64(42), client.CurrentServerSequenceCounter())
}

// TestClient_ExecuteChangeRequest_Document проверяет отправку документа
func TestClient_ExecuteChangeRequest_Document(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.ChangeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		require.NotNil(t, req.Document)
		assert.Equal(t, "report.pdf", req.Document.FileName)
		assert.Equal(t, []byte("%PDF-1.7"), req.Document.Data)
		assert.Empty(t, req.Records)

		_ = json.NewEncoder(w).Encode(api.ChangeResponse{ServerRequestNr: 3})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1", testLogger())
	cs := &request.ChangeSet{
		RequestNr: 3,
		Kind:      models.Kind{RequestType: models.RequestTypeDocumentUpload, ProcessType: models.ProcessDocumentUpload},
		Document:  &models.DocumentUpload{FileName: "report.pdf", MimeType: "application/pdf", Data: []byte("%PDF-1.7")},
	}

	_, err := execute(t, client, cs)
	require.NoError(t, err)
	assert.Equal(t, int64(3), client.CurrentServerSequenceCounter())
}

// TestClient_ExecuteChangeRequest_Rejected проверяет преобразование отказа сервера
func TestClient_ExecuteChangeRequest_Rejected(t *testing.T) {
	tests := []struct {
		responseBody    interface{}
		name            string
		expectedMessage string
		statusCode      int
		expectedCode    int
		expectedBase    int
	}{
		{
			name:       "Conflict with server code",
			statusCode: http.StatusConflict,
			responseBody: api.ErrorResponse{
				Error:    "conflict",
				Message:  "record changed on server",
				Code:     models.ErrorCodeConflict,
				BaseCode: 12,
				Stack:    "at Save()",
			},
			expectedMessage: "server error (409): record changed on server",
			expectedCode:    models.ErrorCodeConflict,
			expectedBase:    12,
		},
		{
			name:            "Forbidden without code",
			statusCode:      http.StatusForbidden,
			responseBody:    api.ErrorResponse{Error: "access denied"},
			expectedMessage: "server error (403): access denied",
			expectedCode:    http.StatusForbidden,
		},
		{
			name:            "Internal server error",
			statusCode:      http.StatusInternalServerError,
			responseBody:    "Internal Server Error",
			expectedMessage: "request failed with status 500",
			expectedCode:    http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, "device-1", testLogger())
			result, err := execute(t, client, companyChangeSet())

			require.Error(t, err)
			assert.Nil(t, result)
			assert.False(t, models.IsOffline(err))

			var reqErr *models.RequestError
			require.True(t, errors.As(err, &reqErr))
			assert.Contains(t, reqErr.Message, tt.expectedMessage)
			assert.Equal(t, tt.expectedCode, reqErr.Code)
			assert.Equal(t, tt.expectedBase, reqErr.BaseCode)
		})
	}
}

// TestClient_ExecuteChangeRequest_Offline проверяет классификацию ошибок связи
func TestClient_ExecuteChangeRequest_Offline(t *testing.T) {
	t.Run("Server unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(server.URL, "device-1", testLogger())
		_, err := execute(t, client, companyChangeSet())

		require.Error(t, err)
		assert.True(t, models.IsOffline(err))
	})

	t.Run("Connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewClient(url, "device-1", testLogger())
		_, err := execute(t, client, companyChangeSet())

		require.Error(t, err)
		assert.True(t, models.IsOffline(err))
	})
}

// TestClient_ContextCancellation проверяет отмену запроса через контекст
func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Имитируем долгий запрос
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1", testLogger())

	// Создаем контекст с таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	resp, err := client.Status(ctx)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "context deadline exceeded")
	assert.True(t, models.IsOffline(err))
}

// TestClient_InvalidJSON проверяет обработку невалидного JSON в ответе
func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("invalid json {{{"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1", testLogger())
	result, err := execute(t, client, companyChangeSet())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to decode response")
	assert.False(t, models.IsOffline(err))
}

// TestClient_Status проверяет получение счетчика сервера
func TestClient_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/v1/status", r.URL.Path)

		_ = json.NewEncoder(w).Encode(api.StatusResponse{ServerVersion: "1.0", SequenceCounter: 100})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1", testLogger())
	resp, err := client.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0", resp.ServerVersion)
	assert.Equal(t, int64(100), client.CurrentServerSequenceCounter())

	// счетчик не уменьшается
	client.observe(50)
	assert.Equal(t, int64(100), client.CurrentServerSequenceCounter())
}

// TestClient_HTTPClientRedirect проверяет обработку редиректов
func TestClient_HTTPClientRedirect(t *testing.T) {
	redirectCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if redirectCount < 3 {
			redirectCount++
			w.Header().Set("Location", "/redirected")
			w.WriteHeader(http.StatusFound)
			return
		}

		assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.StatusResponse{SequenceCounter: 5})
	}))
	defer server.Close()

	client := NewClient(server.URL, "device-1", testLogger())
	client.SetToken("test_token")

	resp, err := client.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.SequenceCounter)
	assert.Equal(t, 3, redirectCount) // Проверяем что было 3 редиректа
}
