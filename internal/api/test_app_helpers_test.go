package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/cradle/internal/db"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2024, time.March, 31, 9, 30, 0, 0, time.UTC)

type testApp struct {
	app     *fiber.App
	handler *Handler
	logs    *bytes.Buffer
}

func newTestApp(t *testing.T, secretKey string) *testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cradle-api-test.db")
	database, err := db.OpenSQLite(databasePath, zerolog.Nop())
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	logs := &bytes.Buffer{}
	handler, err := NewHandler(database, secretKey, time.UTC, zerolog.New(logs))
	require.NoError(t, err)
	handler.now = func() time.Time { return testNow }

	return &testApp{app: NewApp(handler), handler: handler, logs: logs}
}

func (ta *testApp) do(t *testing.T, method string, target string, body string, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := ta.app.Test(request, -1)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func (ta *testApp) createEntry(t *testing.T, body string) periodEntryPayload {
	t.Helper()

	response := ta.do(t, http.MethodPost, "/api/periods", body, nil)
	require.Equal(t, http.StatusCreated, response.StatusCode)
	return decodeJSON[periodEntryPayload](t, response.Body)
}

func (ta *testApp) seedSampleHistory(t *testing.T) {
	t.Helper()

	ta.createEntry(t, `{"start_date":"2024-01-15","end_date":"2024-01-20","flow":"medium","symptoms":["Cramps","Bloating"]}`)
	ta.createEntry(t, `{"start_date":"2024-02-12","end_date":"2024-02-17","flow":"heavy","symptoms":["Cramps","Mood swings","Fatigue"]}`)
	ta.createEntry(t, `{"start_date":"2024-03-10","end_date":"2024-03-15","flow":"light","symptoms":["Bloating","Headache"]}`)
}

type periodEntryPayload struct {
	ID        string   `json:"id"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Flow      string   `json:"flow"`
	Symptoms  []string `json:"symptoms"`
	Notes     string   `json:"notes"`
}

func decodeJSON[T any](t *testing.T, body io.Reader) T {
	t.Helper()

	var payload T
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload), "body: %s", raw)
	return payload
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()
	return decodeJSON[map[string]string](t, body)["error"]
}
