package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePeriodStoresNormalizedEntry(t *testing.T) {
	ta := newTestApp(t, "")

	created := ta.createEntry(t, `{"start_date":"2024-03-10","end_date":"2024-03-15","flow":"Heavy","symptoms":["Cramps","cramps"," Fatigue "],"notes":"  long day "}`)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-03-10", created.StartDate)
	assert.Equal(t, "2024-03-15", created.EndDate)
	assert.Equal(t, "heavy", created.Flow)
	assert.Equal(t, []string{"Cramps", "Fatigue"}, created.Symptoms)
	assert.Equal(t, "long day", created.Notes)

	response := ta.do(t, http.MethodGet, "/api/periods/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	loaded := decodeJSON[periodEntryPayload](t, response.Body)
	assert.Equal(t, created, loaded)
}

func TestCreatePeriodAcceptsFormInputAndOpenEntries(t *testing.T) {
	ta := newTestApp(t, "")

	request := httptest.NewRequest(http.MethodPost, "/api/periods", strings.NewReader("start_date=2024-03-10&flow=light"))
	request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	response, err := ta.app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusCreated, response.StatusCode)
	created := decodeJSON[periodEntryPayload](t, response.Body)
	assert.Equal(t, "", created.EndDate)
	assert.Equal(t, "light", created.Flow)
}

func TestCreatePeriodRejectsInvalidInput(t *testing.T) {
	ta := newTestApp(t, "")

	cases := []struct {
		body string
		want string
	}{
		{body: `{"end_date":"2024-03-15"}`, want: "start date is required"},
		{body: `{"start_date":"03/10/2024"}`, want: "invalid date format"},
		{body: `{"start_date":"2024-03-10","end_date":"2024-03-01"}`, want: "end date is before start date"},
		{body: `{"start_date":"2024-03-10","flow":"torrential"}`, want: "invalid period flow"},
		{body: `{"start_date":`, want: "invalid input"},
	}
	for _, testCase := range cases {
		response := ta.do(t, http.MethodPost, "/api/periods", testCase.body, nil)
		require.Equal(t, http.StatusBadRequest, response.StatusCode, testCase.body)
		assert.Contains(t, readAPIError(t, response.Body), testCase.want, testCase.body)
	}

	list := ta.do(t, http.MethodGet, "/api/periods", "", nil)
	payload := decodeJSON[struct {
		Entries []periodEntryPayload `json:"entries"`
	}](t, list.Body)
	assert.Empty(t, payload.Entries)
}

func TestListPeriodsNewestFirst(t *testing.T) {
	ta := newTestApp(t, "")
	ta.seedSampleHistory(t)

	response := ta.do(t, http.MethodGet, "/api/periods", "", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	payload := decodeJSON[struct {
		Entries []periodEntryPayload `json:"entries"`
	}](t, response.Body)
	require.Len(t, payload.Entries, 3)
	assert.Equal(t, "2024-03-10", payload.Entries[0].StartDate)
	assert.Equal(t, "2024-02-12", payload.Entries[1].StartDate)
	assert.Equal(t, "2024-01-15", payload.Entries[2].StartDate)
}

func TestDeletePeriod(t *testing.T) {
	ta := newTestApp(t, "")
	created := ta.createEntry(t, `{"start_date":"2024-03-10"}`)

	response := ta.do(t, http.MethodDelete, "/api/periods/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNoContent, response.StatusCode)

	response = ta.do(t, http.MethodGet, "/api/periods/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Equal(t, "period entry not found", readAPIError(t, response.Body))

	response = ta.do(t, http.MethodDelete, "/api/periods/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestGetSymptomsReturnsCatalog(t *testing.T) {
	ta := newTestApp(t, "")

	response := ta.do(t, http.MethodGet, "/api/symptoms", "", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	payload := decodeJSON[struct {
		Symptoms []struct {
			Name string `json:"name"`
			Icon string `json:"icon"`
		} `json:"symptoms"`
	}](t, response.Body)
	require.Len(t, payload.Symptoms, 12)
	assert.Equal(t, "Cramps", payload.Symptoms[0].Name)
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	ta := newTestApp(t, testSecretKey)

	response := ta.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "ok", decodeJSON[map[string]string](t, response.Body)["status"])

	response = ta.do(t, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Equal(t, "not found", readAPIError(t, response.Body))
}
