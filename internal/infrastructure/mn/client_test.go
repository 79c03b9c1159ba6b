package mn

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("rejects missing base URL", func(t *testing.T) {
		_, err := NewClient(&Config{})
		assert.ErrorIs(t, err, ErrConfigMissingBaseURL)
	})

	t.Run("rejects token URL without credentials", func(t *testing.T) {
		_, err := NewClient(&Config{BaseURL: "https://mn.example.com", TokenURL: "https://auth.example.com/token"})
		assert.ErrorIs(t, err, ErrConfigMissingClient)
	})
}

func TestClient_CreateEmployer(t *testing.T) {
	t.Run("posts the employer and returns the assigned ID", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/employers", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Acme Stores", body["employerName"])
			assert.Equal(t, "A national retailer", body["employerBio"])
			assert.Equal(t, float64(7), body["sectorId"])
			assert.Equal(t, float64(2), body["partnerId"])
			assert.NotContains(t, body, "id")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 501, "employerName": "Acme Stores", "employerBio": "A national retailer", "sectorId": 7, "partnerId": 2}`))
		}))

		created, err := client.CreateEmployer(context.Background(), integration.MNEmployer{
			EmployerName: "Acme Stores",
			EmployerBio:  "A national retailer",
			SectorID:     7,
			PartnerID:    2,
		})
		require.NoError(t, err)
		require.NotNil(t, created.ID)
		assert.Equal(t, int64(501), *created.ID)
		assert.Equal(t, "Acme Stores", created.EmployerName)
	})

	t.Run("surfaces the error body on failure", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": "sectorId is required"}`))
		}))

		_, err := client.CreateEmployer(context.Background(), integration.MNEmployer{EmployerName: "Acme Stores"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 400")
		assert.Contains(t, err.Error(), "sectorId is required")
	})

	t.Run("an unreachable server reports ErrUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		client, err := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second})
		require.NoError(t, err)
		server.Close()

		_, err = client.CreateEmployer(context.Background(), integration.MNEmployer{EmployerName: "Acme Stores"})
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_UpdateEmployer(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/employers", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(501), body["id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 501, "employerName": "Acme Stores Ltd", "sectorId": 7, "partnerId": 2}`))
	}))

	id := int64(501)
	updated, err := client.UpdateEmployer(context.Background(), integration.MNEmployer{
		ID:           &id,
		EmployerName: "Acme Stores Ltd",
		SectorID:     7,
		PartnerID:    2,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ID)
	assert.Equal(t, int64(501), *updated.ID)
	assert.Equal(t, "Acme Stores Ltd", updated.EmployerName)
}

func TestClient_CreateJob(t *testing.T) {
	t.Run("posts the job with translated reference IDs", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/jobs-prospects", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.NotContains(t, body, "id")
			assert.Equal(t, float64(501), body["employerId"])
			assert.Equal(t, "Warehouse Operative", body["jobTitle"])
			assert.Equal(t, float64(11), body["jobSourceOneId"])
			assert.Equal(t, float64(4), body["hoursId"])
			assert.Equal(t, "21000", body["salaryFrom"])
			assert.Equal(t, []any{float64(21), float64(22)}, body["offenceExclusions"])
			assert.Equal(t, "CV,DISCLOSURE_LETTER", body["supportingDocumentation"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 9001, "employerId": 501, "jobTitle": "Warehouse Operative", "salaryFrom": "21000", "supportingDocumentation": "CV,DISCLOSURE_LETTER"}`))
		}))

		created, err := client.CreateJob(context.Background(), integration.MNJob{
			EmployerID:              501,
			JobTitle:                "Warehouse Operative",
			JobSourceOneID:          11,
			HoursPerWeekID:          4,
			SalaryFrom:              decimal.NewFromInt(21000),
			OffenceExclusionIDs:     []int64{21, 22},
			SupportingDocumentation: []string{"CV", "DISCLOSURE_LETTER"},
		})
		require.NoError(t, err)
		require.NotNil(t, created.ID)
		assert.Equal(t, int64(9001), *created.ID)
		assert.Equal(t, []string{"CV", "DISCLOSURE_LETTER"}, created.SupportingDocumentation)
	})

	t.Run("serializes absent offence exclusions as an empty array", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"offenceExclusions":[]`)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 9002}`))
		}))

		created, err := client.CreateJob(context.Background(), integration.MNJob{
			EmployerID: 501,
			JobTitle:   "Kitchen Porter",
		})
		require.NoError(t, err)
		require.NotNil(t, created.ID)
		assert.Equal(t, int64(9002), *created.ID)
	})

	t.Run("truncates oversized error bodies", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(strings.Repeat("x", 2000)))
		}))

		_, err := client.CreateJob(context.Background(), integration.MNJob{JobTitle: "Warehouse Operative"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), strings.Repeat("x", 512)+"...")
		assert.NotContains(t, err.Error(), strings.Repeat("x", 513))
	})
}

func TestClient_UpdateJob(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/jobs-prospects", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(9001), body["id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 9001, "jobTitle": "Senior Warehouse Operative"}`))
	}))

	id := int64(9001)
	updated, err := client.UpdateJob(context.Background(), integration.MNJob{
		ID:         &id,
		EmployerID: 501,
		JobTitle:   "Senior Warehouse Operative",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ID)
	assert.Equal(t, int64(9001), *updated.ID)
	assert.Equal(t, "Senior Warehouse Operative", updated.JobTitle)
}

func TestClient_BearerToken(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "test-token", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	t.Cleanup(tokenServer.Close)

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 501}`))
	}))
	t.Cleanup(apiServer.Close)

	client, err := NewClient(&Config{
		BaseURL:      apiServer.URL,
		TokenURL:     tokenServer.URL,
		ClientID:     "bridge",
		ClientSecret: "secret",
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)

	created, err := client.CreateEmployer(context.Background(), integration.MNEmployer{EmployerName: "Acme Stores"})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(501), *created.ID)
}
