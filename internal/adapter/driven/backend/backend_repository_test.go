package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

func TestSearchGazettes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/gazettes", r.URL.Path)
		assert.Equal(t, "5208707", r.URL.Query().Get("territory_ids"))
		assert.Equal(t, "robótica educacional tecnologia ensino", r.URL.Query().Get("querystring"))
		assert.Equal(t, "2023-01-01", r.URL.Query().Get("published_since"))
		assert.Equal(t, "50", r.URL.Query().Get("size"))

		json.NewEncoder(w).Encode(entity.SearchResponse{
			TotalGazettes: 2,
			Gazettes: []entity.Gazette{
				{TerritoryID: "5208707", Date: "2023-01-10"},
				{TerritoryID: "5208707", Date: "2023-02-05"},
			},
		})
	}))
	defer server.Close()

	repo := NewBackendRepository(server.URL, nil)
	response, err := repo.SearchGazettes(context.Background(), entity.SearchFilters{
		TerritoryID: "5208707",
		Querystring: "robótica educacional tecnologia ensino",
		Since:       "2023-01-01",
		Size:        50,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, response.TotalGazettes)
	require.Len(t, response.Gazettes, 2)
	assert.Equal(t, "2023-01-10", response.Gazettes[0].Date)
}

func TestGetRankingUsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/ranking", r.URL.Path)
		json.NewEncoder(w).Encode(entity.RankingResponse{
			Rankings: entity.Rankings{TotalMunicipalities: 246},
		})
	}))
	defer server.Close()

	repo := NewBackendRepository(server.URL, NewResultCache(0))

	first, err := repo.GetRanking(context.Background())
	require.NoError(t, err)
	second, err := repo.GetRanking(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 246, first.Rankings.TotalMunicipalities)
	assert.Same(t, first, second)
}

func TestSetBaseURLRedirectsAndDropsCache(t *testing.T) {
	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entity.RankingResponse{
			Rankings: entity.Rankings{TotalMunicipalities: 1},
		})
	}))
	defer first.Close()

	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(entity.RankingResponse{
			Rankings: entity.Rankings{TotalMunicipalities: 2},
		})
	}))
	defer second.Close()

	repo := NewBackendRepository(first.URL, NewResultCache(0))

	cached, err := repo.GetRanking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Rankings.TotalMunicipalities)

	// A troca de backend descarta o que foi cacheado contra o anterior.
	repo.SetBaseURL(second.URL + "/")

	fresh, err := repo.GetRanking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Rankings.TotalMunicipalities)
}

func TestGetStateRankingPostsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/ranking/state", r.URL.Path)

		var req entity.StateRankingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "52", req.StateCode)
		assert.Contains(t, req.TerritoryIDs, "5208707")

		json.NewEncoder(w).Encode(entity.RankingResponse{})
	}))
	defer server.Close()

	repo := NewBackendRepository(server.URL, nil)
	_, err := repo.GetStateRanking(context.Background(), entity.StateRankingRequest{
		StateCode:    "52",
		TerritoryIDs: []string{"5208707", "5201405"},
		StartDate:    "2023-01-01",
		EndDate:      "2023-12-31",
		Keywords:     []string{"software", "robótica"},
	})

	require.NoError(t, err)
}

func TestErrorMapping(t *testing.T) {
	t.Run("non-2xx surfaces an HTTP error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal failure", http.StatusInternalServerError)
		}))
		defer server.Close()

		repo := NewBackendRepository(server.URL, nil)
		_, err := repo.GetRanking(context.Background())

		var apiErr *types.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, types.APIErrorCodeHTTP, apiErr.Code)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	})

	t.Run("malformed body surfaces a decode error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}))
		defer server.Close()

		repo := NewBackendRepository(server.URL, nil)
		_, err := repo.ListDataOutput(context.Background())

		var apiErr *types.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, types.APIErrorCodeDecode, apiErr.Code)
	})

	t.Run("unreachable backend surfaces a network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		repo := NewBackendRepository(server.URL, nil)
		err := repo.CheckHealth(context.Background())

		var apiErr *types.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, types.APIErrorCodeNetwork, apiErr.Code)
	})
}

func TestCheckHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := NewBackendRepository(server.URL, nil)
	assert.NoError(t, repo.CheckHealth(context.Background()))
}
