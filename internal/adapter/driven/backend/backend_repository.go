package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/entity"
	"github.com/piter-transparencia/piter-dashboard-go/internal/domain/repository"
	"github.com/piter-transparencia/piter-dashboard-go/internal/shared/types"
)

// RequestTimeout limita cada chamada ao backend; não há política de retry.
const RequestTimeout = 30 * time.Second

// BackendRepositoryImpl implementa o BackendRepository sobre a API HTTP do
// P.I.T.E.R, com cache de respostas idempotentes.
type BackendRepositoryImpl struct {
	baseURL string
	client  *http.Client
	cache   *ResultCache
}

var _ repository.BackendRepository = (*BackendRepositoryImpl)(nil)

// NewBackendRepository cria uma nova implementação do BackendRepository.
func NewBackendRepository(baseURL string, cache *ResultCache) *BackendRepositoryImpl {
	if cache == nil {
		cache = NewResultCache(DefaultCacheTTL)
	}
	return &BackendRepositoryImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: RequestTimeout},
		cache:   cache,
	}
}

// SetBaseURL redireciona o repositório para outra URL base, tipicamente a
// `api_url` vinda do arquivo de configuração. Respostas em cache pertencem ao
// backend anterior e são descartadas.
func (r *BackendRepositoryImpl) SetBaseURL(baseURL string) {
	r.baseURL = strings.TrimRight(baseURL, "/")
	r.cache.Clear()
}

func (r *BackendRepositoryImpl) SearchGazettes(ctx context.Context, filters entity.SearchFilters) (*entity.SearchResponse, error) {
	params := url.Values{}
	if filters.TerritoryID != "" {
		params.Set("territory_ids", filters.TerritoryID)
	}
	if filters.Querystring != "" {
		params.Set("querystring", filters.Querystring)
	}
	if filters.Size > 0 {
		params.Set("size", strconv.Itoa(filters.Size))
	}
	if filters.Since != "" {
		params.Set("published_since", filters.Since)
	}
	if filters.Until != "" {
		params.Set("published_until", filters.Until)
	}

	var response entity.SearchResponse
	if err := r.getJSON(ctx, "/api/v1/gazettes", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *BackendRepositoryImpl) SaveSearchResults(ctx context.Context, gazettes []entity.Gazette, filters entity.SearchFilters) (*entity.SaveSearchResult, error) {
	payload := map[string]interface{}{
		"gazettes": gazettes,
		"filters":  filters,
	}

	var result entity.SaveSearchResult
	if err := r.postJSON(ctx, "/api/v1/save_search", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *BackendRepositoryImpl) AnalyzeInvestments(ctx context.Context, territoryID, since, until string, keywords []string) (*entity.AnalysisResponse, error) {
	params := url.Values{}
	params.Set("territory_id", territoryID)
	params.Set("since", since)
	params.Set("until", until)
	if len(keywords) > 0 {
		params.Set("keywords", strings.Join(keywords, ","))
	}

	var response entity.AnalysisResponse
	if err := r.getJSON(ctx, "/analyze", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *BackendRepositoryImpl) SearchAnalyses(ctx context.Context, filters entity.SearchFilters, page, pageSize int) (*entity.PaginatedAnalyses, error) {
	params := url.Values{}
	if filters.TerritoryID != "" {
		params.Set("territory_id", filters.TerritoryID)
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.Since != "" {
		params.Set("since", filters.Since)
	}
	if filters.Until != "" {
		params.Set("until", filters.Until)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	var response entity.PaginatedAnalyses
	if err := r.getJSON(ctx, "/api/search", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *BackendRepositoryImpl) GetRanking(ctx context.Context) (*entity.RankingResponse, error) {
	const cacheKey = "ranking:all"
	if cached, ok := r.cache.Get(cacheKey); ok {
		if ranking, ok := cached.(*entity.RankingResponse); ok {
			return ranking, nil
		}
	}

	var response entity.RankingResponse
	if err := r.getJSON(ctx, "/api/ranking", nil, &response); err != nil {
		return nil, err
	}

	r.cache.Set(cacheKey, &response)
	return &response, nil
}

func (r *BackendRepositoryImpl) GetStateRanking(ctx context.Context, req entity.StateRankingRequest) (*entity.RankingResponse, error) {
	cacheKey := "ranking:state:" + req.StateCode
	if cached, ok := r.cache.Get(cacheKey); ok {
		if ranking, ok := cached.(*entity.RankingResponse); ok {
			return ranking, nil
		}
	}

	var response entity.RankingResponse
	if err := r.postJSON(ctx, "/api/v1/ranking/state", req, &response); err != nil {
		return nil, err
	}

	r.cache.Set(cacheKey, &response)
	return &response, nil
}

func (r *BackendRepositoryImpl) ListDataOutput(ctx context.Context) (*entity.DataOutputListing, error) {
	var response entity.DataOutputListing
	if err := r.getJSON(ctx, "/data_output", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *BackendRepositoryImpl) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return types.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.NewHTTPError(resp.StatusCode, "")
	}
	return nil
}

func (r *BackendRepositoryImpl) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := r.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	return r.do(req, out)
}

func (r *BackendRepositoryImpl) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return r.do(req, out)
}

func (r *BackendRepositoryImpl) do(req *http.Request, out interface{}) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return types.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Corpo truncado apenas para contexto da mensagem de erro.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return types.NewHTTPError(resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return types.NewDecodeError(err)
	}
	return nil
}
