package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vprekovic/fitlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// example API call
// https://world.openfoodfacts.org/cgi/search.pl?search_terms=oats&search_simple=1&action=process&json=1

const (
	oneHour           = 60 * 60
	searchCacheExpire = oneHour * 12 // food data rarely changes
	defaultPageSize   = 10
	maxPageSize       = 50
)

type Api struct {
	cache      *freecache.Cache
	baseURL    string // https://world.openfoodfacts.org
	httpClient *http.Client
}

func NewApi(baseURL string, httpClient *http.Client) *Api {
	megabyte := 1024 * 1024
	cacheSize := 50 * megabyte

	return &Api{
		baseURL:    baseURL,
		cache:      freecache.NewCache(cacheSize),
		httpClient: httpClient,
	}
}

func (a *Api) Search(ctx context.Context, query string, pageSize int) (searchResponse *SearchResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.search")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("found food info for: %s", query))
		}
	}()

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	// must initialize it, otherwise json.Unmarshal(...) below fails
	// https://stackoverflow.com/questions/20478577/why-does-json-unmarshal-work-with-reference-but-not-pointer
	searchResponse = &SearchResponse{}

	cacheKey := fmt.Sprintf("search::%s::%d", query, pageSize)
	if cachedBytes, err := a.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found food search results for %q in cache", query)
		if err = json.Unmarshal(cachedBytes, searchResponse); err == nil {
			return searchResponse, nil
		} else {
			log.Errorf("failed to unmarshal food search results from cache for %q: %s", query, err)
		}
	} else {
		log.Debugf("get food search results for %q from cache: %s; will call the food api", query, err)
	}

	searchURL := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		a.baseURL, url.QueryEscape(query), pageSize,
	)
	log.Debugf("calling food api: %s", searchURL)

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food api returned status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food api response bytes: %w", err)
	}

	if err := json.Unmarshal(respBytes, searchResponse); err != nil {
		return nil, fmt.Errorf("failed to unmarshal food api response bytes: %w", err)
	}

	// set cache
	if err = a.cache.Set([]byte(cacheKey), respBytes, searchCacheExpire); err != nil {
		log.Errorf("failed to write food search cache for %q: %s", query, err)
	} else {
		log.Debugf("food search cache set for: %s", query)
	}

	return searchResponse, nil
}
