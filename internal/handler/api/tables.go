package api

import (
	"errors"
	"net/http"
	"time"

	"FinTab/internal/domain/models"
	domain "FinTab/internal/domain/repository"
	"FinTab/internal/service/metrics"
	"FinTab/internal/service/ratelimit"
	"FinTab/internal/usecase"
	"FinTab/pkg/cache"
	xhttp "FinTab/pkg/http"
	applogger "FinTab/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StoreHandler serves the loaded tables and the asset class count query
// over HTTP.
type StoreHandler struct {
	log        *applogger.Logger
	catalog    domain.TableCatalog
	index      domain.MarketIndex
	evaluator  *usecase.CountsEvaluator
	summarizer *usecase.AssetSummarizer
	cache      cache.Service
	rl         *ratelimit.Limiter
	cacheTTL   time.Duration
}

// NewStoreHandler creates a new StoreHandler instance.
func NewStoreHandler(
	log *applogger.Logger,
	catalog domain.TableCatalog,
	index domain.MarketIndex,
	evaluator *usecase.CountsEvaluator,
	summarizer *usecase.AssetSummarizer,
	cacheSvc cache.Service,
	cacheTTL time.Duration,
) *StoreHandler {
	metrics.Register()
	return &StoreHandler{
		log:        log,
		catalog:    catalog,
		index:      index,
		evaluator:  evaluator,
		summarizer: summarizer,
		cache:      cacheSvc,
		rl:         ratelimit.New(),
		cacheTTL:   cacheTTL,
	}
}

func (h *StoreHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.GET("/tables", h.Tables)
	g.GET("/tables/:name", h.TableByName)
	g.GET("/query/asset-class-counts", h.Counts)
	g.GET("/assets/:name/summary", h.Summary)
}

func (h *StoreHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":   "ok",
		"tables":   len(h.catalog.TableNames()),
		"entities": len(h.index.EntityNames()),
	})
}

type tableInfo struct {
	Name    string `json:"name"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	Indexed bool   `json:"indexed"`
}

// Tables lists every loaded table in declaration order.
func (h *StoreHandler) Tables(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues("tables").Observe(time.Since(start).Seconds()) }()

	names := h.catalog.TableNames()
	infos := make([]tableInfo, 0, len(names))
	for _, name := range names {
		t, ok := h.catalog.Table(name)
		if !ok {
			continue
		}
		infos = append(infos, tableInfo{
			Name:    t.Name(),
			Columns: t.ColumnCount(),
			Rows:    t.RowCount(),
			Indexed: usecase.IndexedTable(t.Name()),
		})
	}
	return xhttp.ListResponse(c, infos, int64(len(infos)))
}

// TableByName renders one table in the wire format, optionally truncated
// by the limit query parameter.
func (h *StoreHandler) TableByName(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues("table").Observe(time.Since(start).Seconds()) }()

	req := &models.TableRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	t, ok := h.catalog.Table(req.Name)
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("table %q not found", req.Name))
	}

	if req.Limit > 0 && req.Limit < t.RowCount() {
		cols := make([]models.Column, t.ColumnCount())
		for i := range cols {
			cols[i] = models.Column{Name: t.ColumnName(i), Kind: t.ColumnKind(i)}
		}
		trunc := models.NewTable(t.Name(), cols)
		for row := range t.Rows() {
			if trunc.RowCount() >= req.Limit {
				break
			}
			trunc.Append(row)
		}
		t = trunc
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return t.Render(c.Response())
}

// Counts evaluates the asset class count query, serving cached results
// until they expire. refresh=true bypasses the cache read.
func (h *StoreHandler) Counts(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues("counts").Observe(time.Since(start).Seconds()) }()

	req := &models.CountsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()+":counts", 10, 5) {
		h.log.Warn("counts rate limited", applogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	ctx := c.Request().Context()
	key := cache.GenerateKey("query", "asset-class-counts")

	if !req.Refresh && h.cache != nil {
		var cached models.QueryResult
		err := h.cache.Get(ctx, key, &cached)
		if err == nil {
			return xhttp.SuccessResponse(c, &cached)
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			h.log.Warn("counts cache get failed", applogger.Error(err))
		}
	}

	// The lock guards the cache write, not the computation: contenders
	// recompute the same result and only the holder stores it.
	locked := false
	lockKey := key + ":lock"
	if h.cache != nil {
		if ok, err := h.cache.TryLock(ctx, lockKey, 10*time.Second); err == nil && ok {
			locked = true
			defer func() { _ = h.cache.Unlock(ctx, lockKey) }()
		}
	}

	evalStart := time.Now()
	table := h.evaluator.Evaluate()
	res, err := models.ResultFromTable(uuid.NewString(), table, time.Since(evalStart))
	if err != nil {
		metrics.APIErrors.WithLabelValues("counts").Inc()
		h.log.Error("counts result mapping failed", applogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}

	if h.cache != nil && locked {
		if err := h.cache.Set(ctx, key, res, h.cacheTTL); err != nil {
			h.log.Warn("counts cache set failed", applogger.Error(err))
		}
	}

	return xhttp.SuccessResponse(c, res)
}

// Summary reports windowed price/volume statistics and trade totals for
// one asset.
func (h *StoreHandler) Summary(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.APILatency.WithLabelValues("summary").Observe(time.Since(start).Seconds()) }()

	req := &models.SummaryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if !h.rl.Allow(c.RealIP()+":summary", 5, 2) {
		h.log.Warn("summary rate limited", applogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	ctx := c.Request().Context()
	key := cache.GenerateKeyWithParams("summary", req.Name, req.FromDay, req.ToDay)
	if h.cache != nil {
		var cached models.EntitySummary
		err := h.cache.Get(ctx, key, &cached)
		if err == nil {
			return xhttp.SuccessResponse(c, &cached)
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			h.log.Warn("summary cache get failed", applogger.Error(err))
		}
	}

	sum, err := h.summarizer.Summarize(req.Name, req.FromDay, req.ToDay)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("asset %q not found", req.Name))
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, sum, h.cacheTTL); err != nil {
			h.log.Warn("summary cache set failed", applogger.Error(err))
		}
	}

	return xhttp.SuccessResponse(c, sum)
}
