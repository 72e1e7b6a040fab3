package http

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"moviecatalog/catalog/internal/controller/auth"
	"moviecatalog/catalog/internal/controller/comment"
	"moviecatalog/catalog/internal/controller/enrich"
	"moviecatalog/catalog/internal/controller/metadata"
	"moviecatalog/catalog/internal/controller/movie"
	"moviecatalog/catalog/internal/controller/rating"
	"moviecatalog/pkg/limiter"
	"moviecatalog/pkg/logging"
	"moviecatalog/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
)

// StatusClientClosedRequest is answered, without a body, when the client
// went away before the response was ready.
const StatusClientClosedRequest = 499

var errBadRequest = errors.New("bad request")

// Controllers groups the controllers served over HTTP.
type Controllers struct {
	Movies   *movie.Controller
	Ratings  *rating.Controller
	Comments *comment.Controller
	Auth     *auth.Controller
	Metadata *metadata.Controller
	Enrich   *enrich.Controller
}

// Options defines HTTP surface settings.
type Options struct {
	Prefix       string
	AllowOrigins []string
	// ExposeResetToken returns password reset tokens in the response body,
	// for deployments without a mail relay.
	ExposeResetToken bool
	MaxUploadBytes   int64
}

// Handler defines the catalog HTTP handler.
type Handler struct {
	ctrl    Controllers
	posters posterStore
	limiter *limiter.Limiter
	scope   tally.Scope
	opts    Options
	logger  *zap.Logger
}

// New creates a new catalog HTTP handler. posters and l may be nil.
func New(ctrl Controllers, posters posterStore, l *limiter.Limiter, scope tally.Scope, opts Options, logger *zap.Logger) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "http"),
	)
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	return &Handler{ctrl: ctrl, posters: posters, limiter: l, scope: scope, opts: opts, logger: logger}
}

// Router builds the gin engine serving every route under the configured prefix.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = h.opts.MaxUploadBytes

	corsCfg := cors.DefaultConfig()
	if len(h.opts.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = h.opts.AllowOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Authorization"}
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))
	r.Use(h.rateLimit)

	api := r.Group(h.opts.Prefix)
	api.GET("/health", h.instrument("health"), h.health)
	h.registerEntries(api)
	h.registerSocial(api)
	h.registerAccounts(api)
	return r
}

func (h *Handler) health(c *gin.Context) {
	ok(c, gin.H{"status": "ok"})
}

func ok(c *gin.Context, payload gin.H) {
	res := gin.H{"success": true}
	maps.Copy(res, payload)
	c.JSON(http.StatusOK, res)
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{errBadRequest, http.StatusBadRequest},
	{movie.ErrNotFound, http.StatusNotFound},
	{movie.ErrInvalid, http.StatusBadRequest},
	{movie.ErrSlugConflict, http.StatusBadRequest},
	{enrich.ErrNotFound, http.StatusNotFound},
	{metadata.ErrNotFound, http.StatusNotFound},
	{comment.ErrNotFound, http.StatusNotFound},
	{comment.ErrInvalid, http.StatusBadRequest},
	{comment.ErrUnauthorized, http.StatusUnauthorized},
	{rating.ErrInvalid, http.StatusBadRequest},
	{rating.ErrUnauthorized, http.StatusUnauthorized},
	{auth.ErrNotFound, http.StatusNotFound},
	{auth.ErrInvalid, http.StatusBadRequest},
	{auth.ErrConflict, http.StatusBadRequest},
	{auth.ErrInvalidCredentials, http.StatusUnauthorized},
	{auth.ErrUnauthorized, http.StatusUnauthorized},
}

// fail aborts the request with the status matching err. A request whose
// client has gone away is answered with 499 and no body.
func (h *Handler) fail(c *gin.Context, err error) {
	if c.Request.Context().Err() != nil && errors.Is(err, context.Canceled) {
		h.logger.Debug("Client disconnected", zap.String(logging.FieldEndpoint, c.FullPath()))
		c.AbortWithStatus(StatusClientClosedRequest)
		return
	}
	status := http.StatusInternalServerError
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			status = e.status
			break
		}
	}
	if status == http.StatusInternalServerError {
		h.logger.Warn("Request failed", zap.String(logging.FieldEndpoint, c.FullPath()), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": err.Error()})
}

func (h *Handler) rateLimit(c *gin.Context) {
	if h.limiter != nil && h.limiter.Limit() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "too many requests"})
		return
	}
	c.Next()
}

// instrument records calls, latency and outcome of one endpoint.
func (h *Handler) instrument(endpoint string) gin.HandlerFunc {
	m := metrics.NewEndpointMetrics(h.scope, endpoint)
	return func(c *gin.Context) {
		m.Calls.Inc(1)
		sw := m.Latency.Start()
		c.Next()
		sw.Stop()
		switch c.Writer.Status() {
		case http.StatusOK:
			m.Successes.Inc(1)
		case http.StatusBadRequest:
			m.InvalidArgumentErrors.Inc(1)
		case http.StatusUnauthorized:
			m.UnauthorizedErrors.Inc(1)
		case http.StatusNotFound:
			m.NotFoundErrors.Inc(1)
		case StatusClientClosedRequest:
			m.Disconnects.Inc(1)
		default:
			m.InternalErrors.Inc(1)
		}
	}
}

func pathInt(c *gin.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	return v, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	return v, nil
}

func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
