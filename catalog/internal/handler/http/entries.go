package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/catalog/pkg/query"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const defaultPageSize = 20

type posterStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

func (h *Handler) registerEntries(r gin.IRouter) {
	movies := r.Group("/movies")
	h.registerNamespace(movies, model.NamespaceMovie)
	movies.GET("/query", h.instrument("movie_query"), h.queryEntries(model.NamespaceMovie))
	movies.GET("/slug/:slug", h.instrument("movie_get_by_slug"), h.getEntryBySlug(model.NamespaceMovie))
	movies.GET("/:id/recommended", h.instrument("movie_recommended"), h.recommended)
	movies.PATCH("/:id/poster", h.instrument("movie_patch_poster"), h.patchField(func(p *model.EntryPatch, v string) { p.Poster = &v }, "poster"))
	movies.PATCH("/:id/trailer", h.instrument("movie_patch_trailer"), h.patchField(func(p *model.EntryPatch, v string) { p.Trailer = &v }, "trailer"))
	movies.POST("/:id/poster/upload", h.instrument("movie_upload_poster"), h.uploadPoster)
	movies.POST("/:id/fetch-trailer", h.instrument("movie_fetch_trailer"), h.fetchTrailer)
	movies.POST("/fetch-all-trailers", h.instrument("movie_fetch_all_trailers"), h.fetchAllTrailers)
	movies.POST("/fetch-plots", h.instrument("movie_fetch_plots"), h.fetchPlots)
	movies.POST("/fetch-runtimes", h.instrument("movie_fetch_runtimes"), h.fetchRuntimes)

	towatch := r.Group("/towatch")
	h.registerNamespace(towatch, model.NamespaceToWatch)
	towatch.POST("/:id/watched", h.instrument("towatch_mark_watched"), h.markWatched)

	r.GET("/metadata", h.instrument("metadata"), h.lookupMetadata)
}

func (h *Handler) registerNamespace(g *gin.RouterGroup, ns model.Namespace) {
	name := string(ns)
	g.GET("", h.instrument(name+"_list"), h.listEntries(ns))
	g.GET("/:id", h.instrument(name+"_get"), h.getEntry(ns))
	g.POST("", h.instrument(name+"_put"), h.putEntry(ns))
	g.PATCH("/:id", h.instrument(name+"_patch"), h.patchEntry(ns))
	g.DELETE("/:id", h.instrument(name+"_delete"), h.authenticate(true), h.deleteEntry(ns))
}

func (h *Handler) listEntries(ns model.Namespace) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := h.ctrl.Movies.List(c.Request.Context(), ns, c.Query("user"))
		if err != nil {
			h.fail(c, err)
			return
		}
		ok(c, gin.H{"movies": entries})
	}
}

func (h *Handler) getEntry(ns model.Namespace) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		e, err := h.ctrl.Movies.Get(c.Request.Context(), ns, id, c.Query("user"))
		if err != nil {
			h.fail(c, err)
			return
		}
		ok(c, gin.H{"movie": e})
	}
}

func (h *Handler) getEntryBySlug(ns model.Namespace) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, err := h.ctrl.Movies.GetBySlug(c.Request.Context(), ns, c.Param("slug"), c.Query("user"))
		if err != nil {
			h.fail(c, err)
			return
		}
		ok(c, gin.H{"movie": e})
	}
}

func (h *Handler) queryEntries(ns model.Namespace) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := parseQuery(c)
		if err != nil {
			h.fail(c, err)
			return
		}
		res, err := h.ctrl.Movies.Query(c.Request.Context(), ns, p, c.Query("user"))
		if err != nil {
			h.fail(c, err)
			return
		}
		ok(c, gin.H{
			"movies":     res.Entries,
			"total":      res.Total,
			"totalPages": res.TotalPages,
			"page":       res.Page,
		})
	}
}

// parseQuery reads the query pipeline parameters. List parameters accept
// repeated keys and comma-separated values.
func parseQuery(c *gin.Context) (query.Params, error) {
	var p query.Params
	for _, v := range c.QueryArray("genre") {
		p.Filter.Genres = append(p.Filter.Genres, model.SplitGenres(v)...)
	}
	for _, v := range c.QueryArray("year") {
		for _, s := range strings.Split(v, ",") {
			year, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return p, fmt.Errorf("%w: year must be an integer", errBadRequest)
			}
			p.Filter.Years = append(p.Filter.Years, year)
		}
	}
	for _, v := range c.QueryArray("tag") {
		p.Filter.Tags = append(p.Filter.Tags, model.SplitGenres(v)...)
	}
	p.Filter.Search = strings.TrimSpace(c.Query("q"))
	p.Filter.Runtime = query.RuntimeBucket(c.Query("runtime"))
	minS, maxS := c.Query("ratingMin"), c.Query("ratingMax")
	if minS != "" || maxS != "" {
		r := &query.RatingRange{Min: 0, Max: 10}
		var err error
		if minS != "" {
			if r.Min, err = strconv.ParseFloat(minS, 64); err != nil {
				return p, fmt.Errorf("%w: ratingMin must be a number", errBadRequest)
			}
		}
		if maxS != "" {
			if r.Max, err = strconv.ParseFloat(maxS, 64); err != nil {
				return p, fmt.Errorf("%w: ratingMax must be a number", errBadRequest)
			}
		}
		p.Filter.Rating = r
	}
	p.Sort = query.SortKey(c.Query("sort"))
	var err error
	if p.Page, err = queryInt(c, "page", 1); err != nil {
		return p, err
	}
	if p.PageSize, err = queryInt(c, "pageSize", defaultPageSize); err != nil {
		return p, err
	}
	return p, nil
}

func (h *Handler) recommended(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	entries, err := h.ctrl.Movies.Recommended(c.Request.Context(), model.NamespaceMovie, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"movies": entries})
}

func (h *Handler) putEntry(ns model.Namespace) gin.HandlerFunc {
	return func(c *gin.Context) {
		var e model.Entry
		if err := bindJSON(c, &e); err != nil {
			h.fail(c, err)
			return
		}
		res, err := h.ctrl.Movies.Put(c.Request.Context(), ns, &e)
		if err != nil {
			h.fail(c, err)
			return
		}
		ok(c, gin.H{"movie": res})
	}
}

func (h *Handler) patchEntry(ns model.Namespace) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		var patch model.EntryPatch
		if err := bindJSON(c, &patch); err != nil {
			h.fail(c, err)
			return
		}
		h.patch(c, ns, id, &patch)
	}
}

// patchField merges a single string field named by the body key.
func (h *Handler) patchField(set func(p *model.EntryPatch, v string), key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		var body map[string]string
		if err := bindJSON(c, &body); err != nil {
			h.fail(c, err)
			return
		}
		v, found := body[key]
		if !found {
			h.fail(c, fmt.Errorf("%w: %s is required", errBadRequest, key))
			return
		}
		var patch model.EntryPatch
		set(&patch, v)
		h.patch(c, model.NamespaceMovie, id, &patch)
	}
}

func (h *Handler) patch(c *gin.Context, ns model.Namespace, id int64, patch *model.EntryPatch) {
	res, err := h.ctrl.Movies.Patch(c.Request.Context(), ns, id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"movie": res})
}

func (h *Handler) deleteEntry(ns model.Namespace) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathInt(c, "id")
		if err != nil {
			h.fail(c, err)
			return
		}
		if err := h.ctrl.Movies.Delete(c.Request.Context(), ns, id); err != nil {
			h.fail(c, err)
			return
		}
		ok(c, gin.H{"id": id})
	}
}

func (h *Handler) markWatched(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	e, err := h.ctrl.Movies.MarkWatched(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"movie": e})
}

func (h *Handler) uploadPoster(c *gin.Context) {
	if h.posters == nil {
		h.fail(c, errors.New("poster storage is not configured"))
		return
	}
	id, err := pathInt(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	// Fail fast on a missing entry before uploading anything.
	if _, err := h.ctrl.Movies.Get(c.Request.Context(), model.NamespaceMovie, id, ""); err != nil {
		h.fail(c, err)
		return
	}
	fh, err := c.FormFile("poster")
	if err != nil {
		h.fail(c, fmt.Errorf("%w: poster file is required", errBadRequest))
		return
	}
	if fh.Size > h.opts.MaxUploadBytes {
		h.fail(c, fmt.Errorf("%w: poster exceeds %d bytes", errBadRequest, h.opts.MaxUploadBytes))
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		h.fail(c, fmt.Errorf("%w: poster must be an image", errBadRequest))
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	key := fmt.Sprintf("posters/%d/%s%s", id, ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()), strings.ToLower(path.Ext(fh.Filename)))
	url, err := h.posters.Upload(c.Request.Context(), key, f, fh.Size, contentType)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.patch(c, model.NamespaceMovie, id, &model.EntryPatch{Poster: &url})
}

func (h *Handler) fetchTrailer(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	e, err := h.ctrl.Enrich.FetchTrailer(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"movie": e})
}

func (h *Handler) fetchAllTrailers(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		h.fail(c, err)
		return
	}
	force, err := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err != nil {
		h.fail(c, fmt.Errorf("%w: force must be a boolean", errBadRequest))
		return
	}
	report, err := h.ctrl.Enrich.FetchAllTrailers(c.Request.Context(), limit, force)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"report": report})
}

func (h *Handler) fetchPlots(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		h.fail(c, err)
		return
	}
	report, err := h.ctrl.Enrich.FetchPlots(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"report": report})
}

func (h *Handler) fetchRuntimes(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		h.fail(c, err)
		return
	}
	report, err := h.ctrl.Enrich.FetchRuntimes(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"report": report})
}

func (h *Handler) lookupMetadata(c *gin.Context) {
	ctx := c.Request.Context()
	var m *model.Metadata
	var err error
	switch id, title := c.Query("imdbId"), strings.TrimSpace(c.Query("title")); {
	case id != "":
		m, err = h.ctrl.Metadata.ByExternalID(ctx, id)
	case title != "":
		var year int
		if year, err = queryInt(c, "year", 0); err == nil {
			m, err = h.ctrl.Metadata.ByTitleYear(ctx, title, year)
		}
	default:
		err = fmt.Errorf("%w: imdbId or title is required", errBadRequest)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"metadata": m})
}
