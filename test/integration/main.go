package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/catalog/pkg/testutil"
	"moviecatalog/internal/grpcutil"
	"moviecatalog/pkg/discovery"
	"moviecatalog/pkg/discovery/memory"
	kvmemory "moviecatalog/pkg/kvstore/memory"
	"moviecatalog/pkg/logging"
	"net"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	catalogServiceName = "catalog"
	catalogGRPCAddress = "localhost:8084"
)

type envelope struct {
	Success        bool                   `json:"success"`
	Error          string                 `json:"error"`
	Token          string                 `json:"token"`
	Movie          model.Entry            `json:"movie"`
	Movies         []model.Entry          `json:"movies"`
	Rating         model.AggregatedRating `json:"rating"`
	Comment        model.Comment          `json:"comment"`
	UserIdentifier string                 `json:"userIdentifier"`
}

type client struct {
	baseURL string
	token   string
	log     *zap.Logger
}

func (c *client) call(method, path string, body any) *envelope {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.log.Fatal("encode request", zap.Error(err))
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.baseURL+path, r)
	if err != nil {
		c.log.Fatal("build request", zap.Error(err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.log.Fatal("request failed", zap.String("path", path), zap.Error(err))
	}
	defer resp.Body.Close()
	var res envelope
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		c.log.Fatal("decode response", zap.String("path", path), zap.Error(err))
	}
	if resp.StatusCode != http.StatusOK || !res.Success {
		c.log.Fatal("unexpected response", zap.String("path", path), zap.Int("status", resp.StatusCode), zap.String("error", res.Error))
	}
	return &res
}

func main() {
	log, err := logging.New("integration", true)
	if err != nil {
		panic(err)
	}
	log.Info("Starting the integration test")

	ctx := context.Background()
	store := kvmemory.New()
	registry := memory.NewRegistry()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"True","Title":"Se7en","Year":"1995","Plot":"Two detectives hunt a killer.","imdbID":"tt0114369"}`))
	}))
	defer upstream.Close()
	api := httptest.NewServer(testutil.NewTestCatalogHTTPHandler(store, upstream.URL, log))
	defer api.Close()
	srv := startHealthService(ctx, registry, store, log)
	defer srv.GracefulStop()

	log.Info("Checking health via service discovery")
	conn, err := grpcutil.ServiceConnection(ctx, catalogServiceName, registry, insecure.NewCredentials())
	if err != nil {
		log.Fatal("connect", zap.Error(err))
	}
	defer conn.Close()
	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: catalogServiceName})
	if err != nil {
		log.Fatal("health check", zap.Error(err))
	}
	if health.Status != healthpb.HealthCheckResponse_SERVING {
		log.Fatal("service is not serving", zap.Stringer("status", health.Status))
	}

	c := &client{baseURL: api.URL + "/api", log: log}
	log.Info("Signing up")
	c.token = c.call(http.MethodPost, "/auth/signup", map[string]string{
		"username": "ann",
		"email":    "ann@example.com",
		"password": "password1",
	}).Token

	log.Info("Saving entries")
	se7en := model.Entry{ID: 1, Title: "Se7en", Year: 1995, Genre: "Crime, Drama", ImdbRating: model.F(8.6), ImdbID: "tt0114369"}
	room := model.Entry{ID: 2, Title: "The Room", Year: 2003, Genre: "Drama", ImdbRating: model.F(3.6)}
	for _, e := range []model.Entry{se7en, room} {
		c.call(http.MethodPost, "/movies", e)
	}

	log.Info("Querying dramas by IMDb rating")
	res := c.call(http.MethodGet, "/movies/query?genre=Drama&sort=imdbRating", nil)
	ignoreDate := cmpopts.IgnoreFields(model.Entry{}, "DateAdded")
	if diff := cmp.Diff([]model.Entry{se7en, room}, res.Movies, ignoreDate); diff != "" {
		log.Fatal("query mismatch", zap.String("diff", diff))
	}

	log.Info("Rating Se7en")
	guest := &client{baseURL: c.baseURL, log: log}
	anon := guest.call(http.MethodPost, "/ratings/anonymous-id", nil).UserIdentifier
	for _, r := range []struct {
		client *client
		user   string
		value  int
	}{{guest, anon, 5}, {guest, anon, 2}, {c, "ann", 4}} {
		r.client.call(http.MethodPost, "/ratings", model.Rating{MovieID: 1, Value: r.value, UserIdentifier: r.user})
	}
	agg := c.call(http.MethodGet, "/ratings/1", nil).Rating
	if diff := cmp.Diff(model.AggregatedRating{MovieID: 1, Average: 3, Count: 2}, agg); diff != "" {
		log.Fatal("aggregate mismatch", zap.String("diff", diff))
	}

	log.Info("Reading Se7en by slug with the community rating")
	got := c.call(http.MethodGet, fmt.Sprintf("/movies/slug/se7en?user=%s", anon), nil).Movie
	community, userRating := 3.0, 2
	want := se7en
	want.CommunityRating, want.RatingCount, want.UserRating = &community, 2, &userRating
	if diff := cmp.Diff(want, got, ignoreDate); diff != "" {
		log.Fatal("entry mismatch", zap.String("diff", diff))
	}

	log.Info("Commenting")
	cm := c.call(http.MethodPost, "/comments", map[string]any{"movieId": 1, "text": "What's in the box?"}).Comment
	c.call(http.MethodDelete, fmt.Sprintf("/comments/1/%s", cm.ID), nil)

	log.Info("Backfilling plots")
	c.call(http.MethodPost, "/movies/fetch-plots", nil)
	if plot := c.call(http.MethodGet, "/movies/1", nil).Movie.Plot; plot != "Two detectives hunt a killer." {
		log.Fatal("plot mismatch", zap.String("plot", plot))
	}

	log.Info("Integration test execution successful")
}

func startHealthService(ctx context.Context, registry discovery.Registry, store *kvmemory.Store, log *zap.Logger) *grpc.Server {
	log.Info("Starting catalog health service", zap.String("address", catalogGRPCAddress))
	l, err := net.Listen("tcp", catalogGRPCAddress)
	if err != nil {
		log.Fatal("failed to listen", zap.Error(err))
	}
	srv := grpc.NewServer()
	if err := testutil.RegisterTestHealthServer(ctx, srv, store, log); err != nil {
		log.Fatal("register health service", zap.Error(err))
	}
	id := discovery.GenerateInstanceID(catalogServiceName)
	if err := registry.Register(ctx, id, catalogServiceName, catalogGRPCAddress); err != nil {
		panic(err)
	}
	go func() {
		if err := srv.Serve(l); err != nil {
			log.Error("gRPC server stopped", zap.Error(err))
		}
	}()
	go func() {
		for {
			if err := registry.ReportHealthyState(id, catalogServiceName); err != nil {
				log.Warn("Failed to report healthy state", zap.Error(err))
			}
			time.Sleep(1 * time.Second)
		}
	}()
	return srv
}
