package main

import (
	"context"
	"testing"

	"go.uber.org/zap"

	metricsinmem "gridcourier/internal/adapter/metrics/inmemory"
	"gridcourier/internal/app/maps"
	"gridcourier/internal/app/replay"
	"gridcourier/internal/app/run"
	"gridcourier/internal/config"
)

func TestBuildRepos_MemoryDriver(t *testing.T) {
	cfg := config.NewDefaultConfig().Database
	repos, err := buildRepos(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("buildRepos: %v", err)
	}
	if repos.Tx == nil || repos.Maps == nil || repos.Runs == nil || repos.Events == nil {
		t.Fatalf("expected every repository to be set: %+v", repos)
	}
}

func TestBuildRepos_UnknownDriver(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: "sqlite", DSN: "file.db"}
	if _, err := buildRepos(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestNewHandler_RunsAgainstStoredMap(t *testing.T) {
	repos, err := buildRepos(context.Background(), config.NewDefaultConfig().Database, zap.NewNop())
	if err != nil {
		t.Fatalf("buildRepos: %v", err)
	}
	recorder := metricsinmem.NewRecorder()
	h := newHandler(repos, recorder, zap.NewNop())

	ctx := context.Background()
	if _, err := h.MapsUC.Save(ctx, maps.SaveRequest{Name: "tiny", Encoding: "S,1\n1,G\n"}); err != nil {
		t.Fatalf("save map: %v", err)
	}
	resp, err := h.RunUC.Execute(ctx, run.Request{MapName: "tiny", Algorithm: "bfs", MaxReplans: 1, MaxSteps: 10})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(resp.Runs) != 1 || !resp.Runs[0].Metrics.Success {
		t.Fatalf("expected one successful run, got %+v", resp.Runs)
	}
	if got := recorder.Snapshot().RunSuccess; got != 1 {
		t.Fatalf("expected recorder to count 1 success, got %d", got)
	}
	if _, err := h.ReplayUC.Execute(ctx, replay.Request{RunID: resp.Runs[0].RunID}); err != nil {
		t.Fatalf("replay: %v", err)
	}
}
