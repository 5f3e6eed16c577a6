package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	api "github.com/mindtype/mindtype/internal/api/http"
	authmw "github.com/mindtype/mindtype/internal/auth/middleware"
	"github.com/mindtype/mindtype/internal/config"
	"github.com/mindtype/mindtype/internal/db"
	"github.com/mindtype/mindtype/internal/eventlog"
	"github.com/mindtype/mindtype/internal/history"
	"github.com/mindtype/mindtype/internal/mbti"
	"github.com/mindtype/mindtype/internal/metrics"
	"github.com/mindtype/mindtype/internal/quiz"
	"github.com/mindtype/mindtype/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}

	sessions := quiz.NewSQLStore(dbh)
	results := history.NewSQLStore(dbh, cfg.HistoryLimit, time.Now)
	events := eventlog.NewRepo(dbh, cfg.SiteID)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatal("blob store", zap.Error(err))
	}

	bank := mbti.DefaultBank()
	catalog := mbti.DefaultCatalog()

	m := metrics.New()
	svc := quiz.NewService(bank, catalog, sessions, results, events, m, log, time.Now)

	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	r := api.NewRouter(api.Deps{
		Cfg:     cfg,
		Auth:    authSvc,
		Quiz:    svc,
		Bank:    bank,
		Catalog: catalog,
		Results: results,
		Events:  events,
		Blobs:   bs,
		Log:     log,
		Now:     time.Now,
	})

	log.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("mode", string(cfg.Mode)),
		zap.String("db", cfg.DBDriver))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
