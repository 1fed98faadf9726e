package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/folio/folio-api/internal/config"
	"github.com/folio/folio-api/internal/domain/media"
	"github.com/folio/folio-api/internal/domain/project"
	"github.com/folio/folio-api/internal/domain/site"
	"github.com/folio/folio-api/internal/middleware"
	"github.com/folio/folio-api/internal/pkg/docstore"
	"github.com/folio/folio-api/internal/pkg/logger"
	pkgresponse "github.com/folio/folio-api/internal/pkg/response"
	"github.com/folio/folio-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Folio API")

	if cfg.AdminToken == "" {
		log.Warn().Msg("ADMIN_TOKEN is empty, all mutating endpoints will reject requests")
	}

	// ---------- Durable documents ----------
	docs, err := docstore.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open data directory")
	}

	// ---------- Media storage ----------
	mediaStorage, err := storage.New(storage.Config{
		Backend:     cfg.StorageBackend,
		BasePath:    cfg.MediaDir,
		BaseURL:     cfg.BaseURL + "/media",
		S3Endpoint:  cfg.S3Endpoint,
		S3Region:    cfg.S3Region,
		S3Bucket:    cfg.S3Bucket,
		S3AccessKey: cfg.S3AccessKey,
		S3SecretKey: cfg.S3SecretKey,
		S3PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create media storage")
	}

	// ---------- Site artifacts ----------
	artifacts, err := site.NewFileArtifactStore(cfg.SiteDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open site directory")
	}

	// ---------- Stores ----------
	projectStore := project.NewStore(docs)
	settingsStore := site.NewSettingsStore(docs)

	// ---------- Services ----------
	thumbnailer := media.NewThumbnailer(cfg.FFmpegPath, cfg.FFprobePath, cfg.FFmpegTimeout)
	mediaService := media.NewService(mediaStorage, media.NewOptimizer(), thumbnailer)
	synthesizer := site.NewSynthesizer(projectStore, settingsStore, artifacts)

	// ---------- Handlers ----------
	mediaHandler := media.NewHandler(mediaService, mediaStorage)
	projectHandler := project.NewHandler(projectStore)
	siteHandler := site.NewHandler(settingsStore, synthesizer)

	authMiddleware := middleware.Auth(middleware.NewTokenAuthenticator(cfg.AdminToken))

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/media", mediaHandler.Routes(authMiddleware))
		r.Mount("/projects", projectHandler.Routes(authMiddleware))
		r.Mount("/site", siteHandler.Routes(authMiddleware))
	})

	// Public static surfaces: stored media (local backend) and the
	// synthesized site itself
	if cfg.StorageBackend == "local" {
		fileServer(r, "/media", http.Dir(cfg.MediaDir))
	}
	fileServer(r, "/", http.Dir(cfg.SiteDir))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // large upload batches
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// fileServer serves a directory under path without directory listings
// bleeding into API routes.
func fileServer(r chi.Router, path string, root http.FileSystem) {
	fs := http.StripPrefix(strings.TrimSuffix(path, "/"), http.FileServer(root))
	if path != "/" && path[len(path)-1] != '/' {
		path += "/"
	}
	r.Get(path+"*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}
