package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload-complete webhook server",
	Long:  "Serves the callback the upload transport invokes when a file finishes landing: the file is classified and QC-validated, and the report returned to the caller.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		previewer := initPreviewer()

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})

		r.Post("/upload/complete", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Path     string `json:"path"`
				Name     string `json:"name"`
				DataType string `json:"data_type"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			if body.Path == "" {
				http.Error(w, `{"error":"path is required"}`, http.StatusBadRequest)
				return
			}
			dt, err := parseDataType(body.DataType)
			if err != nil {
				http.Error(w, `{"error":"unknown data_type"}`, http.StatusBadRequest)
				return
			}

			reports, err := previewer.Preview(req.Context(), []string{body.Path}, dt)
			if err != nil {
				zap.L().Error("upload qc failed", zap.String("file", body.Path), zap.Error(err))
				http.Error(w, `{"error":"validation failed"}`, http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(reports[0])
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Close()
		}()

		zap.L().Info("serving upload webhook", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "serve")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP port (defaults to server.port)")
	rootCmd.AddCommand(serveCmd)
}
