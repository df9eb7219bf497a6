package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/matt-g-everett/keyframer/scene"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Controller is the part of scene.Runner the API needs.
type Controller interface {
	Do(ctx context.Context, cmd scene.Command) error
	Snapshot() scene.Snapshot
}

// Api serves sprite state and playback controls over HTTP.
type Api struct {
	controller Controller
	logger     *zap.Logger
	router     *mux.Router
}

func NewApi(controller Controller, logger *zap.Logger) *Api {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := new(Api)
	a.controller = controller
	a.logger = logger.Named("api")
	a.router = mux.NewRouter()

	a.router.HandleFunc("/sprites", a.handleSprites).Methods(http.MethodGet)
	a.router.HandleFunc("/play", a.command(func(*http.Request) (scene.Command, error) {
		return scene.Play(), nil
	})).Methods(http.MethodPost)
	a.router.HandleFunc("/pause", a.command(func(*http.Request) (scene.Command, error) {
		return scene.Pause(), nil
	})).Methods(http.MethodPost)
	a.router.HandleFunc("/resume", a.command(func(*http.Request) (scene.Command, error) {
		return scene.Resume(), nil
	})).Methods(http.MethodPost)
	a.router.HandleFunc("/sprites/{name}/active/{index:[0-9]+}", a.command(func(r *http.Request) (scene.Command, error) {
		vars := mux.Vars(r)
		index, err := strconv.Atoi(vars["index"])
		return scene.Activate(vars["name"], index), err
	})).Methods(http.MethodPost)
	a.router.HandleFunc("/sprites/{name}/skip/{pos:[0-9]+}", a.command(func(r *http.Request) (scene.Command, error) {
		vars := mux.Vars(r)
		pos, err := strconv.Atoi(vars["pos"])
		return scene.Skip(vars["name"], pos), err
	})).Methods(http.MethodPost)

	return a
}

func (a *Api) Handler() http.Handler {
	return a.router
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.logger.Info("listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "serve api")
	}
	return nil
}

func (a *Api) handleSprites(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, a.controller.Snapshot())
}

func (a *Api) command(build func(*http.Request) (scene.Command, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := build(r)
		if err != nil {
			a.writeError(w, http.StatusBadRequest, err)
			return
		}

		err = a.controller.Do(r.Context(), cmd)
		switch {
		case err == nil:
			a.writeJSON(w, http.StatusOK, a.controller.Snapshot())
		case errors.Is(err, scene.ErrUnknownSprite):
			a.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, scene.ErrNoFrame):
			a.writeError(w, http.StatusConflict, err)
		default:
			a.writeError(w, http.StatusInternalServerError, err)
		}
	}
}

func (a *Api) writeError(w http.ResponseWriter, status int, err error) {
	a.logger.Debug("request failed", zap.Int("status", status), zap.Error(err))
	a.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (a *Api) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("encode response", zap.Error(err))
	}
}
