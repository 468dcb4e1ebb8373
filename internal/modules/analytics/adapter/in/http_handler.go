package in

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	analyticsdto "wellness/internal/modules/analytics/dto"
	analyticsin "wellness/internal/modules/analytics/port/in"
	apperrors "wellness/internal/platform/errors"
)

const fallbackWindowDays = 30

// HTTPHandler serves dashboards over JSON. Requests are serialized because the
// analytics usecase holds a single current user and window.
type HTTPHandler struct {
	usecase       analyticsin.Usecase
	defaultWindow int
	logger        hclog.Logger
	mu            sync.Mutex
}

// NewHTTPHandler answers dashboard requests without ?window using defaultWindow days.
func NewHTTPHandler(usecase analyticsin.Usecase, defaultWindow int, logger hclog.Logger) *HTTPHandler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if defaultWindow <= 0 {
		defaultWindow = fallbackWindowDays
	}
	return &HTTPHandler{usecase: usecase, defaultWindow: defaultWindow, logger: logger}
}

func (h *HTTPHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/v1/users/{userID}/dashboard", h.dashboard).Methods(http.MethodGet)
	r.HandleFunc("/v1/users/{userID}/dashboard/refresh", h.refresh).Methods(http.MethodPost)
	return r
}

// Handler wraps the router with CORS and combined access logging to accessLog.
func (h *HTTPHandler) Handler(accessLog io.Writer) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.CombinedLoggingHandler(accessLog, cors(h.Router()))
}

func (h *HTTPHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	window, ok := parseWindow(w, r)
	if !ok {
		return
	}
	if window == 0 {
		window = h.defaultWindow
	}
	userID := mux.Vars(r)["userID"]

	h.mu.Lock()
	defer h.mu.Unlock()
	out, err := h.usecase.SelectUser(r.Context(), analyticsdto.SelectUserInput{UserID: userID})
	if err != nil {
		h.writeViewError(w, out, err)
		return
	}
	if out.WindowDays != window {
		out, err = h.usecase.SetWindow(r.Context(), analyticsdto.SetWindowInput{Days: window})
		if err != nil {
			h.writeViewError(w, out, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) refresh(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]

	h.mu.Lock()
	defer h.mu.Unlock()
	current, err := h.usecase.Current(r.Context())
	if err != nil {
		h.writeViewError(w, current, err)
		return
	}
	var out analyticsdto.ViewOutput
	if current.UserID == userID {
		out, err = h.usecase.Refresh(r.Context())
	} else {
		out, err = h.usecase.SelectUser(r.Context(), analyticsdto.SelectUserInput{UserID: userID})
	}
	if err != nil {
		h.writeViewError(w, out, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) writeViewError(w http.ResponseWriter, out analyticsdto.ViewOutput, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, apperrors.ErrNoActiveUser):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		h.logger.Warn("serving previous dashboard", "user", out.UserID, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, out)
	case errors.Is(err, apperrors.ErrStaleFetch):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("dashboard request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseWindow(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("window"))
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		writeError(w, http.StatusBadRequest, "window must be a positive number of days")
		return 0, false
	}
	return days, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
