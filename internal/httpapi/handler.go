package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sufield/ghdid/internal/resolver"
	"github.com/sufield/ghdid/internal/schema"
)

// MaxBodyBytes caps the size of documents accepted for validation.
const MaxBodyBytes = 1 << 20 // 1 MiB

// Error codes returned in the "error" field of failed responses.
const (
	CodeInvalidDID         = "invalidDid"
	CodeMethodNotSupported = "methodNotSupported"
	CodeUnknownSchema      = "unknownSchema"
	CodeInvalidBody        = "invalidBody"
	CodeInternal           = "internalError"
)

// ResolutionResponse is the body of a successful identifier lookup.
type ResolutionResponse struct {
	DID         string `json:"did"`
	Method      string `json:"method"`
	Identifier  string `json:"identifier"`
	DocumentURL string `json:"documentUrl"`
}

// SchemasResponse lists registered schema ids.
type SchemasResponse struct {
	Schemas []string `json:"schemas"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type api struct {
	registry  *resolver.Registry
	validator *schema.Validator
	logger    *zap.Logger
}

// NewHandler returns the chi router serving the API.
func NewHandler(registry *resolver.Registry, validator *schema.Validator, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &api{registry: registry, validator: validator, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(escapedRoutePath)
	r.Use(a.accessLog)

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			a.logger.Warn("write error", zap.Error(err))
		}
	})

	r.Get("/1.0/identifiers/{did}", a.resolve)
	r.Get("/schemas", a.listSchemas)
	r.Post("/schemas/validate", a.validate)

	return r
}

// escapedRoutePath routes on the escaped request path so that URL parameters
// are decoded exactly once, by the handler.
func escapedRoutePath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			rctx.RoutePath = r.URL.EscapedPath()
		}
		next.ServeHTTP(w, r)
	})
}

func (a *api) resolve(w http.ResponseWriter, r *http.Request) {
	did, err := url.PathUnescape(chi.URLParam(r, "did"))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, CodeInvalidDID, "malformed DID escape")
		return
	}

	res, err := a.registry.Resolve(did)
	switch {
	case err == nil:
	case resolver.IsUnsupportedMethod(err):
		a.writeError(w, http.StatusNotImplemented, CodeMethodNotSupported, err.Error())
		return
	case resolver.IsInvalidDID(err):
		a.writeError(w, http.StatusBadRequest, CodeInvalidDID, err.Error())
		return
	default:
		a.logger.Error("resolution failed", zap.String("did", did), zap.Error(err))
		a.writeError(w, http.StatusInternalServerError, CodeInternal, "resolution failed")
		return
	}

	a.writeJSON(w, http.StatusOK, ResolutionResponse{
		DID:         res.DID.String(),
		Method:      res.DID.Method(),
		Identifier:  res.DID.Identifier(),
		DocumentURL: res.DocumentURL,
	})
}

func (a *api) listSchemas(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, SchemasResponse{Schemas: a.validator.Schemas()})
}

func (a *api) validate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("schema")
	if _, err := a.validator.Resolve(name); err != nil {
		a.writeError(w, http.StatusNotFound, CodeUnknownSchema, err.Error())
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.writeError(w, http.StatusRequestEntityTooLarge, CodeInvalidBody, "request body too large")
			return
		}
		a.writeError(w, http.StatusBadRequest, CodeInvalidBody, "failed to read request body")
		return
	}
	if !json.Valid(body) {
		a.writeError(w, http.StatusBadRequest, CodeInvalidBody, "request body is not valid JSON")
		return
	}

	res, err := a.validator.ValidateJSON(body, name)
	if err != nil {
		a.logger.Error("validation failed", zap.String("schema", name), zap.Error(err))
		a.writeError(w, http.StatusInternalServerError, CodeInternal, "validation failed")
		return
	}
	a.writeJSON(w, http.StatusOK, res)
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("write error", zap.Error(err))
	}
}

func (a *api) writeError(w http.ResponseWriter, status int, code, msg string) {
	a.writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}

func (a *api) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			a.logger.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)))
		}()
		next.ServeHTTP(ww, r)
	})
}
