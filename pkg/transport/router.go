package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raywall/users-quick-service/pkg/handlers"
	"github.com/raywall/users-quick-service/pkg/metrics"
	"github.com/raywall/users-quick-service/pkg/responder"
)

const (
	HeaderCorrelationID = "x-correlation-id"

	metricRequestCount   = "users_api.request"
	metricRequestLatency = "users_api.request.latency_ms"
)

// Router adapta eventos do API Gateway para os handlers de operação.
type Router struct {
	handlers *handlers.UserHandler
	metrics  metrics.Provider
}

// NewRouter cria uma nova instância do adaptador Lambda.
func NewRouter(h *handlers.UserHandler, provider metrics.Provider) *Router {
	if provider == nil {
		provider = metrics.Noop{}
	}
	return &Router{handlers: h, metrics: provider}
}

// Handle processa a requisição Lambda: observabilidade + despacho.
func (r *Router) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	// Case no mapa de headers pode variar dependendo do proxy
	corrID := req.Headers["X-Correlation-Id"]
	if corrID == "" {
		corrID = req.Headers[HeaderCorrelationID]
	}
	if corrID == "" {
		corrID = uuid.NewString()
	}

	// Logger contextual por invocação
	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)

	op, response, err := r.dispatch(ctx, req)

	duration := time.Since(start).Milliseconds()
	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Str("operation", op).
		Int("status", response.StatusCode).
		Int64("latency_ms", duration).
		Msg("lambda request completed")

	tags := []string{
		fmt.Sprintf("operation:%s", op),
		fmt.Sprintf("status:%d", response.StatusCode),
	}
	_ = r.metrics.Count(metricRequestCount, 1, tags)
	_ = r.metrics.Histogram(metricRequestLatency, float64(duration), tags)

	if response.Headers == nil {
		response.Headers = make(map[string]string)
	}
	response.Headers[HeaderCorrelationID] = corrID

	return response, err
}

// dispatch roteia pelo método HTTP e pela presença do userId no path.
func (r *Router) dispatch(ctx context.Context, req events.APIGatewayProxyRequest) (string, events.APIGatewayProxyResponse, error) {
	switch req.HTTPMethod {
	case http.MethodPost:
		resp, err := r.handlers.Create(ctx, req)
		return "create", resp, err

	case http.MethodGet:
		if _, ok := req.PathParameters["userId"]; ok {
			resp, err := r.handlers.Get(ctx, req)
			return "get", resp, err
		}
		resp, err := r.handlers.List(ctx, req)
		return "list", resp, err

	case http.MethodPut:
		resp, err := r.handlers.Update(ctx, req)
		return "update", resp, err

	case http.MethodDelete:
		resp, err := r.handlers.Delete(ctx, req)
		return "delete", resp, err

	case http.MethodOptions:
		// Preflight CORS: os headers permissivos já vão em toda resposta.
		return "options", responder.Success(map[string]string{}), nil

	default:
		return "unknown", responder.BadRequest(fmt.Sprintf("Unsupported method: %s", req.HTTPMethod)), nil
	}
}
