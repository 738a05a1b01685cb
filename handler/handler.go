package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"member-qa/internal/usecase"
)

const (
	serviceName       = "Member QA (Clean)"
	correlationHeader = "X-Correlation-Id"
)

// askUseCase is the slice of the ask service consumed by the handler.
type askUseCase interface {
	Ask(ctx context.Context, in usecase.AskInput) (usecase.AskOutput, error)
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Handler serves API Gateway proxy events for the ask and health routes.
type Handler struct {
	ask askUseCase
}

func NewHandler(ask askUseCase) (*Handler, error) {
	if ask == nil {
		return nil, errors.New("handler: ask service must not be nil")
	}
	return &Handler{ask: ask}, nil
}

func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	headers := map[string]string{
		"Content-Type":    "application/json",
		correlationHeader: correlationID(event.Headers),
	}

	switch {
	case event.HTTPMethod == http.MethodGet && event.Path == "/health":
		return respond(http.StatusOK, map[string]string{"status": "healthy", "service": serviceName}, headers)
	case event.HTTPMethod == http.MethodPost && event.Path == "/ask":
		return h.handleAsk(ctx, event, headers)
	}
	return respond(http.StatusNotFound, errorResponse{Detail: "Not found"}, headers)
}

func (h *Handler) handleAsk(ctx context.Context, event events.APIGatewayProxyRequest, headers map[string]string) (events.APIGatewayProxyResponse, error) {
	var req askRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return respond(http.StatusBadRequest, errorResponse{Detail: "Request body must be JSON with a question field"}, headers)
	}

	out, err := h.ask.Ask(ctx, usecase.AskInput{Question: req.Question})
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) {
			return respond(ucErr.HTTPStatus(), errorResponse{Detail: ucErr.Detail()}, headers)
		}
		return respond(http.StatusInternalServerError, errorResponse{Detail: "Internal server error"}, headers)
	}
	return respond(http.StatusOK, askResponse{Answer: out.Answer}, headers)
}

// correlationID returns the caller-provided header value regardless of case,
// or a fresh UUID.
func correlationID(reqHeaders map[string]string) string {
	for k, v := range reqHeaders {
		if strings.EqualFold(k, correlationHeader) && v != "" {
			return v
		}
	}
	return uuid.NewString()
}

func respond(status int, body any, headers map[string]string) (events.APIGatewayProxyResponse, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    headers,
			Body:       `{"detail":"Internal server error"}`,
		}, nil
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(buf),
	}, nil
}
