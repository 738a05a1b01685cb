package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"member-qa/internal/usecase"
)

// ServiceName identifies the service in the health and root payloads.
const ServiceName = "Member QA (Clean)"

const correlationHeader = "X-Correlation-Id"

// askUseCase is the slice of the ask service consumed by the router.
type askUseCase interface {
	Ask(ctx context.Context, in usecase.AskInput) (usecase.AskOutput, error)
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// NewRouter builds the gin engine with the health, root, and ask routes.
func NewRouter(ask askUseCase) *gin.Engine {
	r := gin.Default()
	r.Use(correlationID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": ServiceName})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   ServiceName,
			"message":   "Welcome. Use POST /ask with {'question': '...'}.",
			"endpoints": gin.H{"health": "/health", "ask": "/ask"},
		})
	})

	r.POST("/ask", func(c *gin.Context) {
		var req askRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Request body must be JSON with a question field"})
			return
		}

		out, err := ask.Ask(c.Request.Context(), usecase.AskInput{Question: req.Question})
		if err != nil {
			status, detail := mapError(err)
			c.JSON(status, gin.H{"detail": detail})
			return
		}
		c.JSON(http.StatusOK, askResponse{Answer: out.Answer})
	})

	return r
}

// correlationID echoes the caller's correlation ID or generates one, so every
// response carries the header.
func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(correlationHeader, id)
		c.Next()
	}
}

func mapError(err error) (int, string) {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) {
		return ucErr.HTTPStatus(), ucErr.Detail()
	}
	return http.StatusInternalServerError, "Internal server error"
}
