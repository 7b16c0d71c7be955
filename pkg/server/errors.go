package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/brand-weaver/pkg/linkedin"
	"github.com/nikogura/brand-weaver/pkg/logging"
	"github.com/pkg/errors"
)

// StatusForKind maps an extraction failure kind to an HTTP status.
func StatusForKind(kind linkedin.Kind) (status int) {
	switch kind {
	case linkedin.KindInvalidInput:
		status = http.StatusBadRequest
	case linkedin.KindRateLimited:
		status = http.StatusTooManyRequests
	case linkedin.KindNetwork:
		status = http.StatusServiceUnavailable
	case linkedin.KindUpstream:
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}
	return status
}

func (s *Server) extractError(c *gin.Context, err error, kind linkedin.Kind) {
	hint := linkedin.Hint(kind)
	var le *linkedin.Error
	if errors.As(err, &le) && le.Hint != "" {
		hint = le.Hint
	}

	s.logger.Warn("extraction failed", logging.String("kind", string(kind)), logging.Err(err))
	_ = c.Error(err)

	c.AbortWithStatusJSON(StatusForKind(kind), errorResponse{
		Error: err.Error(),
		Kind:  string(kind),
		Hint:  hint,
	})
}

func (s *Server) badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (s *Server) notFound(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: msg})
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.logger.Error("request failed", logging.Err(err))
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
