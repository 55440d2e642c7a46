package api

import (
	"errors"
	"net/http"

	"SurebetStats/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// errorBody is the uniform error payload of every non-2xx response.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// respondError translates the error taxonomy into a status code: validation
// 400, not-found 404, everything else 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var (
		ve *apperr.ValidationError
		nf *apperr.NotFoundError
		uf *apperr.UpstreamFetchError
		pe *apperr.PersistenceError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, errorBody{Error: "validation failed", Detail: ve.Msg})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, errorBody{Error: "not found", Detail: nf.Msg})
	case errors.As(err, &uf):
		logFailure(c, logger, err, "upstream fetch failed")
		c.JSON(http.StatusInternalServerError, errorBody{Error: "upstream fetch failed", Detail: uf.Error()})
	case errors.As(err, &pe):
		logFailure(c, logger, err, "persistence failure")
		c.JSON(http.StatusInternalServerError, errorBody{Error: "persistence failure", Detail: pe.Error()})
	default:
		logFailure(c, logger, err, "unexpected failure")
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal error", Detail: err.Error()})
	}
}

// logFailure tags server-side failures with the id assigned by the RequestID
// middleware, so a 500 in the logs can be matched to its response.
func logFailure(c *gin.Context, logger *logrus.Logger, err error, msg string) {
	logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
}

// badRequest is the shortcut for request-shape problems caught in handlers.
func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: "validation failed", Detail: detail})
}
