package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/docgenius/internal/handlers"
	"github.com/akolanti/docgenius/internal/metrics"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

type requestResponseStruct struct {
	writer        http.ResponseWriter
	req           *http.Request
	badRequest    failureStruct
	preflightDone bool
	logger        *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var UploadHandler = Wrap(handlers.UploadHandler)
var ListDocumentsHandler = Wrap(handlers.ListDocumentsHandler)
var AskHandler = Wrap(handlers.AskHandler)

var GenerateHandler = Wrap(handlers.GenerateHandler)
var ProbeHandler = Wrap(handlers.ProbeHandler)
var HealthHandler = Wrap(handlers.HealthHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		if re.preflightDone {
			return //preflight already answered
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	re = corsPolicy(re)
	if re.badRequest.isBadRequest || re.preflightDone {
		return re
	}
	re = rateLimiter(re)
	if re.badRequest.isBadRequest {
		return re //stop here if rate limit fails
	}

	return re
}
