package middleware

import (
	"context"
	"net"
	"net/http"

	"github.com/akolanti/docgenius/internal/adapter/utils"
	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/handlers"
)

func injectTrace(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Injecting trace middleware")
	req := re.req
	if req == nil {
		//this is a bad request
		re.badRequest.httpCode = http.StatusBadRequest
		re.badRequest.errorMessage = "request is empty"
		re.badRequest.isBadRequest = true
		return re
	}
	trace := req.Header.Get("X-Trace-Id")
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	re.logger = re.logger.With("traceId", trace)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, trace)
	req.Header.Set(`X-Trace-Id`, trace)
	re.req = req.WithContext(ctx)

	re.logger.Debug("trace middleware injected")
	return re
}

// corsPolicy mirrors the allow-list behaviour of the original browser
// clients. An empty allow-list means every origin is accepted, which main
// refuses to start with in production mode.
func corsPolicy(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("CORS middleware")

	origin := re.req.Header.Get("Origin")
	if origin == "" {
		return re //not a browser cross-origin request
	}

	if !isAllowedOrigin(origin) {
		re.logger.Warn("Origin not in allow-list", "origin", origin)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusForbidden,
			errorMessage: "Origin not allowed",
		}
		return re
	}

	header := re.writer.Header()
	header.Set("Access-Control-Allow-Origin", origin)
	header.Set("Vary", "Origin")

	if re.req.Method == http.MethodOptions {
		header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type, X-Trace-Id")
		header.Set("Access-Control-Max-Age", "600")
		re.writer.WriteHeader(http.StatusNoContent)
		re.preflightDone = true
		return re
	}

	re.logger.Debug("CORS middleware authorized")
	return re
}

func isAllowedOrigin(origin string) bool {
	allowed := config.CORSAllowedOrigins()
	if len(allowed) == 0 {
		return true //dev mode, main enforces a list in production
	}
	for _, candidate := range allowed {
		if candidate == origin {
			return true
		}
	}
	return false
}

func rateLimiter(re requestResponseStruct) requestResponseStruct {
	re.logger.Debug("Rate limiter middleware")
	ip, _, err := net.SplitHostPort(re.req.RemoteAddr)
	if err != nil {
		ip = re.req.RemoteAddr
	}

	if !limiterInstance.GetLimiter(ip).Allow() {
		re.logger.Error("Too many requests", "Rate Limiter exceeded", ip)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusTooManyRequests,
			errorMessage: "Rate limit exceeded. Slow down bruh",
		}
		return re
	}
	re.logger.Debug("Rate limiter middleware authorized")
	return re
}

func handleBadRequest(re requestResponseStruct) bool {
	if re.badRequest.isBadRequest {
		re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", re.req.RemoteAddr)
		handlers.WriteErrorResponse(re.writer, re.badRequest.httpCode, re.badRequest.errorMessage)
		return false
	}
	return true
}
