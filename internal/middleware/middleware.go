package middleware

import (
	"net/http"
	"strconv"

	"github.com/avitale/VillageGuideAPI/internal/handlers"
	"github.com/avitale/VillageGuideAPI/internal/metrics"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var HealthHandler = Wrap(handlers.HealthHandler)

var ChatHandler = Wrap(handlers.ChatHandler)
var CreateConversationHandler = Wrap(handlers.CreateConversationHandler)
var ListConversationsHandler = Wrap(handlers.ListConversationsHandler)
var GetConversationHandler = Wrap(handlers.GetConversationHandler)
var DeleteConversationHandler = Wrap(handlers.DeleteConversationHandler)
var ListPersonasHandler = Wrap(handlers.ListPersonasHandler)
var UploadDocumentHandler = Wrap(handlers.UploadDocumentHandler)
var GetDocumentStatusHandler = Wrap(handlers.GetDocumentStatusHandler)
var SpeechHandler = Wrap(handlers.SpeechHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Debug("New request received")
	re = injectTrace(re)
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		return re //stop if auth fails
	}
	re = rateLimiter(re)
	return re
}
