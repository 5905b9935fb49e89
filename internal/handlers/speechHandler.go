package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/avitale/VillageGuideAPI/internal/api"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
)

// SpeechHandler godoc
// @Summary      Read text aloud
// @Description  Synthesizes the given text to speech and streams back MP3 audio. Meant for reading guide replies aloud.
// @Tags         Speech
// @Accept       json
// @Produce      audio/mpeg
// @Param        request  body  api.SpeechRequest  true  "Text and language"
// @Success      200  "MP3 audio stream"
// @Failure      400  {object}  api.ErrorResponse "Invalid request data"
// @Failure      503  {object}  api.ErrorResponse "Speech synthesis unavailable"
// @Router       /speech [post]
func SpeechHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	if handlerInstance.speech == nil {
		WriteErrorResponse(w, http.StatusServiceUnavailable, "", "Speech synthesis is not configured")
		return
	}

	var requestData api.SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil || requestData.Text == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
		return
	}
	defer r.Body.Close()

	audio, err := handlerInstance.speech.Synthesize(r.Context(), requestData.Text, chatModel.ParseLanguage(requestData.Language))
	if err != nil {
		logRH.Error("Speech synthesis failed", "error", err)
		WriteErrorResponse(w, http.StatusServiceUnavailable, "", "Speech synthesis failed")
		return
	}
	defer audio.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, audio); err != nil {
		logRH.Error("Streaming audio failed", "error", err)
	}
}

// HealthHandler responds 200 while the process is alive.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
