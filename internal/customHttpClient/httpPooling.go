package customHttpClient

import (
	"net/http"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/config"
)

// one shared transport so the OpenAI embedding/chat/tts clients reuse
// connections instead of paying the TLS handshake per call
var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

func PooledClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: customTransport,
		Timeout:   timeout,
	}
}
