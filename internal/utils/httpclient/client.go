package httpclient

import (
	"net/http"
	"net/url"
	"time"

	"SurebetStats/internal/config"

	"github.com/sirupsen/logrus"
)

// NewHTTPClient builds the outbound client used for Google API traffic, with
// timeout and optional proxy taken from configuration.
func NewHTTPClient(cfg *config.GoogleConfig, logger *logrus.Logger) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			logger.WithError(err).WithField("proxy", cfg.Proxy).Warn("invalid proxy address, continuing without proxy")
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
			logger.WithField("proxy", cfg.Proxy).Info("outbound HTTP client using proxy")
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30
	}
	return &http.Client{
		Timeout:   time.Duration(timeout) * time.Second,
		Transport: transport,
	}
}
