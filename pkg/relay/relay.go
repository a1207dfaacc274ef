package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/glucolog/health-tracker-service/pkg/common"
	"go.uber.org/zap"
)

const SecretHeader = "X-Webhook-Secret"

var ErrMissingConfiguration = errors.New("webhook destination URL or secret not configured")

// Relay forwards notification payloads to one externally configured HTTP
// endpoint, injecting the shared secret server-side. The secret never leaves
// process configuration.
type Relay struct {
	URL        string
	Secret     string
	Client     *http.Client
	RetryDelay time.Duration
}

func New(url, secret string, retryDelay time.Duration) *Relay {
	if retryDelay <= 0 {
		retryDelay = time.Second
	}
	return &Relay{
		URL:        url,
		Secret:     secret,
		Client:     http.DefaultClient,
		RetryDelay: retryDelay,
	}
}

func (r *Relay) Configured() bool {
	return r.URL != "" && r.Secret != ""
}

func (r *Relay) post(body []byte) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, r.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SecretHeader, r.Secret)
	return r.Client.Do(req)
}

// Forward performs a single outbound POST and returns the destination's
// status code and body verbatim. Fails closed before any outbound call when
// the destination URL or secret is absent.
func (r *Relay) Forward(body []byte) (int, []byte, error) {
	if !r.Configured() {
		return 0, nil, ErrMissingConfiguration
	}

	resp, err := r.post(body)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, respBody, nil
}

// Notify delivers payload with at most 2 total attempts: on a network error
// or non-2xx response it waits RetryDelay once and re-POSTs the identical
// body and headers. No backoff, no jitter, no queue. The caller treats a
// returned error as a non-fatal warning; the record that triggered the
// notification is already persisted.
func (r *Relay) Notify(payload any) error {
	logger := common.GetLoggerWith(common.LoggerNameWebhookRelay)

	if !r.Configured() {
		return ErrMissingConfiguration
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	attemptErr := r.attempt(body)
	if attemptErr == nil {
		logger.Info("Notification delivered")
		return nil
	}

	logger.Warn("Notification attempt failed, retrying once", zap.Error(attemptErr))
	time.Sleep(r.RetryDelay)

	if retryErr := r.attempt(body); retryErr != nil {
		logger.Warn("Notification retry failed", zap.Error(retryErr))
		return retryErr
	}

	logger.Info("Notification delivered on retry")
	return nil
}

func (r *Relay) attempt(body []byte) error {
	resp, err := r.post(body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook destination returned status %d", resp.StatusCode)
	}
	return nil
}
