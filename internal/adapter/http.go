// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-gambit/internal/config"
	"github.com/MKhiriev/go-gambit/internal/logger"
	"github.com/MKhiriev/go-gambit/internal/utils"
	"github.com/MKhiriev/go-gambit/models"
	"github.com/go-resty/resty/v2"
)

// EventEntitlements is the SSE event name carrying a JSON snapshot.
const EventEntitlements = models.EntitlementsEvent

type httpServerAdapter struct {
	client *utils.HTTPClient
	// stream has no timeout; the SSE connection stays open indefinitely.
	stream *utils.HTTPClient

	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme, in which case http is assumed.
// Purchase bodies are signed only when appCfg.HashKey is set.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		stream: utils.NewHTTPClient(baseURL, 0),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Identify implements [ServerAdapter]. It POSTs to /api/customers/identify and
// takes the bearer token from the Authorization response header.
func (h *httpServerAdapter) Identify(ctx context.Context, appUserID string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.IdentifyRequest{AppUserID: appUserID}).
		Post("/api/customers/identify")
	if err != nil {
		return "", fmt.Errorf("identify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("identify parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

// Offerings implements [ServerAdapter].
func (h *httpServerAdapter) Offerings(ctx context.Context) ([]models.Package, error) {
	var packages []models.Package

	resp, err := h.authedRequest(ctx).
		SetResult(&packages).
		Get("/api/offerings")
	if err != nil {
		return nil, fmt.Errorf("offerings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return packages, nil
}

// Purchase implements [ServerAdapter]. The JSON body is signed with the
// HashSHA256 header so the server can reject tampered requests.
func (h *httpServerAdapter) Purchase(ctx context.Context, packageID int64) (models.EntitlementSnapshot, error) {
	body, err := json.Marshal(models.PurchaseRequest{PackageID: packageID})
	if err != nil {
		return models.EntitlementSnapshot{}, fmt.Errorf("encode purchase request: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(body))
	}

	return h.snapshot(req.Post("/api/purchases"))
}

// Restore implements [ServerAdapter].
func (h *httpServerAdapter) Restore(ctx context.Context) (models.EntitlementSnapshot, error) {
	return h.snapshot(h.authedRequest(ctx).Post("/api/purchases/restore"))
}

// Entitlements implements [ServerAdapter].
func (h *httpServerAdapter) Entitlements(ctx context.Context) (models.EntitlementSnapshot, error) {
	return h.snapshot(h.authedRequest(ctx).Get("/api/entitlements"))
}

// DeleteCustomer implements [ServerAdapter].
func (h *httpServerAdapter) DeleteCustomer(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/customers/me")
	if err != nil {
		return fmt.Errorf("delete customer request: %w", err)
	}

	return mapHTTPError(resp)
}

// StreamEntitlements implements [ServerAdapter].
func (h *httpServerAdapter) StreamEntitlements(ctx context.Context, handle func(models.EntitlementSnapshot)) error {
	token := h.Token()
	if token == "" {
		return ErrNoToken
	}

	resp, err := h.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Authorization", "Bearer "+token).
		Get("/api/entitlements/stream")
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("entitlement stream request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(body, 1<<10))
		return mapStatus(resp.StatusCode(), string(msg))
	}

	err = readEvents(body, func(event, data string) {
		if event != EventEntitlements {
			return
		}
		var snap models.EntitlementSnapshot
		if err := json.Unmarshal([]byte(data), &snap); err != nil {
			h.logger.Err(err).Str("data", data).Msg("skipping malformed entitlement event")
			return
		}
		handle(snap)
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("read entitlement stream: %w", err)
	}

	return ErrStreamClosed
}

// readEvents parses a text/event-stream body, calling dispatch once per
// blank-line terminated event. Comment lines (":" prefix) are keepalives.
func readEvents(r io.Reader, dispatch func(event, data string)) error {
	scanner := bufio.NewScanner(r)

	var event string
	var data []string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if len(data) > 0 {
				dispatch(event, strings.Join(data, "\n"))
			}
			event, data = "", nil
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (h *httpServerAdapter) snapshot(resp *resty.Response, err error) (models.EntitlementSnapshot, error) {
	if err != nil {
		return models.EntitlementSnapshot{}, fmt.Errorf("entitlements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntitlementSnapshot{}, err
	}

	var snap models.EntitlementSnapshot
	if err = json.Unmarshal(resp.Body(), &snap); err != nil {
		return models.EntitlementSnapshot{}, fmt.Errorf("decode entitlement snapshot: %w", err)
	}
	return snap, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
