package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"github.com/go-resty/resty/v2"
)

type httpLogbookAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPLogbookAPI constructs the REST implementation of [LogbookAPI]. The
// base URL is normalised first: a missing scheme defaults to http and
// trailing slashes are dropped. cfg.Token, when set, is used until Login
// replaces it.
func NewHTTPLogbookAPI(cfg config.ClientConfig, logger *logger.Logger) (LogbookAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	api := &httpLogbookAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout, ""),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
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

func (h *httpLogbookAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpLogbookAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts to /api/auth/login. The token is read from the response body;
// the Authorization header is only a fallback.
func (h *httpLogbookAPI) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&loginResp).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if loginResp.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		loginResp.Token = token
	}

	h.SetToken(loginResp.Token)
	h.logger.Debug().Str("user_id", loginResp.User.ID).Msg("logged in")

	return loginResp, nil
}

func (h *httpLogbookAPI) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpLogbookAPI) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionInfo{}, err
	}

	return info, nil
}

func (h *httpLogbookAPI) ImportVehicles(ctx context.Context, document []byte, dryRun bool) (models.ImportReport, error) {
	var report models.ImportReport

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("dryRun", strconv.FormatBool(dryRun)).
		SetBody(document).
		SetResult(&report).
		Post("/api/vehicles/import")
	if err != nil {
		return models.ImportReport{}, fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ImportReport{}, err
	}

	return report, nil
}

func (h *httpLogbookAPI) MonthReport(ctx context.Context, month models.MonthKey) ([]models.MonthlyTotal, error) {
	var report []models.MonthlyTotal

	resp, err := h.authedRequest(ctx).
		SetQueryParam("month", month.String()).
		SetResult(&report).
		Get("/api/stats/report")
	if err != nil {
		return nil, fmt.Errorf("month report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return report, nil
}

func (h *httpLogbookAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
