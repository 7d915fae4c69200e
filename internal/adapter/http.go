package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/founder-directory/internal/config"
	"github.com/MKhiriev/founder-directory/internal/logger"
	"github.com/MKhiriev/founder-directory/internal/utils"
	"github.com/MKhiriev/founder-directory/models"
)

// Endpoint paths relative to the directory base URL.
const (
	deleteFounderPath   = "deletefounder.php"
	createFounderPath   = "addfounder.php"
	updateFounderPath   = "updatefounder.php"
	getUpdatesSincePath = "getupdatessince.php"
	uploadPhotoPath     = "uploadphoto.php"
	downloadPhotoPath   = "getphoto.php"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
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

// DeleteFounder implements [ServerAdapter] via GET deletefounder.php?k&i.
func (h *httpServerAdapter) DeleteFounder(ctx context.Context, token, id string) (int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			paramToken: token,
			paramID:    id,
		}).
		Get(deleteFounderPath)
	if err != nil {
		return 0, fmt.Errorf("delete founder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	maxVersion, err := decodeMaxVersion(resp.String())
	if err != nil {
		return 0, fmt.Errorf("delete founder %s: %w", id, err)
	}

	return maxVersion, nil
}

// CreateFounder implements [ServerAdapter] via POST addfounder.php.
func (h *httpServerAdapter) CreateFounder(ctx context.Context, token string, f models.Founder) (models.Founder, error) {
	form := encodeFounderForm(f)
	form[paramToken] = token

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(createFounderPath)
	if err != nil {
		return models.Founder{}, fmt.Errorf("create founder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Founder{}, err
	}

	created, err := decodeAcknowledgement(resp.String())
	if err != nil {
		return models.Founder{}, fmt.Errorf("create founder %s: %w", f.ID, err)
	}

	return created, nil
}

// UpdateFounder implements [ServerAdapter] via POST updatefounder.php.
func (h *httpServerAdapter) UpdateFounder(ctx context.Context, token string, f models.Founder) (models.Founder, error) {
	form := encodeFounderForm(f)
	form[paramToken] = token
	form[paramID] = f.ID
	form[paramVersion] = strconv.FormatInt(f.Version, 10)

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(updateFounderPath)
	if err != nil {
		return models.Founder{}, fmt.Errorf("update founder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Founder{}, err
	}

	updated, err := decodeAcknowledgement(resp.String())
	if err != nil {
		return models.Founder{}, fmt.Errorf("update founder %s: %w", f.ID, err)
	}

	return updated, nil
}

// GetUpdatesSince implements [ServerAdapter] via GET getupdatessince.php?k&v&x.
func (h *httpServerAdapter) GetUpdatesSince(ctx context.Context, token string, localMax, serverMax int64) (models.DeltaBatch, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			paramToken:    token,
			paramVersion:  strconv.FormatInt(localMax, 10),
			paramUpperMax: strconv.FormatInt(serverMax, 10),
		}).
		Get(getUpdatesSincePath)
	if err != nil {
		return models.DeltaBatch{}, fmt.Errorf("get updates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeltaBatch{}, err
	}

	body := strings.TrimSpace(resp.String())
	if isRejected(body) {
		return models.DeltaBatch{}, fmt.Errorf("get updates: %w", ErrRejected)
	}
	if !gjson.Valid(body) {
		return models.DeltaBatch{}, fmt.Errorf("get updates: %w: invalid json", ErrMalformedResponse)
	}
	parsed := gjson.Parse(body)
	if !parsed.IsArray() {
		return models.DeltaBatch{}, fmt.Errorf("get updates: %w: expected array", ErrMalformedResponse)
	}

	var batch models.DeltaBatch
	parsed.ForEach(func(index, value gjson.Result) bool {
		delta, decodeErr := decodeFounder(value)
		if decodeErr != nil {
			log.Warn().Err(decodeErr).
				Str("func", "httpServerAdapter.GetUpdatesSince").
				Int64("index", index.Int()).
				Msg("skipping malformed entry")
			batch.Skipped++
			return true
		}

		batch.Entries = append(batch.Entries, delta)
		return true
	})

	return batch, nil
}

// UploadPhoto implements [ServerAdapter] via multipart POST uploadphoto.php.
func (h *httpServerAdapter) UploadPhoto(ctx context.Context, token string, key models.PhotoKey, data []byte) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			paramToken:     token,
			paramID:        key.ID,
			paramPhotoRole: string(key.Role),
		}).
		SetFileReader(paramPhotoFile, key.FileName()+".jpg", bytes.NewReader(data)).
		Post(uploadPhotoPath)
	if err != nil {
		return fmt.Errorf("upload photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	body := strings.TrimSpace(resp.String())
	if !gjson.Valid(body) {
		return fmt.Errorf("upload photo %s: %w: invalid json", key, ErrMalformedResponse)
	}

	result := gjson.Get(body, "result")
	switch result.String() {
	case "success":
		return nil
	case "failure":
		return fmt.Errorf("upload photo %s: %w", key, ErrRejected)
	default:
		return fmt.Errorf("upload photo %s: %w: result %q", key, ErrMalformedResponse, result.Raw)
	}
}

// DownloadPhoto implements [ServerAdapter] via GET getphoto.php?k&i&t.
func (h *httpServerAdapter) DownloadPhoto(ctx context.Context, token string, key models.PhotoKey) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			paramToken:     token,
			paramID:        key.ID,
			paramPhotoRole: string(key.Role),
		}).
		Get(downloadPhotoPath)
	if err != nil {
		return nil, fmt.Errorf("download photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	data := resp.Body()
	if len(data) == 0 {
		return nil, fmt.Errorf("download photo %s: %w", key, ErrNoPhoto)
	}

	return data, nil
}
