package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Hosted talks to the third-party record store over its JSON API.
type Hosted struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHosted(baseURL, apiKey string) *Hosted {
	return &Hosted{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

// envelope is the store's response wrapper: {"data": ..., "error": {...}}.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (h *Hosted) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("record store request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read record store response: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("decode record store response: %w", err)
	}

	if resp.StatusCode >= 300 || env.Error != nil {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}
	return env.Data, nil
}

func (h *Hosted) List(ctx context.Context, kind Kind, filters Filters) ([]Record, error) {
	u, err := url.Parse(fmt.Sprintf("%s/api/records/%s", h.baseURL, kind))
	if err != nil {
		return nil, err
	}
	q := u.Query()
	for k, v := range filters {
		q.Set(k, fmt.Sprintf("%v", v))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	data, err := h.do(req)
	if err != nil {
		return nil, err
	}

	var out []Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse list response: %w", err)
	}
	return out, nil
}

func (h *Hosted) Create(ctx context.Context, kind Kind, values Record) (string, error) {
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/records/%s", h.baseURL, kind), bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := h.do(req)
	if err != nil {
		return "", err
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		return "", fmt.Errorf("parse create response: %w", err)
	}
	return created.ID, nil
}

func (h *Hosted) SetField(ctx context.Context, kind Kind, id, field string, value any) error {
	b, err := json.Marshal(map[string]any{"field": field, "value": value})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		fmt.Sprintf("%s/api/records/%s/%s", h.baseURL, kind, url.PathEscape(id)), bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = h.do(req)
	return err
}
