// Package imagegen клиент внешнего генератора фоновых картинок
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"house_fund/internal/model"
)

type request struct {
	Prompt string `json:"prompt"`
}

type response struct {
	URL      string `json:"url"`
	Data     string `json:"image_base64"`
	MimeType string `json:"mime_type"`
}

// Client Генератор картинок по текстовому описанию
type Client struct {
	url  string
	http *http.Client
}

// NewClient timeout ограничивает один запрос к генератору
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:  strings.TrimRight(url, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// RequestSceneImage Отправить описание и получить URL картинки.
// Картинка в base64 возвращается как data URL
func (c *Client) RequestSceneImage(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(request{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrAssetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", model.ErrAssetUnavailable, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode: %v", model.ErrAssetUnavailable, err)
	}
	switch {
	case out.URL != "":
		return out.URL, nil
	case out.Data != "":
		mime := out.MimeType
		if mime == "" {
			mime = "image/png"
		}
		return "data:" + mime + ";base64," + out.Data, nil
	}
	return "", fmt.Errorf("%w: empty response", model.ErrAssetUnavailable)
}
