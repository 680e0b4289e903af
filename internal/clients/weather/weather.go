// weather — клиент OpenWeather: текущая температура по названию города.
// Используется при настройке профиля и при суточном пересчёте норм.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrCityNotFound — город не найден (HTTP 404).
	ErrCityNotFound = errors.New("city not found")
	// ErrBadAPIKey — неверный API-ключ (HTTP 401).
	ErrBadAPIKey = errors.New("bad api key")
)

// DefaultBaseURL — боевой эндпойнт OpenWeather.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client — HTTP-клиент погодного сервиса. Таймауты настраиваются
// снаружи через переданный http.Client.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// New создаёт клиент. Пустой baseURL заменяется боевым эндпойнтом,
// nil http.Client — клиентом с таймаутом 10s.
func New(client *http.Client, baseURL, apiKey string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{client: client, baseURL: baseURL, apiKey: apiKey}
}

// CurrentTemp возвращает текущую температуру в городе, °C.
//
// Ошибки:
//   - ErrCityNotFound / ErrBadAPIKey — в соответствии со статусом ответа;
//   - прочие сетевые и протокольные ошибки — как есть.
func (c *Client) CurrentTemp(ctx context.Context, city string) (float64, error) {
	const op = "clients/weather/CurrentTemp"

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("%s: %w", op, ErrCityNotFound)
	case http.StatusUnauthorized:
		io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("%s: %w", op, ErrBadAPIKey)
	default:
		io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	var payload struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%s: decode: %w", op, err)
	}

	return payload.Main.Temp, nil
}
