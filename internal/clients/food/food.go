// food — клиент OpenFoodFacts: поиск продукта и калорийности на 100 г.
// Используется разговорным слоем перед записью съеденных калорий.
package food

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrNoMatches — по запросу не нашлось продуктов с данными о калорийности.
var ErrNoMatches = errors.New("no matches")

// DefaultBaseURL — боевой эндпойнт поиска OpenFoodFacts.
const DefaultBaseURL = "https://world.openfoodfacts.org/cgi/search.pl"

// maxResults — сколько лучших совпадений возвращается пользователю на выбор.
const maxResults = 5

// Product — найденный продукт с калорийностью на 100 г.
type Product struct {
	Name           string
	KcalPer100Gram float64
}

// Client — HTTP-клиент поиска еды.
type Client struct {
	client   *http.Client
	baseURL  string
	pageSize int
}

// New создаёт клиент. nil http.Client заменяется клиентом с таймаутом 10s,
// pageSize <= 0 — значением 10.
func New(client *http.Client, baseURL string, pageSize int) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if pageSize <= 0 {
		pageSize = 10
	}

	return &Client{client: client, baseURL: baseURL, pageSize: pageSize}
}

// Search возвращает до пяти продуктов, ранжированных по похожести названия
// на запрос. Продукты без данных о калорийности отбрасываются.
//
// Ошибки:
//   - ErrNoMatches — пустая выдача или ни одного продукта с калорийностью;
//   - прочие сетевые и протокольные ошибки — как есть.
func (c *Client) Search(ctx context.Context, query string) ([]Product, error) {
	const op = "clients/food/Search"

	q := url.Values{}
	q.Set("action", "process")
	q.Set("search_terms", query)
	q.Set("json", "true")
	q.Set("fields", "product_name,nutriments")
	q.Set("page_size", strconv.Itoa(c.pageSize))
	q.Set("lc", "ru")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	var payload struct {
		Products []struct {
			ProductName string `json:"product_name"`
			Nutriments  struct {
				EnergyKcal100g *float64 `json:"energy-kcal_100g"`
			} `json:"nutriments"`
		} `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	var products []Product
	for _, p := range payload.Products {
		if p.Nutriments.EnergyKcal100g == nil {
			continue
		}

		name := strings.TrimSpace(p.ProductName)
		if name == "" {
			continue
		}

		products = append(products, Product{
			Name:           name,
			KcalPer100Gram: *p.Nutriments.EnergyKcal100g,
		})
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoMatches)
	}

	// Стабильная сортировка по убыванию похожести: при равных
	// коэффициентах сохраняется порядок выдачи сервиса.
	lowered := strings.ToLower(query)
	sort.SliceStable(products, func(i, j int) bool {
		return similarity(lowered, strings.ToLower(products[i].Name)) >
			similarity(lowered, strings.ToLower(products[j].Name))
	})

	if len(products) > maxResults {
		products = products[:maxResults]
	}

	return products, nil
}

// similarity — коэффициент похожести строк в [0, 1]:
// удвоенная длина наибольшей общей подпоследовательности рун,
// делённая на суммарную длину строк.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}
