package food

// Тесты клиента поиска еды (clients/food).
//
// Проверяем:
//  - фильтрацию продуктов без данных о калорийности;
//  - ранжирование по похожести названия на запрос;
//  - ограничение выдачи пятью продуктами;
//  - ErrNoMatches на пустой выдаче;
//  - поведение similarity на граничных строках.

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch_FiltersAndRanks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "process", r.URL.Query().Get("action"))
		require.Equal(t, "молоко", r.URL.Query().Get("search_terms"))
		require.Equal(t, "true", r.URL.Query().Get("json"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"products":[
			{"product_name":"Молочный шоколад","nutriments":{"energy-kcal_100g":534}},
			{"product_name":"Молоко","nutriments":{"energy-kcal_100g":60}},
			{"product_name":"Продукт без калорий","nutriments":{}}
		]}`)
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, 10)

	products, err := c.Search(context.Background(), "молоко")
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Точное совпадение названия выше частичного.
	require.Equal(t, "Молоко", products[0].Name)
	require.Equal(t, 60.0, products[0].KcalPer100Gram)
	require.Equal(t, "Молочный шоколад", products[1].Name)
}

func TestSearch_LimitsToFive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"products":[
			{"product_name":"a1","nutriments":{"energy-kcal_100g":1}},
			{"product_name":"a2","nutriments":{"energy-kcal_100g":2}},
			{"product_name":"a3","nutriments":{"energy-kcal_100g":3}},
			{"product_name":"a4","nutriments":{"energy-kcal_100g":4}},
			{"product_name":"a5","nutriments":{"energy-kcal_100g":5}},
			{"product_name":"a6","nutriments":{"energy-kcal_100g":6}},
			{"product_name":"a7","nutriments":{"energy-kcal_100g":7}}
		]}`)
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, 10)

	products, err := c.Search(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, products, 5)
	require.Equal(t, "a1", products[0].Name)
}

func TestSearch_NoMatches(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty_products", `{"products":[]}`},
		{"no_calorie_data", `{"products":[{"product_name":"x","nutriments":{}}]}`},
		{"blank_names_only", `{"products":[{"product_name":"  ","nutriments":{"energy-kcal_100g":10}}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			c := New(srv.Client(), srv.URL, 10)

			_, err := c.Search(context.Background(), "ничего")
			require.ErrorIs(t, err, ErrNoMatches)
		})
	}
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, 10)

	_, err := c.Search(context.Background(), "хлеб")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoMatches)
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, similarity("молоко", "молоко"))
	require.Equal(t, 0.0, similarity("", "молоко"))
	require.Equal(t, 1.0, similarity("", ""))

	// Полное вхождение короче чистого совпадения, но выше чужого слова.
	exact := similarity("молоко", "молоко")
	partial := similarity("молоко", "молочный шоколад")
	other := similarity("молоко", "хлеб")
	require.Greater(t, exact, partial)
	require.Greater(t, partial, other)
}
