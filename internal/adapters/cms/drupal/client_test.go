package drupal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/adapters/cms/drupal"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCards_MapsProviderFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/get-cards/hotels", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{
				"nid": "42",
				"title": "Atlantis The Palm",
				"description": "<p>Iconic resort on the Palm Jumeirah.</p>",
				"card_original_price": "1200",
				"card_agent_price": "990",
				"card_discounted_price": "1100",
				"card_images": ["a.jpg", "b.jpg"],
				"is_card_flash_sale_avail": "1",
				"flash_sale_text": "Summer deal"
			},
			{
				"nid": "43",
				"title": "",
				"card_original_price": "not-a-number",
				"card_images": "one.jpg  two.jpg"
			}
		]`))
	}))
	defer server.Close()

	client := drupal.NewClient(server.URL, 2*time.Second)
	items, err := client.FetchCards(context.Background(), domain.SectionHotels)

	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, int64(42), first.ID)
	assert.Equal(t, "Atlantis The Palm", first.Name)
	assert.Equal(t, domain.SectionHotels, first.Section)
	assert.Equal(t, "Iconic resort on the Palm Jumeirah.", first.Description)
	assert.True(t, first.Price.Equal(decimal.NewFromInt(1200)))
	assert.True(t, first.AgentPrice.Equal(decimal.NewFromInt(990)))
	assert.True(t, first.DiscountedPrice.Equal(decimal.NewFromInt(1100)))
	assert.Equal(t, "a.jpg", first.Image)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, first.Images)
	assert.True(t, first.IsFlashSale)
	assert.Equal(t, "Summer deal", first.FlashSaleText)

	second := items[1]
	assert.Equal(t, "Untitled", second.Name)
	assert.True(t, second.Price.IsZero())
	assert.Equal(t, []string{"one.jpg", "two.jpg"}, second.Images, "space-separated image strings are split")
	assert.False(t, second.IsFlashSale)
}

func TestFetchCards_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := drupal.NewClient(server.URL, 2*time.Second)
	_, err := client.FetchCards(context.Background(), domain.SectionCruise)

	assert.Error(t, err)
}

func TestFetchCards_UnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": "not an array"}`))
	}))
	defer server.Close()

	client := drupal.NewClient(server.URL, 2*time.Second)
	_, err := client.FetchCards(context.Background(), domain.SectionVisa)

	assert.Error(t, err)
}
