// Package drupal is a narrow read client over the headless CMS card API.
// Only the priced-item fields the pricing surface consumes are mapped; page
// layout, sliders and site settings stay with the front-end.
package drupal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/shopspring/decimal"
)

// card mirrors the provider's wire format. Numeric fields arrive as strings
// and card_images is either an array or one space-separated string.
type card struct {
	NID                 string          `json:"nid"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	CardOriginalPrice   string          `json:"card_original_price"`
	CardAgentPrice      string          `json:"card_agent_price"`
	CardDiscountedPrice string          `json:"card_discounted_price"`
	CardImages          json.RawMessage `json:"card_images"`
	IsFlashSaleAvail    string          `json:"is_card_flash_sale_avail"`
	FlashSaleText       string          `json:"flash_sale_text"`
}

// Client fetches card listings for a section.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a CMS client. baseURL is the CMS root without a trailing
// slash, e.g. "https://b2b.arabianvibesllc.com".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchCards returns the section's cards mapped to domain items. The provider
// responds with a bare JSON array of cards.
func (c *Client) FetchCards(ctx context.Context, section domain.CatalogSection) ([]domain.CatalogItem, error) {
	url := fmt.Sprintf("%s/api/get-cards/%s", c.baseURL, section)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build cards request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cards request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cms returned status %d for section %s", resp.StatusCode, section)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read cards response: %w", err)
	}

	var cards []card
	if err := json.Unmarshal(body, &cards); err != nil {
		return nil, fmt.Errorf("unexpected cards response format: %w", err)
	}

	items := make([]domain.CatalogItem, 0, len(cards))
	for _, cd := range cards {
		items = append(items, cd.toItem(section))
	}
	return items, nil
}

func (cd card) toItem(section domain.CatalogSection) domain.CatalogItem {
	id, _ := strconv.ParseInt(cd.NID, 10, 64)
	images := cd.imageList()

	item := domain.CatalogItem{
		ID:              id,
		Name:            cd.Title,
		Section:         section,
		Description:     stripTags(cd.Description),
		Price:           parsePrice(cd.CardOriginalPrice),
		AgentPrice:      parsePrice(cd.CardAgentPrice),
		DiscountedPrice: parsePrice(cd.CardDiscountedPrice),
		Rating:          5,
		Images:          images,
		IsFlashSale:     cd.IsFlashSaleAvail == "1",
		FlashSaleText:   cd.FlashSaleText,
	}
	if item.Name == "" {
		item.Name = "Untitled"
	}
	if len(images) > 0 {
		item.Image = images[0]
	}
	return item
}

func (cd card) imageList() []string {
	if len(cd.CardImages) == 0 {
		return nil
	}
	var arr []string
	if err := json.Unmarshal(cd.CardImages, &arr); err == nil {
		return arr
	}
	var single string
	if err := json.Unmarshal(cd.CardImages, &single); err == nil && strings.TrimSpace(single) != "" {
		return strings.Fields(single)
	}
	return nil
}

func parsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// stripTags removes HTML markup from CMS descriptions.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
