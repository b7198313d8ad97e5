package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// CatalogProduct is a product as published by the external catalog API.
type CatalogProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type CatalogClient interface {
	FetchProducts(ctx context.Context) ([]CatalogProduct, error)
}

type catalogHTTPClient struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

func NewCatalogHTTPClient(url string, timeout time.Duration, logger *logrus.Logger) CatalogClient {
	return &catalogHTTPClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *catalogHTTPClient) FetchProducts(ctx context.Context) ([]CatalogProduct, error) {
	c.log.Infof("CatalogClient: Requesting products from URL: %s", c.url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("CatalogClient: Failed to execute request: %v", err)
		return nil, fmt.Errorf("failed to communicate with catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Errorf("CatalogClient: Request failed with status %d. Response body: %s", resp.StatusCode, string(bodyBytes))
		return nil, fmt.Errorf("catalog API returned status %d", resp.StatusCode)
	}

	var products []CatalogProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		c.log.Errorf("CatalogClient: Failed to decode response: %v", err)
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	c.log.Infof("CatalogClient: Received %d products", len(products))
	return products, nil
}
