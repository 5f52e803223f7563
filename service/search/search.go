package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
)

var (
	serviceInstance *Service
	serviceOnce     sync.Once
)

// GetService returns the singleton search service.
func GetService() *Service {
	serviceOnce.Do(func() {
		serviceInstance = NewService()
	})
	return serviceInstance
}

// Service queries the catalog product index. When Elasticsearch is not
// configured the service stays constructed but every search errors; callers
// degrade to unfiltered catalog listings.
type Service struct {
	client *elasticsearch.Client
	index  string
}

func NewService() *Service {
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		host = "http://localhost:9200"
	}
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "mobilia_catalog_product"
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &Service{index: index}
	}
	return &Service{client: client, index: index}
}

// Result is a page of matching product entity ids, most relevant first.
type Result struct {
	IDs   []uint
	Total int
}

// Search runs a multi-field match over the product index and returns entity
// ids; the caller hydrates them through the catalog repository.
func (s *Service) Search(ctx context.Context, query string, pageSize, currentPage int, category string) (*Result, error) {
	if s.client == nil {
		return nil, fmt.Errorf("elasticsearch not configured")
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if currentPage <= 0 {
		currentPage = 1
	}
	from := (currentPage - 1) * pageSize

	body := map[string]interface{}{
		"from": from,
		"size": pageSize,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":  query,
							"fields": []string{"name^3", "sku^2", "description", "category"},
						},
					},
				},
			},
		},
	}
	if category != "" {
		body["query"].(map[string]interface{})["bool"].(map[string]interface{})["filter"] = []map[string]interface{}{
			{"term": map[string]interface{}{"category": category}},
		}
	}

	bodyBytes, _ := json.Marshal(body)
	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	out := &Result{Total: esResp.Hits.Total.Value}
	for _, hit := range esResp.Hits.Hits {
		if id, ok := hit.Source["entity_id"].(float64); ok {
			out.IDs = append(out.IDs, uint(id))
		}
	}
	return out, nil
}
