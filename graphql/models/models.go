package models

import (
	"strconv"

	gql "github.com/graph-gophers/graphql-go"

	catalogService "mobilia.GO/service/catalog"
)

// GraphQL view types. Field names match schema.graphqls for UseFieldResolvers.

type ColorOption struct {
	Name string
	Hex  string
}

type Variant struct {
	ID     gql.ID
	SKU    string
	Price  float64
	Stock  int32
	Color  *string
	Size   *string
	Image  string
	Images []string
}

type Product struct {
	ID          gql.ID
	SKU         string
	Name        string
	Price       float64
	Category    string
	Image       string
	Images      []string
	Description string
	Colors      []ColorOption
	Sizes       []string
	Variants    []Variant
}

type ProductList struct {
	Items       []Product
	TotalCount  int32
	PageSize    int32
	CurrentPage int32
}

func FromVariant(v catalogService.Variant) Variant {
	var color, size *string
	if val, ok := catalogService.ResolveColorAttribute(&v); ok {
		color = &val
	}
	if val, ok := catalogService.ResolveSizeAttribute(&v); ok {
		size = &val
	}
	return Variant{
		ID:     gql.ID(strconv.FormatUint(uint64(v.ID), 10)),
		SKU:    v.SKU,
		Price:  v.Price,
		Stock:  int32(v.Stock),
		Color:  color,
		Size:   size,
		Image:  v.Image,
		Images: v.Images,
	}
}

func FromProduct(p catalogService.Product) Product {
	colors := make([]ColorOption, 0, len(p.Colors))
	for _, c := range p.Colors {
		colors = append(colors, ColorOption{Name: c.Name, Hex: c.Hex})
	}
	variants := make([]Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, FromVariant(v))
	}
	return Product{
		ID:          gql.ID(p.ID),
		SKU:         p.SKU,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Images:      p.Images,
		Description: p.Description,
		Colors:      colors,
		Sizes:       p.Sizes,
		Variants:    variants,
	}
}

func FromProducts(products []catalogService.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
