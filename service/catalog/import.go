package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mobilia.GO/core/cache"
	catalogEntity "mobilia.GO/model/entity/catalog"
	catalogRepo "mobilia.GO/model/repository/catalog"
)

// CacheTag marks cache entries derived from the catalog; an import flushes
// them all.
const CacheTag = "catalog"

// ImportProductInput is one product definition in the import JSON. The file
// carries full definitions: child collections replace whatever is stored.
type ImportProductInput struct {
	SKU         string               `mapstructure:"sku"`
	Name        string               `mapstructure:"name"`
	Description string               `mapstructure:"description"`
	Category    string               `mapstructure:"category"`
	Price       float64              `mapstructure:"price"`
	Image       string               `mapstructure:"image"`
	Images      []string             `mapstructure:"images"`
	Stock       *int                 `mapstructure:"stock"`
	Colors      []ColorOption        `mapstructure:"colors"`
	Sizes       []string             `mapstructure:"sizes"`
	Variants    []ImportVariantInput `mapstructure:"variants"`
}

type ImportVariantInput struct {
	SKU        string            `mapstructure:"sku"`
	Price      float64           `mapstructure:"price"`
	Stock      int               `mapstructure:"stock"`
	Attributes map[string]string `mapstructure:"attributes"`
	Image      string            `mapstructure:"image"`
	Images     []string          `mapstructure:"images"`
}

// ImportResult holds the result of a catalog import run.
type ImportResult struct {
	Created  int      `json:"created"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// ImportCatalogJSON reads a JSON array of product definitions and upserts
// them by SKU. Duplicate variants for the same color+size combination are
// imported as-is (resolution tie-breaks on variant order) but reported as
// warnings.
func ImportCatalogJSON(db *gorm.DB, r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}

	repo := catalogRepo.GetCatalogRepository(db)
	result := &ImportResult{}

	for i, entry := range raw {
		var input ImportProductInput
		cfg := &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &input,
		}
		dec, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(entry); err != nil {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: %v", i, err))
			continue
		}
		if strings.TrimSpace(input.SKU) == "" {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: empty sku, skipping", i))
			continue
		}

		result.Warnings = append(result.Warnings, duplicateVariantWarnings(&input)...)

		created, err := upsertProduct(repo, &input)
		if err != nil {
			return nil, fmt.Errorf("sku=%s: %w", input.SKU, err)
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	cache.GetInstance().DeleteByTag(CacheTag)
	return result, nil
}

func upsertProduct(repo *catalogRepo.CatalogRepository, input *ImportProductInput) (bool, error) {
	existing, err := repo.FindBySKU(input.SKU)
	created := false
	var product *catalogEntity.Product
	switch {
	case err == nil:
		product = existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		product = &catalogEntity.Product{SKU: input.SKU}
		created = true
	default:
		return false, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Category = input.Category
	product.BasePrice = input.Price
	product.BaseImage = input.Image
	product.Stock = input.Stock
	product.IsActive = 1
	product.Images = nil
	product.Colors = nil
	product.Sizes = nil
	product.Variants = nil

	if created {
		if err := repo.Create(product); err != nil {
			return false, err
		}
	} else if err := repo.Save(product); err != nil {
		return false, err
	}

	product.Images = importImages(input.Images)
	product.Colors = importColors(input.Colors)
	product.Sizes = importSizes(input.Sizes)
	product.Variants = importVariants(input.Variants)
	if err := repo.ReplaceAssociations(product); err != nil {
		return false, err
	}
	return created, nil
}

func importImages(paths []string) []catalogEntity.ProductImage {
	out := make([]catalogEntity.ProductImage, 0, len(paths))
	for i, p := range paths {
		out = append(out, catalogEntity.ProductImage{Path: p, Position: uint16(i)})
	}
	return out
}

func importColors(colors []ColorOption) []catalogEntity.ColorOption {
	out := make([]catalogEntity.ColorOption, 0, len(colors))
	for i, c := range colors {
		out = append(out, catalogEntity.ColorOption{Name: c.Name, Hex: c.Hex, Position: uint16(i)})
	}
	return out
}

func importSizes(sizes []string) []catalogEntity.ProductSize {
	out := make([]catalogEntity.ProductSize, 0, len(sizes))
	for i, s := range sizes {
		out = append(out, catalogEntity.ProductSize{Label: s, Position: uint16(i)})
	}
	return out
}

func importVariants(variants []ImportVariantInput) []catalogEntity.Variant {
	out := make([]catalogEntity.Variant, 0, len(variants))
	for i, v := range variants {
		attrs := make(datatypes.JSONMap, len(v.Attributes))
		for k, val := range v.Attributes {
			attrs[k] = val
		}
		entity := catalogEntity.Variant{
			SKU:        v.SKU,
			Price:      v.Price,
			Stock:      v.Stock,
			Attributes: attrs,
			Image:      v.Image,
			Position:   uint16(i),
		}
		if len(v.Images) > 0 {
			if b, err := json.Marshal(v.Images); err == nil {
				entity.Images = datatypes.JSON(b)
			}
		}
		out = append(out, entity)
	}
	return out
}

// duplicateVariantWarnings reports variants sharing a normalized color+size
// combination. Resolution tie-breaks on the first in sequence; the duplicates
// are still imported.
func duplicateVariantWarnings(input *ImportProductInput) []string {
	var warnings []string
	seen := map[string]string{}
	for _, in := range input.Variants {
		v := Variant{Attributes: in.Attributes}
		color, _ := ResolveColorAttribute(&v)
		size, _ := ResolveSizeAttribute(&v)
		key := Normalize(color) + "|" + Normalize(size)
		if key == "|" {
			continue
		}
		if first, ok := seen[key]; ok {
			warnings = append(warnings, fmt.Sprintf(
				"sku=%s: variant %q duplicates color+size of %q, first one wins on resolution",
				input.SKU, in.SKU, first))
			continue
		}
		seen[key] = in.SKU
	}
	return warnings
}
