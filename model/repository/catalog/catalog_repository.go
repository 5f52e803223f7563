package catalog

import (
	"sync"

	"gorm.io/gorm"

	catalogEntity "mobilia.GO/model/entity/catalog"
)

type CatalogRepository struct {
	db *gorm.DB
}

var (
	instMu    sync.Mutex
	instances = map[*gorm.DB]*CatalogRepository{}
)

// GetCatalogRepository returns a shared repository instance per DB handle.
func GetCatalogRepository(db *gorm.DB) *CatalogRepository {
	instMu.Lock()
	defer instMu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewCatalogRepository(db)
	instances[db] = r
	return r
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// withAssociations preloads gallery, colors, sizes and variants in their
// defined order. Variant order matters: resolution is first-match-wins.
func (r *CatalogRepository) withAssociations() *gorm.DB {
	return r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, image_id ASC") }).
		Preload("Colors", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, option_id ASC") }).
		Preload("Sizes", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, size_id ASC") }).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, variant_id ASC") })
}

func (r *CatalogRepository) FindAll() ([]catalogEntity.Product, error) {
	var products []catalogEntity.Product
	err := r.withAssociations().Where("is_active = ?", 1).Order("entity_id ASC").Find(&products).Error
	return products, err
}

func (r *CatalogRepository) FindByCategory(category string) ([]catalogEntity.Product, error) {
	var products []catalogEntity.Product
	err := r.withAssociations().
		Where("is_active = ? AND category = ?", 1, category).
		Order("entity_id ASC").
		Find(&products).Error
	return products, err
}

func (r *CatalogRepository) FindByID(id uint) (*catalogEntity.Product, error) {
	var product catalogEntity.Product
	err := r.withAssociations().First(&product, "entity_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepository) FindByIDs(ids []uint) ([]catalogEntity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []catalogEntity.Product
	err := r.withAssociations().Where("entity_id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *CatalogRepository) FindBySKU(sku string) (*catalogEntity.Product, error) {
	var product catalogEntity.Product
	err := r.withAssociations().First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindVariantByID returns a variant together with its parent product.
func (r *CatalogRepository) FindVariantByID(id uint) (*catalogEntity.Variant, *catalogEntity.Product, error) {
	var variant catalogEntity.Variant
	if err := r.db.First(&variant, "variant_id = ?", id).Error; err != nil {
		return nil, nil, err
	}
	product, err := r.FindByID(variant.ProductID)
	if err != nil {
		return nil, nil, err
	}
	return &variant, product, nil
}

func (r *CatalogRepository) Create(p *catalogEntity.Product) error {
	return r.db.Create(p).Error
}

func (r *CatalogRepository) Save(p *catalogEntity.Product) error {
	return r.db.Save(p).Error
}

// ReplaceAssociations deletes and re-creates a product's child rows. Used by
// the catalog importer, which always carries the full definition.
func (r *CatalogRepository) ReplaceAssociations(p *catalogEntity.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&catalogEntity.ProductImage{},
			&catalogEntity.ColorOption{},
			&catalogEntity.ProductSize{},
			&catalogEntity.Variant{},
		} {
			if err := tx.Where("product_id = ?", p.EntityID).Delete(model).Error; err != nil {
				return err
			}
		}
		for i := range p.Images {
			p.Images[i].ImageID = 0
			p.Images[i].ProductID = p.EntityID
		}
		for i := range p.Colors {
			p.Colors[i].OptionID = 0
			p.Colors[i].ProductID = p.EntityID
		}
		for i := range p.Sizes {
			p.Sizes[i].SizeID = 0
			p.Sizes[i].ProductID = p.EntityID
		}
		for i := range p.Variants {
			p.Variants[i].ProductID = p.EntityID
		}
		if len(p.Images) > 0 {
			if err := tx.Create(&p.Images).Error; err != nil {
				return err
			}
		}
		if len(p.Colors) > 0 {
			if err := tx.Create(&p.Colors).Error; err != nil {
				return err
			}
		}
		if len(p.Sizes) > 0 {
			if err := tx.Create(&p.Sizes).Error; err != nil {
				return err
			}
		}
		if len(p.Variants) > 0 {
			if err := tx.Create(&p.Variants).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
