package graphqlserver

import (
	"context"
	"strconv"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"mobilia.GO/graphql"
	gqlmodels "mobilia.GO/graphql/models"
	catalogRepo "mobilia.GO/model/repository/catalog"
	catalogService "mobilia.GO/service/catalog"
	searchService "mobilia.GO/service/search"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	DB *gorm.DB
}

func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{db: r.DB}
}

// QueryResolver implements Query fields over the catalog repository.
type QueryResolver struct {
	db *gorm.DB
}

// ProductsArgs matches the products query arguments (defaults in schema: pageSize=20, currentPage=1).
type ProductsArgs struct {
	PageSize    int32
	CurrentPage int32
	Category    *string
}

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) (*gqlmodels.ProductList, error) {
	repo := catalogRepo.GetCatalogRepository(r.db)
	ps, cp := normalizePage(args.PageSize, args.CurrentPage)

	var (
		err      error
		products []catalogService.Product
	)
	if args.Category != nil && *args.Category != "" {
		list, ferr := repo.FindByCategory(*args.Category)
		products, err = catalogService.ViewProducts(list), ferr
	} else {
		list, ferr := repo.FindAll()
		products, err = catalogService.ViewProducts(list), ferr
	}
	if err != nil {
		return nil, err
	}

	total := len(products)
	return &gqlmodels.ProductList{
		Items:       gqlmodels.FromProducts(pageSlice(products, ps, cp)),
		TotalCount:  int32(total),
		PageSize:    int32(ps),
		CurrentPage: int32(cp),
	}, nil
}

// ProductArgs matches the product query arguments; id wins when both given.
type ProductArgs struct {
	ID  *gql.ID
	Sku *string
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error) {
	repo := catalogRepo.GetCatalogRepository(r.db)
	if args.ID != nil {
		id, err := strconv.ParseUint(string(*args.ID), 10, 64)
		if err != nil {
			return nil, nil
		}
		entity, err := repo.FindByID(uint(id))
		if err != nil {
			return nil, nil
		}
		p := gqlmodels.FromProduct(catalogService.ViewProduct(entity))
		return &p, nil
	}
	if args.Sku != nil {
		entity, err := repo.FindBySKU(*args.Sku)
		if err != nil {
			return nil, nil
		}
		p := gqlmodels.FromProduct(catalogService.ViewProduct(entity))
		return &p, nil
	}
	return nil, nil
}

// SearchArgs matches the search query arguments.
type SearchArgs struct {
	Query       string
	PageSize    int32
	CurrentPage int32
	Category    *string
}

func (r *QueryResolver) Search(ctx context.Context, args SearchArgs) (*gqlmodels.ProductList, error) {
	ps, cp := normalizePage(args.PageSize, args.CurrentPage)
	category := ""
	if args.Category != nil {
		category = *args.Category
	}
	res, err := searchService.GetService().Search(ctx, args.Query, ps, cp, category)
	if err != nil {
		return nil, err
	}
	entities, err := catalogRepo.GetCatalogRepository(r.db).FindByIDs(res.IDs)
	if err != nil {
		return nil, err
	}
	return &gqlmodels.ProductList{
		Items:       gqlmodels.FromProducts(catalogService.ViewProducts(entities)),
		TotalCount:  int32(res.Total),
		PageSize:    int32(ps),
		CurrentPage: int32(cp),
	}, nil
}

func normalizePage(pageSize, currentPage int32) (int, int) {
	ps, cp := int(pageSize), int(currentPage)
	if ps <= 0 {
		ps = 20
	}
	if cp <= 0 {
		cp = 1
	}
	return ps, cp
}

func pageSlice(products []catalogService.Product, pageSize, currentPage int) []catalogService.Product {
	start := (currentPage - 1) * pageSize
	if start >= len(products) {
		return []catalogService.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// NewSchema parses the embedded schema against the root resolver.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
