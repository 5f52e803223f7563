package jobs

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	catalogRepo "mobilia.GO/model/repository/catalog"
	catalogService "mobilia.GO/service/catalog"
)

const exportDir = "var/export"

// CatalogExportJob dumps the full catalog view model to a dated JSON file.
// The export feeds the storefront's static catalog fetch.
func CatalogExportJob(args ...string) {
	db, err := openDB()
	if err != nil {
		log.Printf("catalog export: db: %v", err)
		return
	}

	entities, err := catalogRepo.GetCatalogRepository(db).FindAll()
	if err != nil {
		log.Printf("catalog export: load products: %v", err)
		return
	}
	products := catalogService.ViewProducts(entities)

	dir := exportDir
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("catalog export: mkdir: %v", err)
		return
	}

	body, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Printf("catalog export: marshal: %v", err)
		return
	}
	path := filepath.Join(dir, "catalog-"+time.Now().Format("20060102-1504")+".json")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		log.Printf("catalog export: write: %v", err)
		return
	}
	log.Printf("catalog export: wrote %d products to %s", len(products), path)
}
