package config

import (
	"log"

	"github.com/Desertfoxking25/szakdoga-viragweb/catalog"
)

// Catalog is the shared in-memory product snapshot. Controllers read it,
// admin writes invalidate it via Redis pub/sub.
var Catalog *catalog.Store

// InitCatalog builds the catalog store over the pgx pool and performs the
// initial snapshot load. Call after InitDB.
func InitCatalog() {
	Catalog = catalog.NewStore(catalog.PostgresLoader(DB))

	ctx, cancel := WithTimeout()
	defer cancel()

	if err := Catalog.Refresh(ctx); err != nil {
		// Server still boots; the refresh loop retries until the DB is up.
		log.Printf("⚠️  Initial catalog load failed: %v", err)
		return
	}
	log.Println("✅ Catalog snapshot loaded")
}
