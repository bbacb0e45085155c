package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"onlineshop/internal/config"
	"onlineshop/internal/db"
	"onlineshop/internal/importer"
	"onlineshop/internal/repository/category"
	"onlineshop/internal/repository/shopitem"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to catalog CSV (title,description,price,categories)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, shopitem.NewPostgres(pool), category.NewPostgres(pool))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d shop items in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
