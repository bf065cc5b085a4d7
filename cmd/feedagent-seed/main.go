package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/config"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/observability"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/seed"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/snapshot"
	duckdbstore "github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/store/duckdb"
	s3store "github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/storage/s3"
)

func main() {
	recreate := flag.Bool("recreate", false, "drop and recreate the dataset tables before seeding")
	fromPostgres := flag.Bool("from-postgres", false, "import products from the configured postgres source instead of the built-in sample")
	export := flag.Bool("export", false, "export the product table to the object store as parquet after seeding")
	restore := flag.String("restore", "", "restore the product table from a parquet snapshot key, or \"latest\", instead of seeding")
	flag.Parse()

	cfg, err := config.LoadFromEnv("feedagent-seed")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stdout)

	dataset, err := duckdbstore.Open(duckdbstore.Config{Path: cfg.Dataset.Path})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dataset open error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = dataset.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *restore != "" {
		objectStore, err := openObjectStore(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "object store error: %v\n", err)
			os.Exit(1)
		}
		key := *restore
		if key == "latest" {
			keys, err := objectStore.ListKeys(ctx, "snapshots/")
			if err != nil {
				fmt.Fprintf(os.Stderr, "list snapshots failed: %v\n", err)
				os.Exit(1)
			}
			if len(keys) == 0 {
				fmt.Fprintln(os.Stderr, "no snapshots found in object store")
				os.Exit(1)
			}
			key = keys[len(keys)-1]
		}
		restored, err := snapshot.Restore(ctx, dataset.DB(), objectStore, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "restore failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("restored %d product(s) from %s\n", restored, key)
		return
	}

	opts := seed.Options{Recreate: *recreate}
	if *fromPostgres {
		if cfg.SeedSource.PostgresDSN == "" {
			fmt.Fprintln(os.Stderr, "FEEDAGENT_SEED_POSTGRES_DSN is required with -from-postgres")
			os.Exit(1)
		}
		products, err := seed.ImportFromPostgres(ctx, cfg.SeedSource.PostgresDSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "postgres import failed: %v\n", err)
			os.Exit(1)
		}
		opts.Products = products
	}

	if err := seed.Apply(ctx, dataset.DB(), logger, opts); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("dataset seeded")

	if *export {
		objectStore, err := openObjectStore(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "object store error: %v\n", err)
			os.Exit(1)
		}
		key, err := snapshot.Export(ctx, dataset.DB(), objectStore, time.Now().UTC())
		if err != nil {
			fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("exported snapshot to %s\n", key)
	}
}

func openObjectStore(ctx context.Context, cfg config.Config) (*s3store.Store, error) {
	return s3store.New(ctx, s3store.Config{
		Endpoint:         cfg.ObjectStore.Endpoint,
		Region:           cfg.ObjectStore.Region,
		Bucket:           cfg.ObjectStore.Bucket,
		AccessKeyID:      cfg.ObjectStore.AccessKeyID,
		SecretAccessKey:  cfg.ObjectStore.SecretAccessKey,
		UseSSL:           cfg.ObjectStore.UseSSL,
		Prefix:           cfg.ObjectStore.Prefix,
		AutoCreateBucket: cfg.ObjectStore.AutoCreateBucket,
	})
}
