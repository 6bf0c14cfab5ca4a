package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/suparena/docstore"
	"github.com/suparena/docstore/registry"
	"github.com/suparena/docstore/repository/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	configPath = flag.String("config", "indexes.yaml", "Path to the index configuration file")
	uriFlag    = flag.String("uri", "", "MongoDB connection string (defaults to MONGODB_URI)")
	dbFlag     = flag.String("db", "", "Database name (defaults to MONGODB_DATABASE)")
	timeout    = flag.Duration("timeout", 30*time.Second, "Overall timeout for index creation")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := docstore.GetVersionInfo()
		fmt.Printf("DocStore ensureindexes version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// Load .env if present; environment variables win over flags left empty
	_ = godotenv.Load()

	uri := *uriFlag
	if uri == "" {
		uri = os.Getenv("MONGODB_URI")
	}
	if uri == "" {
		log.Fatal("no MongoDB URI: pass -uri or set MONGODB_URI")
	}

	dbName := *dbFlag
	if dbName == "" {
		dbName = os.Getenv("MONGODB_DATABASE")
	}
	if dbName == "" {
		log.Fatal("no database name: pass -db or set MONGODB_DATABASE")
	}

	cfg, err := registry.LoadIndexConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load index config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("failed to disconnect: %v", err)
		}
	}()

	db := client.Database(dbName)
	for _, entity := range cfg.Entities {
		models := mongodb.IndexModels(entity.Indexes)
		if len(models) == 0 {
			log.Printf("%s: no indexes declared, skipping", entity.Name)
			continue
		}

		names, err := db.Collection(entity.Collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			log.Fatalf("%s: failed to create indexes on %s: %v", entity.Name, entity.Collection, err)
		}
		log.Printf("%s: ensured %d index(es) on %s: %v", entity.Name, len(names), entity.Collection, names)
	}
}
