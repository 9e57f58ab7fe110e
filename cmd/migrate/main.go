package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"gearshare/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/schema.sql to the configured database through the
// atlas CLI. Run with -dry-run to print the plan without touching the
// schema.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	schemaPath := flag.String("schema", "file://migrations/schema.sql", "desired schema URL")
	devURL := flag.String("dev-url", "docker://postgres/16/dev", "scratch database for planning")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	params := &atlasexec.SchemaApplyParams{
		URL:    cfg.DB.BuildDSN(),
		To:     *schemaPath,
		DevURL: *devURL,
		DryRun: *dryRun,
	}

	result, err := client.SchemaApply(ctx, params)
	if err != nil {
		slog.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	if result.Changes.Error != nil {
		slog.Error("schema apply reported an error", "stmt", result.Changes.Error.Stmt, "error", result.Changes.Error.Text)
		os.Exit(1)
	}

	slog.Info("schema apply finished",
		"applied", len(result.Changes.Applied),
		"pending", len(result.Changes.Pending),
		"dry_run", *dryRun)
}
