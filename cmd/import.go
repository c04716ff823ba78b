package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	infracontext "github.com/growlocal360/maxx-energy/infrastructure/context"
	infraevents "github.com/growlocal360/maxx-energy/infrastructure/events"
	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/bootstrap"
	"github.com/growlocal360/maxx-energy/internal/cache"
	"github.com/growlocal360/maxx-energy/internal/events"
	"github.com/growlocal360/maxx-energy/internal/handlers"
	"github.com/growlocal360/maxx-energy/internal/importer"
	"github.com/growlocal360/maxx-energy/internal/repository"
)

func newImportItemsCmd() *cobra.Command {
	var subProduct string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-items <file.xlsx>",
		Short: "Bulk-load product items for a sub-product from a spreadsheet",
		Long: `Reads the first worksheet of an .xlsx workbook with family, trade name,
UOM and packing columns and appends the valid rows to the sub-product's items.
Invalid rows are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subID, err := uuid.Parse(subProduct)
			if err != nil {
				return fmt.Errorf("--sub-product must be a UUID: %w", err)
			}
			return importItems(cmd, args[0], subID, dryRun)
		},
	}
	cmd.Flags().StringVar(&subProduct, "sub-product", "", "sub-product ID the items belong to")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the workbook without writing")
	_ = cmd.MarkFlagRequired("sub-product")
	return cmd
}

func importItems(cmd *cobra.Command, path string, subID uuid.UUID, dryRun bool) error {
	out := cmd.OutOrStdout()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	result, err := importer.ParseItems(f)
	if err != nil {
		return err
	}
	for _, rowErr := range result.Errors {
		fmt.Fprintf(out, "row %d: %s\n", rowErr.Row, rowErr.Error)
	}
	if dryRun || len(result.Rows) == 0 {
		fmt.Fprintf(out, "%d valid rows, %d rejected\n", len(result.Rows), len(result.Errors))
		return nil
	}

	ctx := cmd.Context()
	cfg, err := bootstrap.LoadConfig(configPath)
	if err != nil {
		return err
	}
	log, err := bootstrap.CreateLogger(cfg, Version)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := bootstrap.SetupDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	queryCtx, cancel := infracontext.WithQueryTimeout(ctx)
	defer cancel()

	stores, bulk := bootstrap.NewStores(db)
	if _, err = stores.SubProducts.Get(queryCtx, subID, repository.Scope{}); err != nil {
		return fmt.Errorf("sub-product %s: %w", subID, err)
	}
	existing, err := stores.ProductItems.List(queryCtx, repository.ListOptions{ParentID: subID})
	if err != nil {
		return err
	}

	rows := make([]map[string]any, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = row.Values(len(existing) + i)
	}
	inserted, err := bulk.CreateMany(queryCtx, repository.Scope{ParentID: subID}, rows)
	if err != nil {
		return fmt.Errorf("insert items: %w", err)
	}

	redisClient := bootstrap.SetupRedis(ctx, cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}
	publisher := events.NewPublisher(redisClient, log)
	notifier := handlers.NewNotifier(publisher, cache.New(redisClient, cfg.Redis.CacheTTL, log), nil, log)
	notifier.Changed(ctx, handlers.Change{
		Type:     infraevents.ContentImported,
		Entity:   "product_item",
		ParentID: subID,
		Payload: infraevents.ImportedPayload{
			Inserted: len(inserted),
			Rejected: len(result.Errors),
		},
	})
	publisher.Wait()

	log.Info("Imported product items",
		infralogger.String("sub_product_id", subID.String()),
		infralogger.Int("inserted", len(inserted)),
		infralogger.Int("rejected", len(result.Errors)),
	)
	fmt.Fprintf(out, "%d items imported, %d rejected\n", len(inserted), len(result.Errors))
	return nil
}
