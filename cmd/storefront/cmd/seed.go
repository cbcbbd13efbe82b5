package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/repository"
	"github.com/clonecoding/storefront/internal/service"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <products.json>",
	Short: "Load products from a JSON array into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	ctx := context.Background()
	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Shutdown(ctx) }()

	svc := service.NewProductService(repository.NewProductRepository(db))
	for i := range products {
		if err := svc.UpsertProduct(ctx, &products[i]); err != nil {
			return fmt.Errorf("product %d (%s): %w", i, products[i].Name, err)
		}
	}

	slog.Info("seed completed", "products", len(products))
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d products\n", len(products))
	return nil
}
