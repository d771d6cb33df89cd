package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"cafeapi/internal/domain/cafe"
)

var (
	seedFile  string
	seedSheet string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample cafes, or cafes from an .xlsx workbook",
	Long: `seed inserts cafes whose name is not in the table yet.
Without --file it uses a small built-in London data set. With --file the
first row of the sheet must name the columns: name, map_url, img_url,
location, seats, has_toilet, has_wifi, has_sockets, can_take_calls and
optionally coffee_price.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Excel workbook to import")
	seedCmd.Flags().StringVar(&seedSheet, "sheet", cafe.DefaultSheet, "Sheet to read from the workbook")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}

	read, inserted, err := seedDatabase(cmd.Context(), db, seedFile, seedSheet)
	if err != nil {
		return err
	}

	log.Printf("seed completed: read=%d inserted=%d skipped=%d", read, inserted, int64(read)-inserted)
	return nil
}

// seedDatabase inserts the sample cafes, or the rows of the workbook at file
// when it is set. Cafes whose name already exists are skipped.
func seedDatabase(ctx context.Context, db *gorm.DB, file, sheet string) (int, int64, error) {
	cafes := cafe.SampleCafes()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return 0, 0, fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()

		cafes, err = cafe.ReadWorkbook(f, sheet)
		if err != nil {
			return 0, 0, err
		}
	}

	svc := cafe.NewService(cafe.NewRepository(db))
	inserted, err := svc.Seed(ctx, cafes)
	if err != nil {
		return 0, 0, err
	}
	return len(cafes), inserted, nil
}
