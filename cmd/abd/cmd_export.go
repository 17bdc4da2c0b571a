package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adminbuddy/internal/export"
	"adminbuddy/internal/store"
)

var exportHistoryID string

// exportCmd writes the current letter to a file or the clipboard.
var exportCmd = &cobra.Command{
	Use:   "export <docx|pdf|clipboard> [path]",
	Short: "Export the generated letter",
	Long: `Export the most recently generated letter as a Word document, a PDF,
or to the clipboard. With --from-history a saved letter is exported
instead of the current draft.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	var text string
	if exportHistoryID != "" {
		it, ok := store.NewHistoryStore(cfg.Storage.DataDir, cfg.Storage.HistoryLimit, logger).Get(exportHistoryID)
		if !ok {
			return fmt.Errorf("no saved letter with id %s", exportHistoryID)
		}
		text = it.Output
	} else {
		text = store.NewDraftStore(cfg.Storage.DataDir, logger).Load().Output
	}
	if text == "" {
		return fmt.Errorf("nothing to export; generate a letter first")
	}

	format := args[0]
	path := "letter." + format
	if len(args) == 2 {
		path = args[1]
	}

	switch format {
	case "docx":
		if err := export.DocxFile(text, path); err != nil {
			return err
		}
	case "pdf":
		if err := export.PDFFile(text, path); err != nil {
			return err
		}
	case "clipboard":
		if err := export.Clipboard(text); err != nil {
			return err
		}
		fmt.Println("Letter copied to clipboard.")
		return nil
	default:
		return fmt.Errorf("unknown format %q; use docx, pdf or clipboard", format)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportHistoryID, "from-history", "", "export a saved letter by id")
}
