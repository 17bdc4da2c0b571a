package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adminbuddy/internal/store"
)

// historyCmd lists and manages saved letters.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and manage saved letters",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved letters",
	RunE:  runHistoryClear,
}

func historyStore() *store.HistoryStore {
	return store.NewHistoryStore(cfg.Storage.DataDir, cfg.Storage.HistoryLimit, logger)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	items := historyStore().List()
	if len(items) == 0 {
		fmt.Println("No saved letters.")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%s  %s  %s → %s\n",
			it.ID, it.CreatedAt.Format("2006-01-02 15:04"), it.Subject, it.Recipient)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	it, ok := historyStore().Get(args[0])
	if !ok {
		return fmt.Errorf("no saved letter with id %s", args[0])
	}
	fmt.Println(it.Output)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	historyStore().Delete(args[0])
	fmt.Println("Deleted.")
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	historyStore().Clear()
	fmt.Println("History cleared.")
	return nil
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
