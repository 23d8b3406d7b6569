package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/u-share/sortflow/internal/cli"
	"github.com/u-share/sortflow/internal/router"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent recognition records",
		RunE:  runHistory,
	}

	cmd.Flags().Int("limit", 10, "number of records to show")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.guardRoute(router.PathClassification); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := a.recognize.History(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No recognition records yet"))
		return nil
	}

	for _, record := range records {
		tag := cli.CategoryStyle(record.Type.DisplayClass()).Render(string(record.Type))
		fmt.Printf("%s  %s  %s  %s\n",
			record.RecognizedAt.Format("2006-01-02 15:04"), record.Name, tag,
			cli.SubtleStyle.Render(record.Source))
	}
	return nil
}
