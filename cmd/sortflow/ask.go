package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/u-share/sortflow/internal/cli"
	"github.com/u-share/sortflow/internal/router"
	"github.com/u-share/sortflow/internal/tui"
)

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the sorting assistant a question",
		RunE:  runAsk,
	}

	cmd.Flags().BoolP("interactive", "i", false, "start an interactive chat session")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.guardRoute(router.PathDashboard); err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		return tui.Run(cmd.Context(), a.assistant)
	}

	if len(args) == 0 {
		return fmt.Errorf("provide a question or use --interactive")
	}

	answer, err := a.assistant.Ask(cmd.Context(), strings.Join(args, " "), "")
	if err != nil {
		return err
	}

	fmt.Println(cli.InfoStyle.Render(answer.Text))
	return nil
}
