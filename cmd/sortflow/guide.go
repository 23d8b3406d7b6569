package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/u-share/sortflow/internal/cli"
	"github.com/u-share/sortflow/internal/router"
)

func guideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Find dustbins and disposal directions",
	}

	cmd.AddCommand(guideDustbinsCmd())
	cmd.AddCommand(guideNearestCmd())

	return cmd
}

func guideDustbinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dustbins",
		Short: "List all dustbin locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.guardRoute(router.PathDashboard); err != nil {
				return err
			}

			bins, err := a.guide.Dustbins(cmd.Context())
			if err != nil {
				return err
			}

			if len(bins) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No dustbins registered"))
				return nil
			}
			for _, bin := range bins {
				fmt.Printf("%s  (%.6f, %.6f)\n", bin.Name, bin.Lng, bin.Lat)
			}
			return nil
		},
	}
}

func guideNearestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the nearest dustbin to your location",
		RunE:  runGuideNearest,
	}

	cmd.Flags().Float64("lng", 0, "your longitude")
	cmd.Flags().Float64("lat", 0, "your latitude")
	_ = cmd.MarkFlagRequired("lng")
	_ = cmd.MarkFlagRequired("lat")

	return cmd
}

func runGuideNearest(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.guardRoute(router.PathDashboard); err != nil {
		return err
	}

	lng, _ := cmd.Flags().GetFloat64("lng")
	lat, _ := cmd.Flags().GetFloat64("lat")

	route, err := a.guide.Nearest(cmd.Context(), lng, lat)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(route.Dustbin.Name))
	fmt.Println(route.Message)
	if !route.Nearby {
		if route.Distance > 0 {
			fmt.Printf("距离: %.1f 米\n", route.Distance)
		}
		if route.NavURL != "" {
			fmt.Println(cli.SubtleStyle.Render("导航: " + route.NavURL))
		}
	}
	return nil
}
