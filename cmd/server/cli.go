package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vyaas/entities"
	"vyaas/pkg/catalog"
	market "vyaas/pkg/market/service"
	plan "vyaas/pkg/plan/service"
	planImp "vyaas/pkg/plan/serviceImp"
)

var (
	soilFlag   string
	viewFlag   string
	formatFlag string
	saveFlag   bool
	outFlag    string
)

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// withApp builds the service graph for a one-shot command.
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := buildApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print three crop recommendations",
	Long: `Generates recommendations for --soil, or for the stored profile when
--soil is not given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			if cmd.Flags().Changed("soil") {
				p := entities.NewFarmProfile()
				p.SoilType = soilFlag
				return printJSON(cmd, a.recommend.Generate(p))
			}
			_, recs, err := a.recommend.ForStoredProfile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, recs)
		})
	},
}

var marketCmd = &cobra.Command{
	Use:   "market [crop...]",
	Short: "Print synthetic market snapshots",
	Long:  `With no crop names, prints the market insights for the saved plans.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := market.ParseView(viewFlag)
		if err != nil {
			return err
		}
		return withApp(cmd, func(a *app) error {
			if len(args) == 0 {
				snaps, err := a.market.Insights(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, snaps)
			}
			snaps, err := a.market.Snapshots(args, view)
			if err != nil {
				return err
			}
			return printJSON(cmd, snaps)
		})
	},
}

var planCmd = &cobra.Command{
	Use:   "plan [crop...]",
	Short: "Print cultivation plans",
	Long: `Prints the plan for each crop in --format. With --save the plans replace
the saved-plan list first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := plan.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		return withApp(cmd, func(a *app) error {
			var saved []entities.SavedPlan
			if saveFlag {
				plans, err := a.plans.Personalize(cmd.Context(), args)
				if err != nil {
					return err
				}
				for _, p := range plans {
					saved = append(saved, entities.SavedPlan{CropName: p.CropName, Steps: p.Steps})
				}
			} else {
				for _, name := range args {
					p := a.plans.Plan(name)
					saved = append(saved, entities.SavedPlan{CropName: p.CropName, Steps: p.Steps})
				}
			}
			out, err := planImp.Render(saved, f)
			if err != nil {
				return err
			}
			if outFlag == "" {
				_, err = cmd.OutOrStdout().Write(out.Body)
				return err
			}
			return os.WriteFile(outFlag, out.Body, 0o644)
		})
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print or export the crop catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return err
		}
		if outFlag != "" {
			if err := catalog.WriteXLSX(cat, outFlag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d crops to %s\n", cat.Len(), outFlag)
			return nil
		}
		return printJSON(cmd, cat)
	},
}

func init() {
	recommendCmd.Flags().StringVar(&soilFlag, "soil", "", "soil type to recommend for")
	marketCmd.Flags().StringVar(&viewFlag, "view", "aggregate", "price view (modal|aggregate)")
	planCmd.Flags().StringVar(&formatFlag, "format", "txt", "output format (txt|md|html|xlsx)")
	planCmd.Flags().BoolVar(&saveFlag, "save", false, "replace the saved-plan list")
	planCmd.Flags().StringVarP(&outFlag, "out", "o", "", "write to file instead of stdout")
	catalogCmd.Flags().StringVarP(&outFlag, "out", "o", "", "export the catalog to an .xlsx file")
}
