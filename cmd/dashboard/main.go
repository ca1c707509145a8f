package main

import (
	"context"
	"customer-dashboard/internal/client"
	"customer-dashboard/internal/config"
	"customer-dashboard/internal/infrastructure/logging"
	"customer-dashboard/internal/tableview"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type options struct {
	configPath string
	search     string
	sorts      []string
	page       int
}

func main() {
	if err := newRootCmd(viper.GetViper()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the customer table served by the dashboard API",
		Long: `Fetches every customer from GET /customers once, then applies the
requested sort activations, search and page before printing the table.

Each --sort is one click on that column header: the first click sorts
ascending, the next one descending, and so on.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", ".", "directory containing config.yml")
	flags.String("api-url", "", "base URL of the dashboard API")
	flags.Int("page-size", tableview.DefaultPageSize, "rows per page")
	flags.String("timezone", "", "IANA zone used for the date and time columns")
	flags.StringVar(&opts.search, "search", "", "case-insensitive filter on name and location")
	flags.StringArrayVar(&opts.sorts, "sort", nil, "column header to activate, repeatable (sno, customer_name, age, phone, location, date, time)")
	flags.IntVar(&opts.page, "page", 1, "page to show")

	_ = v.BindPFlag("dashboard.apiUrl", flags.Lookup("api-url"))
	_ = v.BindPFlag("dashboard.pageSize", flags.Lookup("page-size"))
	_ = v.BindPFlag("dashboard.timezone", flags.Lookup("timezone"))

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, opts *options) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), config.LoggerConfig{Level: cfg.Logger.Level, Encoding: "text"})
	logger.Debug("Dashboard starting", "config_source", v.ConfigFileUsed(), "api_url", cfg.Dashboard.APIURL)

	format, err := tableview.NewDateTimeFormat(cfg.Dashboard.Timezone, cfg.Dashboard.DateLayout, cfg.Dashboard.TimeLayout)
	if err != nil {
		return err
	}

	api := client.New(client.Config{
		BaseURL: cfg.Dashboard.APIURL,
		Timeout: cfg.Dashboard.Timeout,
		Origin:  dashboardOrigin(cfg.CORS),
	}, logger)

	ctrl := tableview.NewController(api, cfg.Dashboard.PageSize, logger)
	if err := applyOptions(cmd.Context(), ctrl, opts); err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), ctrl.State(), format)
}

// applyOptions replays the requested user actions on a freshly loaded table.
func applyOptions(ctx context.Context, ctrl *tableview.Controller, opts *options) error {
	ctrl.Load(ctx)

	for _, s := range opts.sorts {
		col, err := tableview.ParseColumn(s)
		if err != nil {
			return err
		}
		if err := ctrl.Sort(col); err != nil {
			return err
		}
	}

	ctrl.Search(opts.search)

	if opts.page != ctrl.State().Page() {
		if err := ctrl.GoToPage(opts.page); err != nil {
			return err
		}
	}
	return nil
}

func dashboardOrigin(cfg config.CORSConfig) string {
	if len(cfg.AllowedOrigins) == 0 || cfg.AllowedOrigins[0] == "*" {
		return ""
	}
	return cfg.AllowedOrigins[0]
}

var _ tableview.Fetcher = (*client.CustomerClient)(nil)
