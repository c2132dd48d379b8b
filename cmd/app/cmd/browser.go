package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/listique/client/internal/di"
	"github.com/spf13/cobra"
)

// localResource is the collection the embedded backend comes seeded
// with. Used when --local is set and no resource argument is given.
const localResource = "tickets"

type listingOpts struct {
	EnvFile  string
	Resource string
	Page     int
	PageSize int
	Local    bool
	Synced   bool
	Prefetch bool
	Filters  []string
}

func addListingFlags(cmd *cobra.Command, opts *listingOpts) {
	fs := cmd.Flags()
	fs.StringVarP(&opts.EnvFile, "env-file", "e", "", "env file with the api and redis settings")
	fs.IntVarP(&opts.PageSize, "page-size", "s", 0, "items per page, defaults to the configured size")
	fs.BoolVarP(&opts.Local, "local", "l", false, "run against an embedded in-memory backend")
	fs.BoolVarP(&opts.Synced, "synced", "", false, "share the cache and invalidations through redis")
	fs.BoolVarP(&opts.Prefetch, "prefetch", "", false, "warm the next page after each load")
	fs.StringArrayVarP(&opts.Filters, "filter", "f", nil, "name=value filter, repeatable")
}

func resolveResource(opts *listingOpts, args []string) error {

	if len(args) != 0 {
		opts.Resource = args[0]
		return nil
	}

	if opts.Local {
		opts.Resource = localResource
		return nil
	}

	return fmt.Errorf("missing resource argument")
}

func buildBrowser(ctx context.Context, opts *listingOpts) (*di.Browser, func(), error) {

	lc := di.ListingCfg{
		Resource: opts.Resource,
		PageSize: opts.PageSize,
		Prefetch: opts.Prefetch,
	}

	if opts.Local && opts.Synced {
		return nil, nil, fmt.Errorf("--synced needs a real deployment, drop --local")
	}

	if opts.Local {
		local, cleanup, err := di.InjectLocalBrowser(ctx, lc)

		if err != nil {
			return nil, nil, err
		}

		slog.Info(fmt.Sprintf("embedded backend listening on %v", local.Server.URL))
		return local.Browser, cleanup, nil
	}

	envFile := envFilePtr(opts.EnvFile)

	if opts.Synced {
		return di.InjectSyncedBrowser(ctx, envFile, lc)
	}

	return di.InjectBrowser(ctx, envFile, lc)
}

func applyFilters(browser *di.Browser, opts *listingOpts) error {

	filters, err := parseFilters(opts.Filters)

	if err != nil {
		return err
	}

	if len(filters) != 0 {
		browser.Controller.SetFilters(filters)
	}

	return nil
}

func parseFilters(pairs []string) (map[string]string, error) {

	if len(pairs) == 0 {
		return nil, nil
	}

	filters := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")

		if !found || name == "" {
			return nil, fmt.Errorf("malformed filter %q, want name=value", pair)
		}

		filters[name] = value
	}

	return filters, nil
}

func envFilePtr(envFile string) *string {

	if envFile == "" {
		return nil
	}

	return &envFile
}
