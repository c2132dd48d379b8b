package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var opts listingOpts
	cmd := &cobra.Command{
		Use:          "list <resource>",
		SilenceUsage: true,
		Short:        "load one page of a resource",
		Long:         `load one page of a resource and print its items, one json document per line`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveResource(&opts, args); err != nil {
				return err
			}

			return runList(&opts)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&opts.Page, "page", "p", 1, "page to load, starting at 1")
	addListingFlags(cmd, &opts)

	return cmd
}

func runList(opts *listingOpts) error {

	ctx := context.Background()

	browser, cleanup, err := buildBrowser(ctx, opts)

	if err != nil {
		return err
	}

	defer cleanup()

	if err := applyFilters(browser, opts); err != nil {
		return err
	}

	page, err := browser.Controller.LoadPage(ctx, opts.Page)

	if err != nil {
		return err
	}

	for _, item := range page.Data {
		fmt.Println(string(item))
	}

	request := browser.Controller.Snapshot().Request
	fmt.Printf(" >> page %d/%d, %d items of %d\n", request.Page,
		page.TotalPages(request.PageSize), len(page.Data), page.Count)

	return nil
}
