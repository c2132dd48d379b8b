package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/listique/client/internal/dto"
	"github.com/spf13/cobra"
)

func createCmd() *cobra.Command {
	var opts listingOpts
	var data string
	cmd := &cobra.Command{
		Use:          "create <resource>",
		SilenceUsage: true,
		Short:        "create an item and show the refreshed first page",
		Long: `create an item from a json payload, then reload the first page so the
new item is visible right away`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveResource(&opts, args); err != nil {
				return err
			}

			return runCreate(&opts, data)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&data, "data", "d", "", "json payload of the new item")
	cmd.MarkFlagRequired("data")
	addListingFlags(cmd, &opts)

	return cmd
}

func runCreate(opts *listingOpts, data string) error {

	ctx := context.Background()

	browser, cleanup, err := buildBrowser(ctx, opts)

	if err != nil {
		return err
	}

	defer cleanup()

	created, err := browser.Controller.SubmitMutation(ctx, dto.MutationIntent{
		Kind:    dto.Create,
		Payload: json.RawMessage(data),
	})

	if err != nil {
		return err
	}

	fmt.Printf(" >> created %v\n", string(*created))

	page, err := browser.Controller.LoadPage(ctx, 1)

	if err != nil {
		return err
	}

	for _, item := range page.Data {
		fmt.Println(string(item))
	}

	return nil
}
