package cmd

import (
	"context"
	"fmt"

	"github.com/listique/client/internal/dto"
	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	var opts listingOpts
	cmd := &cobra.Command{
		Use:          "delete <resource> <id>",
		SilenceUsage: true,
		Short:        "delete an item by id",
		Args:         cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Resource = args[0]
			return runDelete(&opts, args[1])
		},
	}

	addListingFlags(cmd, &opts)

	return cmd
}

func runDelete(opts *listingOpts, id string) error {

	ctx := context.Background()

	browser, cleanup, err := buildBrowser(ctx, opts)

	if err != nil {
		return err
	}

	defer cleanup()

	_, err = browser.Controller.SubmitMutation(ctx, dto.MutationIntent{
		Kind:       dto.Delete,
		ResourceId: id,
	})

	if err != nil {
		return err
	}

	fmt.Printf(" >> deleted %v from %v\n", id, opts.Resource)

	return nil
}
