package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/listique/client/internal/controllers"
	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var opts listingOpts
	cmd := &cobra.Command{
		Use:          "watch <resource>",
		SilenceUsage: true,
		Short:        "follow a page of a resource until interrupted",
		Long: `follow a page of a resource until interrupted, re-rendering on every
state change. With --synced the page also reloads when another session
mutates the resource.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resolveResource(&opts, args); err != nil {
				return err
			}

			return runWatch(&opts)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&opts.Page, "page", "p", 1, "page to follow, starting at 1")
	addListingFlags(cmd, &opts)

	return cmd
}

func runWatch(opts *listingOpts) error {

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)

	defer stop()

	browser, cleanup, err := buildBrowser(ctx, opts)

	if err != nil {
		return err
	}

	defer cleanup()

	if err := applyFilters(browser, opts); err != nil {
		return err
	}

	snapshots, unsubscribe, err := browser.Controller.Subscribe()

	if err != nil {
		return err
	}

	done := make(chan bool)

	go func() {
		defer close(done)
		for snapshot := range snapshots {
			renderSnapshot(snapshot)
		}
	}()

	// The load result is in the snapshot stream, errors included.
	_, _ = browser.Controller.LoadPage(ctx, opts.Page)

	<-ctx.Done()
	unsubscribe()
	<-done

	return nil
}

func renderSnapshot(snapshot controllers.Snapshot[json.RawMessage]) {

	switch snapshot.Phase {
	case controllers.Loading:
		fmt.Printf(" .. loading page %d\n", snapshot.Request.Page)
	case controllers.Success:
		for _, item := range snapshot.Page.Data {
			fmt.Println(string(item))
		}
		fmt.Printf(" >> page %d/%d, %d items of %d\n", snapshot.Request.Page,
			snapshot.Page.TotalPages(snapshot.Request.PageSize),
			len(snapshot.Page.Data), snapshot.Page.Count)
	case controllers.Error:
		fmt.Printf(" !! load failed - %v\n", snapshot.Err)
	}
}
