package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/midbel/speedchart/search"
)

func searchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Look up the description of an animal in the encyclopedia",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := search.NewClient()
			client.SearchURL = a.cfg.Search.SearchURL
			client.SummaryURL = a.cfg.Search.SummaryURL
			client.UserAgent = a.cfg.Search.UserAgent
			client.HTTP = &http.Client{Timeout: a.cfg.Timeout}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			query := strings.Join(args, " ")
			res, err := client.Lookup(ctx, query)
			if err != nil {
				a.logger().Error("search.failed", "query", query, "err", err)
				return err
			}
			printResult(cmd.OutOrStdout(), query, res)
			return nil
		},
	}
}

func printResult(w io.Writer, query string, res search.Result) {
	fmt.Fprintln(w, titleStyle.Render(query))
	desc, image := "no description", "no image"
	if res.Description != nil {
		desc = *res.Description
	}
	if res.Image != nil {
		image = *res.Image
	}
	fmt.Fprintln(w, bodyStyle.Render(desc))
	fmt.Fprintf(w, "%s %s\n", keyStyle.Render("image"), image)
}
