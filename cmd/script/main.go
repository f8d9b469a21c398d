package main

import (
	"context"
	"log"

	"rigvalue/cmd"
	"rigvalue/internal"
	"rigvalue/internal/domain"
	"rigvalue/internal/logger"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "rigvalue",
		Short: "operational scripts for the listing valuation engine",
	}

	root.AddCommand(revalueCmd(), revalueAllCmd(), processQueueCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newCtx() context.Context {
	return context.WithValue(context.Background(), logger.ContextKey, logger.New())
}

func revalueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revalue <listing-id>",
		Short: "recompute one listing's valuation",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			listingID, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			breakdown, err := handler.ValuationService.Revalue(newCtx(), listingID)
			if err != nil {
				return err
			}

			internal.Pprint(breakdown)
			return nil
		},
	}
}

func revalueAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revalue-all",
		Short: "recompute every listing against the current rule set",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			profile, endProfile := domain.NewProfile()
			ctx := context.WithValue(newCtx(), domain.ContextProfileKey, profile)

			result, err := handler.ValuationService.RevalueAll(ctx)
			if err != nil {
				return err
			}
			endProfile()

			internal.Pprint(result)
			internal.Pprint(profile)
			return nil
		},
	}
}

func processQueueCmd() *cobra.Command {
	var limit int64

	c := &cobra.Command{
		Use:   "process-queue",
		Short: "drain pending revaluation jobs",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			return handler.RevaluerHandler.ProcessQueue(newCtx(), limit)
		},
	}
	c.Flags().Int64Var(&limit, "limit", 50, "max jobs to process in one run")

	return c
}
