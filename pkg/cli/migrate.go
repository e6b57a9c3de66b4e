package cli

import (
	"context"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lensworks/crewdesk/pkg/utils/logging"
	"github.com/lensworks/crewdesk/pkg/utils/safe"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var databaseID string
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("CREWDESK_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-database-id",
				Usage:       "Firestore Database ID",
				Sources:     cli.EnvVars("CREWDESK_FIRESTORE_DATABASE_ID"),
				Destination: &databaseID,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Preview changes without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"dryRun", dryRun)

			indexConfig := getIndexConfig()

			client, err := fireconf.NewClient(ctx, projectID, databaseID)
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}
			defer safe.Close(ctx, client)

			if dryRun {
				logger.Info("Dry run mode - previewing changes")
				plan, err := client.GetMigrationPlan(ctx, indexConfig)
				if err != nil {
					return goerr.Wrap(err, "failed to create migration plan")
				}

				if len(plan.Steps) == 0 {
					logger.Info("No changes required")
					return nil
				}

				for _, step := range plan.Steps {
					logger.Info("Migration step",
						"collection", step.Collection,
						"operation", step.Operation,
						"description", step.Description,
						"destructive", step.Destructive)
				}
			} else {
				logger.Info("Applying migrations")
				if err := client.Migrate(ctx, indexConfig); err != nil {
					return goerr.Wrap(err, "failed to apply migrations")
				}
				logger.Info("Migrations applied successfully")
			}

			return nil
		},
	}
}

// getIndexConfig returns the composite indexes the list queries depend on
func getIndexConfig() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "tasks",
				// TODO: declare the assigned_to CONTAINS + deadline ASC
				// composite index here once fireconf exposes array fields;
				// until then it must be created from the console.
				Indexes: []fireconf.Index{
					// ListByStatus: status ASC, created_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "status", Order: fireconf.OrderAscending},
							{Path: "created_at", Order: fireconf.OrderDescending},
						},
					},
					// deadline-window queries: status ASC, deadline ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "status", Order: fireconf.OrderAscending},
							{Path: "deadline", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "invoices",
				Indexes: []fireconf.Index{
					// ListUnpaid: status IN, due_date ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "status", Order: fireconf.OrderAscending},
							{Path: "due_date", Order: fireconf.OrderAscending},
						},
					},
					// ListByClient: clientId ASC, issued_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "clientId", Order: fireconf.OrderAscending},
							{Path: "issued_at", Order: fireconf.OrderDescending},
						},
					},
					// ListPaidBetween: status ASC, paid_at ASC
					{
						Fields: []fireconf.IndexField{
							{Path: "status", Order: fireconf.OrderAscending},
							{Path: "paid_at", Order: fireconf.OrderAscending},
						},
					},
				},
			},
			{
				Name: "notifications",
				Indexes: []fireconf.Index{
					// ListByUser unread: userId ASC, read ASC, created_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "userId", Order: fireconf.OrderAscending},
							{Path: "read", Order: fireconf.OrderAscending},
							{Path: "created_at", Order: fireconf.OrderDescending},
						},
					},
					// ListByUser: userId ASC, created_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "userId", Order: fireconf.OrderAscending},
							{Path: "created_at", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "leads",
				Indexes: []fireconf.Index{
					// ListByStatus: status ASC, created_at DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "status", Order: fireconf.OrderAscending},
							{Path: "created_at", Order: fireconf.OrderDescending},
						},
					},
				},
			},
			{
				Name: "shoots",
				Indexes: []fireconf.Index{
					// ListByClient: clientId ASC, date DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "clientId", Order: fireconf.OrderAscending},
							{Path: "date", Order: fireconf.OrderDescending},
						},
					},
				},
			},
		},
	}
}
