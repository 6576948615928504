package main

import (
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/database"
	"alcyxob/fitness-planner/internal/generator"
	"alcyxob/fitness-planner/internal/seed"
	"alcyxob/fitness-planner/internal/service"
	"alcyxob/fitness-planner/internal/storage"
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// Context is handed to every command's Run.
type Context struct {
	Config config.Config
	Out    io.Writer
}

// withBackend opens the configured store, which also applies the schema.
func (c *Context) withBackend(fn func(ctx context.Context, backend *database.Backend) error) (err error) {
	ctx := context.Background()
	backend, err := database.Open(ctx, c.Config.Database)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, backend.Close())
	}()
	return fn(ctx, backend)
}

type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(c *Context) error {
	return c.withBackend(func(_ context.Context, backend *database.Backend) error {
		fmt.Fprintf(c.Out, "schema up to date (%s)\n", backend.Driver)
		return nil
	})
}

type SeedCmd struct{}

func (cmd *SeedCmd) Run(c *Context) error {
	return c.withBackend(func(ctx context.Context, backend *database.Backend) error {
		res, err := seed.NewSeeder(backend.Repos.Library, backend.Repos.Templates).Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "muscle groups: %d, exercises: %d, templates: %d\n", res.MuscleGroups, res.Exercises, res.Templates)
		for _, name := range res.SkippedExercises {
			fmt.Fprintf(c.Out, "skipped template exercise: %s\n", name)
		}
		for _, name := range res.SkippedTemplates {
			fmt.Fprintf(c.Out, "skipped template: %s\n", name)
		}
		return nil
	})
}

type RegenerateCmd struct {
	UserID int64 `help:"User whose schedule is replaced." required:""`
}

func (cmd *RegenerateCmd) Run(c *Context) error {
	return c.withBackend(func(ctx context.Context, backend *database.Backend) error {
		repos := backend.Repos
		plans := service.NewPlanService(repos.Users, repos.Plans, repos.Schedules, generator.New(repos.Library, nil), nil)

		days, err := plans.RegeneratePlan(ctx, cmd.UserID)
		if err != nil {
			return err
		}
		for _, day := range days {
			if day.IsRest() {
				fmt.Fprintf(c.Out, "%-9s  rest\n", day.DayOfWeek)
				continue
			}
			fmt.Fprintf(c.Out, "%-9s  %d exercises\n", day.DayOfWeek, len(day.Exercises))
			for _, item := range day.Exercises {
				name := fmt.Sprintf("exercise %d", item.ExerciseID)
				if item.Exercise != nil {
					name = item.Exercise.Name
				}
				fmt.Fprintf(c.Out, "           %s %dx%s\n", name, item.Sets, item.Reps)
			}
		}
		return nil
	})
}

type ExportCmd struct {
	UserID int64 `help:"User whose session logs are exported." required:""`
}

func (cmd *ExportCmd) Run(c *Context) error {
	if !c.Config.S3.Enabled() {
		return service.ErrExportDisabled
	}

	return c.withBackend(func(ctx context.Context, backend *database.Backend) error {
		fileStorage, err := storage.NewS3Storage(ctx, c.Config.S3)
		if err != nil {
			return err
		}

		exports := service.NewExportService(backend.Repos.Users, backend.Repos.Logs, fileStorage, c.Config.Export.URLExpiry, nil)
		res, err := exports.ExportSessionLogs(ctx, cmd.UserID)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "exported %d logs to %s\n", res.LogCount, res.ObjectKey)
		fmt.Fprintf(c.Out, "download (until %s): %s\n", res.ExpiresAt.Format("2006-01-02 15:04 MST"), res.DownloadURL)
		return nil
	})
}
