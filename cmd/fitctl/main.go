package main

import (
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/logging"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Config   string `help:"Directory holding config.yaml." type:"path" default:"."`
	LogLevel string `help:"Log level." default:"info" enum:"trace,debug,info,warn,error"`

	Migrate    MigrateCmd    `cmd:"" help:"Create or update the database schema."`
	Seed       SeedCmd       `cmd:"" help:"Load the exercise library and workout templates."`
	Regenerate RegenerateCmd `cmd:"" help:"Regenerate a user's weekly schedule from the stored plan."`
	Export     ExportCmd     `cmd:"" help:"Export a user's session logs to object storage."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("fitctl"),
		kong.Description("Maintenance commands for the fitness planner"),
		kong.UsageOnError(),
	)

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    CLI.LogLevel,
	})

	if err := ctx.Run(&Context{Config: cfg, Out: os.Stdout}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
