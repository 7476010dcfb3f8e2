package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"datakeeper/internal/app/server"
	"datakeeper/internal/app/server/config"
	"datakeeper/internal/infrastructure/migration"
	"datakeeper/internal/utils/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "datakeeper-server",
		Short:         "Datakeeper - сервер ввода и хранения имен",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Применить миграции и запустить HTTP сервер",
			RunE:  serve,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Применить миграции и выйти",
			RunE:  migrate,
		},
	)

	return root
}

func serve(cmd *cobra.Command, _ []string) error {
	conf := config.MustLoad()
	log := logger.NewWithLevel(conf.Env, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := server.New(ctx, conf, log)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}

func migrate(_ *cobra.Command, _ []string) error {
	conf := config.MustLoad()
	log := logger.NewWithLevel(conf.Env, conf.Logger.LogLevel)

	if err := migration.NewMigration(conf, migration.DefaultEngine).Up(); err != nil {
		return err
	}

	log.Info("migrations applied", "driver", conf.DB.Driver)
	return nil
}
