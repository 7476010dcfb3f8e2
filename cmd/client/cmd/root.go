// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"datakeeper/cmd/client/cmd/record"
	"datakeeper/internal/app/client"
	"datakeeper/internal/app/client/config"
	"datakeeper/internal/utils/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	serverURL string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "datakeeper",
	Short: "Datakeeper - клиент для работы с записями сервера",
	Long: `Datakeeper: консольный клиент JSON API сервера Datakeeper.

Позволяет просматривать, создавать, обновлять и удалять записи.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Ошибка:"), err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(".env", cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log := logger.NewWithLevel(cfg.Env, level)

	app := client.New(cfg, log)
	cmd.SetContext(record.WithApp(cmd.Context(), app))

	return nil
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера Datakeeper (host:port)")

	// Добавляем команды работы с записями
	rootCmd.AddCommand(record.RecordCmd)
	record.RecordCmd.AddCommand(record.ListCmd)
	record.RecordCmd.AddCommand(record.GetCmd)
	record.RecordCmd.AddCommand(record.CreateCmd)
	record.RecordCmd.AddCommand(record.UpdateCmd)
	record.RecordCmd.AddCommand(record.DeleteCmd)
}
