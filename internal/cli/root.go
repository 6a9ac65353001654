// Package cli implements navctl, a terminal front end over the same stores the
// desktop shell uses.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gorm"

	"navshell/internal/config"
	"navshell/internal/database"
	"navshell/internal/services"
	"navshell/internal/utils"
)

const (
	keyDataDir = "data-dir"
	keyVerbose = "verbose"
)

type env struct {
	v *viper.Viper
}

// NewRootCmd builds the navctl command tree. Each call gets its own viper
// instance so commands can be run repeatedly in one process.
func NewRootCmd() *cobra.Command {
	e := &env{v: viper.New()}
	e.v.SetEnvPrefix("NAVSHELL")
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "navctl",
		Short:         "Manage navshell favorites, settings and history",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return utils.LoadEnv()
		},
	}

	root.PersistentFlags().String(keyDataDir, "", "Directory holding settings.json, favorites.json and navshell.db (env NAVSHELL_DATA_DIR)")
	if err := e.v.BindPFlag(keyDataDir, root.PersistentFlags().Lookup(keyDataDir)); err != nil {
		panic(err)
	}
	root.PersistentFlags().BoolP(keyVerbose, "v", false, "Log to stdout instead of navctl.log")
	if err := e.v.BindPFlag(keyVerbose, root.PersistentFlags().Lookup(keyVerbose)); err != nil {
		panic(err)
	}

	root.AddCommand(
		e.favoritesCmd(),
		e.settingsCmd(),
		e.historyCmd(),
	)
	return root
}

func (e *env) config() config.Config {
	return config.Load(e.v.GetString(keyDataDir))
}

func (e *env) logger(cfg config.Config) logger.Logger {
	if e.v.GetBool(keyVerbose) {
		return logger.NewDefaultLogger()
	}
	// the file logger exits the process when it cannot open its file
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return logger.NewDefaultLogger()
	}
	return logger.NewFileLogger(filepath.Join(cfg.DataDir, "navctl.log"))
}

// open loads settings and favorites. History is only wired when withHistory is set.
func (e *env) open(ctx context.Context, withHistory bool) (*services.Services, func(), error) {
	cfg := e.config()

	var db *gorm.DB
	closeFn := func() {}
	if withHistory {
		var err error
		db, err = database.Init(database.Config{Path: cfg.DBPath()})
		if err != nil {
			return nil, nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			closeFn = func() { sqlDB.Close() }
		}
	}

	svc := services.NewServices(cfg, db, e.logger(cfg))
	svc.Startup(ctx)
	if err := svc.Load(); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("load state from %s: %w", cfg.DataDir, err)
	}
	return svc, closeFn, nil
}
