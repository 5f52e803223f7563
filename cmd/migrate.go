package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"mobilia.GO/config"
)

var migrationsPath string

func newMigrator() (*migrate.Migrate, error) {
	db, err := config.NewDB()
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		return nil, err
	}
	driver, err := mysql.WithInstance(sqldb, &mysql.Config{})
	if err != nil {
		return nil, err
	}
	return migrate.NewWithDatabaseInstance("file://"+migrationsPath, "mysql", driver)
}

var migrateUpCmd = &cobra.Command{
	Use:   "migrate:up",
	Short: "Apply all pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := newMigrator()
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("No pending migrations.")
				return
			}
			fmt.Printf("Migration failed: %v\n", err)
			return
		}
		fmt.Println("Migrations applied.")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "migrate:down",
	Short: "Roll back the most recent migration",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := newMigrator()
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := m.Steps(-1); err != nil {
			fmt.Printf("Rollback failed: %v\n", err)
			return
		}
		fmt.Println("Rolled back one migration.")
	},
}

func init() {
	for _, c := range []*cobra.Command{migrateUpCmd, migrateDownCmd} {
		c.Flags().StringVar(&migrationsPath, "path", "migrations", "Migrations directory")
		rootCmd.AddCommand(c)
	}
}
