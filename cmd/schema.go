package cmd

import (
	"fmt"

	"github.com/feedarr/feedarr/pkg/logger"
	"github.com/feedarr/feedarr/pkg/storage/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// schemaCmd prints the database schema
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the database schema",
	Long:  `Print the embedded migration SQL that defines the database schema`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		schema, err := sqlite.SchemaSQL()
		if err != nil {
			log.Fatal("failed to read schema", zap.Error(err))
		}

		fmt.Println(schema)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
