package query

import (
	"github.com/spf13/cobra"
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the checkpoint service",
}

func init() {
	QueryCmd.AddCommand(statusCmd)
	QueryCmd.AddCommand(checkCmd)
	QueryCmd.AddCommand(progressCmd)
}
