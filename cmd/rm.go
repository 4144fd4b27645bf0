package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tlowell/objstore/util/log"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm KEY...",
	Short: "Delete objects by key",
	Long: `Delete one or more objects. Deleting a key that does not exist
succeeds, so rm is safe to re-run.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := runContext()
		backend := newBackend()
		for _, key := range args {
			checkErr(backend.DeleteObject(ctx, key))
			log.Infow(ctx, "deleted object", "key", key)
		}
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
