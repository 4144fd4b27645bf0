package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tlowell/objstore/storage"
	"github.com/tlowell/objstore/util/log"
)

var getOutput string

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Fetch an object by key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := runContext()
		backend := newBackend()
		key := args[0]

		data, err := backend.GetObject(ctx, key)
		if errors.Is(err, storage.ErrObjectNotFound) {
			bailf("no object for key %s", key)
		}
		checkErr(err)
		log.Debugw(ctx, "fetched object", "key", key, "bytes", len(data))

		if getOutput != "" {
			checkErr(os.WriteFile(getOutput, data, 0o644))
			return
		}
		if !stdoutRedirected() {
			bailf("Binary output can screw up your terminal. Redirect to a file or use -o.")
		}
		_, err = os.Stdout.Write(data)
		checkErr(err)
	},
}

func init() {
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "write the object to a file instead of stdout")
	rootCmd.AddCommand(getCmd)
}
