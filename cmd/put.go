package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/tlowell/objstore/util/log"
	"golang.org/x/sync/errgroup"
)

var putJSON bool

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put FILE...",
	Short: "Upload files and print their object keys",
	Long: `Upload one or more files to the configured backend. Each upload
generates a fresh key; the key is the only handle to the object, so keep it.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := runContext()
		backend := newBackend()

		type result struct {
			File string `json:"file"`
			Key  string `json:"key"`
		}
		results := make([]result, len(args))

		g, ctx := errgroup.WithContext(ctx)
		for i, path := range args {
			g.Go(func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				key, err := backend.PutObject(ctx, data, filepath.Base(path))
				if err != nil {
					return fmt.Errorf("uploading %s: %w", path, err)
				}
				log.Debugw(ctx, "uploaded object", "key", key, "bytes", len(data))
				results[i] = result{File: path, Key: key}
				return nil
			})
		}
		checkErr(g.Wait())

		if putJSON {
			checkErr(json.NewEncoder(os.Stdout).Encode(results))
			return
		}
		for _, r := range results {
			fmt.Printf("%s  %s\n", color.GreenString(r.Key), r.File)
		}
	},
}

func init() {
	putCmd.Flags().BoolVarP(&putJSON, "json", "", false, "print results as JSON")
	rootCmd.AddCommand(putCmd)
}
