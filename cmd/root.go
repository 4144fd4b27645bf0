package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tlowell/objstore/storage"
	"github.com/tlowell/objstore/util/log"
)

var (
	endpoint  string
	accessKey string
	secretKey string
	bucket    string
	insecure  bool
	dir       string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "objstore",
	Short: "store, fetch, and delete blobs in an object store",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func checkErr(err error) {
	if err != nil {
		bailf("error: %v", err)
	}
}

// runContext tags all logging for this invocation with a run ID.
func runContext() context.Context {
	return log.AddTags(context.Background(), "run_id", uuid.NewString())
}

// newBackend builds the backend selected by the global flags: a local
// directory store when --dir is set, otherwise an S3 store.
func newBackend() *storage.Backend {
	if dir != "" {
		return storage.NewBackend(storage.NewDirectoryStore(afero.NewOsFs(), dir))
	}
	if bucket == "" {
		bailf("either --bucket or --dir is required")
	}
	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: !insecure,
	})
	checkErr(err)
	return storage.NewBackend(storage.NewS3Store(mc, bucket))
}

// stdoutRedirected returns true if stdout is redirected to a file or pipe.
func stdoutRedirected() bool {
	if fi, err := os.Stdout.Stat(); err == nil {
		return (fi.Mode() & os.ModeCharDevice) == 0
	}
	return false
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "", "localhost:9000", "object store endpoint")
	rootCmd.PersistentFlags().StringVarP(&accessKey, "access-key", "", os.Getenv("OBJSTORE_ACCESS_KEY"), "object store access key")
	rootCmd.PersistentFlags().StringVarP(&secretKey, "secret-key", "", os.Getenv("OBJSTORE_SECRET_KEY"), "object store secret key")
	rootCmd.PersistentFlags().StringVarP(&bucket, "bucket", "", "", "bucket to store objects in")
	rootCmd.PersistentFlags().BoolVarP(&insecure, "insecure", "", false, "connect without TLS")
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "", "", "use a local directory instead of an object store")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
