// Command contentctl inspects a content directory without starting the
// server.
//
//	contentctl check [--dir ./content]
//	contentctl posts [--dir ./content] [--drafts=false]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/mavisigorta/backend/internal/contentcheck"
	"github.com/mavisigorta/backend/internal/logging"
	"github.com/mavisigorta/backend/internal/repository"
	"github.com/mavisigorta/backend/internal/service"
	"github.com/mavisigorta/backend/internal/storage"
	"github.com/spf13/cobra"
)

var (
	contentDir    string
	includeDrafts bool
)

var errCheckFailed = errors.New("content check failed")

var rootCmd = &cobra.Command{
	Use:           "contentctl",
	Short:         "Inspect the Mavi Sigorta content directory",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every content file and report problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewFileContentRepository(storage.NewLocalStorage(contentDir))
		report := contentcheck.Run(cmd.Context(), repo)

		out := cmd.OutOrStdout()
		for _, p := range report.Problems {
			fmt.Fprintln(out, p)
		}
		if report.Failed() {
			return errCheckFailed
		}
		fmt.Fprintf(out, "%s: ok (%d warnings)\n", contentDir, len(report.Problems))
		return nil
	},
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List blog posts newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewFileContentRepository(storage.NewLocalStorage(contentDir))
		posts := service.NewContentService(repo).BlogPosts(cmd.Context(), includeDrafts)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tDATE\tPUBLISHED\tCATEGORY\tTITLE")
		for _, p := range posts {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n", p.Slug, p.Date, p.Published, p.Category, p.Title)
		}
		return w.Flush()
	},
}

func init() {
	_ = godotenv.Load()

	defaultDir := os.Getenv("CONTENT_DIR")
	if defaultDir == "" {
		defaultDir = "./content"
	}
	rootCmd.PersistentFlags().StringVar(&contentDir, "dir", defaultDir, "content directory (default from CONTENT_DIR)")
	postsCmd.Flags().BoolVar(&includeDrafts, "drafts", true, "include unpublished posts")

	rootCmd.AddCommand(checkCmd, postsCmd)
}

func main() {
	logging.Setup(logging.Options{Level: "WARN", Format: "text", Output: os.Stderr})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
