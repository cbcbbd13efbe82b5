package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/clonecoding/storefront/internal/config"
	"github.com/clonecoding/storefront/internal/data"
	"github.com/clonecoding/storefront/internal/format"
	"github.com/clonecoding/storefront/internal/models"
	"github.com/clonecoding/storefront/internal/news"
	"github.com/clonecoding/storefront/internal/repository"
	"github.com/clonecoding/storefront/internal/repository/memory"
	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read and write news comments",
}

var commentsAddCmd = &cobra.Command{
	Use:   "add <newsId> <comment...>",
	Short: "Add a comment to a news item and print the updated list",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCommentsAdd,
}

var commentsListCmd = &cobra.Command{
	Use:   "list <newsId>",
	Short: "List the comments of a news item, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentsList,
}

func init() {
	rootCmd.AddCommand(commentsCmd)
	commentsCmd.AddCommand(commentsAddCmd)
	commentsCmd.AddCommand(commentsListCmd)
}

// newsController wires the comment controller to the configured store. The
// returned func releases the database connection, if any.
func newsController(ctx context.Context) (*news.Controller, func(), error) {
	if cfg.CommentStore == config.CommentStoreMemory {
		return news.NewController(data.NewNewsRepository(memory.NewCommentStore()), cfg.Nickname), func() {}, nil
	}

	db, err := connectDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	repo := data.NewNewsRepository(repository.NewCommentRepository(db))
	return news.NewController(repo, cfg.Nickname), func() { _ = db.Shutdown(ctx) }, nil
}

func parseNewsID(s string) (int, error) {
	newsID, err := strconv.Atoi(s)
	if err != nil || newsID <= 0 {
		return 0, fmt.Errorf("invalid news id %q", s)
	}
	return newsID, nil
}

func runCommentsAdd(cmd *cobra.Command, args []string) error {
	newsID, err := parseNewsID(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	c, closeFn, err := newsController(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	c.Select(ctx, newsID)
	c.SetInput(strings.Join(args[1:], " "))
	if err := c.Submit(ctx); err != nil {
		return err
	}

	printComments(cmd.OutOrStdout(), c.Snapshot())
	return nil
}

func runCommentsList(cmd *cobra.Command, args []string) error {
	newsID, err := parseNewsID(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	c, closeFn, err := newsController(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	c.Select(ctx, newsID)
	st := c.Snapshot()
	if st.LastError != "" {
		return fmt.Errorf("failed to load comments: %s", st.LastError)
	}
	printComments(cmd.OutOrStdout(), st)
	return nil
}

func printComments(out io.Writer, st news.State) {
	now := time.Now()
	for _, c := range st.Comments {
		fmt.Fprintf(out, "%s  %s\n    %s\n", c.Writer, reviewTime(now, c), c.Comment)
	}
	fmt.Fprintf(out, "\n%d comments on news %d\n", len(st.Comments), st.NewsID)
}

func reviewTime(now time.Time, c models.NewsComment) string {
	if c.Datetime == nil {
		return "-"
	}
	return format.ReviewTime(now, *c.Datetime)
}
