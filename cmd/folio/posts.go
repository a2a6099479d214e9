package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

func newPostsCmd() *cobra.Command {
	var (
		source string
		query  string
		asYAML bool
	)
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List the posts a source would serve, optionally filtered like the search box",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepository(cmd, source)
			if err != nil {
				return err
			}
			posts := repo.Search(query)
			out := cmd.OutOrStdout()
			if asYAML {
				b, err := folio.EncodePostsYAML(posts)
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			}
			printPosts(out, posts)
			if msg := folio.ListingMessage(query, len(posts), repo.Len()); msg != "" {
				fmt.Fprintln(out, color.YellowString(msg))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&source, "posts", folio.EnvOr("POSTS_SOURCE", folio.SourceBuiltin), "posts source: builtin, yaml:<path> or sqlite:<path>")
	f.StringVarP(&query, "search", "s", "", "case-insensitive text to match against title and content")
	f.BoolVar(&asYAML, "yaml", false, "print the posts as a YAML posts file instead of a table")
	return cmd
}

func loadRepository(cmd *cobra.Command, source string) (*folio.Repository, error) {
	posts, err := folio.LoadPosts(cmd.Context(), source)
	if err != nil {
		return nil, err
	}
	return folio.NewRepository(posts)
}

func printPosts(w io.Writer, posts []folio.BlogPost) {
	if len(posts) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Date", "Author"})
	table.SetAutoWrapText(false)
	for _, p := range posts {
		table.Append([]string{strconv.Itoa(p.ID), p.Title, p.Date, p.Author})
	}
	table.Render()
}
