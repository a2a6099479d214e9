package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

func newSeedCmd() *cobra.Command {
	var (
		dbPath string
		from   string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write posts into a SQLite file for the sqlite:<path> source",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepository(cmd, from)
			if err != nil {
				return err
			}
			store, err := folio.OpenStore(dbPath, false)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.SavePosts(cmd.Context(), repo.All()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d posts into %s\n", repo.Len(), dbPath)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&dbPath, "db", "data/posts.db", "SQLite file to write")
	f.StringVar(&from, "from", folio.SourceBuiltin, "posts source to copy from: builtin or yaml:<path>")
	return cmd
}
