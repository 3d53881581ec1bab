package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad/internal/log"
	"github.com/blockpad/blockpad/internal/storage"
	"github.com/blockpad/blockpad/pkg/block"
)

func pagesCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "pages",
		Short: "List the pages in the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			workspace, err := storage.NewDisk(cfg.WorkspacePath, log.Get()).Load()
			if err != nil {
				return err
			}
			if workspace == nil {
				cmd.Println("no workspace found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tTITLE\tBLOCKS\tCURRENT")
			for _, p := range workspace.Pages {
				current := ""
				if p.ID == workspace.CurrentPageID {
					current = "*"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.Title, len(block.Flatten(p.Blocks)), current)
			}
			return w.Flush()
		},
	}

	return &cmd
}
