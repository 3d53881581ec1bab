package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad/internal/log"
	"github.com/blockpad/blockpad/internal/storage"
	"github.com/blockpad/blockpad/pkg/document"
	"github.com/blockpad/blockpad/pkg/notion"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := cobra.Command{
		Use:   "export [page]",
		Short: "Export a page as Notion-compatible JSON",
		Long:  "Export serializes a page, selected by id or title, into the Notion block JSON shape. The current page is exported when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			disk := storage.NewDisk(cfg.WorkspacePath, log.Get())
			workspace, err := disk.Load()
			if err != nil {
				return err
			}
			if workspace == nil {
				return errors.New("no workspace found; import or create a page first")
			}

			page := workspace.CurrentPage()
			if len(args) == 1 {
				page = findPage(workspace, args[0])
				if page == nil {
					return errors.Errorf("no page with id or title %q", args[0])
				}
			}

			data, err := notion.Marshal(notion.ExportPage(page))
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if output != "" {
				return errors.Wrap(os.WriteFile(output, data, 0o600), "write export file")
			}
			cmd.Print(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write JSON to a file instead of stdout.")

	return &cmd
}

func findPage(workspace *document.Workspace, key string) *document.Page {
	if page := workspace.PageByID(key); page != nil {
		return page
	}
	for _, p := range workspace.Pages {
		if p.Title == key {
			return p
		}
	}
	return nil
}
