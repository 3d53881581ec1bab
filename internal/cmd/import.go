package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad/internal/importer"
	"github.com/blockpad/blockpad/internal/log"
	"github.com/blockpad/blockpad/internal/storage"
	"github.com/blockpad/blockpad/pkg/document"
)

func importCmd() *cobra.Command {
	var title string

	cmd := cobra.Command{
		Use:   "import [file]",
		Short: "Import a markdown file as a new page",
		Long:  "Import parses markdown into blocks and appends the result as a new page in the workspace. Reads stdin when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var source []byte
			switch {
			case len(args) == 1:
				source, err = os.ReadFile(args[0])
				if err != nil {
					return errors.Wrap(err, "read markdown file")
				}
				if title == "" {
					title = pageTitleFromPath(args[0])
				}
			default:
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, "read stdin")
				}
			}
			if title == "" {
				title = "Imported"
			}

			blocks := importer.New().Parse(string(source))
			if len(blocks) == 0 {
				return errors.New("no content to import")
			}

			disk := storage.NewDisk(cfg.WorkspacePath, log.Get())
			workspace, err := disk.Load()
			if err != nil {
				return err
			}
			if workspace == nil {
				workspace = document.NewWorkspace()
			}

			page := workspace.AddPage(title)
			page.Blocks = blocks
			if err := disk.Save(workspace); err != nil {
				return err
			}

			cmd.Printf("imported %d blocks into page %q (%s)\n", len(blocks), page.Title, page.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title for the new page. Defaults to the file name.")

	return &cmd
}

func pageTitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
