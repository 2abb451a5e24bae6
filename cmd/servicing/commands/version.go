package commands

import (
	"fmt"
	"os"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the servicing CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version"`
				Library string `json:"library"`
				Commit  string `json:"commit"`
				Built   string `json:"built"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Library: servicing.Version,
				Commit:  commit,
				Built:   date,
			}

			if viper.GetString("output") == OutputFormatJSON {
				return renderJSON(versionInfo)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Version", version)
			_ = table.Append("Library", servicing.Version)
			_ = table.Append("Commit", commit)
			_ = table.Append("Built", date)

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
