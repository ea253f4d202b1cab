package main

import (
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/boutiquechat/internal/tui"
	"github.com/Skotchmaster/boutiquechat/internal/catalogclient"
)

var apiURL string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return tui.Run(catalogclient.NewClient(apiURL))
	},
}

func init() {
	browseCmd.Flags().StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the catalog API")
}
