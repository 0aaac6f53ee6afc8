package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var fileType string
	uploadCmd := &cobra.Command{
		Use:   "upload-target FILE_NAME",
		Short: "Request a signed upload URL for a new photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"fileName": args[0]}
			if fileType != "" {
				payload["fileType"] = fileType
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/objects/upload", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	uploadCmd.Flags().StringVarP(&fileType, "type", "t", "", "MIME type of the file")
	rootCmd.AddCommand(uploadCmd)
}
