package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	storyCmd := &cobra.Command{Use: "story", Short: "Generated story operations"}

	// generate
	var mode string
	generateCmd := &cobra.Command{
		Use:   "generate SPACE_ID",
		Short: "Generate (or regenerate) the story for a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"spaceId": args[0]}
			if mode != "" {
				payload["mode"] = mode
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/generate-story", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	generateCmd.Flags().StringVarP(&mode, "mode", "m", "", "Story mode: narrative or scrapbook (defaults narrative)")
	storyCmd.AddCommand(generateCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get SPACE_ID",
		Short: "Get the stored story for a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/generated-story/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	storyCmd.AddCommand(getCmd)

	// poster
	posterCmd := &cobra.Command{
		Use:   "poster SPACE_ID",
		Short: "Fetch the rendered memory-book HTML for a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/poster/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	storyCmd.AddCommand(posterCmd)

	rootCmd.AddCommand(storyCmd)
}
