package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	memoriesCmd := &cobra.Command{Use: "memories", Short: "Memory operations"}

	// add
	var spaceID, name, note, photoURL string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a memory to a space",
		RunE: func(cmd *cobra.Command, args []string) error {
			if spaceID == "" || name == "" || note == "" {
				return fmt.Errorf("--space, --name and --note required")
			}
			payload := map[string]interface{}{
				"spaceId":     spaceID,
				"displayName": name,
				"note":        note,
			}
			if photoURL != "" {
				payload["photoUrl"] = photoURL
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/memories", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	addCmd.Flags().StringVarP(&spaceID, "space", "s", "", "Space ID (required)")
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Contributor display name (required)")
	addCmd.Flags().StringVarP(&note, "note", "t", "", "Memory note text (required)")
	addCmd.Flags().StringVarP(&photoURL, "photo", "p", "", "Photo URL or /objects/ path")
	_ = addCmd.MarkFlagRequired("space")
	memoriesCmd.AddCommand(addCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list SPACE_ID",
		Short: "List memories in a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/memories/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	memoriesCmd.AddCommand(listCmd)

	rootCmd.AddCommand(memoriesCmd)
}
