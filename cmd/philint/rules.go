package philint

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philint/philint/internal/rules"
	"github.com/spf13/cobra"
)

func init() {
	var showPatterns bool
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List detection categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			if flagJSON {
				out := map[string][]string{}
				for _, c := range rules.Categories() {
					out[string(c)] = rules.Sources(c)
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			for _, c := range rules.Categories() {
				srcs := rules.Sources(c)
				fmt.Printf("%-20s %d rules\n", c, len(srcs))
				if showPatterns {
					for _, s := range srcs {
						fmt.Printf("    %s\n", s)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPatterns, "patterns", false, "also print the rule patterns")
	rootCmd.AddCommand(cmd)
}
