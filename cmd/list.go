package cmd

import (
	"fmt"

	"github.com/AnyUserName/cardgen/internal/deck"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the deck: card names, files and label colours",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		red := color.New(color.FgRed).SprintFunc()
		for _, c := range deck.Full() {
			name := c.String()
			if c.Suit.Red() {
				name = red(name)
			}
			kind := "rendered"
			if c.IsBase() {
				kind = "base"
			}
			// Pad by rune width: the suit symbol is one column.
			fmt.Printf("  %s%*s %-24s %-5s %s\n", name, 4-len([]rune(c.String())), "", c.FileName(), c.Suit.ColorName(), kind)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
