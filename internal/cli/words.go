package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pip-doctor/internal/app"
)

type wordsOptions struct {
	Pattern    string
	Dictionary string
	List       bool
}

func newWordsCommand() *cobra.Command {
	opts := wordsOptions{}
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Compare dictionary words against package names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWords(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Pattern, "regex", "", "Pattern each candidate must match in full")
	cmd.Flags().StringVar(&opts.Dictionary, "dictionary", "", "Word list file (default: system dictionary)")
	cmd.Flags().BoolVar(&opts.List, "list", false, "List matching words")

	_ = viper.BindPFlag("words_dictionary", cmd.Flags().Lookup("dictionary"))
	return cmd
}

func runWords(cmd *cobra.Command, opts wordsOptions) error {
	service := app.NewService()
	result, err := service.Words(cmd.Context(), app.WordsRequest{
		Pattern:     opts.Pattern,
		Dictionary:  resolveString(cmd, opts.Dictionary, "words_dictionary", "dictionary"),
		ListMatches: opts.List,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d words\n", result.Stats.Words)
	fmt.Printf("%d package names\n", result.Stats.Names)
	fmt.Printf("%d that are both\n", result.Stats.Both)
	fmt.Printf("%d words still free as package names\n", len(result.FreeWords))
	if opts.List {
		for _, word := range result.Matches {
			fmt.Println(word)
		}
	}
	return nil
}
