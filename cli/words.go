package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var wordsCmd = &cobra.Command{
	Use:       "words [adjectives|nouns]",
	Short:     "List the words names are made of",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"adjectives", "nouns"},

	RunE: func(cmd *cobra.Command, args []string) error {
		adjectives, nouns, err := wordPools()
		if err != nil {
			return err
		}

		width := termWidth()
		pools := []struct {
			title string
			words []string
		}{
			{"adjectives", adjectives},
			{"nouns", nouns},
		}

		for i, pool := range pools {
			if len(args) > 0 && args[0] != pool.title {
				continue
			}
			if len(args) == 0 && i > 0 {
				cmd.Println()
			}
			cmd.Println(color.HiCyanString("%s (%d)", pool.title, len(pool.words)))
			cmd.Print(formatColumns(pool.words, width))
		}

		return nil
	},
}

// termWidth returns the width of the terminal attached to stdout, or 80.
func termWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// formatColumns lays words out in columns fitting width, filled row by row.
// Widths are measured in terminal cells so wide characters stay aligned.
func formatColumns(words []string, width int) string {
	if len(words) < 1 {
		return ""
	}

	cellWidth := lo.Max(lo.Map(words, func(word string, _ int) int { return uniseg.StringWidth(word) })) + 2
	columns := max(1, width/cellWidth)

	var output strings.Builder
	for _, row := range lo.Chunk(words, columns) {
		var line strings.Builder
		for _, word := range row {
			line.WriteString(word)
			line.WriteString(strings.Repeat(" ", cellWidth-uniseg.StringWidth(word)))
		}
		output.WriteString(strings.TrimRight(line.String(), " "))
		output.WriteString("\n")
	}

	return output.String()
}
