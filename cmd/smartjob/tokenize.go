package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "Split free-form skill text into canonical skills",
	Long:  "Splits comma, semicolon or newline separated skill text (or whitespace separated text when no list separator is present) into at most 30 distinct skills.",
	RunE:  runTokenize,
}

var (
	tokenizeInput  string
	tokenizeOutput string
)

func init() {
	tokenizeCmd.Flags().StringVarP(&tokenizeInput, "input", "i", "", "Skill text to tokenize (required)")
	tokenizeCmd.Flags().StringVarP(&tokenizeOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(tokenizeCmd, "input")

	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, _ []string) error {
	return writeOutput(cmd, tokenizeOutput, types.TokenizeResponse{Skills: skills.Tokenize(tokenizeInput)})
}
