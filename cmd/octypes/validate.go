package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/octypes-go/internal/octypes/ocjson"
)

var validateIn string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse a typed-JSON file and report any type errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(validateIn)
		if err != nil {
			return fmt.Errorf("read %s: %w", validateIn, err)
		}
		if _, err := ocjson.UnmarshalTyped(data); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateIn, "in", "", "input JSON file (required)")
	_ = validateCmd.MarkFlagRequired("in")
}
