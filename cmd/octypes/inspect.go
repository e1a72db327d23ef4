package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/octypes-go/internal/octypes/ocjson"
	"github.com/vaibhaw-/octypes-go/internal/octypes/registry"
	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

var (
	inspectIn    string
	inspectTyped bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Parse a JSON file and describe the reconstructed value tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(inspectIn)
		if err != nil {
			return fmt.Errorf("read %s: %w", inspectIn, err)
		}
		var v value.Value
		if inspectTyped {
			v, err = ocjson.UnmarshalTyped(data)
		} else {
			v, err = ocjson.UnmarshalUntyped(data)
		}
		if err != nil {
			return err
		}
		fmt.Printf("type: %s\n", registry.NameOf(v.TypeID()))
		fmt.Println(v.Describe())
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectIn, "in", "", "input JSON file (required)")
	inspectCmd.Flags().BoolVar(&inspectTyped, "typed", false, "parse in typed mode instead of untyped")
	_ = inspectCmd.MarkFlagRequired("in")
}
