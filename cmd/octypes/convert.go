package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/octypes-go/internal/octypes/ocjson"
	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

var (
	convertIn   string
	convertOut  string
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Round-trip a value through the typed/untyped JSON modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(convertIn)
		if err != nil {
			return fmt.Errorf("read %s: %w", convertIn, err)
		}

		var v value.Value
		switch convertFrom {
		case "typed":
			v, err = ocjson.UnmarshalTyped(data)
		case "untyped":
			v, err = ocjson.UnmarshalUntyped(data)
		default:
			return fmt.Errorf("--from must be \"typed\" or \"untyped\", got %q", convertFrom)
		}
		if err != nil {
			return err
		}

		var node any
		switch convertTo {
		case "typed":
			node, err = ocjson.ToTyped(v)
		case "untyped":
			node, err = ocjson.ToUntyped(v)
		default:
			return fmt.Errorf("--to must be \"typed\" or \"untyped\", got %q", convertTo)
		}
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}

		if convertOut == "" {
			fmt.Println(string(out))
			return nil
		}
		return os.WriteFile(convertOut, out, 0644)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertIn, "in", "", "input JSON file (required)")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output JSON file (default: stdout)")
	convertCmd.Flags().StringVar(&convertFrom, "from", "untyped", "source mode: untyped|typed")
	convertCmd.Flags().StringVar(&convertTo, "to", "typed", "destination mode: untyped|typed")
	_ = convertCmd.MarkFlagRequired("in")
}
