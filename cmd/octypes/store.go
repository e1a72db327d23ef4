package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/octypes-go/internal/octypes/ocjson"
	"github.com/vaibhaw-/octypes-go/internal/octypes/store"
)

var (
	storeDSN    string
	storeDriver string
	storeID     string
	storeIn     string
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Persist or fetch a value to/from a SQL-backed store",
}

var storePutCmd = &cobra.Command{
	Use:   "put",
	Short: "Marshal a value to typed JSON and upsert it under --id",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(storeIn)
		if err != nil {
			return fmt.Errorf("read %s: %w", storeIn, err)
		}
		v, err := ocjson.UnmarshalUntyped(data)
		if err != nil {
			return err
		}
		s, err := store.Open(context.Background(), storeDriver, storeDSN, "")
		if err != nil {
			return err
		}
		defer s.Close()
		return s.Put(context.Background(), storeID, v)
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a value by --id and print its Describe()",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(context.Background(), storeDriver, storeDSN, "")
		if err != nil {
			return err
		}
		defer s.Close()
		v, err := s.Get(context.Background(), storeID)
		if err != nil {
			return err
		}
		fmt.Println(v.Describe())
		return nil
	},
}

func init() {
	storeCmd.PersistentFlags().StringVar(&storeDSN, "dsn", "", "database connection string (required)")
	storeCmd.PersistentFlags().StringVar(&storeDriver, "driver", "postgres", "postgres|mysql")
	storeCmd.PersistentFlags().StringVar(&storeID, "id", "", "value id (required)")
	storePutCmd.Flags().StringVar(&storeIn, "in", "", "input JSON file (required)")
	storeCmd.AddCommand(storePutCmd)
	storeCmd.AddCommand(storeGetCmd)
}
