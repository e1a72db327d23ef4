package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vaibhaw-/octypes-go/internal/octypes/fixtures"
	"github.com/vaibhaw-/octypes-go/internal/octypes/ocjson"
)

// WorkloadConfig is ocgen's YAML workload description, shaped after the
// teacher's loadr.LoadConfig.
type WorkloadConfig struct {
	Seed     int64  `yaml:"seed"`
	Count    int    `yaml:"count"`
	MaxDepth int    `yaml:"maxDepth"`
	Output   string `yaml:"output"`
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	Table    string `yaml:"table"`
	IDPrefix string `yaml:"idPrefix"`
}

func readWorkloadConfig(path string) (WorkloadConfig, error) {
	log.Printf("[DEBUG] Loading config from %s\n", path)
	var cfg WorkloadConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Count <= 0 {
		cfg.Count = 10
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 3
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = "fixture"
	}
	return cfg, nil
}

// Gen generates a random fixture set per configPath and writes it as a
// typed-JSON array to cfg.Output.
func Gen(configPath string) {
	cfg, err := readWorkloadConfig(configPath)
	if err != nil {
		log.Fatalf("[FATAL] Error loading config: %v", err)
	}

	fixtures.Seed(cfg.Seed)
	gen := fixtures.NewGenerator()
	gen.MaxDepth = cfg.MaxDepth
	values := gen.GenerateMany(cfg.Count)

	nodes := make([]any, len(values))
	for i, v := range values {
		node, err := ocjson.ToTyped(v)
		if err != nil {
			log.Fatalf("[FATAL] marshal fixture %d: %v", i, err)
		}
		nodes[i] = node
	}

	out, err := json.MarshalIndent(nodes, "", "  ")
	if err != nil {
		log.Fatalf("[FATAL] marshal fixture set: %v", err)
	}
	if err := os.WriteFile(cfg.Output, out, 0644); err != nil {
		log.Fatalf("[FATAL] write %s: %v", cfg.Output, err)
	}

	log.Printf("[INFO] Generation complete: count=%d maxDepth=%d output=%s", cfg.Count, cfg.MaxDepth, cfg.Output)
	fmt.Printf("fixture set written: %s\n", cfg.Output)
}
