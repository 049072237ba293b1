// The command "presetgen" derives preset dictionaries from a base dictionary.
//
// Each preset is the base CSV with the replacement column of selected words
// overwritten. Headers and row counts are preserved, so every preset can be
// fed to "daoben convert --dict" unchanged.
//
// Example usages:
//
//	# Generate the stock presets dictionary_c.csv, dictionary_d.csv and
//	# dictionary_f.csv next to dictionary.csv:
//	presetgen
//
//	# Stock presets plus one built from an edits file:
//	presetgen --plan mine=my_edits.csv
//
//	# Only the custom preset, from another base:
//	presetgen --builtin=false --base base.csv --plan mine=my_edits.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"daobentools/pkg/preset"
)

const usageText = `presetgen - preset dictionary generator

Usage:
  presetgen [flags]

Flags:
  --base PATH
      Base dictionary CSV (default "dictionary.csv").

  --out-dir DIR
      Directory receiving the generated files (default: the directory of
      --base).

  --builtin
      Generate the stock presets c, d and f (default true).

  --plan NAME=PATH
      Add a preset built from PATH, a headerless two-column CSV of
          <daoben word>,<replacement>
      The output is written to dictionary_NAME.csv. This flag can be
      repeated.
`

// stringSliceFlag implements flag.Value to allow repeated flags.
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// genConfig holds options for a generation run.
type genConfig struct {
	BasePath  string
	OutDir    string
	Builtin   bool
	PlanSpecs []string
}

// loadPlans returns the plans selected by cfg, built-in ones first.
func loadPlans(cfg genConfig) ([]preset.Plan, error) {
	var plans []preset.Plan
	if cfg.Builtin {
		plans = append(plans, preset.Builtin()...)
	}
	for _, spec := range cfg.PlanSpecs {
		name, path, err := preset.ParsePlanSpec(spec)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("plan %q: %w", name, err)
		}
		edits, err := preset.LoadEdits(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("plan %q: %s: %w", name, path, err)
		}
		plans = append(plans, preset.Plan{
			Name:    name,
			Outfile: preset.OutfileFor(name),
			Edits:   edits,
		})
	}
	return plans, nil
}

// writePlan applies plan to base and writes the result to path.
func writePlan(path string, base [][]string, plan preset.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := preset.WriteTable(f, preset.Apply(base, plan)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// runGenerate writes one derived dictionary per selected plan and reports
// each file on w.
func runGenerate(cfg genConfig, w io.Writer) error {
	plans, err := loadPlans(cfg)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		return errors.New("nothing to generate: --builtin=false and no --plan given")
	}

	f, err := os.Open(cfg.BasePath)
	if err != nil {
		return fmt.Errorf("open base: %w", err)
	}
	base, err := preset.ReadTable(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.BasePath, err)
	}
	if len(base) == 0 {
		return fmt.Errorf("%s: empty table", cfg.BasePath)
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = filepath.Dir(cfg.BasePath)
	}

	for _, plan := range plans {
		out := filepath.Join(outDir, plan.Outfile)
		if err := writePlan(out, base, plan); err != nil {
			return fmt.Errorf("plan %q: %w", plan.Name, err)
		}
		fmt.Fprintf(w, "Generated %s (%d edits)\n", out, len(plan.Edits))
	}
	fmt.Fprintln(w, "Finished.")
	return nil
}

func main() {
	fs := flag.NewFlagSet("presetgen", flag.ContinueOnError)

	basePath := fs.String("base", "dictionary.csv", "base dictionary CSV")
	outDir := fs.String("out-dir", "", "output directory (default: directory of --base)")
	builtin := fs.Bool("builtin", true, "generate the stock presets c, d and f")

	var planSpecs stringSliceFlag
	fs.Var(&planSpecs, "plan", "NAME=PATH edits file for an extra preset. Can be repeated.")

	fs.SetOutput(os.Stderr)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usageText+"\n") }

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if fs.NArg() != 0 {
		log.Fatalf("unexpected arguments %q", fs.Args())
	}

	cfg := genConfig{
		BasePath:  strings.TrimSpace(*basePath),
		OutDir:    strings.TrimSpace(*outDir),
		Builtin:   *builtin,
		PlanSpecs: planSpecs,
	}
	if err := runGenerate(cfg, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
