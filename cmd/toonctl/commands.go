package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/k0kubun/toon-truth/config"
	"github.com/k0kubun/toon-truth/toon"
	"github.com/k0kubun/toon-truth/util"
)

type encodeOptions struct {
	Filter       string `long:"filter" description:"comma-separated field patterns to strip before encoding" value-name:"patterns"`
	FilterPreset string `long:"filter-preset" description:"named filter preset (e.g. google)" value-name:"name"`
	Config       string `long:"config" description:"YAML file defining filter_presets" value-name:"path"`
	Debug        bool   `long:"debug" description:"pretty-print the parsed value to stderr"`
}

type decodeOptions struct {
	Debug bool `long:"debug" description:"pretty-print the decoded value to stderr"`
}

type statsOptions struct {
	Filter       string `long:"filter" description:"comma-separated field patterns to strip before encoding" value-name:"patterns"`
	FilterPreset string `long:"filter-preset" description:"named filter preset (e.g. google)" value-name:"name"`
	Config       string `long:"config" description:"YAML file defining filter_presets" value-name:"path"`
}

// resolvePatterns combines the --filter comma list with a --filter-preset
// looked up from cfgPath, mirroring the precedence in spec.md §6: both may
// be supplied at once, and their patterns are simply concatenated.
func resolvePatterns(filterFlag, presetName, cfgPath string) ([]string, error) {
	var patterns []string
	for _, p := range strings.Split(filterFlag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}

	if presetName != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		preset, ok := cfg.ResolvePreset(presetName)
		if !ok {
			return nil, fmt.Errorf("toonctl: unknown filter preset %q (known: %s)", presetName, knownPresetNames(cfg))
		}
		patterns = append(patterns, preset...)
	}
	return patterns, nil
}

// knownPresetNames lists the user-defined presets in deterministic order
// (plus the built-in preset) for an unknown-preset error message.
func knownPresetNames(cfg config.Config) string {
	names := []string{config.GooglePresetName}
	for name := range util.CanonicalMapIter(cfg.FilterPresets) {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func debugPrint(w io.Writer, jsonText string) {
	var v any
	if err := json.Unmarshal([]byte(jsonText), &v); err != nil {
		return
	}
	pp.Fprintln(w, v)
}

func runEncode(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts encodeOptions
	if _, err := flags.NewParser(&opts, flags.PassDoubleDash).ParseArgs(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	patterns, err := resolvePatterns(opts.Filter, opts.FilterPreset, opts.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.Debug {
		debugPrint(stderr, string(input))
	}

	var out string
	if len(patterns) > 0 {
		out, err = toon.FilterAndEncode(string(input), patterns)
	} else {
		out, err = toon.Encode(string(input))
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func runDecode(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts decodeOptions
	if _, err := flags.NewParser(&opts, flags.PassDoubleDash).ParseArgs(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	out, err := toon.Decode(string(input))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.Debug {
		debugPrint(stderr, out)
	}

	fmt.Fprintln(stdout, out)
	return 0
}

func runStats(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts statsOptions
	if _, err := flags.NewParser(&opts, flags.PassDoubleDash).ParseArgs(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	patterns, err := resolvePatterns(opts.Filter, opts.FilterPreset, opts.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var toonText string
	if len(patterns) > 0 {
		toonText, err = toon.FilterAndEncode(string(input), patterns)
	} else {
		toonText, err = toon.Encode(string(input))
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	jsonSize := len(input)
	toonSize := len(toonText)
	reduction := 0.0
	if jsonSize > 0 {
		reduction = (1 - float64(toonSize)/float64(jsonSize)) * 100
	}

	fmt.Fprintf(stdout, "JSON size: %d bytes\n", jsonSize)
	fmt.Fprintf(stdout, "TOON size: %d bytes\n", toonSize)
	fmt.Fprintf(stdout, "Reduction: %.1f%%\n", reduction)
	return 0
}
