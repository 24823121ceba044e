package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/flprog-tools/ino2ubi/internal/block"
	"github.com/flprog-tools/ino2ubi/internal/config"
	"github.com/flprog-tools/ino2ubi/internal/convert"
	"github.com/flprog-tools/ino2ubi/internal/files"
	"github.com/flprog-tools/ino2ubi/internal/logging"
	"github.com/flprog-tools/ino2ubi/internal/update"
)

const version = "1.3"

func main() {
	var (
		input, output, name, description string
		overridesPath                    string
		enableInput, dump                bool
		checkUpdate, showVersion         bool
	)
	flag.StringVar(&input, "input", "", "path to the Arduino sketch (.ino) to convert")
	flag.StringVar(&input, "i", "", "shorthand for -input")
	flag.StringVar(&output, "output", "", "path for the .ubi file (default: sketch path with .ubi extension)")
	flag.StringVar(&output, "o", "", "shorthand for -output")
	flag.StringVar(&name, "name", "", "block name (default: sketch file name)")
	flag.StringVar(&name, "n", "", "shorthand for -name")
	flag.StringVar(&description, "description", "", "block description (default: sketch's leading comment)")
	flag.StringVar(&description, "d", "", "shorthand for -description")
	flag.StringVar(&overridesPath, "overrides", "", "YAML file with role/alias/default overrides")
	flag.BoolVar(&enableInput, "enable-input", false, "add an En input that gates the loop code")
	flag.BoolVar(&dump, "dump", false, "print the analysis as JSON to stdout")
	flag.BoolVar(&checkUpdate, "check-update", false, "check for a newer release before converting")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("ino2ubi " + version)
		return
	}

	cfg := config.LoadOrDefault()
	log := logging.NewDefault(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		File:        cfg.Logging.File,
	})
	defer func() { _ = log.Sync() }()

	if checkUpdate || cfg.Update.Enabled {
		notifyUpdate(log, cfg)
	}

	if input == "" {
		fmt.Fprintln(os.Stderr, "usage: ino2ubi -input sketch.ino [-output block.ubi] [-name NAME] [-description TEXT]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	src, err := files.ReadSketch(input)
	if err != nil {
		log.Error("cannot read sketch", zap.Error(err))
		os.Exit(1)
	}

	var overrides block.Overrides
	if overridesPath != "" {
		overrides, err = block.LoadOverrides(overridesPath)
		if err != nil {
			log.Error("cannot load overrides", zap.Error(err))
			os.Exit(1)
		}
	}

	if name == "" {
		base := filepath.Base(input)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".ubi"
	} else if !strings.HasSuffix(output, ".ubi") {
		output += ".ubi"
	}

	result, err := convert.Convert(src, convert.Request{
		Metadata: block.Metadata{
			Name:        name,
			Description: description,
			Version:     cfg.Block.Version,
		},
		Overrides:   overrides,
		EnableInput: enableInput,
	})
	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		os.Exit(1)
	}

	for _, n := range result.Notices {
		log.Warn(n.Text, zap.Int("line", n.Line+1))
	}

	if dump {
		data, err := result.DumpAnalysis()
		if err != nil {
			log.Error("cannot dump analysis", zap.Error(err))
			os.Exit(1)
		}
		fmt.Println(string(data))
	}

	if err := files.WriteDocument(output, result.Document); err != nil {
		log.Error("cannot write block", zap.Error(err))
		os.Exit(1)
	}

	log.Info("block saved",
		zap.String("file", output),
		zap.Int("declarations", len(result.Analysis.Declarations)),
		zap.Int("functions", len(result.Analysis.Functions)),
		zap.Int("declare_lines", len(result.Analysis.DeclareLines)),
	)
}

// notifyUpdate logs when a newer release is available. Never fatal.
func notifyUpdate(log *logging.Logger, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Update.Timeout)
	defer cancel()

	rel, err := update.NewChecker(cfg.Update.URL, cfg.Update.Timeout).Latest(ctx)
	if err != nil {
		log.Debug("update check failed", zap.Error(err))
		return
	}
	if update.IsNewer(version, rel.Version) {
		log.Info("newer version available",
			zap.String("current", version),
			zap.String("latest", rel.Version),
			zap.String("url", rel.URL),
		)
	}
}
