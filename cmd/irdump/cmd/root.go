package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/shard/internal/diagnostic"
	"github.com/cwbudde/shard/internal/ir"
	"github.com/cwbudde/shard/internal/ircodec"
	"github.com/cwbudde/shard/internal/printer"
	"github.com/cwbudde/shard/internal/source"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "irdump [PATH]",
	Short: "Dump a Shard IR module as text",
	Long: `irdump prints the textual form of a Shard IR module.

With no argument it renders a built-in example module, useful for
checking that the pretty printer and the binary codec agree on shape.
With PATH, it reads a binary IR file written by the codec and dumps
its contents.`,
	Args:    cobra.MaximumNArgs(1),
	Version: Version,
	RunE:    runDump,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file controlling output formatting")
}

func runDump(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var mod *ir.Module
	if len(args) == 0 {
		mod = exampleModule()
	} else {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		mod, err = ircodec.Decode(data)
		if err != nil {
			diag := diagnostic.New(source.Range{}, err.Error(), "", path)
			fmt.Fprint(os.Stderr, diag.Format(cfg.Color))
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	fmt.Print(printer.Print(mod))
	return nil
}

// exampleModule builds the built-in sanity-check module: an identity
// add function over int32, matching the codec's canonical example.
func exampleModule() *ir.Module {
	m := ir.NewModule("example")
	fn, err := m.CreateFunction("add", []ir.Type{ir.Int32Type, ir.Int32Type}, ir.Int32Type)
	if err != nil {
		panic(err)
	}
	b := fn.CreateBlock()
	sum, err := b.CreateArith(ir.ArithAdd, fn.Arg(0), fn.Arg(1))
	if err != nil {
		panic(err)
	}
	if err := b.CreateReturn(sum); err != nil {
		panic(err)
	}
	return m
}
