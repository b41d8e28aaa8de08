package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/subghz/wltrace/internal/transceiver"
)

var tablesFormat string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the effective command and register tables",
	Long: `
Print the opcode-to-command and register-address-to-name tables after
applying any overrides from the configuration file.

Examples:
  wltrace tables                  # human-readable listing
  wltrace tables --format yaml    # yaml export, reusable as table overrides
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		commands, err := commandTable(cfg)
		if err != nil {
			return err
		}
		registers, err := registerTable(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch tablesFormat {
		case "text":
			writeTablesText(out, commands, registers)
			return nil
		case "yaml":
			return writeTablesYAML(out, commands, registers)
		default:
			return fmt.Errorf("unsupported format: %s (must be text or yaml)", tablesFormat)
		}
	},
}

func init() {
	tablesCmd.Flags().StringVarP(&tablesFormat, "format", "f", "text", "output format (text or yaml)")
	rootCmd.AddCommand(tablesCmd)
}

func writeTablesText(w io.Writer, commands transceiver.CommandTable, registers transceiver.RegisterTable) {
	ops := make([]int, 0, len(commands))
	for op := range commands {
		ops = append(ops, int(op))
	}
	sort.Ints(ops)

	fmt.Fprintln(w, "Commands:")
	for _, op := range ops {
		fmt.Fprintf(w, "  0x%02X  %s\n", op, commands.Name(byte(op)))
	}

	addrs := make([]int, 0, len(registers))
	for addr := range registers {
		addrs = append(addrs, int(addr))
	}
	sort.Ints(addrs)

	fmt.Fprintln(w, "\nRegisters:")
	for _, addr := range addrs {
		name, _ := registers.Name(uint16(addr))
		fmt.Fprintf(w, "  0x%04X  %s\n", addr, name)
	}
}

func writeTablesYAML(w io.Writer, commands transceiver.CommandTable, registers transceiver.RegisterTable) error {
	doc := struct {
		Commands  map[string]string `yaml:"commands"`
		Registers map[string]string `yaml:"registers"`
	}{
		Commands:  make(map[string]string, len(commands)),
		Registers: make(map[string]string, len(registers)),
	}
	for op, name := range commands {
		doc.Commands[fmt.Sprintf("0x%02X", op)] = name
	}
	for addr, name := range registers {
		doc.Registers[fmt.Sprintf("0x%04X", addr)] = name
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}
