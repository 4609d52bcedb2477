// Command arm7tdmi-run drives an arm7tdmi core against a flat ROM image.
// It loads the image into the reference bus at the game-pak base address
// (or the BIOS base with --bios) and steps the core under one of three
// subcommands: run, step, and disasm.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arm7tdmi/bus"
	"arm7tdmi/config"
	"arm7tdmi/core"
	"arm7tdmi/disasm"
	"arm7tdmi/exec"
	"arm7tdmi/trace"
)

const gamePakBase = 0x08000000
const biosBase = 0x00000000

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "arm7tdmi-run",
		Short: "Run, step, or disassemble an ARM7TDMI ROM image",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newStepCmd())
	root.AddCommand(newDisasmCmd())
	return root
}

// loadImage reads path and places it into a fresh bus.Memory at the
// game-pak segment (or the BIOS segment when asBIOS is set).
func loadImage(path string, asBIOS bool) (*bus.Memory, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied ROM path
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	m := bus.NewMemory()
	if asBIOS {
		if err := m.LoadBIOS(data); err != nil {
			return nil, fmt.Errorf("load bios: %w", err)
		}
	} else {
		if err := m.LoadROM(data); err != nil {
			return nil, fmt.Errorf("load rom: %w", err)
		}
	}
	return m, nil
}

// newCoreAt returns a core.Core with PC set to the chosen entry point.
func newCoreAt(entry uint32) *core.Core {
	c := core.NewCore()
	c.Write(core.PC, entry)
	return c
}

func newRunCmd() *cobra.Command {
	var (
		biosImage bool
		maxCycles uint64
		traceFile string
		enableTrc bool
	)
	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load an image and drive it until a cycle budget is spent or an error stops it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if maxCycles == 0 {
				maxCycles = cfg.Execution.MaxCycles
			}

			m, err := loadImage(args[0], biosImage)
			if err != nil {
				return err
			}
			entry := uint32(gamePakBase)
			if biosImage {
				entry = biosBase
			}
			c := newCoreAt(entry)

			tr := trace.New()
			tr.Enabled = enableTrc || cfg.Execution.EnableTrace
			if traceFile == "" {
				traceFile = cfg.Trace.OutputFile
			}

			var spent uint64
			for spent < maxCycles {
				pc := c.Read(core.PC)
				tr.Snapshot(c)
				cycles, err := exec.RunInstruction(c, m)
				if err != nil {
					return fmt.Errorf("execute at %#08x: %w", pc, err)
				}
				if tr.Enabled {
					if inst, ferr := m.ReadU32(pc); ferr == nil {
						tr.Record(c, pc, inst)
					}
				}
				spent += uint64(cycles)
			}

			if tr.Enabled {
				f, err := os.Create(traceFile) // #nosec G304 -- operator-supplied trace path
				if err != nil {
					return fmt.Errorf("create trace file: %w", err)
				}
				defer f.Close()
				if _, err := tr.WriteTo(f); err != nil {
					return fmt.Errorf("write trace: %w", err)
				}
			}

			fmt.Printf("halted after %d cycles at pc=%#08x\n", spent, c.Read(core.PC))
			return nil
		},
	}
	cmd.Flags().BoolVar(&biosImage, "bios", false, "load the image as BIOS rather than game-pak ROM")
	cmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "cycle budget (0 uses the config default)")
	cmd.Flags().StringVar(&traceFile, "trace-file", "", "trace output path (default from config)")
	cmd.Flags().BoolVar(&enableTrc, "trace", false, "record an execution trace")
	return cmd
}

func newStepCmd() *cobra.Command {
	var biosImage bool
	cmd := &cobra.Command{
		Use:   "step <image> <n>",
		Short: "Drive n instructions and dump the register file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadImage(args[0], biosImage)
			if err != nil {
				return err
			}
			var n int
			if _, err := fmt.Sscanf(args[1], "%d", &n); err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[1], err)
			}

			entry := uint32(gamePakBase)
			if biosImage {
				entry = biosBase
			}
			c := newCoreAt(entry)

			for i := 0; i < n; i++ {
				if _, err := exec.RunInstruction(c, m); err != nil {
					return fmt.Errorf("step %d: %w", i, err)
				}
			}
			dumpRegisters(c)
			return nil
		},
	}
	cmd.Flags().BoolVar(&biosImage, "bios", false, "load the image as BIOS rather than game-pak ROM")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	var (
		biosImage bool
		count     int
	)
	cmd := &cobra.Command{
		Use:   "disasm <image>",
		Short: "Decode and print an image's instructions without executing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadImage(args[0], biosImage)
			if err != nil {
				return err
			}
			addr := uint32(gamePakBase)
			if biosImage {
				addr = biosBase
			}
			for i := 0; i < count; i++ {
				word, err := m.ReadU32(addr)
				if err != nil {
					return fmt.Errorf("read at %#08x: %w", addr, err)
				}
				fmt.Printf("%08x:  %08x  %s\n", addr, word, disasm.ARM(word))
				addr += 4
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&biosImage, "bios", false, "load the image as BIOS rather than game-pak ROM")
	cmd.Flags().IntVar(&count, "count", 64, "number of 32-bit words to disassemble")
	return cmd
}

func dumpRegisters(c *core.Core) {
	for i := uint32(0); i < 16; i++ {
		fmt.Printf("r%-2d = %#08x\n", i, c.Read(i))
	}
	fmt.Println(c.CPSR.String())
}
