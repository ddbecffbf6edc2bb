// main.go - zexrun: drives ZEXDOC/ZEXALL-style .com exercisers to completion
// against the z80 core and host package, relaying the program's own console
// output; it reports an error only if the image does not exit in time.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"z80core/host"
	"z80core/z80"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zexrun",
		Short: "Run a CP/M .com Z80 exerciser image against the z80 core",
	}
	root.AddCommand(runCmd())
	root.AddCommand(traceCmd())
	return root
}

func runCmd() *cobra.Command {
	var quiet bool
	var maxInstructions int

	cmd := &cobra.Command{
		Use:   "run <image.com>",
		Short: "Load and execute a .com image until it exits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := io.Writer(os.Stdout)
			if quiet {
				w = io.Discard
			}
			return execute(args[0], w, maxInstructions)
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the program's own BDOS console output")
	cmd.Flags().IntVar(&maxInstructions, "max-instructions", 2_000_000_000,
		"safety cutoff in case the image never reaches the warm-boot vector")
	return cmd
}

func traceCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "trace <image.com>",
		Short: "Print the first N instruction boundaries (PC, opcode byte) without running BDOS output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem := host.NewMemory()
			var s z80.State
			if err := host.LoadCOM(args[0], mem, &s); err != nil {
				return err
			}
			bdos := host.NewBDOS(io.Discard)
			for i := 0; i < count; i++ {
				if bdos.Check(&s, mem) {
					if bdos.Exited {
						break
					}
					continue
				}
				pc := s.PC
				op := mem.ReadByte(pc)
				fmt.Printf("%04X: %02X\n", pc, op)
				s.Exec(1, mem.Tick)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 50, "number of instruction boundaries to print")
	return cmd
}

// execute runs a .com image to completion (PC reaching the warm-boot vector)
// or until maxInstructions boundaries have passed, whichever comes first.
func execute(path string, w io.Writer, maxInstructions int) error {
	mem := host.NewMemory()
	var s z80.State
	if err := host.LoadCOM(path, mem, &s); err != nil {
		return err
	}

	bdos := host.NewBDOS(w)
	for i := 0; i < maxInstructions; i++ {
		if bdos.Check(&s, mem) {
			if bdos.Exited {
				return nil
			}
			continue
		}
		s.Exec(1, mem.Tick)
	}
	return fmt.Errorf("zexrun: exceeded %d instruction boundaries without exiting", maxInstructions)
}
