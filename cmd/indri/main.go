package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/arch/arm64/arm64asm"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zboralski/indri/internal/agent"
	"github.com/zboralski/indri/internal/emulator"
	"github.com/zboralski/indri/internal/hostvm"
	"github.com/zboralski/indri/internal/jit"
	glog "github.com/zboralski/indri/internal/log"
	"github.com/zboralski/indri/internal/refcodec"
	"github.com/zboralski/indri/internal/sig"
	"github.com/zboralski/indri/internal/trace"
	"github.com/zboralski/indri/internal/trampoline"
	"github.com/zboralski/indri/internal/ui/colorize"
)

var (
	verbose    bool
	quiet      bool
	configPath string
)

// retSentinel is where driven natives return to; hitting it stops the run.
const retSentinel = emulator.StubBase + 0xFFF0

func main() {
	rootCmd := &cobra.Command{
		Use:   "indri [binary.so]",
		Short: "Trace the Java/native boundary of ARM64 native libraries",
		Long: `Indri interposes on every crossing of the JNI boundary: it binds the
library's exported native methods through synthesized trampolines and
installs a full replacement JNI function table, then drives the bound
methods under Unicorn emulation and reports every boundary event.

Examples:
  indri libdemo.so                  # bind, drive, and trace exports
  indri libdemo.so -v               # verbose debug output
  indri info libdemo.so             # show binary info
  indri disasm --sig "(I)I"         # show a synthesized template`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE:                  runTrace,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet mode (summary only)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "agent config file (YAML)")

	infoCmd := &cobra.Command{
		Use:   "info <binary.so>",
		Short: "Show binary information",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}
	rootCmd.AddCommand(infoCmd)

	var disasmSig string
	disasmCmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble the trampoline template for a method descriptor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTemplate(disasmSig)
		},
	}
	disasmCmd.Flags().StringVar(&disasmSig, "sig", "(I)I", "method descriptor")
	rootCmd.AddCommand(disasmCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTrace(cmd *cobra.Command, args []string) error {
	glog.Init(verbose)

	cfg, err := agent.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cfg.Debug = cfg.Debug || verbose

	emu, err := emulator.New()
	if err != nil {
		return err
	}
	defer emu.Close()

	info, err := emu.LoadELF(args[0])
	if err != nil {
		return err
	}
	fallbacks := emu.InstallImportFallbacks(info.Imports)

	vm := hostvm.NewVM()
	a := agent.New(cfg, vm, emu)
	if status := a.OnLoad(""); status != 0 {
		return fmt.Errorf("agent attach failed with status %d", status)
	}

	bridge := hostvm.NewBridge(emu, vm)
	bridge.Signature = a.Interposer().Signature
	a.Interposer().CallerPC = bridge.CallerPC
	envAddr, err := bridge.Install()
	if err != nil {
		return err
	}

	out := bufio.NewWriterSize(os.Stdout, 64*1024)
	defer out.Flush()

	exports := info.NativeExports()
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)

	bound := 0
	driven := 0
	for _, symbol := range names {
		classDesc, method := splitNativeSymbol(symbol)
		mid := vm.DefineMethod(classDesc, method, "()V")
		entry := vm.BindNative(mid, exports[symbol])
		bound++
		if entry == exports[symbol] {
			if !quiet {
				fmt.Fprintf(out, "  skip  %s (direct binding kept)\n", symbol)
			}
			continue
		}

		// Drive the bound method: (env, receiver).
		emu.SetSP(emulator.StackBase + emulator.StackSize - 0x1000)
		emu.SetX(0, envAddr)
		emu.SetX(1, 0x2222)
		emu.SetLR(retSentinel)
		if err := emu.Run(entry, retSentinel); err != nil {
			if !quiet {
				fmt.Fprintf(out, "  fault %s: %v\n", symbol, err)
			}
			continue
		}
		driven++
		if !quiet {
			fmt.Fprintf(out, "  ran   %s -> %#x\n", symbol, emu.X(0))
		}
	}

	if !quiet {
		for _, e := range a.Collector().Events() {
			fmt.Fprintf(out, "%-12s %-28s %s\n", e.Tags.Primary(), e.Name, e.Detail)
		}
	}

	fmt.Fprintln(out, summary(a.Collector(), bound, driven, fallbacks))
	return nil
}

// splitNativeSymbol maps Java_com_example_Cls_method to the class
// descriptor and method name. Underscore escapes in real mangling
// (_1 etc.) are rare in practice and ignored here.
func splitNativeSymbol(symbol string) (classDesc, method string) {
	trimmed := strings.TrimPrefix(symbol, "Java_")
	parts := strings.Split(trimmed, "_")
	if len(parts) < 2 {
		return "LUnknown;", trimmed
	}
	method = parts[len(parts)-1]
	classDesc = "L" + strings.Join(parts[:len(parts)-1], "/") + ";"
	return classDesc, method
}

func summary(c *trace.Collector, bound, driven, fallbacks int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	title := lipgloss.NewStyle().Bold(true).Render("indri " + c.SessionID.String()[:8])
	body := fmt.Sprintf(
		"%s\nbindings     %d\ndriven       %d\nevents       %d\nimport stubs %d",
		title, bound, driven, len(c.Events()), fallbacks)
	return style.Render(body)
}

func showInfo(cmd *cobra.Command, args []string) error {
	glog.Init(verbose)

	emu, err := emulator.New()
	if err != nil {
		return err
	}
	defer emu.Close()

	info, err := emu.LoadELF(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("path:     %s\n", info.Path)
	fmt.Printf("machine:  %v\n", info.Machine)
	fmt.Printf("base:     %#x\n", info.BaseAddr)
	fmt.Printf("end:      %#x\n", info.EndAddr)
	fmt.Printf("entry:    %#x\n", info.Entry)
	fmt.Printf("symbols:  %d\n", len(info.Symbols))
	fmt.Printf("imports:  %d\n", len(info.Imports))

	exports := info.NativeExports()
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("native exports: %d\n", len(names))
	for _, name := range names {
		fmt.Printf("  %#x  %s\n", exports[name], name)
	}
	if addr := info.FindJNIOnLoad(); addr != 0 {
		fmt.Printf("JNI_OnLoad: %#x\n", addr)
	}
	return nil
}

func showTemplate(descriptor string) error {
	glog.Init(verbose)

	emu, err := emulator.New()
	if err != nil {
		return err
	}
	defer emu.Close()

	index := trampoline.NewReturnPCIndex()
	helpers, err := trampoline.InstallHelpers(emu, refcodec.Identity, index)
	if err != nil {
		return err
	}

	parsed, ok := sig.Parse(descriptor, 2)
	if !ok {
		return fmt.Errorf("unparseable descriptor %q", descriptor)
	}
	code, err := jit.EmitTemplateCode(&parsed, helpers)
	if err != nil {
		return err
	}

	fmt.Printf("template %s (key %s), %d bytes\n", descriptor, parsed.ShortKey(), len(code))
	for off := 0; off+4 <= len(code); off += 4 {
		raw := binary.LittleEndian.Uint32(code[off:])
		text := "?"
		if inst, err := arm64asm.Decode(code[off : off+4]); err == nil {
			text = strings.ToLower(inst.String())
		}
		fmt.Println(colorize.Line(emulator.ArenaBase+uint64(off), raw, text))
	}
	return nil
}
