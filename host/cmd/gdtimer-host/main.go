package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"gdtimer/config"
	"gdtimer/core"
	"gdtimer/host/monitor"
	"gdtimer/host/serial"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "plan":
		err = runPlan(os.Args[2:])
	case "calc":
		err = runCalc(os.Args[2:])
	case "monitor":
		err = runMonitor(os.Args[2:])
	case "help", "-h", "--help":
		printHelp()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printHelp()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("gdtimer-host - GD32VF103 countdown timer tooling")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  plan [-file plan.json]              - Print register values for a timer plan")
	fmt.Println("  calc -base HZ -timeout HZ           - Print register values for one timer")
	fmt.Println("  monitor -device DEV [-expect HZ]    - Measure the firmware tick rate")
	fmt.Println()
}

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	file := fs.String("file", "", "JSON timer plan (default: built-in Longan Nano plan)")
	fs.Parse(args)

	plan := config.DefaultLonganNanoPlan()
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read plan: %w", err)
		}
		plan, err = config.LoadPlan(data)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Board %s, CK_SYS %d Hz, RCU_CFG0 0x%08X\n\n", plan.Board, plan.SysClock, plan.CFG0)
	fmt.Printf("%-10s %-7s %12s %12s %6s %6s %12s %14s\n", "name", "timer", "base", "timeout", "psc", "car", "nominal", "hardware")
	for _, e := range plan.Resolve() {
		fmt.Printf("%-10s TIMER%-2d %12d %12d %6d %6d %12d %14.4f\n",
			e.Name, e.Timer, e.Base, e.TimeoutHz, e.Divider.Prescaler, e.Divider.AutoReload, e.Actual, e.Hardware)
		if e.Warning != nil {
			fmt.Printf("  warning: %v\n", e.Warning)
		}
	}
	return nil
}

func runCalc(args []string) error {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	base := fs.Uint("base", 8000000, "Timer input clock in Hz")
	timeout := fs.Uint("timeout", 1000, "Timeout frequency in Hz")
	fs.Parse(args)

	b, t := core.Hertz(*base), core.Hertz(*timeout)
	if b == 0 {
		return fmt.Errorf("base frequency must be non-zero")
	}
	if err := core.CheckTimeout(b, t); err != nil {
		if err == core.ErrZeroTimeout {
			return err
		}
		fmt.Printf("warning: %v\n", err)
	}

	d := core.ComputeDivider(b, t)
	fmt.Printf("total ticks  %d\n", uint32(b)/uint32(t))
	fmt.Printf("prescaler    %d\n", d.Prescaler)
	fmt.Printf("auto-reload  %d\n", d.AutoReload)
	fmt.Printf("nominal      %d Hz (period %v)\n", d.Output(b), time.Duration(d.Ticks())*time.Second/time.Duration(b))
	fmt.Printf("hardware     %.4f Hz (period %v)\n", d.HardwareRate(b), time.Duration(d.HardwareTicks())*time.Second/time.Duration(b))
	return nil
}

func runMonitor(args []string) error {
	fs := flag.NewFlagSet("monitor", flag.ExitOnError)
	device := fs.String("device", "/dev/ttyUSB0", "Serial device path")
	baud := fs.Int("baud", 115200, "Baud rate")
	expect := fs.Uint("expect", 1, "Expected tick rate in Hz")
	count := fs.Int("count", 60, "Stop after this many ticks (0 = until interrupted)")
	verbose := fs.Bool("verbose", false, "Print firmware debug lines")
	fs.Parse(args)

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = 0

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()
	port.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Unblock the reader on interrupt. NativePort.Close is idempotent, so
	// racing the deferred Close is harmless.
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	fmt.Printf("Monitoring %s, expecting %d Hz...\n", *device, *expect)

	var other func(string)
	if *verbose {
		other = func(line string) { fmt.Println("  " + line) }
	}
	stats, err := monitor.Run(ctx, port, time.Now, *count, other)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("monitor: %w", err)
	}

	fmt.Printf("ticks %d, missed %d, span %v\n", stats.Ticks, stats.Missed, stats.Span)
	fmt.Printf("gap min %v, max %v\n", stats.Min, stats.Max)
	fmt.Printf("rate %s Hz, error %s ppm\n",
		strconv.FormatFloat(stats.Rate(), 'f', 4, 64),
		strconv.FormatFloat(stats.ErrorPPM(core.Hertz(*expect)), 'f', 1, 64))
	return nil
}
