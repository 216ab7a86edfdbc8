package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/grid-x/serial"

	"github.com/grid-x/dsyrs"
)

func main() {
	var (
		device   = flag.String("device", "/dev/ttyUSB0", "serial device of the RS485 adapter")
		baud     = flag.Int("baudrate", 9600, "symbol rate in bit/s")
		parity   = flag.String("parity", "N", "parity: N, E or O")
		stopbits = flag.Int("stopbits", 2, "number of stop bits")
		slaveID  = flag.Int("slave", 1, "station address of the drive, 0-247")
		timeout  = flag.Duration("timeout", time.Second, "per-transaction timeout")
		settle   = flag.Duration("settle", 0, "pause after each transaction")
		rs485    = flag.Bool("rs485", false, "enable driver-side RS485 direction control")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	if *slaveID < 0 || *slaveID > dsyrs.MaxSlaveID {
		logger.Error("invalid slave ID", "slave", *slaveID)
		os.Exit(2)
	}

	conn, err := dsyrs.Connect(dsyrs.ConnConfig{
		Device:   *device,
		BaudRate: *baud,
		Parity:   *parity,
		StopBits: *stopbits,
		Timeout:  *timeout,
		RS485:    serial.RS485Config{Enabled: *rs485},
	})
	if err != nil {
		logger.Error("connect failed", "device", *device, "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	client := dsyrs.NewClient(conn, dsyrs.WithSettleDelay(*settle))
	if err := client.SetSlave(byte(*slaveID)); err != nil {
		logger.Error("set slave failed", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := run(ctx, client, byte(*slaveID), flag.Args(), logger); err != nil {
		logger.Error("command failed", "cmd", flag.Arg(0), "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *dsyrs.Client, slaveID byte, args []string, logger *slog.Logger) error {
	switch cmd := args[0]; cmd {
	case "status":
		status, err := client.GetStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("state:       %s\n", status.State)
		fmt.Printf("speed:       %d rpm\n", status.Speed)
		fmt.Printf("load:        %.1f %%\n", status.LoadRate)
		fmt.Printf("torque:      %.1f %%\n", status.Torque)
		fmt.Printf("current:     %.2f A\n", status.Current)
		fmt.Printf("bus voltage: %.1f V\n", status.BusVoltage)
		fmt.Printf("position:    %d\n", status.Position)
		fmt.Printf("el. angle:   %.1f deg\n", status.ElectricalAngle)
		return nil

	case "version":
		v, err := client.GetVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("software: %d\nfpga:     %d\nproduct:  %#04x\n", v.Software, v.FPGA, v.ProductCode)
		return nil

	case "init":
		cfg := dsyrs.NewServoConfig(slaveID)
		return client.Init(ctx, cfg)

	case "fault-reset":
		return client.FaultReset(ctx)

	case "estop":
		return client.EmergencyStop(ctx)

	case "save":
		return client.WriteEEPROM(ctx)

	case "home":
		return client.StartHoming(ctx)

	case "speed":
		if len(args) < 2 {
			return fmt.Errorf("usage: speed <rpm>")
		}
		rpm, err := strconv.ParseInt(args[1], 10, 16)
		if err != nil {
			return fmt.Errorf("parse rpm %q: %w", args[1], err)
		}
		return client.SetSpeedCommand(ctx, int16(rpm))

	case "read":
		if len(args) < 2 {
			return fmt.Errorf("usage: read <register>")
		}
		address, err := parseRegister(args[1])
		if err != nil {
			return err
		}
		value, err := client.ReadRegister(ctx, address)
		if err != nil {
			return err
		}
		fmt.Printf("%#04x: %d (%#04x)\n", address, value, value)
		return nil

	case "write":
		if len(args) < 3 {
			return fmt.Errorf("usage: write <register> <value>")
		}
		address, err := parseRegister(args[1])
		if err != nil {
			return err
		}
		value, err := strconv.ParseUint(args[2], 0, 16)
		if err != nil {
			return fmt.Errorf("parse value %q: %w", args[2], err)
		}
		logger.Debug("writing register", "address", address, "value", value)
		return client.WriteRegister(ctx, address, uint16(value))

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// parseRegister accepts either a raw register address such as 0x1200 or
// the manual's PXX.YY notation such as P18.00.
func parseRegister(s string) (uint16, error) {
	if len(s) > 1 && (s[0] == 'P' || s[0] == 'p') {
		var group, index uint8
		if _, err := fmt.Sscanf(s[1:], "%d.%d", &group, &index); err != nil {
			return 0, fmt.Errorf("parse parameter %q: %w", s, err)
		}
		return dsyrs.ParamAddr(group, index), nil
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("parse register %q: %w", s, err)
	}
	return uint16(v), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [flags] <command> [args]

Commands:
  status              print the drive status snapshot
  version             print the firmware versions
  init                apply the default base setup
  fault-reset         clear a resettable fault
  estop               trigger an emergency stop
  save                commit parameters to EEPROM
  home                start the homing routine
  speed <rpm>         set the keyboard speed command
  read <register>     read a register (0x1200 or P18.00 notation)
  write <register> <value>

Flags:
`, os.Args[0])
	flag.PrintDefaults()
}
