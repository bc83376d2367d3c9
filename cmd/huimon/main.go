package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/leandrodaf/hui/internal/config"
	"github.com/leandrodaf/hui/internal/logger"
	"github.com/leandrodaf/hui/sdk/contracts"
	"github.com/leandrodaf/hui/sdk/hui"
)

// huimon attaches to a pair of MIDI ports and prints every HUI event it
// decodes — a wire-level monitor for debugging a DAW or a surface.
func main() {
	configPath := flag.String("config", "huimon.toml", "path to the configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", configPath, err)
	}
	role, err := cfg.Link.ParseRole()
	if err != nil {
		return err
	}
	level, err := cfg.Logger.ParseLevel()
	if err != nil {
		return err
	}

	log := logger.NewZapLogger()
	log.SetLevel(level)

	defer midi.CloseDriver()
	in, err := midi.FindInPort(cfg.Link.InPort)
	if err != nil {
		return fmt.Errorf("input port %q: %w", cfg.Link.InPort, err)
	}
	out, err := midi.FindOutPort(cfg.Link.OutPort)
	if err != nil {
		return fmt.Errorf("output port %q: %w", cfg.Link.OutPort, err)
	}

	client, err := hui.NewHUIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(level),
		contracts.WithRole(role),
		contracts.WithPorts(in, out),
		contracts.WithPingInterval(cfg.Link.PingInterval()),
		contracts.WithPingTimeout(cfg.Link.PingTimeout()),
	)
	if err != nil {
		return err
	}
	defer client.Stop()

	events := make(chan contracts.Event, 100)
	go func() {
		for ev := range events {
			logEvent(log, ev)
		}
	}()
	client.StartCapture(events)
	log.Info("huimon capturing; press Ctrl+C to exit",
		log.Field().String("role", role.String()))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")
	return nil
}

func logEvent(log contracts.Logger, ev contracts.Event) {
	switch e := ev.(type) {
	case contracts.SwitchEvent:
		log.Info("switch", log.Field().String("switch", e.Switch.String()),
			log.Field().Bool("on", e.On))
	case contracts.FaderEvent:
		log.Info("fader", log.Field().Uint8("channel", e.Channel),
			log.Field().Uint16("level", e.Level))
	case contracts.FaderTouchEvent:
		log.Info("fader touch", log.Field().Uint8("channel", e.Channel),
			log.Field().Bool("touched", e.Touched))
	case contracts.VPotEvent:
		log.Info("v-pot", log.Field().String("vpot", e.VPot.String()),
			log.Field().Uint8("value", e.Value))
	case contracts.MeterEvent:
		log.Info("meter", log.Field().Uint8("channel", e.Channel),
			log.Field().String("side", e.Side.String()),
			log.Field().Uint8("level", e.Level))
	case contracts.LargeDisplayEvent:
		log.Info("large display", log.Field().Uint8("slice", e.Slice),
			log.Field().String("text", e.Text))
	case contracts.TimeDisplayEvent:
		log.Info("time display", log.Field().String("text", e.Text))
	case contracts.SmallDisplayEvent:
		log.Info("small display", log.Field().Uint8("channel", e.Channel),
			log.Field().String("text", e.Text))
	case contracts.PingEvent:
		log.Debug("ping", log.Field().String("from", e.From.String()))
	}
}
