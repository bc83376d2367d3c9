package main

import (
	"fmt"
	"time"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/leandrodaf/hui/internal/logger"
	"github.com/leandrodaf/hui/sdk/contracts"
	"github.com/leandrodaf/hui/sdk/hui"
)

func main() {
	log := logger.NewZapLogger()

	defer midi.CloseDriver()
	in, err := midi.FindInPort("HUI")
	if err != nil {
		log.Error("No HUI input port found", log.Field().Error("error", err))
		return
	}
	out, err := midi.FindOutPort("HUI")
	if err != nil {
		log.Error("No HUI output port found", log.Field().Error("error", err))
		return
	}

	client, err := hui.NewHUIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithRole(contracts.RoleHost),
		contracts.WithPorts(in, out),
		contracts.WithEventFilter(contracts.EventFilter{
			Kinds: []contracts.EventKind{contracts.KindSwitch, contracts.KindFader, contracts.KindVPot},
		}),
	)
	if err != nil {
		log.Error("Failed to initialize HUI client", log.Field().Error("error", err))
		return
	}
	defer client.Stop()

	eventChannel := make(chan contracts.Event, 100)
	go func() {
		for event := range eventChannel {
			log.Info("HUI Event", log.Field().String("event", fmt.Sprintf("%+v", event)))
		}
	}()
	client.StartCapture(eventChannel)

	// Light a record-ready LED, move a fader, and label the strip.
	client.SetSwitch(contracts.ChannelSwitch(contracts.SwitchRecordReady, 0), true)
	client.SetFaderLevel(0, 0x2000)
	client.SetSmallDisplay(0, "Kick")
	client.SetLargeDisplay("Session: Demo", "Ready")
	client.SetTimeDisplay("00.00.00.00")

	fmt.Println("Capturing HUI events... Press Ctrl+C to exit.")
	for {
		time.Sleep(time.Second)
		fmt.Println("peer alive:", client.Alive())
	}
}
