package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go-trellis/board"
	"go-trellis/midi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	defer midi.CloseDriver()

	match := "launchpad"
	if len(os.Args) > 2 {
		match = os.Args[2]
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = listPorts()
	case "detect":
		err = detect(match)
	case "leds":
		err = testLEDs(match)
	case "clear":
		err = clearPads(match)
	case "poll":
		pollDevices()
	default:
		usage()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands (optional second argument matches the port name):")
	fmt.Println("  list    - List all MIDI ports")
	fmt.Println("  detect  - Find Launchpad X")
	fmt.Println("  leds    - Test LED control, then echo pad presses")
	fmt.Println("  clear   - Turn every pad off")
	fmt.Println("  poll    - Poll for device changes")
}

func listPorts() error {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Printf("(waiting up to %v...)\n", midi.ScanTimeout)

	ins, outs, err := midi.ListPorts()
	if err != nil {
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return err
	}
	for i, name := range ins {
		fmt.Printf("  %d: %s\n", i, name)
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, name := range outs {
		fmt.Printf("  %d: %s\n", i, name)
	}
	return nil
}

func detect(match string) error {
	fmt.Printf("Looking for %q...\n", match)
	in, out, err := midi.FindPorts(match)
	if err != nil {
		fmt.Println("\nLaunchpad X not found")
		return err
	}
	fmt.Printf("Found input: %s\n", in)
	fmt.Printf("Found output: %s\n", out)
	fmt.Println("\nLaunchpad X detected!")
	return nil
}

func openLaunchpad(match string) (*midi.Launchpad, error) {
	in, out, err := midi.FindPorts(match)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Using %s / %s\n", in, out)
	return midi.OpenLaunchpad(in, out, 1)
}

func testLEDs(match string) error {
	lp, err := openLaunchpad(match)
	if err != nil {
		return err
	}
	defer lp.Close()

	fmt.Println("Lighting up diagonal (green)...")
	lp.Fill(board.Black)
	for i := 0; i < board.Rows; i++ {
		lp.Set(board.Coord{Col: i, Row: i}, board.Hex(0x00FF00))
		time.Sleep(100 * time.Millisecond)
	}

	fmt.Println("Press pads for 5 seconds...")
	held := board.NewPoller()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for _, c := range held.Read(lp) {
			fmt.Printf("  pressed %v\n", c)
			lp.Set(c, board.White)
		}
		time.Sleep(10 * time.Millisecond)
	}

	fmt.Printf("Done! %d LED messages sent\n", lp.Sent())
	return nil
}

func clearPads(match string) error {
	lp, err := openLaunchpad(match)
	if err != nil {
		return err
	}
	return lp.Close()
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect Launchpad to test. Ctrl+C to exit.")

	lastIn := ""
	lastOut := ""

	for {
		inNames, outNames, err := midi.ListPorts()
		if err != nil {
			fmt.Printf("\n[%s] %v\n", time.Now().Format("15:04:05"), err)
			time.Sleep(2 * time.Second)
			continue
		}

		currentIn := strings.Join(inNames, ",")
		currentOut := strings.Join(outNames, ",")

		if currentIn != lastIn || currentOut != lastOut {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			fmt.Printf("  Outputs: %v\n", outNames)

			for _, name := range inNames {
				if midi.IsLaunchpad(name) {
					fmt.Println("  -> Launchpad detected!")
				}
			}

			lastIn = currentIn
			lastOut = currentOut
		}

		time.Sleep(2 * time.Second)
	}
}
