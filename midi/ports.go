package midi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

var (
	ErrPortNotFound = errors.New("midi port not found")
	ErrScanTimeout  = errors.New("midi port scan timed out")
)

// ScanTimeout bounds a port listing. CoreMIDI can hang; when it does run
// `sudo killall coreaudiod midiserver`.
var ScanTimeout = 3 * time.Second

type portsResult struct {
	inPorts  []drivers.In
	outPorts []drivers.Out
}

func scan() (portsResult, error) {
	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{inPorts: gomidi.GetInPorts(), outPorts: gomidi.GetOutPorts()}
	}()

	select {
	case result := <-ch:
		return result, nil
	case <-time.After(ScanTimeout):
		return portsResult{}, ErrScanTimeout
	}
}

// ListPorts returns the names of every input and output port
func ListPorts() (ins, outs []string, err error) {
	ports, err := scan()
	if err != nil {
		return nil, nil, err
	}
	for _, p := range ports.inPorts {
		ins = append(ins, p.String())
	}
	for _, p := range ports.outPorts {
		outs = append(outs, p.String())
	}
	return ins, outs, nil
}

// FindPorts returns the input and output port whose names contain match
// (case-insensitive). A Launchpad exposes a DAW and a MIDI port pair; ports
// with "midi" in the name win.
func FindPorts(match string) (drivers.In, drivers.Out, error) {
	ports, err := scan()
	if err != nil {
		return nil, nil, err
	}

	inNames := make([]string, len(ports.inPorts))
	for i, p := range ports.inPorts {
		inNames[i] = p.String()
	}
	i := pick(inNames, match)
	if i < 0 {
		return nil, nil, fmt.Errorf("input %q: %w", match, ErrPortNotFound)
	}
	in := ports.inPorts[i]

	outNames := make([]string, len(ports.outPorts))
	for j, p := range ports.outPorts {
		outNames[j] = p.String()
	}
	// Prefer the output with the same name as the input
	j := pick(outNames, in.String())
	if j < 0 {
		j = pick(outNames, match)
	}
	if j < 0 {
		return nil, nil, fmt.Errorf("output %q: %w", match, ErrPortNotFound)
	}
	return in, ports.outPorts[j], nil
}

// FindOut returns the first output port whose name contains match
func FindOut(match string) (drivers.Out, error) {
	ports, err := scan()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(ports.outPorts))
	for i, p := range ports.outPorts {
		names[i] = p.String()
	}
	i := pick(names, match)
	if i < 0 {
		return nil, fmt.Errorf("output %q: %w", match, ErrPortNotFound)
	}
	return ports.outPorts[i], nil
}

// pick returns the index of the best port name containing match, or -1
func pick(names []string, match string) int {
	match = strings.ToLower(match)
	found := -1
	for i, name := range names {
		name = strings.ToLower(name)
		if !strings.Contains(name, match) {
			continue
		}
		if strings.Contains(name, "midi") {
			return i
		}
		if found < 0 {
			found = i
		}
	}
	return found
}

// IsLaunchpad reports whether a port name belongs to a Launchpad's MIDI port
func IsLaunchpad(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "launchpad") && strings.Contains(name, "midi")
}

// CloseDriver releases the MIDI driver. Call once on exit.
func CloseDriver() {
	gomidi.CloseDriver()
}
