//go:build windows

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var procSetProcessInformation = windows.NewLazySystemDLL("kernel32.dll").
	NewProc("SetProcessInformation")

// raisePriority moves the process to high priority, falling back to above
// normal, and opts out of Windows power throttling (Efficiency Mode).
func raisePriority() error {
	process := windows.CurrentProcess()

	err := windows.SetPriorityClass(process, windows.HIGH_PRIORITY_CLASS)
	if err != nil {
		err = windows.SetPriorityClass(
			process, windows.ABOVE_NORMAL_PRIORITY_CLASS,
		)
		if err != nil {
			return err
		}
	}

	return disablePowerThrottling(process)
}

// disablePowerThrottling is available on Windows 10 1709 and later.
func disablePowerThrottling(process windows.Handle) error {
	const (
		processPowerThrottling = 4
		executionSpeed         = 0x1
	)

	type powerThrottlingState struct {
		Version     uint32
		ControlMask uint32
		StateMask   uint32
	}

	if err := procSetProcessInformation.Find(); err != nil {
		return nil
	}

	// A zero StateMask turns throttling off.
	state := powerThrottlingState{
		Version:     1,
		ControlMask: executionSpeed,
	}

	ret, _, err := procSetProcessInformation.Call(
		uintptr(process),
		processPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	)
	if ret == 0 {
		return err
	}
	return nil
}
