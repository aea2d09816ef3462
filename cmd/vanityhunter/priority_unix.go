//go:build linux || darwin || freebsd

package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// highNice is the niceness requested by --high-priority. Values below zero
// need root or CAP_SYS_NICE.
const highNice = -10

// raisePriority lowers the niceness of the process.
func raisePriority() error {
	if err := unix.Setpriority(unix.PRIO_PROCESS, 0, highNice); err != nil {
		return fmt.Errorf("set niceness %d: %w", highNice, err)
	}
	return nil
}
