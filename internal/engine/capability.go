package engine

import (
	"os"
	"runtime"
)

// detectAccelerator checks whether the machine exposes a GPU the local
// runtime can use. ABD_ACCELERATOR=on|off overrides detection, which also
// makes the gate testable on build machines without a GPU.
func detectAccelerator() bool {
	switch os.Getenv("ABD_ACCELERATOR") {
	case "on":
		return true
	case "off":
		return false
	}

	switch runtime.GOOS {
	case "darwin":
		// Metal is available on every supported Mac.
		return true
	case "linux":
		for _, dev := range []string{"/dev/nvidia0", "/dev/kfd", "/dev/dri"} {
			if _, err := os.Stat(dev); err == nil {
				return true
			}
		}
		return false
	case "windows":
		// No cheap probe; let the runtime decide.
		return true
	default:
		return false
	}
}
