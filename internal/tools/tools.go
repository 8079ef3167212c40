package tools

import "github.com/interceptsdr/setup/internal/commander"

// Category groups tools for display. The table below is ordered by
// category, and probe order follows table order.
type Category int

const (
	CoreSDR Category = iota
	Hardware
	WiFi
	Bluetooth
)

func (c Category) String() string {
	switch c {
	case CoreSDR:
		return "Core SDR"
	case Hardware:
		return "Hardware support"
	case WiFi:
		return "WiFi"
	case Bluetooth:
		return "Bluetooth"
	default:
		return "Other"
	}
}

// Tool is one external dependency of the application. Aliases are
// alternate executable names accepted as the same tool.
type Tool struct {
	Command     string
	Description string
	Category    Category
	Aliases     []string
}

// Check is the result of probing one tool.
type Check struct {
	Tool
	Present bool
}

// table is the fixed dependency surface of the application. Grouping is
// static; it is never inferred from the host.
var table = []Tool{
	{Command: "rtl_fm", Description: "RTL-SDR FM demodulator", Category: CoreSDR},
	{Command: "rtl_test", Description: "RTL-SDR device test", Category: CoreSDR},
	{Command: "dump1090", Description: "ADS-B decoder", Category: CoreSDR, Aliases: []string{"dump1090-mutability", "dump1090-fa"}},
	{Command: "multimon-ng", Description: "Pager/POCSAG decoder", Category: CoreSDR},
	{Command: "sox", Description: "Audio processing", Category: CoreSDR},
	{Command: "hackrf_info", Description: "HackRF device support", Category: Hardware},
	{Command: "LimeUtil", Description: "LimeSDR device support", Category: Hardware},
	{Command: "airodump-ng", Description: "WiFi capture", Category: WiFi},
	{Command: "iw", Description: "Wireless interface control", Category: WiFi},
	{Command: "hcitool", Description: "Bluetooth device scanning", Category: Bluetooth},
	{Command: "bluetoothctl", Description: "Bluetooth controller management", Category: Bluetooth},
	{Command: "btmon", Description: "Bluetooth monitor", Category: Bluetooth},
}

// Table returns the fixed tool table in display order.
func Table() []Tool {
	out := make([]Tool, len(table))
	copy(out, table)
	return out
}

// Inventory probes every tool in the given table, preserving order.
// No probe failure is fatal; a missing tool is a normal result.
func Inventory(c commander.Commander, tbl []Tool) []Check {
	checks := make([]Check, 0, len(tbl))
	for _, tool := range tbl {
		present := commander.Probe(c, tool.Command)
		for _, alias := range tool.Aliases {
			if present {
				break
			}
			present = commander.Probe(c, alias)
		}
		checks = append(checks, Check{Tool: tool, Present: present})
	}
	return checks
}

// Missing returns the commands of absent tools in probe order.
func Missing(checks []Check) []string {
	var missing []string
	for _, c := range checks {
		if !c.Present {
			missing = append(missing, c.Command)
		}
	}
	return missing
}
