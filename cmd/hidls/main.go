// Command hidls prints a snapshot of the HID devices attached to the host.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/karalabe/usb"
	log "github.com/sirupsen/logrus"

	usbhid "github.com/wangyangyangisme/usbhid"
)

func main() {
	jsonOut := flag.Bool("json", false, "print records as JSON")
	verbose := flag.Bool("v", false, "enable debug logging")
	rawUSB := flag.Bool("usb", false, "also list raw USB devices that expose no HID interface")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	devices := usbhid.Installed()
	log.WithField("count", len(devices)).Debug("enumeration finished")

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(devices); err != nil {
			log.WithError(err).Fatal("encoding device list")
		}
	} else {
		printTable(devices)
	}

	if *rawUSB {
		printRawUSB(devices)
	}
}

func printTable(devices []usbhid.DeviceInfo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "VID\tPID\tVER\tUSAGE\tIN\tOUT\tFEAT\tMANUFACTURER\tPRODUCT\tPATH")
	for _, d := range devices {
		fmt.Fprintf(w, "%04x\t%04x\t%04x\t%04x/%04x\t%d\t%d\t%d\t%s\t%s\t%s\n",
			d.Attributes.VendorID,
			d.Attributes.ProductID,
			d.Attributes.VersionNumber,
			d.Caps.UsagePage,
			d.Caps.Usage,
			d.Caps.InputReportLength,
			d.Caps.OutputReportLength,
			d.Caps.FeatureReportLength,
			d.Manufacturer,
			d.Product,
			d.Path,
		)
	}
	w.Flush()
}

// printRawUSB lists USB devices the HID snapshot did not cover, e.g. vendor
// devices bound to WinUSB or libusb drivers.
func printRawUSB(hidDevices []usbhid.DeviceInfo) {
	infos, err := usb.Enumerate(0, 0)
	if err != nil {
		log.WithError(err).Error("raw USB enumeration failed")
		return
	}

	seen := make(map[string]bool, len(hidDevices))
	for _, d := range hidDevices {
		seen[d.Path] = true
	}

	fmt.Println()
	fmt.Println("Raw USB devices without a HID interface:")
	for _, info := range infos {
		if seen[info.Path] {
			continue
		}
		fmt.Printf("  %04x:%04x %s %s (%s)\n",
			info.VendorID, info.ProductID, info.Manufacturer, info.Product, info.Path)
	}
}
