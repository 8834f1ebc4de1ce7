// Package usbhid reports the HID-class devices currently attached to the
// host. Installed takes a point-in-time snapshot: it enumerates every
// present HID interface, opens each device for metadata queries only, and
// joins the per-device query results into one record per device.
package usbhid

import (
	"fmt"

	"github.com/wangyangyangisme/usbhid/internal/hidenum"
)

// MaxDeviceStringLen bounds the manufacturer, product, and serial number
// strings a device may report.
const MaxDeviceStringLen = hidenum.MaxDeviceStringLen

// Attributes are the fixed-width identifiers of a HID device.
type Attributes struct {
	VendorID      uint16
	ProductID     uint16
	VersionNumber uint16
}

// Caps summarizes a device's report capabilities. Report lengths include
// the report ID byte. On hosts without preparsed descriptor data the
// usage fields may be zero.
type Caps struct {
	UsagePage uint16
	Usage     uint16

	InputReportLength   uint16
	OutputReportLength  uint16
	FeatureReportLength uint16

	LinkCollectionNodes uint16
	InputButtonCaps     uint16
	InputValueCaps      uint16
	OutputButtonCaps    uint16
	OutputValueCaps     uint16
	FeatureButtonCaps   uint16
	FeatureValueCaps    uint16
}

// DeviceInfo describes one installed HID device. Attributes are always
// populated; Manufacturer, Product, SerialNumber, and Caps are best effort
// and may be empty or zero values.
type DeviceInfo struct {
	Path         string
	Manufacturer string
	Product      string
	SerialNumber string
	Attributes   Attributes
	Caps         Caps
}

func (d DeviceInfo) String() string {
	return fmt.Sprintf("%04x:%04x %s", d.Attributes.VendorID, d.Attributes.ProductID, d.Path)
}

// Installed returns a snapshot of all currently installed HID devices. It
// never fails: enumeration problems, per-device query failures, and internal
// faults all collapse into a shorter (possibly empty) list. An empty result
// therefore means "no devices found" or "the query faulted",
// indistinguishably.
//
// Every OS handle opened during the snapshot is closed before Installed
// returns. The snapshot requests no read or write access and opens devices
// in shared mode, so it does not disturb software already using them.
func Installed() []DeviceInfo {
	devices := hidenum.Run(hidenum.NewHost())
	out := make([]DeviceInfo, 0, len(devices))
	for _, d := range devices {
		out = append(out, fromRecord(d))
	}
	return out
}

func fromRecord(d hidenum.Device) DeviceInfo {
	return DeviceInfo{
		Path:         d.Path,
		Manufacturer: d.Manufacturer,
		Product:      d.Product,
		SerialNumber: d.SerialNumber,
		Attributes: Attributes{
			VendorID:      d.Attributes.VendorID,
			ProductID:     d.Attributes.ProductID,
			VersionNumber: d.Attributes.VersionNumber,
		},
		Caps: Caps{
			UsagePage:           d.Caps.UsagePage,
			Usage:               d.Caps.Usage,
			InputReportLength:   d.Caps.InputReportLength,
			OutputReportLength:  d.Caps.OutputReportLength,
			FeatureReportLength: d.Caps.FeatureReportLength,
			LinkCollectionNodes: d.Caps.LinkCollectionNodes,
			InputButtonCaps:     d.Caps.InputButtonCaps,
			InputValueCaps:      d.Caps.InputValueCaps,
			OutputButtonCaps:    d.Caps.OutputButtonCaps,
			OutputValueCaps:     d.Caps.OutputValueCaps,
			FeatureButtonCaps:   d.Caps.FeatureButtonCaps,
			FeatureValueCaps:    d.Caps.FeatureValueCaps,
		},
	}
}
