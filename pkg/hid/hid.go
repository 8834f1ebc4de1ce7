// Package hid opens HID devices for read-only report access: input report
// reads and feature report queries. Listing is backed by the enumeration
// snapshot; opening is platform specific.
package hid

import (
	"github.com/pkg/errors"

	usbhid "github.com/wangyangyangisme/usbhid"
)

// Info describes an enumerated HID device.
type Info struct {
	Path          string
	VendorID      uint16
	ProductID     uint16
	VersionNumber uint16
	Manufacturer  string
	Product       string
	SerialNumber  string
	UsagePage     uint16
	Usage         uint16
}

// Device is an opened HID device. This package never writes to devices;
// only input and feature report reads are exposed.
type Device interface {
	Read(p []byte) (int, error) // next input report
	ReadFeature(reportID byte) ([]byte, error)
	ReportLens() (inLen, outLen, featLen int)
	Close() error
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
	OpenVIDPID(vendorID, productID uint16) (Device, error)
}

// NewManager returns the HID manager for this platform.
func NewManager() (Manager, error) {
	return newManager()
}

func list() ([]Info, error) {
	devs := usbhid.Installed()
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, infoFrom(d))
	}
	return out, nil
}

func infoFrom(d usbhid.DeviceInfo) Info {
	return Info{
		Path:          d.Path,
		VendorID:      d.Attributes.VendorID,
		ProductID:     d.Attributes.ProductID,
		VersionNumber: d.Attributes.VersionNumber,
		Manufacturer:  d.Manufacturer,
		Product:       d.Product,
		SerialNumber:  d.SerialNumber,
		UsagePage:     d.Caps.UsagePage,
		Usage:         d.Caps.Usage,
	}
}

func openVIDPID(m Manager, vendorID, productID uint16) (Device, error) {
	devs, err := m.List()
	if err != nil {
		return nil, err
	}
	for _, d := range devs {
		if d.VendorID == vendorID && d.ProductID == productID {
			return m.Open(d)
		}
	}
	return nil, errors.Errorf("hid: device not found (VID:0x%04X PID:0x%04X)", vendorID, productID)
}
