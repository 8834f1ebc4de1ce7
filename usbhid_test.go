package usbhid

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/wangyangyangisme/usbhid/internal/hidenum"
)

// Installed must never fail, whatever the host looks like. On machines
// without HID devices (or without permission to open them) it returns an
// empty list.
func TestInstalledNeverFails(t *testing.T) {
	devices := Installed()
	for _, d := range devices {
		assert.NotEmpty(t, d.Path)
		assert.LessOrEqual(t, utf8.RuneCountInString(d.Manufacturer), MaxDeviceStringLen)
		assert.NotContains(t, d.Manufacturer, "\x00")
	}
}

func TestDeviceInfoString(t *testing.T) {
	d := DeviceInfo{
		Path:       `\\?\hid#vid_17a4&pid_001e`,
		Attributes: Attributes{VendorID: 0x17A4, ProductID: 0x001E},
	}
	assert.Equal(t, `17a4:001e \\?\hid#vid_17a4&pid_001e`, d.String())
}

func TestFromRecord(t *testing.T) {
	rec := hidenum.Device{
		Path:         `\\?\hid#x`,
		Manufacturer: "Acme",
		Product:      "Widget",
		SerialNumber: "123",
		Attributes:   hidenum.Attributes{VendorID: 1, ProductID: 2, VersionNumber: 3},
		Caps: hidenum.Caps{
			UsagePage:           0x0001,
			Usage:               0x0006,
			InputReportLength:   9,
			OutputReportLength:  2,
			FeatureReportLength: 5,
			InputValueCaps:      4,
		},
	}

	d := fromRecord(rec)

	assert.Equal(t, rec.Path, d.Path)
	assert.Equal(t, rec.Manufacturer, d.Manufacturer)
	assert.Equal(t, rec.Product, d.Product)
	assert.Equal(t, rec.SerialNumber, d.SerialNumber)
	assert.Equal(t, rec.Attributes.VendorID, d.Attributes.VendorID)
	assert.Equal(t, rec.Attributes.ProductID, d.Attributes.ProductID)
	assert.Equal(t, rec.Attributes.VersionNumber, d.Attributes.VersionNumber)
	assert.Equal(t, rec.Caps.UsagePage, d.Caps.UsagePage)
	assert.Equal(t, rec.Caps.Usage, d.Caps.Usage)
	assert.Equal(t, rec.Caps.InputReportLength, d.Caps.InputReportLength)
	assert.Equal(t, rec.Caps.OutputReportLength, d.Caps.OutputReportLength)
	assert.Equal(t, rec.Caps.FeatureReportLength, d.Caps.FeatureReportLength)
	assert.Equal(t, rec.Caps.InputValueCaps, d.Caps.InputValueCaps)
}
