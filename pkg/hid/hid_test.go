package hid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usbhid "github.com/wangyangyangisme/usbhid"
)

func TestInfoFrom(t *testing.T) {
	d := usbhid.DeviceInfo{
		Path:         `\\?\hid#x`,
		Manufacturer: "Acme",
		Product:      "Widget",
		SerialNumber: "123",
		Attributes:   usbhid.Attributes{VendorID: 0x17A4, ProductID: 0x001E, VersionNumber: 0x0102},
		Caps:         usbhid.Caps{UsagePage: 0x0001, Usage: 0x0006},
	}

	info := infoFrom(d)

	assert.Equal(t, `\\?\hid#x`, info.Path)
	assert.Equal(t, uint16(0x17A4), info.VendorID)
	assert.Equal(t, uint16(0x001E), info.ProductID)
	assert.Equal(t, uint16(0x0102), info.VersionNumber)
	assert.Equal(t, "Acme", info.Manufacturer)
	assert.Equal(t, "Widget", info.Product)
	assert.Equal(t, "123", info.SerialNumber)
	assert.Equal(t, uint16(0x0001), info.UsagePage)
	assert.Equal(t, uint16(0x0006), info.Usage)
}

// stubManager drives openVIDPID without touching real hardware.
type stubManager struct {
	infos  []Info
	opened []Info
}

func (m *stubManager) List() ([]Info, error) { return m.infos, nil }

func (m *stubManager) Open(info Info) (Device, error) {
	m.opened = append(m.opened, info)
	return nil, nil
}

func (m *stubManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	return openVIDPID(m, vendorID, productID)
}

func TestOpenVIDPIDMatchesFirstDevice(t *testing.T) {
	m := &stubManager{infos: []Info{
		{Path: "a", VendorID: 1, ProductID: 1},
		{Path: "b", VendorID: 2, ProductID: 7},
		{Path: "c", VendorID: 2, ProductID: 7},
	}}

	_, err := m.OpenVIDPID(2, 7)

	require.NoError(t, err)
	require.Len(t, m.opened, 1)
	assert.Equal(t, "b", m.opened[0].Path)
}

func TestOpenVIDPIDNotFound(t *testing.T) {
	m := &stubManager{}

	_, err := m.OpenVIDPID(0xdead, 0xbeef)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "device not found")
}
