//go:build !windows && !hidapi

package hid

import (
	"github.com/pkg/errors"
	usbhid "rafaelmartins.com/p/usbhid"
)

type portableManager struct{}

func newManager() (Manager, error) {
	return &portableManager{}, nil
}

func (m *portableManager) List() ([]Info, error) {
	return list()
}

func (m *portableManager) Open(info Info) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == info.Path
	}, true, false)
	if err != nil {
		return nil, errors.Wrapf(err, "hid: open %s", info.Path)
	}
	return &portableDevice{d}, nil
}

func (m *portableManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	return openVIDPID(m, vendorID, productID)
}

type portableDevice struct {
	d *usbhid.Device
}

func (d *portableDevice) Read(p []byte) (int, error) {
	_, buf, err := d.d.GetInputReport()
	if err != nil {
		return 0, err
	}
	return copy(p, buf), nil
}

func (d *portableDevice) ReadFeature(reportID byte) ([]byte, error) {
	return d.d.GetFeatureReport(reportID)
}

func (d *portableDevice) ReportLens() (int, int, int) {
	return int(d.d.GetInputReportLength()),
		int(d.d.GetOutputReportLength()),
		int(d.d.GetFeatureReportLength())
}

func (d *portableDevice) Close() error {
	return d.d.Close()
}
