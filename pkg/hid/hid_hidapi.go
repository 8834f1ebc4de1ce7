//go:build hidapi

package hid

import (
	"github.com/pkg/errors"
	hidapi "github.com/sstallion/go-hid"
)

// hidapi backend, selected with -tags hidapi. Uses the hidapi C library via
// cgo instead of the pure-Go backends.

type hidapiManager struct{}

func newManager() (Manager, error) {
	if err := hidapi.Init(); err != nil {
		return nil, errors.Wrap(err, "hid: hidapi init")
	}
	return &hidapiManager{}, nil
}

func (m *hidapiManager) List() ([]Info, error) {
	var out []Info
	err := hidapi.Enumerate(0, 0, func(info *hidapi.DeviceInfo) error {
		out = append(out, Info{
			Path:          info.Path,
			VendorID:      info.VendorID,
			ProductID:     info.ProductID,
			VersionNumber: info.ReleaseNbr,
			Manufacturer:  info.MfrStr,
			Product:       info.ProductStr,
			SerialNumber:  info.SerialNbr,
			UsagePage:     info.UsagePage,
			Usage:         info.Usage,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "hid: hidapi enumerate")
	}
	return out, nil
}

func (m *hidapiManager) Open(info Info) (Device, error) {
	d, err := hidapi.OpenPath(info.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "hid: open %s", info.Path)
	}
	return &hidapiDevice{d}, nil
}

func (m *hidapiManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	return openVIDPID(m, vendorID, productID)
}

type hidapiDevice struct {
	d *hidapi.Device
}

func (d *hidapiDevice) Read(p []byte) (int, error) {
	return d.d.Read(p)
}

func (d *hidapiDevice) ReadFeature(reportID byte) ([]byte, error) {
	// hidapi does not surface per-report lengths; use the largest feature
	// report size the protocol allows.
	buf := make([]byte, 256)
	buf[0] = reportID
	n, err := d.d.GetFeatureReport(buf)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, nil
	}
	return buf[1:n], nil
}

func (d *hidapiDevice) ReportLens() (int, int, int) {
	// Not exposed by hidapi.
	return 0, 0, 0
}

func (d *hidapiDevice) Close() error {
	return d.d.Close()
}
