//go:build windows && !hidapi

package hid

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/wangyangyangisme/usbhid/internal/winhid"
)

type winManager struct{}

func newManager() (Manager, error) {
	return &winManager{}, nil
}

func (m *winManager) List() ([]Info, error) {
	return list()
}

func (m *winManager) Open(info Info) (Device, error) {
	h, err := winhid.OpenReadHandle(info.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "hid: open %s", info.Path)
	}

	data, ok := winhid.PreparsedData(h)
	if !ok {
		windows.CloseHandle(h)
		return nil, errors.Errorf("hid: no preparsed data for %s", info.Path)
	}
	caps, ok := winhid.GetCaps(data)
	winhid.FreePreparsedData(data)
	if !ok {
		windows.CloseHandle(h)
		return nil, errors.Errorf("hid: capability query failed for %s", info.Path)
	}

	return &winDevice{
		handle:     h,
		inputLen:   int(caps.InputReportByteLength),
		outputLen:  int(caps.OutputReportByteLength),
		featureLen: int(caps.FeatureReportByteLength),
	}, nil
}

func (m *winManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	return openVIDPID(m, vendorID, productID)
}

type winDevice struct {
	handle     windows.Handle
	inputLen   int
	outputLen  int
	featureLen int
}

func (d *winDevice) Read(p []byte) (int, error) {
	// ReadFile requires a buffer matching the device's input report length;
	// byte 0 is the report ID.
	buf := make([]byte, d.inputLen)
	var read uint32
	if err := windows.ReadFile(d.handle, buf, &read, nil); err != nil {
		return 0, errors.Wrap(err, "hid: read input report")
	}
	return copy(p, buf[:read]), nil
}

func (d *winDevice) ReadFeature(reportID byte) ([]byte, error) {
	if d.featureLen == 0 {
		return nil, errors.New("hid: device has no feature reports")
	}
	report := make([]byte, d.featureLen)
	report[0] = reportID
	if !winhid.GetFeature(d.handle, report) {
		return nil, errors.Errorf("hid: feature report 0x%02X query failed", reportID)
	}
	return report[1:], nil
}

func (d *winDevice) ReportLens() (int, int, int) {
	return d.inputLen, d.outputLen, d.featureLen
}

func (d *winDevice) Close() error {
	return windows.CloseHandle(d.handle)
}
