//go:build windows

package hidenum

import (
	"golang.org/x/sys/windows"

	"github.com/wangyangyangisme/usbhid/internal/winhid"
)

// winHost runs the pass against setupapi.dll and hid.dll.
type winHost struct {
	set     uintptr
	haveSet bool
	ifaces  []winhid.SP_DEVICE_INTERFACE_DATA
}

func newHost() Host {
	h := &winHost{}
	h.set, h.haveSet = winhid.GetClassDevs()
	return h
}

func (h *winHost) Interfaces() []InterfaceToken {
	if !h.haveSet {
		// Class lookup failed; an empty pass, not an error.
		return nil
	}
	h.ifaces = h.ifaces[:0]
	for i := uint32(0); ; i++ {
		data, ok := winhid.EnumDeviceInterface(h.set, i)
		if !ok {
			break
		}
		h.ifaces = append(h.ifaces, data)
	}
	tokens := make([]InterfaceToken, len(h.ifaces))
	for i := range tokens {
		tokens[i] = InterfaceToken(i)
	}
	return tokens
}

func (h *winHost) DevicePath(t InterfaceToken) (string, bool) {
	if int(t) < 0 || int(t) >= len(h.ifaces) {
		return "", false
	}
	return winhid.DeviceInterfacePath(h.set, &h.ifaces[t])
}

func (h *winHost) Open(path string) (QueryHandle, bool) {
	handle, err := winhid.OpenQueryHandle(path)
	if err != nil {
		return 0, false
	}
	return QueryHandle(handle), true
}

func (h *winHost) Close(q QueryHandle) {
	windows.CloseHandle(windows.Handle(q))
}

func (h *winHost) Manufacturer(q QueryHandle) (string, bool) {
	return winhid.ManufacturerString(windows.Handle(q), MaxDeviceStringLen)
}

func (h *winHost) Product(q QueryHandle) (string, bool) {
	return winhid.ProductString(windows.Handle(q), MaxDeviceStringLen)
}

func (h *winHost) SerialNumber(q QueryHandle) (string, bool) {
	return winhid.SerialNumberString(windows.Handle(q), MaxDeviceStringLen)
}

func (h *winHost) Attributes(q QueryHandle) (Attributes, bool) {
	attrs, ok := winhid.Attributes(windows.Handle(q))
	if !ok {
		return Attributes{}, false
	}
	return Attributes{
		VendorID:      attrs.VendorID,
		ProductID:     attrs.ProductID,
		VersionNumber: attrs.VersionNumber,
	}, true
}

func (h *winHost) Preparsed(q QueryHandle) (PreparsedRef, bool) {
	data, ok := winhid.PreparsedData(windows.Handle(q))
	return PreparsedRef(data), ok
}

func (h *winHost) ReleasePreparsed(p PreparsedRef) {
	winhid.FreePreparsedData(uintptr(p))
}

func (h *winHost) Caps(p PreparsedRef) (Caps, bool) {
	caps, ok := winhid.GetCaps(uintptr(p))
	if !ok {
		return Caps{}, false
	}
	return Caps{
		UsagePage:           caps.UsagePage,
		Usage:               caps.Usage,
		InputReportLength:   caps.InputReportByteLength,
		OutputReportLength:  caps.OutputReportByteLength,
		FeatureReportLength: caps.FeatureReportByteLength,
		LinkCollectionNodes: caps.NumberLinkCollectionNodes,
		InputButtonCaps:     caps.NumberInputButtonCaps,
		InputValueCaps:      caps.NumberInputValueCaps,
		OutputButtonCaps:    caps.NumberOutputButtonCaps,
		OutputValueCaps:     caps.NumberOutputValueCaps,
		FeatureButtonCaps:   caps.NumberFeatureButtonCaps,
		FeatureValueCaps:    caps.NumberFeatureValueCaps,
	}, true
}

func (h *winHost) Release() {
	if h.haveSet {
		winhid.DestroyDeviceInfoList(h.set)
		h.haveSet = false
	}
}
