//go:build !windows

package hidenum

import (
	usbhid "rafaelmartins.com/p/usbhid"
)

// portableHost runs the pass over the cross-platform usbhid enumerator.
// Opened devices are tracked by synthetic handle tokens; the library keeps
// the real descriptors internal.
type portableHost struct {
	devs []*usbhid.Device
	open map[QueryHandle]*usbhid.Device
	next QueryHandle
}

func newHost() Host {
	devs, err := usbhid.Enumerate(nil)
	if err != nil {
		devs = nil
	}
	return &portableHost{
		devs: devs,
		open: make(map[QueryHandle]*usbhid.Device),
	}
}

func (h *portableHost) Interfaces() []InterfaceToken {
	tokens := make([]InterfaceToken, len(h.devs))
	for i := range tokens {
		tokens[i] = InterfaceToken(i)
	}
	return tokens
}

func (h *portableHost) DevicePath(t InterfaceToken) (string, bool) {
	if int(t) < 0 || int(t) >= len(h.devs) {
		return "", false
	}
	return h.devs[int(t)].Path(), true
}

func (h *portableHost) Open(path string) (QueryHandle, bool) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == path
	}, true, false)
	if err != nil {
		return 0, false
	}
	h.next++
	h.open[h.next] = d
	return h.next, true
}

func (h *portableHost) Close(q QueryHandle) {
	if d, ok := h.open[q]; ok {
		d.Close()
		delete(h.open, q)
	}
}

func (h *portableHost) Manufacturer(q QueryHandle) (string, bool) {
	d, ok := h.open[q]
	if !ok {
		return "", false
	}
	return d.Manufacturer(), true
}

func (h *portableHost) Product(q QueryHandle) (string, bool) {
	d, ok := h.open[q]
	if !ok {
		return "", false
	}
	return d.Product(), true
}

func (h *portableHost) SerialNumber(q QueryHandle) (string, bool) {
	d, ok := h.open[q]
	if !ok {
		return "", false
	}
	return d.SerialNumber(), true
}

func (h *portableHost) Attributes(q QueryHandle) (Attributes, bool) {
	d, ok := h.open[q]
	if !ok {
		return Attributes{}, false
	}
	return Attributes{
		VendorID:  d.VendorId(),
		ProductID: d.ProductId(),
		// bcdDevice is not exposed by this backend.
		VersionNumber: 0,
	}, true
}

func (h *portableHost) Preparsed(q QueryHandle) (PreparsedRef, bool) {
	// The backend parses report descriptors during enumeration; the handle
	// token doubles as the blob reference.
	if _, ok := h.open[q]; !ok {
		return 0, false
	}
	return PreparsedRef(q), true
}

func (h *portableHost) ReleasePreparsed(PreparsedRef) {}

func (h *portableHost) Caps(p PreparsedRef) (Caps, bool) {
	d, ok := h.open[QueryHandle(p)]
	if !ok {
		return Caps{}, false
	}
	return Caps{
		InputReportLength:   uint16(d.GetInputReportLength()),
		OutputReportLength:  uint16(d.GetOutputReportLength()),
		FeatureReportLength: uint16(d.GetFeatureReportLength()),
	}, true
}

func (h *portableHost) Release() {
	h.devs = nil
}
