package hidenum

import "testing"

// fakeDevice configures one device the fake host will present, along with
// the failures it should inject.
type fakeDevice struct {
	path         string
	manufacturer string
	product      string
	serial       string
	attrs        Attributes
	caps         Caps

	pathFail         bool
	openFail         bool
	manufacturerFail bool
	attrsFail        bool
	preparsedFail    bool
	capsFail         bool
}

// fakeHost implements Host in memory and counts every resource transition
// so tests can verify the exactly-once release contract.
type fakeHost struct {
	devices []*fakeDevice

	opens             int
	closes            map[QueryHandle]int
	preparsedAcquired int
	preparsedReleased int
	released          bool

	panicInManufacturer bool
}

func newFakeHost(devices ...*fakeDevice) *fakeHost {
	return &fakeHost{
		devices: devices,
		closes:  make(map[QueryHandle]int),
	}
}

func (h *fakeHost) Interfaces() []InterfaceToken {
	tokens := make([]InterfaceToken, len(h.devices))
	for i := range tokens {
		tokens[i] = InterfaceToken(i)
	}
	return tokens
}

func (h *fakeHost) DevicePath(t InterfaceToken) (string, bool) {
	d := h.devices[int(t)]
	if d.pathFail {
		return "", false
	}
	return d.path, true
}

func (h *fakeHost) Open(path string) (QueryHandle, bool) {
	for i, d := range h.devices {
		if d.path != path {
			continue
		}
		if d.openFail {
			return 0, false
		}
		h.opens++
		return QueryHandle(i + 1), true
	}
	return 0, false
}

func (h *fakeHost) Close(q QueryHandle) {
	h.closes[q]++
}

func (h *fakeHost) dev(q QueryHandle) *fakeDevice {
	return h.devices[int(q)-1]
}

func (h *fakeHost) Manufacturer(q QueryHandle) (string, bool) {
	if h.panicInManufacturer {
		panic("fake host: manufacturer query blew up")
	}
	d := h.dev(q)
	if d.manufacturerFail {
		return "", false
	}
	return d.manufacturer, true
}

func (h *fakeHost) Product(q QueryHandle) (string, bool) {
	return h.dev(q).product, true
}

func (h *fakeHost) SerialNumber(q QueryHandle) (string, bool) {
	return h.dev(q).serial, true
}

func (h *fakeHost) Attributes(q QueryHandle) (Attributes, bool) {
	d := h.dev(q)
	if d.attrsFail {
		return Attributes{}, false
	}
	return d.attrs, true
}

func (h *fakeHost) Preparsed(q QueryHandle) (PreparsedRef, bool) {
	if h.dev(q).preparsedFail {
		return 0, false
	}
	h.preparsedAcquired++
	return PreparsedRef(q), true
}

func (h *fakeHost) ReleasePreparsed(PreparsedRef) {
	h.preparsedReleased++
}

func (h *fakeHost) Caps(p PreparsedRef) (Caps, bool) {
	d := h.dev(QueryHandle(p))
	if d.capsFail {
		return Caps{}, false
	}
	return d.caps, true
}

func (h *fakeHost) Release() {
	h.released = true
}

// assertBalanced fails the test unless every acquired resource was released
// exactly once.
func (h *fakeHost) assertBalanced(t *testing.T) {
	t.Helper()
	totalCloses := 0
	for q, n := range h.closes {
		if n != 1 {
			t.Errorf("handle %d closed %d times, want 1", q, n)
		}
		totalCloses += n
	}
	if totalCloses != h.opens {
		t.Errorf("%d opens but %d closes", h.opens, totalCloses)
	}
	if h.preparsedAcquired != h.preparsedReleased {
		t.Errorf("%d preparsed blobs acquired but %d released",
			h.preparsedAcquired, h.preparsedReleased)
	}
	if !h.released {
		t.Error("class device set not released")
	}
}
