package hidenum

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// devID is the per-pass synthetic identity of one opened device. IDs are
// assigned sequentially at handle acquisition and key every facet map, so
// the raw OS handle value is never used as a cross-map key.
type devID int

type openDevice struct {
	id     devID
	handle QueryHandle
	path   string
}

// Run executes one enumeration pass against h and returns the joined device
// records. It never fails visibly: any fault escaping a stage is recovered
// and collapsed into an empty result, with every acquired handle closed and
// every preparsed blob released on the way out. Callers cannot distinguish
// "no devices present" from "the pass faulted".
func Run(h Host) (devices []Device) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("cause", r).Debug("hidenum: pass aborted")
			devices = nil
		}
	}()
	defer h.Release()

	paths := resolvePaths(h)

	open := acquire(h, paths)
	defer func() {
		for _, d := range open {
			h.Close(d.handle)
		}
	}()

	manufacturers := queryString(open, h.Manufacturer)
	products := queryString(open, h.Product)
	serials := queryString(open, h.SerialNumber)
	attrs := queryAttributes(h, open)
	caps, preparsed := queryCaps(h, open)

	// In the normal case capability parsing succeeds exactly for the
	// handles whose attributes query succeeded. Divergence is a host
	// oddity, not a failure; the affected devices degrade per facet.
	if len(attrs) != preparsed || preparsed != len(caps) {
		log.WithFields(log.Fields{
			"attributes": len(attrs),
			"preparsed":  preparsed,
			"caps":       len(caps),
		}).Debug("hidenum: facet result sets diverge")
	}

	devices = make([]Device, 0, len(attrs))
	for _, d := range open {
		a, ok := attrs[d.id]
		if !ok {
			continue
		}
		devices = append(devices, Device{
			Path:         d.path,
			Manufacturer: manufacturers[d.id],
			Product:      products[d.id],
			SerialNumber: serials[d.id],
			Attributes:   a,
			Caps:         caps[d.id],
		})
	}
	return devices
}

// resolvePaths walks the present interfaces and resolves each to a device
// path. Interfaces without a resolvable path are dropped here and never
// reach handle acquisition.
func resolvePaths(h Host) []string {
	ifaces := h.Interfaces()
	paths := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		path, ok := h.DevicePath(iface)
		if !ok || path == "" {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// acquire opens a query handle per path, assigning each successful open its
// devID. Paths that fail to open are dropped. The caller owns the returned
// handles and must close each exactly once.
func acquire(h Host, paths []string) []openDevice {
	open := make([]openDevice, 0, len(paths))
	for _, path := range paths {
		handle, ok := h.Open(path)
		if !ok {
			log.WithField("path", path).Debug("hidenum: open failed, device dropped")
			continue
		}
		open = append(open, openDevice{
			id:     devID(len(open)),
			handle: handle,
			path:   path,
		})
	}
	return open
}

// queryString runs one best-effort string facet over the open set. Handles
// the host cannot answer for are simply absent from the result, which the
// aggregator reads back as an empty string.
func queryString(open []openDevice, get func(QueryHandle) (string, bool)) map[devID]string {
	out := make(map[devID]string, len(open))
	for _, d := range open {
		s, ok := get(d.handle)
		if !ok {
			continue
		}
		out[d.id] = truncateAtNUL(s)
	}
	return out
}

func queryAttributes(h Host, open []openDevice) map[devID]Attributes {
	out := make(map[devID]Attributes, len(open))
	for _, d := range open {
		a, ok := h.Attributes(d.handle)
		if !ok {
			continue
		}
		out[d.id] = a
	}
	return out
}

// queryCaps runs the two-step capabilities facet: fetch the preparsed blob,
// parse it, release the blob. It also reports how many blobs were obtained,
// for the divergence diagnostic in Run.
func queryCaps(h Host, open []openDevice) (map[devID]Caps, int) {
	out := make(map[devID]Caps, len(open))
	preparsed := 0
	for _, d := range open {
		c, fetched, ok := parseCaps(h, d.handle)
		if fetched {
			preparsed++
		}
		if ok {
			out[d.id] = c
		}
	}
	return out, preparsed
}

func parseCaps(h Host, handle QueryHandle) (c Caps, fetched, ok bool) {
	blob, ok := h.Preparsed(handle)
	if !ok {
		return Caps{}, false, false
	}
	// Released on every path out, including an unwinding parse fault.
	defer h.ReleasePreparsed(blob)
	c, ok = h.Caps(blob)
	return c, true, ok
}

// truncateAtNUL cuts a device string at its first NUL terminator. Device
// string buffers are fixed capacity and the host fills only a prefix.
func truncateAtNUL(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
