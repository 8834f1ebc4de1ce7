// Package hidenum implements a single-pass snapshot enumeration of all
// HID-class devices attached to the host. The pipeline itself is platform
// independent; everything OS-specific sits behind the Host interface.
package hidenum

// MaxDeviceStringLen is the longest string a HID device may report for its
// manufacturer, product, or serial number descriptors (in UTF-16 units, per
// the HidD_Get*String contract).
const MaxDeviceStringLen = 126

// Attributes holds the fixed-width identifiers every HID device reports.
type Attributes struct {
	VendorID      uint16
	ProductID     uint16
	VersionNumber uint16
}

// Caps is the capability descriptor parsed from a device's preparsed report
// descriptor data. Report lengths include the report ID byte.
type Caps struct {
	UsagePage uint16
	Usage     uint16

	InputReportLength   uint16
	OutputReportLength  uint16
	FeatureReportLength uint16

	LinkCollectionNodes uint16
	InputButtonCaps     uint16
	InputValueCaps      uint16
	OutputButtonCaps    uint16
	OutputValueCaps     uint16
	FeatureButtonCaps   uint16
	FeatureValueCaps    uint16
}

// Device is one fully-joined enumeration record. Attributes are always
// populated; the strings and Caps are best effort and may be zero values.
type Device struct {
	Path         string
	Manufacturer string
	Product      string
	SerialNumber string
	Attributes   Attributes
	Caps         Caps
}
