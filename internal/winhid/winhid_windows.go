// Package winhid wraps the setupapi.dll and hid.dll entry points needed to
// enumerate and query HID-class devices. Pure syscalls, no CGO.
package winhid

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	hid      = windows.NewLazySystemDLL("hid.dll")
	setupapi = windows.NewLazySystemDLL("setupapi.dll")

	procHidD_GetHidGuid                  = hid.NewProc("HidD_GetHidGuid")
	procHidD_GetAttributes               = hid.NewProc("HidD_GetAttributes")
	procHidD_GetProductString            = hid.NewProc("HidD_GetProductString")
	procHidD_GetManufacturerString       = hid.NewProc("HidD_GetManufacturerString")
	procHidD_GetSerialNumberString       = hid.NewProc("HidD_GetSerialNumberString")
	procHidD_GetPreparsedData            = hid.NewProc("HidD_GetPreparsedData")
	procHidD_FreePreparsedData           = hid.NewProc("HidD_FreePreparsedData")
	procHidD_GetFeature                  = hid.NewProc("HidD_GetFeature")
	procHidP_GetCaps                     = hid.NewProc("HidP_GetCaps")
	procSetupDiGetClassDevsW             = setupapi.NewProc("SetupDiGetClassDevsW")
	procSetupDiEnumDeviceInterfaces      = setupapi.NewProc("SetupDiEnumDeviceInterfaces")
	procSetupDiGetDeviceInterfaceDetailW = setupapi.NewProc("SetupDiGetDeviceInterfaceDetailW")
	procSetupDiDestroyDeviceInfoList     = setupapi.NewProc("SetupDiDestroyDeviceInfoList")
)

// classGUID resolves the HID device interface class GUID exactly once for
// the process lifetime.
var classGUID = sync.OnceValue(func() GUID {
	var guid GUID
	procHidD_GetHidGuid.Call(uintptr(unsafe.Pointer(&guid)))
	return guid
})

// ClassGUID returns the HID device interface class GUID.
func ClassGUID() GUID {
	return classGUID()
}

// GetClassDevs opens the device information set for all present HID
// interfaces. The returned set must be destroyed with DestroyDeviceInfoList.
func GetClassDevs() (uintptr, bool) {
	guid := ClassGUID()
	set, _, _ := procSetupDiGetClassDevsW.Call(
		uintptr(unsafe.Pointer(&guid)),
		0,
		0,
		DIGCF_PRESENT|DIGCF_DEVICEINTERFACE,
	)
	if set == 0 || set == INVALID_HANDLE_VALUE {
		return 0, false
	}
	return set, true
}

func DestroyDeviceInfoList(set uintptr) {
	procSetupDiDestroyDeviceInfoList.Call(set)
}

// EnumDeviceInterface fetches the interface at index within set. A false
// result means the set has no further interfaces.
func EnumDeviceInterface(set uintptr, index uint32) (SP_DEVICE_INTERFACE_DATA, bool) {
	guid := ClassGUID()
	var data SP_DEVICE_INTERFACE_DATA
	data.CbSize = uint32(unsafe.Sizeof(data))
	r, _, _ := procSetupDiEnumDeviceInterfaces.Call(
		set,
		0,
		uintptr(unsafe.Pointer(&guid)),
		uintptr(index),
		uintptr(unsafe.Pointer(&data)),
	)
	return data, r != 0
}

// DeviceInterfacePath resolves an interface to its device path using the
// usual two calls: one to size the detail buffer, one to fill it.
func DeviceInterfacePath(set uintptr, data *SP_DEVICE_INTERFACE_DATA) (string, bool) {
	var requiredSize uint32
	procSetupDiGetDeviceInterfaceDetailW.Call(
		set,
		uintptr(unsafe.Pointer(data)),
		0,
		0,
		uintptr(unsafe.Pointer(&requiredSize)),
		0,
	)
	if requiredSize == 0 {
		return "", false
	}

	buf := make([]byte, requiredSize)
	detail := (*SP_DEVICE_INTERFACE_DETAIL_DATA)(unsafe.Pointer(&buf[0]))
	// CbSize is sizeof(SP_DEVICE_INTERFACE_DETAIL_DATA), which differs
	// between 64-bit (8: DWORD + padding) and 32-bit (6: DWORD + one WCHAR)
	// Windows.
	if unsafe.Sizeof(uintptr(0)) == 8 {
		detail.CbSize = 8
	} else {
		detail.CbSize = 6
	}

	r, _, _ := procSetupDiGetDeviceInterfaceDetailW.Call(
		set,
		uintptr(unsafe.Pointer(data)),
		uintptr(unsafe.Pointer(detail)),
		uintptr(requiredSize),
		0,
		0,
	)
	if r == 0 {
		return "", false
	}
	return windows.UTF16PtrToString(&detail.DevicePath[0]), true
}

// OpenQueryHandle opens path for metadata queries only: zero desired access,
// shared read/write so other software keeps normal access to the device.
func OpenQueryHandle(path string) (windows.Handle, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return windows.InvalidHandle, err
	}
	return windows.CreateFile(
		pathPtr,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
}

// OpenReadHandle opens path for input and feature report reads.
func OpenReadHandle(path string) (windows.Handle, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return windows.InvalidHandle, err
	}
	return windows.CreateFile(
		pathPtr,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
}

func getString(proc *windows.LazyProc, h windows.Handle, maxLen int) (string, bool) {
	buf := make([]uint16, maxLen)
	r, _, _ := proc.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)*2), // byte count
	)
	if r == 0 {
		return "", false
	}
	return windows.UTF16ToString(buf), true
}

// ManufacturerString queries the device's manufacturer string, at most
// maxLen UTF-16 units.
func ManufacturerString(h windows.Handle, maxLen int) (string, bool) {
	return getString(procHidD_GetManufacturerString, h, maxLen)
}

func ProductString(h windows.Handle, maxLen int) (string, bool) {
	return getString(procHidD_GetProductString, h, maxLen)
}

func SerialNumberString(h windows.Handle, maxLen int) (string, bool) {
	return getString(procHidD_GetSerialNumberString, h, maxLen)
}

// Attributes queries the device's vendor/product/version identifiers.
func Attributes(h windows.Handle) (HIDD_ATTRIBUTES, bool) {
	var attrs HIDD_ATTRIBUTES
	attrs.Size = uint32(unsafe.Sizeof(attrs))
	r, _, _ := procHidD_GetAttributes.Call(uintptr(h), uintptr(unsafe.Pointer(&attrs)))
	return attrs, r != 0
}

// PreparsedData fetches the device's preparsed report descriptor data. The
// returned pointer must be released with FreePreparsedData.
func PreparsedData(h windows.Handle) (uintptr, bool) {
	var data uintptr
	r, _, _ := procHidD_GetPreparsedData.Call(uintptr(h), uintptr(unsafe.Pointer(&data)))
	if r == 0 || data == 0 {
		return 0, false
	}
	return data, true
}

func FreePreparsedData(data uintptr) {
	procHidD_FreePreparsedData.Call(data)
}

// GetCaps parses preparsed data into the device's capability summary.
func GetCaps(data uintptr) (HIDP_CAPS, bool) {
	var caps HIDP_CAPS
	r, _, _ := procHidP_GetCaps.Call(data, uintptr(unsafe.Pointer(&caps)))
	return caps, r == HIDP_STATUS_SUCCESS
}

// GetFeature reads a feature report into buf; buf[0] selects the report ID.
func GetFeature(h windows.Handle, buf []byte) bool {
	r, _, _ := procHidD_GetFeature.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	return r != 0
}
