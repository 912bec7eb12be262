// Package naming builds and parses the file names used for collected
// samples:
//
//	YYYYMMDDTHHMMSS_{device}_s{bits}_i{interval}
//
// where device is one of the Device values, bits is the sample size per
// collection and interval is the number of seconds between collections.
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Device is the data source recorded in a file name.
type Device string

const (
	DeviceRDSEED Device = "rdseed"
	DevicePseudo Device = "pseudo"
)

const stampLayout = "20060102T150405"

// Validate checks whether d is one of the allowed device identifiers.
func (d Device) Validate() error {
	if d == DeviceRDSEED || d == DevicePseudo {
		return nil
	}
	return fmt.Errorf("invalid device: %q (allowed: rdseed, pseudo)", string(d))
}

// ParseDevice returns the Device named s.
func ParseDevice(s string) (Device, error) {
	d := Device(strings.ToLower(strings.TrimSpace(s)))
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Run describes one collection session.
type Run struct {
	Start    time.Time
	Device   Device
	Bits     int
	Interval time.Duration
}

func (r Run) validate() error {
	if err := r.Device.Validate(); err != nil {
		return err
	}
	if r.Bits <= 0 {
		return errors.New("bits must be > 0")
	}
	if r.Interval < time.Second || r.Interval%time.Second != 0 {
		return errors.Errorf("interval must be a whole number of seconds, got %s", r.Interval)
	}
	return nil
}

// BaseName returns the file name without extension.
func (r Run) BaseName() (string, error) {
	if err := r.validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s_s%d_i%d", r.Start.Format(stampLayout), r.Device, r.Bits, int(r.Interval/time.Second)), nil
}

// Paths returns the .bin and .csv paths for r inside dir (dir may be empty).
func (r Run) Paths(dir string) (binPath, csvPath string, err error) {
	base, err := r.BaseName()
	if err != nil {
		return "", "", err
	}
	return joinDir(dir, base+".bin"), joinDir(dir, base+".csv"), nil
}

var baseNameRE = regexp.MustCompile(`(\d{8}T\d{6})_([a-z]+)_s(\d+)_i(\d+)`)

// ParseBaseName recovers a Run from a path whose base name follows the
// convention. Any directory and extension are ignored.
func ParseBaseName(path string) (Run, error) {
	name := filepath.Base(path)
	m := baseNameRE.FindStringSubmatch(name)
	if m == nil {
		return Run{}, errors.Errorf("file name %q does not match YYYYMMDDTHHMMSS_device_sBITS_iSECONDS", name)
	}
	start, err := time.ParseInLocation(stampLayout, m[1], time.Local)
	if err != nil {
		return Run{}, errors.Wrapf(err, "timestamp in %q", name)
	}
	bits, err := strconv.Atoi(m[3])
	if err != nil {
		return Run{}, errors.Wrapf(err, "bit count in %q", name)
	}
	secs, err := strconv.Atoi(m[4])
	if err != nil {
		return Run{}, errors.Wrapf(err, "interval in %q", name)
	}
	r := Run{Start: start, Device: Device(m[2]), Bits: bits, Interval: time.Duration(secs) * time.Second}
	if err := r.validate(); err != nil {
		return Run{}, errors.Wrapf(err, "file name %q", name)
	}
	return r, nil
}

func joinDir(dir string, name string) string {
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
