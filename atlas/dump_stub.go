//go:build !atlaspng

package atlas

// DumpSupported reports whether WritePNG is compiled in.
const DumpSupported = false

// WritePNG returns ErrDumpUnsupported. Build with -tags atlaspng to enable
// the PNG dump.
func (a *Atlas) WritePNG(string) error {
	return ErrDumpUnsupported
}
