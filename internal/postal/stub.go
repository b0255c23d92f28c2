//go:build !libpostal

package postal

// Available reports whether Parse is backed by libpostal.
func Available() bool { return false }

// Parse always fails with ErrUnavailable in this build.
func Parse(text string) ([]Component, error) {
	return nil, ErrUnavailable
}
