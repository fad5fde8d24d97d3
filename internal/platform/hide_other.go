//go:build !darwin

package platform

func hideApplication() error {
	return ErrUnsupported
}
