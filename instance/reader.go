package instance

import "os"

// ReadFile reads and parses the instance file at path.
func ReadFile(path string) (*Instance, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}
