package precheck

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	archId        = "arch"
	osIdField     = "ID"
	osIdLikeField = "ID_LIKE"
	quote         = `"`
)

var (
	osReleaseFile = "/etc/os-release"
)

func removeLeadingTrailingQuotes(s string) string {
	s = strings.TrimPrefix(s, quote)
	s = strings.TrimSuffix(s, quote)
	return s
}

func readOSRelease() (map[string]string, error) {
	file, err := os.Open(osReleaseFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fields := map[string]string{}
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		field, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("unexpected line in %s: %s", osReleaseFile, line)
		}

		fields[field] = removeLeadingTrailingQuotes(value)
	}

	return fields, scanner.Err()
}

func getOSReleaseField(f string) (string, error) {
	fields, err := readOSRelease()
	if err != nil {
		return "", err
	}

	value, ok := fields[f]
	if !ok {
		return "", fmt.Errorf("unable to locate %s line in %s", f, osReleaseFile)
	}

	return value, nil
}

func GetOSId() (string, error) {
	return getOSReleaseField(osIdField)
}

// IsArchLike reports whether the host is Arch Linux or a derivative.
func IsArchLike() (bool, error) {
	fields, err := readOSRelease()
	if err != nil {
		return false, err
	}

	if fields[osIdField] == archId {
		return true, nil
	}

	for _, like := range strings.Fields(fields[osIdLikeField]) {
		if like == archId {
			return true, nil
		}
	}

	return false, nil
}
