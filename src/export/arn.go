package export

import (
	"strings"
)

// GetPartition maps a region name to its AWS partition.
func GetPartition(region string) string {
	switch {
	case strings.HasPrefix(region, "cn-"):
		return "aws-cn"
	case strings.HasPrefix(region, "us-gov-"):
		return "aws-us-gov"
	case strings.HasPrefix(region, "us-isob-"):
		return "aws-iso-b"
	case strings.HasPrefix(region, "us-iso-"):
		return "aws-iso"
	default:
		return "aws"
	}
}

func stripDashes(s string) string {
	return strings.ReplaceAll(s, "-", "")
}
