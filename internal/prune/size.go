package prune

import "fmt"

const (
	bytesPerKibibyteConstant = 1024
	bytesPerMebibyteConstant = bytesPerKibibyteConstant * 1024
	bytesPerGibibyteConstant = bytesPerMebibyteConstant * 1024

	gibibyteTemplateConstant = "%.2f GiB"
	mebibyteTemplateConstant = "%.2f MiB"
	kibibyteTemplateConstant = "%.2f KiB"
	byteTemplateConstant     = "%d B"
)

// FormatSize renders a byte count in the largest binary unit whose value is at least one.
func FormatSize(byteCount int64) string {
	switch {
	case byteCount >= bytesPerGibibyteConstant:
		return fmt.Sprintf(gibibyteTemplateConstant, float64(byteCount)/bytesPerGibibyteConstant)
	case byteCount >= bytesPerMebibyteConstant:
		return fmt.Sprintf(mebibyteTemplateConstant, float64(byteCount)/bytesPerMebibyteConstant)
	case byteCount >= bytesPerKibibyteConstant:
		return fmt.Sprintf(kibibyteTemplateConstant, float64(byteCount)/bytesPerKibibyteConstant)
	default:
		return fmt.Sprintf(byteTemplateConstant, byteCount)
	}
}
