package config

// FormatCheckID formats a check identifier based on the given format.
// Falls back to ID if name is empty.
func FormatCheckID(format CheckFormat, checkID, checkName string) string {
	if checkName == "" {
		return checkID
	}

	switch format {
	case CheckFormatID:
		return checkID
	case CheckFormatCombined:
		return checkID + "/" + checkName
	case CheckFormatName:
		return checkName
	default:
		return checkName
	}
}
