package processor

// IsValidSession admits a credential that is exactly TokenLength characters of
// [A-Za-z0-9]. The check is structural; no server-side record is consulted.
func IsValidSession(credential *string) bool {
	if credential == nil || len(*credential) != TokenLength {
		return false
	}
	for i := 0; i < len(*credential); i++ {
		if !isAlphanumeric((*credential)[i]) {
			return false
		}
	}
	return true
}

func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
