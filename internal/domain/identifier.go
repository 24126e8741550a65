package domain

// MaxGitHubLoginLength is the longest login GitHub accepts.
const MaxGitHubLoginLength = 39

// IsGitHubLogin reports whether s is a syntactically valid GitHub login:
// 1-39 ASCII letters, digits or hyphens, with no leading, trailing or
// consecutive hyphens.
func IsGitHubLogin(s string) bool {
	if len(s) == 0 || len(s) > MaxGitHubLoginLength {
		return false
	}
	prevHyphen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			prevHyphen = false
		case c == '-':
			if i == 0 || i == len(s)-1 || prevHyphen {
				return false
			}
			prevHyphen = true
		default:
			return false
		}
	}
	return true
}
